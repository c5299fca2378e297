// ABOUTME: Proportional fill math shared by progress bars, sliders and bar charts
// ABOUTME: Linear percentage fill and targeted scroll-offset fill, both clamped with a visibility floor

package layout

import "math"

// FillPolicy selects how a value maps onto a track of cells.
type FillPolicy int

const (
	// FillLinear fills round(extent * fraction) cells.
	FillLinear FillPolicy = iota
	// FillTargeted gives each position its own cell while the range fits the
	// track, and a floored scroll offset once the range overflows it.
	FillTargeted
)

func (p FillPolicy) String() string {
	if p == FillTargeted {
		return "targeted"
	}
	return "linear"
}

// FillSpec describes one proportional fill.
type FillSpec struct {
	Value  float64
	Min    float64
	Max    float64
	Extent int
	Policy FillPolicy
}

// Percent is a Linear fill of a 0..100 value over extent cells.
func Percent(value float64, extent int) FillSpec {
	return FillSpec{Value: value, Min: 0, Max: 100, Extent: extent}
}

// ComputeFill returns how many of the Extent cells are filled.
//
// The value is clamped into [Min, Max] (reversed bounds are swapped, NaN
// counts as Min). The result is always within [0, Extent], never decreases
// as Value grows, and is at least 1 whenever Value > Min and Extent >= 1.
func ComputeFill(f FillSpec) int {
	extent := max(0, f.Extent)
	if extent == 0 {
		return 0
	}
	lo, hi := f.Min, f.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	v := f.Value
	if math.IsNaN(v) {
		v = lo
	}
	v = math.Min(math.Max(v, lo), hi)
	pos := v - lo
	span := hi - lo

	var filled int
	switch {
	case span <= 0 || math.IsInf(span, 0):
		filled = 0
	case f.Policy == FillTargeted:
		filled = targeted(pos, span, extent)
	default:
		filled = int(math.Round(float64(extent) * pos / span))
	}

	if filled == 0 && pos > 0 {
		filled = 1
	}
	return min(max(filled, 0), extent)
}

func targeted(pos, span float64, extent int) int {
	if span <= float64(extent) {
		return int(math.Floor(pos))
	}
	if pos >= span {
		return extent
	}
	return int(math.Floor(float64(extent) * pos / span))
}
