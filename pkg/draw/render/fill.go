// ABOUTME: Proportional-fill widgets: progress bar, horizontal/vertical slider, bar chart
// ABOUTME: Fill counts come from layout.ComputeFill; vertical runs position every row

package render

import (
	"strconv"
	"strings"

	"github.com/mauromedda/termdraw/pkg/draw/color"
	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/seq"
	"github.com/mauromedda/termdraw/pkg/draw/style"
	"github.com/mauromedda/termdraw/pkg/draw/width"
)

// Default cell glyphs for filled and empty track cells.
const (
	FilledGlyph = "█"
	EmptyGlyph  = " "
)

// Track is the shared shape of the fill widgets.
type Track struct {
	// Region places the widget like any bordered region: the track fills
	// Width x Height cells, shifted one cell in when Border is set. Height 0
	// is drawn as one row.
	Region layout.Region
	// Filled and Empty are one-cell glyphs; empty strings use the defaults.
	Filled string
	Empty  string
	Style  style.Style
	// Border draws a frame around Region in Style.
	Border bool
	Glyphs style.BorderGlyphs
}

func (t Track) cells() (filled, empty string) {
	filled, empty = t.Filled, t.Empty
	if width.EstimateWidth(filled) != 1 {
		filled = FilledGlyph
	}
	if width.EstimateWidth(empty) != 1 {
		empty = EmptyGlyph
	}
	return filled, empty
}

// bounds returns the exterior the widget occupies and the interior the
// track is drawn in. They coincide unless Border is set.
func (t Track) bounds(minWidth int) (exterior, interior layout.Region) {
	exterior = t.Region.Normalize()
	exterior.Width = max(minWidth, exterior.Width)
	exterior.Height = max(1, exterior.Height)
	if t.Border {
		return exterior, exterior.Interior()
	}
	return exterior, exterior
}

// frame draws the optional border around exterior.
func (t Track) frame(sb *strings.Builder, exterior layout.Region) error {
	if !t.Border {
		return nil
	}
	g := FrameSpec{Glyphs: t.Glyphs}.glyphs()
	if err := g.Validate(); err != nil {
		return err
	}
	writeFrame(sb, exterior, g, t.Style, "")
	return nil
}

// run writes the same cells on every interior row.
func (t Track) run(sb *strings.Builder, r layout.Region, cells string) {
	sb.WriteString(t.Style.Prefix())
	for row := 0; row < r.Height; row++ {
		sb.WriteString(seq.CursorPosition(r.Left, r.Top+row))
		sb.WriteString(cells)
	}
	sb.WriteString(t.Style.Suffix())
}

// ProgressSpec is a horizontal bar filled in proportion to Value.
type ProgressSpec struct {
	Track
	Value, Min, Max float64
	Policy          layout.FillPolicy
}

// Percent returns a Linear 0..100 progress bar over region.
func Percent(value float64, region layout.Region) ProgressSpec {
	return ProgressSpec{Track: Track{Region: region}, Value: value, Max: 100}
}

// ProgressBar renders p. Every row of the track holds the same run of
// filled cells followed by empty cells.
func ProgressBar(p ProgressSpec) Result {
	ext, r := p.bounds(0)
	n := layout.ComputeFill(layout.FillSpec{Value: p.Value, Min: p.Min, Max: p.Max, Extent: r.Width, Policy: p.Policy})
	filled, empty := p.cells()
	cells := strings.Repeat(filled, n) + strings.Repeat(empty, r.Width-n)

	return compose("progress", func(sb *strings.Builder) error {
		if err := p.frame(sb, ext); err != nil {
			return err
		}
		p.run(sb, r, cells)
		return nil
	})
}

// SliderSpec is a horizontal or vertical fill. Horizontal sliders fill from
// the left, vertical ones from the top; Reverse starts from the far end.
type SliderSpec struct {
	Track
	Value, Min, Max float64
	Policy          layout.FillPolicy
	Vertical        bool
	Reverse         bool
}

// Slider renders s. A vertical slider is Region.Height cells tall and
// Region.Width cells wide (at least one); each row is positioned separately.
func Slider(s SliderSpec) Result {
	filled, empty := s.cells()

	if !s.Vertical {
		ext, r := s.bounds(0)
		n := layout.ComputeFill(layout.FillSpec{Value: s.Value, Min: s.Min, Max: s.Max, Extent: r.Width, Policy: s.Policy})
		on, off := strings.Repeat(filled, n), strings.Repeat(empty, r.Width-n)
		cells := on + off
		if s.Reverse {
			cells = off + on
		}
		return compose("slider", func(sb *strings.Builder) error {
			if err := s.frame(sb, ext); err != nil {
				return err
			}
			s.run(sb, r, cells)
			return nil
		})
	}

	ext, r := s.bounds(1)
	n := layout.ComputeFill(layout.FillSpec{Value: s.Value, Min: s.Min, Max: s.Max, Extent: r.Height, Policy: s.Policy})
	on := strings.Repeat(filled, r.Width)
	off := strings.Repeat(empty, r.Width)
	return compose("slider", func(sb *strings.Builder) error {
		if err := s.frame(sb, ext); err != nil {
			return err
		}
		sb.WriteString(s.Style.Prefix())
		for row := 0; row < r.Height; row++ {
			isFilled := row < n
			if s.Reverse {
				isFilled = row >= r.Height-n
			}
			sb.WriteString(seq.CursorPosition(r.Left, r.Top+row))
			if isFilled {
				sb.WriteString(on)
			} else {
				sb.WriteString(off)
			}
		}
		sb.WriteString(s.Style.Suffix())
		return nil
	})
}

// Bar is one bar chart row.
type Bar struct {
	Label string
	Value float64
	// Colors overrides the chart colours for this bar when set.
	Colors *color.Pair
}

// ChartSpec is a horizontal bar chart, one bar per row.
type ChartSpec struct {
	// Region holds the chart. Height 0 gives every bar a row; otherwise bars
	// past Height are not drawn.
	Region layout.Region
	Bars   []Bar
	// Max is the value of a full-width bar. Zero uses the largest value.
	Max float64
	// ShowValues appends each value after its bar.
	ShowValues bool
	Filled     string
	Style      style.Style
}

// BarChart renders c. Labels are right-aligned in a column as wide as the
// widest label (at most a third of the region); bars are Linear against Max.
func BarChart(c ChartSpec) Result {
	r := c.Region.Normalize()
	bars := c.Bars
	if r.Height > 0 && len(bars) > r.Height {
		bars = bars[:r.Height]
	}

	top := max(c.Max, 0)
	labelW, valueW := 0, 0
	values := make([]string, len(bars))
	for i, b := range bars {
		if c.Max <= 0 {
			top = max(top, b.Value)
		}
		labelW = max(labelW, width.EstimateWidth(b.Label))
		values[i] = strconv.FormatFloat(b.Value, 'f', -1, 64)
		valueW = max(valueW, len(values[i]))
	}
	labelW = min(labelW, r.Width/3)
	extent := r.Width
	if labelW > 0 {
		extent -= labelW + 1
	}
	if c.ShowValues {
		extent -= valueW + 1
	}
	extent = max(0, extent)
	filled, _ := Track{Filled: c.Filled}.cells()

	return compose("chart", func(sb *strings.Builder) error {
		for i, b := range bars {
			st := c.Style
			if b.Colors != nil {
				st = st.WithColors(*b.Colors)
			}
			sb.WriteString(seq.CursorPosition(r.Left, r.Top+i))
			if labelW > 0 {
				label := width.TruncatePlain(b.Label, labelW)
				sb.WriteString(strings.Repeat(" ", labelW-width.EstimateWidth(label)))
				sb.WriteString(label)
				sb.WriteByte(' ')
			}
			n := layout.ComputeFill(layout.FillSpec{Value: b.Value, Max: top, Extent: extent})
			sb.WriteString(st.Apply(strings.Repeat(filled, n)))
			sb.WriteString(strings.Repeat(" ", extent-n))
			if c.ShowValues {
				sb.WriteByte(' ')
				sb.WriteString(width.PadRight(values[i], valueW))
			}
		}
		return nil
	})
}
