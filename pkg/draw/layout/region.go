// ABOUTME: Region geometry: absolute exterior origin plus interior extent
// ABOUTME: Negative values are clamped; bordered exteriors add one cell on every side

// Package layout holds the pure geometry of termdraw: regions, alignment and
// proportional fill. Nothing here emits escape sequences.
package layout

// Region is a rectangle of terminal cells. Left and Top are the absolute
// 0-based origin of the exterior; Width and Height are the interior extent
// excluding border cells. A bordered region occupies Width+2 by Height+2.
type Region struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Rect is shorthand for a Region literal.
func Rect(left, top, width, height int) Region {
	return Region{Left: left, Top: top, Width: width, Height: height}
}

// Normalize clamps every field to zero or more.
func (r Region) Normalize() Region {
	return Region{
		Left:   max(0, r.Left),
		Top:    max(0, r.Top),
		Width:  max(0, r.Width),
		Height: max(0, r.Height),
	}
}

// Interior returns the cells inside a border drawn around r.
func (r Region) Interior() Region {
	n := r.Normalize()
	n.Left++
	n.Top++
	return n
}

// RightEdge is the column of the right border cell.
func (r Region) RightEdge() int {
	n := r.Normalize()
	return n.Left + n.Width + 1
}

// BottomEdge is the row of the bottom border cell.
func (r Region) BottomEdge() int {
	n := r.Normalize()
	return n.Top + n.Height + 1
}

// Empty reports whether the interior holds no cells.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
