// ABOUTME: Frame renderer: corners and edges around a region, optional title in the top edge
// ABOUTME: Box renderer fills cells with background-coloured spaces; BoxFrame combines both

package render

import (
	"strings"

	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/seq"
	"github.com/mauromedda/termdraw/pkg/draw/style"
	"github.com/mauromedda/termdraw/pkg/draw/width"
)

// titleMargin is the top-edge width a title cannot use: two corners, two
// edge cells, the two intersection glyphs and their inner spaces.
const titleMargin = 8

// FrameSpec describes a border around Region. The zero Glyphs value is the
// single-line set.
type FrameSpec struct {
	Region layout.Region
	Glyphs style.BorderGlyphs
	Style  style.Style
	Title  string
}

func (f FrameSpec) glyphs() style.BorderGlyphs {
	if f.Glyphs == (style.BorderGlyphs{}) {
		return style.SingleBorder()
	}
	return f.Glyphs
}

// RenderFrame draws the border cells of Region only: the top edge at
// Region.Top, the bottom edge at Top+Height+1, and the side edges at Left and
// Left+Width+1. Interior cells are never written.
func RenderFrame(f FrameSpec) Result {
	g := f.glyphs()
	if err := g.Validate(); err != nil {
		return Fail(err)
	}
	return compose("frame", func(sb *strings.Builder) error {
		writeFrame(sb, f.Region.Normalize(), g, f.Style, f.Title)
		return nil
	})
}

func writeFrame(sb *strings.Builder, r layout.Region, g style.BorderGlyphs, st style.Style, title string) {
	prefix := st.Prefix()
	sb.WriteString(prefix)

	sb.WriteString(seq.CursorPosition(r.Left, r.Top))
	sb.WriteString(topEdge(r, g, title, prefix))

	for row := 1; row <= r.Height; row++ {
		sb.WriteString(seq.CursorPosition(r.Left, r.Top+row))
		sb.WriteString(g.Vertical)
		sb.WriteString(seq.CursorPosition(r.RightEdge(), r.Top+row))
		sb.WriteString(g.Vertical)
	}

	sb.WriteString(seq.CursorPosition(r.Left, r.BottomEdge()))
	sb.WriteString(g.LowerLeft)
	sb.WriteString(strings.Repeat(g.Horizontal, r.Width))
	sb.WriteString(g.LowerRight)

	sb.WriteString(st.Suffix())
}

// topEdge builds the top row. A title replaces edge cells in place, so the
// row is always Width+2 cells wide.
func topEdge(r layout.Region, g style.BorderGlyphs, title, prefix string) string {
	room := r.Width - titleMargin
	if title == "" || room <= 0 {
		return g.UpperLeft + strings.Repeat(g.Horizontal, r.Width) + g.UpperRight
	}

	t := width.Truncate(title, room)
	// Sequences in the title may leave colours set; reset and restore the
	// frame colours before the rest of the edge.
	if strings.ContainsRune(t, 0x1b) {
		t += seq.Reset + prefix
	}
	overlay := " " + g.TitleLeft + " " + t + " " + g.TitleRight + " "
	ow := width.EstimateWidth(overlay)
	// The overlay is aligned inside the run with one edge cell kept on each side.
	col := layout.AlignColumn(ow, r.Width-2, g.TitleAlign, r.Left+2)
	before := col - (r.Left + 1)
	after := r.Width - before - ow

	var b strings.Builder
	b.WriteString(g.UpperLeft)
	b.WriteString(strings.Repeat(g.Horizontal, before))
	b.WriteString(overlay)
	b.WriteString(strings.Repeat(g.Horizontal, after))
	b.WriteString(g.UpperRight)
	return b.String()
}

// BoxSpec describes a filled rectangle.
type BoxSpec struct {
	Region layout.Region
	Style  style.Style
}

// RenderBox writes Width spaces on each of Height rows starting at
// (Left, Top), in the style colours. Nothing else is touched.
func RenderBox(b BoxSpec) Result {
	return compose("box", func(sb *strings.Builder) error {
		writeBox(sb, b.Region.Normalize(), b.Style)
		return nil
	})
}

func writeBox(sb *strings.Builder, r layout.Region, st style.Style) {
	if r.Empty() {
		return
	}
	blank := strings.Repeat(" ", r.Width)
	sb.WriteString(st.Prefix())
	for row := 0; row < r.Height; row++ {
		sb.WriteString(seq.CursorPosition(r.Left, r.Top+row))
		sb.WriteString(blank)
	}
	sb.WriteString(st.Suffix())
}

// RenderBoxFrame fills the interior of Region and draws its frame.
func RenderBoxFrame(f FrameSpec) Result {
	g := f.glyphs()
	if err := g.Validate(); err != nil {
		return Fail(err)
	}
	return compose("boxframe", func(sb *strings.Builder) error {
		r := f.Region.Normalize()
		writeBox(sb, r.Interior(), f.Style)
		writeFrame(sb, r, g, f.Style, f.Title)
		return nil
	})
}
