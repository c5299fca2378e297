// ABOUTME: Bounded, paginated renderer: a viewport of pre-wrapped lines at a region
// ABOUTME: Short pages are padded with blank rows so stale content is always overwritten

package render

import (
	"strings"

	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/seq"
	"github.com/mauromedda/termdraw/pkg/draw/style"
	"github.com/mauromedda/termdraw/pkg/draw/width"
)

// PageSpec describes one viewport render.
type PageSpec struct {
	// Lines are display lines, usually from width.Wrap.
	Lines []string
	// Height is the viewport height in rows. Zero uses Region.Height.
	Height int
	// Start is the index of the first visible line.
	Start int
	// Region positions the viewport; a positive Width fits every row to it.
	// With Width zero every row, blank ones included, is padded to the widest
	// of all Lines, so the viewport keeps a constant width across pages. With
	// no Lines either there is nothing to measure and blank rows are empty;
	// give a Width whenever stale content must be cleared.
	Region layout.Region
	Style  style.Style
}

// RenderPage renders the visible slice of Lines and returns how many source
// lines it consumed, so a caller can advance Start for the next page.
//
// Start is clamped into [0, max(0, len(Lines)-1)]. Rows past the end of Lines
// are blank. Each row is positioned at (Region.Left, Region.Top+row).
func RenderPage(p PageSpec) (Result, int) {
	r := p.Region.Normalize()
	height := p.Height
	if height == 0 {
		height = r.Height
	}
	height = max(0, height)
	start := min(max(p.Start, 0), max(0, len(p.Lines)-1))

	end := min(len(p.Lines), start+height)
	visible := p.Lines[min(start, len(p.Lines)):end]
	consumed := len(visible)

	rowWidth := r.Width
	if rowWidth == 0 {
		for _, l := range p.Lines {
			rowWidth = max(rowWidth, width.EstimateWidth(l))
		}
	}
	blank := strings.Repeat(" ", rowWidth)

	res := compose("page", func(sb *strings.Builder) error {
		prefix := p.Style.Prefix()
		for row := 0; row < height; row++ {
			sb.WriteString(seq.CursorPosition(r.Left, r.Top+row))
			sb.WriteString(prefix)
			if row >= len(visible) {
				sb.WriteString(blank)
				continue
			}
			line := visible[row]
			if r.Width > 0 {
				line = width.Fit(line, r.Width)
			} else {
				line = width.PadRight(line, rowWidth)
			}
			sb.WriteString(line)
		}
		if height > 0 {
			sb.WriteString(p.Style.Suffix())
		}
		return nil
	})
	return res, consumed
}
