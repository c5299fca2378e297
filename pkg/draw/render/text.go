// ABOUTME: Text-at-region renderer: wrap to the region width, align, clip to its height
// ABOUTME: Horizontal alignment per line and optional vertical centring of the block

package render

import (
	"strings"

	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/seq"
	"github.com/mauromedda/termdraw/pkg/draw/style"
	"github.com/mauromedda/termdraw/pkg/draw/width"
)

// TextSpec describes free text placed inside a region.
type TextSpec struct {
	Text string
	// Region bounds the text. Width 0 disables wrapping; Height 0 disables
	// clipping.
	Region layout.Region
	Align  layout.Align
	// Middle centres the block vertically when it is shorter than the region.
	Middle bool
	// Start skips that many display lines, for paging through long text.
	Start int
	Style style.Style
}

// RenderText wraps, aligns and positions Text. It returns the number of
// display lines rendered.
func RenderText(t TextSpec) (Result, int) {
	r := t.Region.Normalize()
	lines := width.Wrap(t.Text, r.Width)
	start := min(max(t.Start, 0), len(lines))
	lines = lines[start:]
	if r.Height > 0 && len(lines) > r.Height {
		lines = lines[:r.Height]
	}
	top := layout.AlignRow(len(lines), r.Height, t.Middle, r.Top)

	res := compose("text", func(sb *strings.Builder) error {
		if len(lines) == 0 {
			return nil
		}
		sb.WriteString(t.Style.Prefix())
		for i, line := range lines {
			if r.Width > 0 {
				line = width.TruncatePlain(line, r.Width)
			}
			col := layout.AlignColumn(width.EstimateWidth(line), r.Width, t.Align, r.Left)
			sb.WriteString(seq.CursorPosition(col, top+i))
			sb.WriteString(line)
		}
		sb.WriteString(t.Style.Suffix())
		return nil
	})
	return res, len(lines)
}
