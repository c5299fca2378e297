// ABOUTME: Column-based truncation, slicing and padding of styled text
// ABOUTME: Escape sequences are preserved and never counted as columns

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// segment represents either a visible grapheme cluster or an escape sequence.
type segment struct {
	text  string
	col   int
	width int
	isSeq bool
}

// extractSegments breaks a string into segments of visible text and escape sequences.
func extractSegments(s string) []segment {
	var segs []segment
	col := 0
	i := 0
	for i < len(s) {
		if s[i] == esc {
			if end, ok := sequenceEnd(s, i); ok {
				segs = append(segs, segment{text: s[i:end], col: col, isSeq: true})
				i = end
				continue
			}
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)
		segs = append(segs, segment{text: cluster, col: col, width: w})
		col += w
		i += len(s[i:]) - len(rest)
	}
	return segs
}

// SliceByColumn extracts the glyphs from column start (inclusive) to column
// end (exclusive). Escape sequences are kept so colours stay intact.
// A wide glyph straddling either edge is dropped.
func SliceByColumn(s string, start, end int) string {
	if start >= end || s == "" {
		return ""
	}
	var b strings.Builder
	for _, seg := range extractSegments(s) {
		if seg.isSeq {
			b.WriteString(seg.text)
			continue
		}
		if seg.col < start || seg.col+seg.width > end {
			continue
		}
		b.WriteString(seg.text)
	}
	return b.String()
}

// TruncatePlain cuts s to at most maxWidth columns without an ellipsis.
func TruncatePlain(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if EstimateWidth(s) <= maxWidth {
		return s
	}
	return SliceByColumn(s, 0, maxWidth)
}

// Truncate shortens s to at most maxWidth columns. When truncation occurs
// the last visible column becomes an ellipsis.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if EstimateWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ellipsis
	}
	cut := SliceByColumn(s, 0, maxWidth-1)
	if containsESC(s) {
		return cut + "\x1b[0m" + ellipsis
	}
	return cut + ellipsis
}

// PadRight appends spaces until s occupies w columns. Wider input is
// returned unchanged.
func PadRight(s string, w int) string {
	gap := w - EstimateWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Fit truncates or pads s to exactly w columns. A wide glyph that would
// straddle the edge is replaced by padding.
func Fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return PadRight(TruncatePlain(s, w), w)
}
