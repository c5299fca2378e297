// ABOUTME: Escape-aware word wrapping for bounded regions
// ABOUTME: Greedy word packing, hard breaks for long words, colour carried across soft wraps

package width

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/mauromedda/termdraw/pkg/draw/internal/ansitrack"
)

// Wrap splits text into display lines of at most maxWidth cells.
//
// Explicit newlines are honoured first and each one yields at least one line.
// A paragraph that already fits is returned unchanged. Otherwise words are
// packed greedily; a word wider than maxWidth is broken at the maxWidth-th
// column. Colour state active at a soft break is re-emitted at the start of
// the continuation line. maxWidth <= 0 disables wrapping.
func Wrap(text string, maxWidth int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	paragraphs := strings.Split(text, "\n")
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if maxWidth <= 0 || EstimateWidth(p) <= maxWidth {
			lines = append(lines, p)
			continue
		}
		lines = append(lines, wrapParagraph(p, maxWidth)...)
	}
	return lines
}

// WrapAll wraps each paragraph and concatenates the resulting lines.
func WrapAll(paragraphs []string, maxWidth int) []string {
	var lines []string
	for _, p := range paragraphs {
		lines = append(lines, Wrap(p, maxWidth)...)
	}
	return lines
}

// lineBuilder accumulates one display line and remembers the colour state.
type lineBuilder struct {
	maxWidth int
	lines    []string
	cur      strings.Builder
	width    int
	started  bool
	sgr      ansitrack.Tracker
}

func (lb *lineBuilder) flush() {
	lb.lines = append(lb.lines, lb.cur.String())
	lb.cur.Reset()
	lb.width = 0
	lb.started = false
	if restore := lb.sgr.Restore(); restore != "" {
		lb.cur.WriteString(restore)
	}
}

func (lb *lineBuilder) track(word string) {
	for _, seq := range ExtractSequences(word) {
		lb.sgr.Process(seq)
	}
}

// hardBreak writes word cluster by cluster, starting a new line whenever the
// next glyph would overflow. A line always takes at least one glyph.
func (lb *lineBuilder) hardBreak(word string) {
	i := 0
	for i < len(word) {
		if word[i] == esc {
			if end, ok := sequenceEnd(word, i); ok {
				seq := word[i:end]
				lb.sgr.Process(seq)
				lb.cur.WriteString(seq)
				i = end
				continue
			}
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(word[i:], -1)
		cw := graphemeWidth(cluster)
		if lb.width > 0 && lb.width+cw > lb.maxWidth {
			lb.flush()
		}
		lb.cur.WriteString(cluster)
		lb.width += cw
		lb.started = true
		i += len(word[i:]) - len(rest)
	}
}

func wrapParagraph(p string, maxWidth int) []string {
	lb := &lineBuilder{maxWidth: maxWidth}
	for _, word := range strings.Split(p, " ") {
		// Spaces at a soft break are consumed by the break, so a run of them
		// never opens a continuation line of its own.
		if word == "" && !lb.started && len(lb.lines) > 0 {
			continue
		}
		ww := EstimateWidth(word)
		if lb.started {
			if lb.width+1+ww <= maxWidth {
				lb.cur.WriteByte(' ')
				lb.cur.WriteString(word)
				lb.width += 1 + ww
				lb.track(word)
				continue
			}
			lb.flush()
			if word == "" {
				continue
			}
		}
		if ww <= maxWidth {
			lb.cur.WriteString(word)
			lb.width = ww
			lb.started = true
			lb.track(word)
			continue
		}
		lb.hardBreak(word)
	}
	if lb.started || len(lb.lines) == 0 {
		lb.lines = append(lb.lines, lb.cur.String())
	}
	return lb.lines
}
