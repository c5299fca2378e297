// ABOUTME: Test-only virtual screen that replays rendered output onto a cell grid
// ABOUTME: Honours CUP cursor moves, skips other CSI sequences, places graphemes by width

// Package screen interprets renderer output so tests can assert on cells
// instead of raw escape strings.
package screen

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/mauromedda/termdraw/pkg/draw/width"
)

type cell struct{ col, row int }

// Screen is the replayed state: which cells were written and with what.
type Screen struct {
	cells    map[cell]string
	col, row int
	maxCol   int
	maxRow   int
	moves    int
}

// Parse replays out from a cursor at (0, 0).
func Parse(out string) *Screen {
	s := &Screen{cells: make(map[cell]string), maxCol: -1, maxRow: -1}
	for len(out) > 0 {
		if out[0] == 0x1b {
			out = s.escape(out)
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(out, -1)
		out = rest
		s.put(cluster)
	}
	return s
}

func (s *Screen) put(cluster string) {
	w := width.EstimateWidth(cluster)
	if w == 0 {
		return
	}
	s.cells[cell{s.col, s.row}] = cluster
	s.maxCol = max(s.maxCol, s.col+w-1)
	s.maxRow = max(s.maxRow, s.row)
	for i := 1; i < w; i++ {
		s.cells[cell{s.col + i, s.row}] = ""
	}
	s.col += w
}

// escape consumes one sequence. Only CSI is interpreted; a lone ESC is dropped.
func (s *Screen) escape(out string) string {
	if len(out) < 2 || out[1] != '[' {
		return out[min(2, len(out)):]
	}
	i := 2
	for i < len(out) && (out[i] < 0x40 || out[i] > 0x7e) {
		i++
	}
	if i == len(out) {
		return ""
	}
	if out[i] == 'H' {
		s.cup(out[2:i])
	}
	return out[i+1:]
}

func (s *Screen) cup(params string) {
	row, col := 1, 1
	parts := strings.SplitN(params, ";", 2)
	if n, err := strconv.Atoi(parts[0]); err == nil {
		row = n
	}
	if len(parts) == 2 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			col = n
		}
	}
	s.row, s.col = row-1, col-1
	s.moves++
}

// At returns the grapheme written at (col, row). The right half of a wide
// glyph and untouched cells both read as "".
func (s *Screen) At(col, row int) string {
	return s.cells[cell{col, row}]
}

// Touched reports whether (col, row) was written, including wide-glyph tails.
func (s *Screen) Touched(col, row int) bool {
	_, ok := s.cells[cell{col, row}]
	return ok
}

// Row renders one row from column 0 to the rightmost written column, with
// untouched cells as spaces.
func (s *Screen) Row(row int) string {
	var b strings.Builder
	for c := 0; c <= s.maxCol; c++ {
		v, ok := s.cells[cell{c, row}]
		if !ok {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(v)
	}
	return strings.TrimRight(b.String(), " ")
}

// Span returns the text of cells [from, to) on row, untouched cells as spaces.
func (s *Screen) Span(row, from, to int) string {
	var b strings.Builder
	for c := from; c < to; c++ {
		v, ok := s.cells[cell{c, row}]
		if !ok {
			v = " "
		}
		b.WriteString(v)
	}
	return b.String()
}

// Size returns one past the rightmost column and lowest row written.
func (s *Screen) Size() (cols, rows int) {
	return s.maxCol + 1, s.maxRow + 1
}

// Count returns the number of written cells.
func (s *Screen) Count() int { return len(s.cells) }

// Moves returns how many cursor positioning sequences were replayed.
func (s *Screen) Moves() int { return s.moves }
