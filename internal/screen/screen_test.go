// ABOUTME: Tests for the virtual screen replay helper
// ABOUTME: Checks CUP handling, SGR skipping and wide glyph placement

package screen

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	s := Parse("\x1b[2;3Hab\x1b[31mc\x1b[0m\x1b[1;1H世x")
	if got := s.Row(1); got != "  abc" {
		t.Errorf("Row(1) = %q", got)
	}
	if s.At(0, 0) != "世" || s.At(1, 0) != "" || !s.Touched(1, 0) || s.At(2, 0) != "x" {
		t.Errorf("wide glyph placement wrong: %q %q %q", s.At(0, 0), s.At(1, 0), s.At(2, 0))
	}
	if cols, rows := s.Size(); cols != 5 || rows != 2 {
		t.Errorf("Size() = %d, %d", cols, rows)
	}
	if s.Moves() != 2 {
		t.Errorf("Moves() = %d", s.Moves())
	}
	if s.Span(1, 1, 4) != " ab" {
		t.Errorf("Span = %q", s.Span(1, 1, 4))
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	s := Parse("")
	if s.Count() != 0 {
		t.Errorf("Count() = %d", s.Count())
	}
	if cols, rows := s.Size(); cols != 0 || rows != 0 {
		t.Errorf("Size() = %d, %d", cols, rows)
	}
}
