// ABOUTME: Tests for the sequence primitives
// ABOUTME: Checks 0-based to 1-based CUP translation and colour encoding per profile

package seq

import (
	"testing"

	"github.com/muesli/termenv"

	"github.com/mauromedda/termdraw/pkg/draw/color"
)

func TestCursorPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		col, row int
		want     string
	}{
		{name: "origin", col: 0, row: 0, want: "\x1b[1;1H"},
		{name: "bottom right of 5x2 frame", col: 6, row: 3, want: "\x1b[4;7H"},
		{name: "row comes first", col: 10, row: 2, want: "\x1b[3;11H"},
		{name: "negative clamps", col: -4, row: -1, want: "\x1b[1;1H"},
		{name: "large", col: 199, row: 59, want: "\x1b[60;200H"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CursorPosition(tt.col, tt.row); got != tt.want {
				t.Errorf("CursorPosition(%d, %d) = %q, want %q", tt.col, tt.row, got, tt.want)
			}
		})
	}
}

func TestSetColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    color.Color
		bg   bool
		want string
	}{
		{name: "ansi fg", c: color.ANSI(1), want: "\x1b[31m"},
		{name: "ansi bg", c: color.ANSI(1), bg: true, want: "\x1b[41m"},
		{name: "bright fg", c: color.ANSI(9), want: "\x1b[91m"},
		{name: "indexed fg", c: color.Indexed(208), want: "\x1b[38;5;208m"},
		{name: "indexed bg", c: color.Indexed(17), bg: true, want: "\x1b[48;5;17m"},
		{name: "rgb fg", c: color.RGB(255, 136, 0), want: "\x1b[38;2;255;136;0m"},
		{name: "default fg", c: color.Default(), want: ResetFg},
		{name: "default bg", c: color.Default(), bg: true, want: ResetBg},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SetColor(tt.c, tt.bg); got != tt.want {
				t.Errorf("SetColor(%v, %v) = %q, want %q", tt.c, tt.bg, got, tt.want)
			}
		})
	}
}

func TestSetColorProfile_Ascii(t *testing.T) {
	t.Parallel()

	for _, c := range []color.Color{color.Default(), color.ANSI(2), color.Indexed(100), color.RGB(1, 2, 3)} {
		if got := SetColorProfile(termenv.Ascii, c, false); got != "" {
			t.Errorf("Ascii profile emitted %q for %v", got, c)
		}
	}
}

func TestSetColorProfile_Downsamples(t *testing.T) {
	t.Parallel()

	got := SetColorProfile(termenv.ANSI256, color.RGB(255, 0, 0), false)
	if len(got) < len("\x1b[38;5;0m") || got[:7] != "\x1b[38;5;" {
		t.Errorf("ANSI256 profile should emit a palette index, got %q", got)
	}
}

func TestSetColors(t *testing.T) {
	t.Parallel()

	pair := color.NewPair(color.ANSI(7), color.ANSI(4))
	want := "\x1b[37m\x1b[44m"
	if got := SetColors(termenv.TrueColor, pair); got != want {
		t.Errorf("SetColors = %q, want %q", got, want)
	}
	if ResetForeground() != "\x1b[39m" || ResetBackground() != "\x1b[49m" {
		t.Error("reset sequences changed")
	}
}
