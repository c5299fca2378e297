// ABOUTME: Tests for frame, box and box-frame rendering
// ABOUTME: Asserts corner placement on absolute cells, title overlays, untouched interiors and colour bracketing

package render

import (
	"strings"
	"testing"

	"github.com/mauromedda/termdraw/internal/screen"
	"github.com/mauromedda/termdraw/pkg/draw/color"
	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/seq"
	"github.com/mauromedda/termdraw/pkg/draw/style"
	"github.com/mauromedda/termdraw/pkg/draw/width"
)

func TestRenderFrame_CornersOnExteriorCells(t *testing.T) {
	t.Parallel()

	res := RenderFrame(FrameSpec{Region: layout.Rect(0, 0, 5, 2)})
	if res.Failed() {
		t.Fatal(res.Err)
	}
	s := screen.Parse(res.Output)

	corners := []struct {
		col, row int
		want     string
	}{
		{0, 0, "┌"},
		{6, 0, "┐"},
		{0, 3, "└"},
		{6, 3, "┘"}, // left+width+1, top+height+1
	}
	for _, c := range corners {
		if got := s.At(c.col, c.row); got != c.want {
			t.Errorf("At(%d, %d) = %q; want %q", c.col, c.row, got, c.want)
		}
	}
	if cols, rows := s.Size(); cols != 7 || rows != 4 {
		t.Errorf("exterior = %dx%d; want 7x4", cols, rows)
	}

	want := []string{"┌─────┐", "│     │", "│     │", "└─────┘"}
	for row, w := range want {
		if got := s.Row(row); got != w {
			t.Errorf("row %d = %q; want %q", row, got, w)
		}
	}
	for row := 1; row <= 2; row++ {
		for col := 1; col <= 5; col++ {
			if s.Touched(col, row) {
				t.Errorf("interior cell (%d, %d) was written", col, row)
			}
		}
	}
}

func TestRenderFrame_Offset(t *testing.T) {
	t.Parallel()

	double, err := style.Border("double")
	if err != nil {
		t.Fatal(err)
	}
	res := RenderFrame(FrameSpec{Region: layout.Rect(3, 2, 4, 1), Glyphs: double})
	s := screen.Parse(res.Output)
	if s.At(3, 2) != "╔" || s.At(8, 2) != "╗" || s.At(3, 4) != "╚" || s.At(8, 4) != "╝" {
		t.Errorf("unexpected corners:\n%s\n%s\n%s", s.Row(2), s.Row(3), s.Row(4))
	}
	if s.At(3, 3) != "║" || s.At(8, 3) != "║" {
		t.Errorf("side edges missing: %q", s.Row(3))
	}
}

func TestRenderFrame_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width int
		title string
		align layout.Align
		want  string
	}{
		{name: "centre", width: 12, title: "Hi", align: layout.AlignCenter, want: "┌── ┤ Hi ├ ──┐"},
		{name: "left", width: 12, title: "Hi", align: layout.AlignLeft, want: "┌─ ┤ Hi ├ ───┐"},
		{name: "right", width: 12, title: "Hi", align: layout.AlignRight, want: "┌─── ┤ Hi ├ ─┐"},
		{name: "truncated", width: 10, title: "Hello", align: layout.AlignCenter, want: "┌─ ┤ H… ├ ─┐"},
		{name: "too narrow", width: 8, title: "Hello", align: layout.AlignCenter, want: "┌────────┐"},
		{name: "empty title", width: 12, title: "", align: layout.AlignCenter, want: "┌────────────┐"},
		{name: "wide title", width: 14, title: "世界", align: layout.AlignCenter, want: "┌── ┤ 世界 ├ ──┐"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := style.SingleBorder()
			g.TitleAlign = tt.align
			res := RenderFrame(FrameSpec{Region: layout.Rect(0, 0, tt.width, 1), Glyphs: g, Title: tt.title})
			if got := screen.Parse(res.Output).Row(0); got != tt.want {
				t.Errorf("top edge = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestTopEdge_AlwaysExteriorWidth(t *testing.T) {
	t.Parallel()

	titles := []string{"", "x", "title", "a much longer title than fits", "\x1b[31mred\x1b[0m", "日本語のタイトル"}
	for _, g := range []string{"single", "ascii", "heavy"} {
		glyphs, _ := style.Border(g)
		for w := 0; w <= 24; w++ {
			for _, title := range titles {
				for _, a := range []layout.Align{layout.AlignLeft, layout.AlignCenter, layout.AlignRight} {
					glyphs.TitleAlign = a
					edge := topEdge(layout.Rect(0, 0, w, 1), glyphs, title, "")
					if got := width.EstimateWidth(edge); got != w+2 {
						t.Fatalf("%s w=%d title=%q align=%v: edge %q is %d cells", g, w, title, a, edge, got)
					}
				}
			}
		}
	}
}

func TestRenderFrame_TitleSequencesDoNotLeak(t *testing.T) {
	t.Parallel()

	g := style.SingleBorder()
	tests := []struct {
		name string
		st   style.Style
	}{
		{name: "plain", st: style.Plain()},
		{name: "coloured", st: style.Colored(color.ANSI(6), color.Default())},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := RenderFrame(FrameSpec{Region: layout.Rect(0, 0, 12, 1), Glyphs: g, Style: tt.st, Title: "\x1b[31mred"})
			want := "red" + seq.Reset + tt.st.Prefix() + " " + g.TitleRight
			if !strings.Contains(res.Output, want) {
				t.Errorf("title colour not closed before the edge: %q", res.Output)
			}
			if got := screen.Parse(res.Output).Row(0); got != "┌─ ┤ red ├ ──┐" {
				t.Errorf("top edge = %q", got)
			}
		})
	}
}

func TestRenderFrame_Colour(t *testing.T) {
	t.Parallel()

	st := style.Colored(color.ANSI(6), color.Indexed(17))
	res := RenderFrame(FrameSpec{Region: layout.Rect(1, 1, 3, 3), Style: st, Title: "ignored"})
	if !strings.HasPrefix(res.Output, st.Prefix()) || strings.Count(res.Output, st.Prefix()) != 1 {
		t.Errorf("colours should be set exactly once at the start: %q", res.Output)
	}
	if !strings.HasSuffix(res.Output, st.Suffix()) {
		t.Errorf("colours should be reset at the end: %q", res.Output)
	}

	plain := RenderFrame(FrameSpec{Region: layout.Rect(1, 1, 3, 3), Style: st.WithoutColor()})
	for _, sq := range width.ExtractSequences(plain.Output) {
		if !strings.HasSuffix(sq, "H") {
			t.Errorf("plain frame emitted %q", sq)
		}
	}
}

func TestRenderFrame_Degenerate(t *testing.T) {
	t.Parallel()

	s := screen.Parse(RenderFrame(FrameSpec{Region: layout.Rect(-3, -3, -1, -1)}).Output)
	if s.Row(0) != "┌┐" || s.Row(1) != "└┘" {
		t.Errorf("collapsed frame = %q / %q", s.Row(0), s.Row(1))
	}
}

func TestRenderFrame_InvalidGlyphs(t *testing.T) {
	t.Parallel()

	g := style.SingleBorder()
	g.Horizontal = "=="
	if res := RenderFrame(FrameSpec{Region: layout.Rect(0, 0, 3, 1), Glyphs: g}); !res.Failed() {
		t.Error("two-cell glyph should fail the render")
	}
	if res := RenderBoxFrame(FrameSpec{Region: layout.Rect(0, 0, 3, 1), Glyphs: g}); !res.Failed() {
		t.Error("two-cell glyph should fail the box frame")
	}
}

func TestRenderBox(t *testing.T) {
	t.Parallel()

	st := style.Colored(color.Default(), color.ANSI(4))
	res := RenderBox(BoxSpec{Region: layout.Rect(2, 1, 3, 2), Style: st})
	s := screen.Parse(res.Output)
	if s.Count() != 6 {
		t.Errorf("box wrote %d cells; want 6", s.Count())
	}
	for row := 1; row <= 2; row++ {
		for col := 2; col <= 4; col++ {
			if s.At(col, row) != " " {
				t.Errorf("cell (%d, %d) = %q", col, row, s.At(col, row))
			}
		}
	}
	if !strings.Contains(res.Output, "\x1b[44m") {
		t.Errorf("box should carry its background colour: %q", res.Output)
	}

	if empty := RenderBox(BoxSpec{Region: layout.Rect(0, 0, 0, 5)}); empty.Output != "" || empty.Failed() {
		t.Errorf("empty box = %+v", empty)
	}
}

func TestRenderBoxFrame(t *testing.T) {
	t.Parallel()

	s := screen.Parse(RenderBoxFrame(FrameSpec{Region: layout.Rect(0, 0, 3, 1), Title: "x"}).Output)
	if s.Count() != 15 {
		t.Errorf("box frame wrote %d cells; want 15", s.Count())
	}
	if s.Row(1) != "│   │" {
		t.Errorf("interior row = %q", s.Row(1))
	}
}
