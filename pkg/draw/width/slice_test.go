// ABOUTME: Tests for column slicing, truncation and padding
// ABOUTME: Escape sequences must survive slicing and never count as columns

package width

import "testing"

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "fits", input: "hi", maxWidth: 5, want: "hi"},
		{name: "exact", input: "hello", maxWidth: 5, want: "hello"},
		{name: "truncated", input: "hello world", maxWidth: 5, want: "hell…"},
		{name: "one column", input: "hello", maxWidth: 1, want: "…"},
		{name: "zero", input: "hello", maxWidth: 0, want: ""},
		{name: "styled", input: "\x1b[31mhello\x1b[0m", maxWidth: 3, want: "\x1b[31mhe\x1b[0m\x1b[0m…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if EstimateWidth(got) > tt.maxWidth && tt.maxWidth > 0 {
				t.Errorf("Truncate(%q, %d) width = %d", tt.input, tt.maxWidth, EstimateWidth(got))
			}
		})
	}
}

func TestSliceByColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		start, end int
		want       string
	}{
		{name: "middle", input: "abcdef", start: 1, end: 4, want: "bcd"},
		{name: "empty range", input: "abc", start: 2, end: 2, want: ""},
		{name: "keeps escapes", input: "\x1b[1mabc\x1b[0m", start: 0, end: 2, want: "\x1b[1mab\x1b[0m"},
		{name: "wide glyph straddling end dropped", input: "a你b", start: 0, end: 2, want: "a"},
		{name: "wide glyph inside", input: "a你b", start: 1, end: 3, want: "你"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SliceByColumn(tt.input, tt.start, tt.end); got != tt.want {
				t.Errorf("SliceByColumn(%q, %d, %d) = %q, want %q", tt.input, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		w     int
		want  string
	}{
		{input: "ab", w: 4, want: "ab  "},
		{input: "abcdef", w: 3, want: "abc"},
		{input: "a你", w: 2, want: "a "},
		{input: "x", w: 0, want: ""},
	}
	for _, tt := range tests {
		tt := tt
		if got := Fit(tt.input, tt.w); got != tt.want {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.input, tt.w, got, tt.want)
		}
	}
}
