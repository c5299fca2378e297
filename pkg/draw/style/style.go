// ABOUTME: Render style: colour pair, colour switch and colour profile
// ABOUTME: Prefix/Suffix wrap output in colour set and reset sequences only when colour is on

// Package style holds the configuration values renderers consult: colours,
// border glyph sets and the process-wide defaults they are resolved from.
package style

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/mauromedda/termdraw/pkg/draw/color"
	"github.com/mauromedda/termdraw/pkg/draw/seq"
)

// Style is the colouring applied to one render call. The zero value renders
// without colour.
type Style struct {
	Colors   color.Pair
	UseColor bool
	// Profile downsamples colours; the zero value is TrueColor.
	Profile termenv.Profile
}

// Plain returns a Style that emits no colour sequences.
func Plain() Style { return Style{} }

// Colored returns a TrueColor Style using fg and bg.
func Colored(fg, bg color.Color) Style {
	return Style{Colors: color.NewPair(fg, bg), UseColor: true}
}

// WithColors returns a copy of s using pair.
func (s Style) WithColors(pair color.Pair) Style {
	s.Colors = pair
	return s
}

// WithoutColor returns a copy of s with colour switched off.
func (s Style) WithoutColor() Style {
	s.UseColor = false
	return s
}

// Active reports whether s emits any colour sequence.
func (s Style) Active() bool {
	return s.UseColor && s.Profile != termenv.Ascii
}

// Prefix returns the sequences selecting the style colours.
func (s Style) Prefix() string {
	if !s.Active() {
		return ""
	}
	return seq.SetColors(s.Profile, s.Colors)
}

// Suffix returns the sequences restoring the terminal default colours.
func (s Style) Suffix() string {
	if !s.Active() {
		return ""
	}
	return seq.ResetForeground() + seq.ResetBackground()
}

// Apply wraps text in Prefix and Suffix.
func (s Style) Apply(text string) string {
	if !s.Active() {
		return text
	}
	return s.Prefix() + text + s.Suffix()
}

// ParseProfile maps truecolor, ansi256, ansi and ascii (or none) to a termenv
// profile. The empty string is TrueColor.
func ParseProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "truecolor", "24bit":
		return termenv.TrueColor, nil
	case "ansi256", "256":
		return termenv.ANSI256, nil
	case "ansi", "16":
		return termenv.ANSI, nil
	case "ascii", "none":
		return termenv.Ascii, nil
	}
	return termenv.TrueColor, fmt.Errorf("unknown color profile %q", name)
}
