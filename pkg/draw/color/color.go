// ABOUTME: Opaque colour values: terminal default, 16-colour palette, 256 index, and RGB
// ABOUTME: Parse accepts names, palette indexes and hex; Pair bundles foreground and background

// Package color models the colours termdraw forwards to the sequence layer.
// Renderers treat them as opaque values.
package color

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mauromedda/termdraw/pkg/draw/fuzzy"
)

// ErrUnknownColor is returned by Parse for unrecognised colour strings.
var ErrUnknownColor = errors.New("unknown color")

// Kind identifies how a Color is encoded.
type Kind uint8

const (
	// KindDefault is the terminal's own foreground or background.
	KindDefault Kind = iota
	// KindANSI is one of the 16 basic palette entries.
	KindANSI
	// KindIndexed is an entry of the 256-colour palette.
	KindIndexed
	// KindRGB is a 24-bit colour.
	KindRGB
)

// Color is an immutable colour value. The zero value is the terminal default.
type Color struct {
	kind    Kind
	index   uint8
	r, g, b uint8
}

// Default returns the terminal default colour.
func Default() Color { return Color{} }

// ANSI returns basic palette entry i, clamped to 0..15.
func ANSI(i int) Color {
	return Color{kind: KindANSI, index: uint8(min(max(i, 0), 15))}
}

// Indexed returns 256-colour palette entry i, clamped to 0..255.
func Indexed(i int) Color {
	return Color{kind: KindIndexed, index: uint8(min(max(i, 0), 255))}
}

// RGB returns a 24-bit colour.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Kind reports the encoding of c.
func (c Color) Kind() Kind { return c.kind }

// Index returns the palette index for ANSI and Indexed colours.
func (c Color) Index() int { return int(c.index) }

// RGB returns the channels of an RGB colour.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool { return c.kind == KindDefault }

// Hex formats an RGB colour as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func (c Color) String() string {
	switch c.kind {
	case KindANSI:
		return ansiNames[c.index]
	case KindIndexed:
		return strconv.Itoa(int(c.index))
	case KindRGB:
		return c.Hex()
	default:
		return "default"
	}
}

// Pair is a foreground/background colour pair.
type Pair struct {
	Foreground Color
	Background Color
}

// NewPair builds a Pair.
func NewPair(fg, bg Color) Pair {
	return Pair{Foreground: fg, Background: bg}
}

var ansiNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

var aliases = map[string]int{
	"gray":   8,
	"grey":   8,
	"purple": 5,
}

// Names returns every colour name Parse understands, sorted.
func Names() []string {
	names := make([]string, 0, len(ansiNames)+len(aliases)+1)
	names = append(names, "default")
	names = append(names, ansiNames[:]...)
	for a := range aliases {
		names = append(names, a)
	}
	sort.Strings(names)
	return names
}

// Parse reads a colour from a name ("red", "bright-blue"), a 256-palette
// index ("208"), or a hex triplet ("#ff8800", "#f80"). The empty string and
// "default" are the terminal default.
func Parse(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	switch {
	case key == "" || key == "default":
		return Default(), nil
	case strings.HasPrefix(key, "#"):
		c, err := colorful.Hex(key)
		if err != nil {
			return Default(), fmt.Errorf("%w %q: %v", ErrUnknownColor, s, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}
	if n, err := strconv.Atoi(key); err == nil {
		if n < 0 || n > 255 {
			return Default(), fmt.Errorf("%w %q: palette index out of range", ErrUnknownColor, s)
		}
		return Indexed(n), nil
	}
	for i, name := range ansiNames {
		if key == name || key == strings.ReplaceAll(name, "-", "") {
			return ANSI(i), nil
		}
	}
	if i, ok := aliases[key]; ok {
		return ANSI(i), nil
	}
	return Default(), fmt.Errorf("%w %q%s", ErrUnknownColor, s, fuzzy.DidYouMean(key, Names()))
}

// MustParse is Parse for compile-time constants; it panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
