// ABOUTME: Escape sequence primitives: absolute cursor positioning and colour set/reset
// ABOUTME: Colours are encoded through termenv so a colour profile can downsample them

// Package seq builds the raw control sequences the renderers compose.
// Coordinates are 0-based cells; the emitted CUP sequences are 1-based.
package seq

import (
	"strconv"

	"github.com/muesli/termenv"

	"github.com/mauromedda/termdraw/pkg/draw/color"
)

// Fixed sequences.
const (
	Reset          = "\x1b[0m"
	ResetFg        = "\x1b[39m"
	ResetBg        = "\x1b[49m"
	HideCursor     = "\x1b[?25l"
	ShowCursor     = "\x1b[?25h"
	ClearScreen    = "\x1b[2J"
	CursorHome     = "\x1b[H"
	AltScreenEnter = "\x1b[?1049h"
	AltScreenExit  = "\x1b[?1049l"
	SyncBegin      = "\x1b[?2026h"
	SyncEnd        = "\x1b[?2026l"
)

// CursorPosition returns the CUP sequence placing the cursor on the 0-based
// cell (col, row). Negative coordinates clamp to 0.
func CursorPosition(col, row int) string {
	var numBuf [20]byte
	b := make([]byte, 0, 12)
	b = append(b, "\x1b["...)
	b = append(b, strconv.AppendInt(numBuf[:0], int64(max(row, 0)+1), 10)...)
	b = append(b, ';')
	b = append(b, strconv.AppendInt(numBuf[:0], int64(max(col, 0)+1), 10)...)
	b = append(b, 'H')
	return string(b)
}

// SetColor returns the SGR sequence selecting c as foreground, or as
// background when background is set, without any downsampling.
func SetColor(c color.Color, background bool) string {
	return SetColorProfile(termenv.TrueColor, c, background)
}

// SetColorProfile is SetColor converted for profile p. The Ascii profile
// yields no sequence at all; the default colour yields the matching reset.
func SetColorProfile(p termenv.Profile, c color.Color, background bool) string {
	if p == termenv.Ascii {
		return ""
	}
	var tc termenv.Color
	switch c.Kind() {
	case color.KindANSI:
		tc = termenv.ANSIColor(c.Index())
	case color.KindIndexed:
		tc = termenv.ANSI256Color(c.Index())
	case color.KindRGB:
		tc = termenv.RGBColor(c.Hex())
	default:
		if background {
			return ResetBg
		}
		return ResetFg
	}
	params := p.Convert(tc).Sequence(background)
	if params == "" {
		return ""
	}
	return "\x1b[" + params + "m"
}

// SetColors selects both colours of a pair.
func SetColors(p termenv.Profile, pair color.Pair) string {
	return SetColorProfile(p, pair.Foreground, false) + SetColorProfile(p, pair.Background, true)
}

// ResetForeground returns the sequence restoring the default foreground.
func ResetForeground() string { return ResetFg }

// ResetBackground returns the sequence restoring the default background.
func ResetBackground() string { return ResetBg }
