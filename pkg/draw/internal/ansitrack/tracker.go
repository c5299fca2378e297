// ABOUTME: SGR state machine that tracks the colour and attributes active in a line
// ABOUTME: Lets the wrapper re-open styling on continuation lines with one minimal sequence

package ansitrack

import (
	"strconv"
	"strings"
)

// attr is a bit set of boolean SGR attributes.
type attr uint16

const (
	attrBold attr = 1 << iota
	attrDim
	attrItalic
	attrUnderline
	attrBlink
	attrReverse
	attrHidden
	attrStrike
)

// attrCodes lists set codes in emission order.
var attrCodes = []struct {
	a    attr
	code string
}{
	{attrBold, "1"},
	{attrDim, "2"},
	{attrItalic, "3"},
	{attrUnderline, "4"},
	{attrBlink, "5"},
	{attrReverse, "7"},
	{attrHidden, "8"},
	{attrStrike, "9"},
}

// Tracker maintains the current SGR (Select Graphic Rendition) state.
// The zero value is an unstyled tracker.
type Tracker struct {
	attrs attr
	fg    string // e.g. "31", "91" or "38;5;196"
	bg    string
}

// Reset clears all SGR state.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Process applies one escape sequence. Anything other than a CSI SGR
// sequence (cursor moves, OSC titles) is ignored.
func (t *Tracker) Process(seq string) {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return
	}
	params := seq[2 : len(seq)-1]
	if params == "" {
		t.Reset()
		return
	}

	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			t.Reset()
		case code >= 1 && code <= 9:
			t.setAttr(code, true)
		case code == 22:
			t.attrs &^= attrBold | attrDim
		case code == 23, code == 24, code == 25, code == 27, code == 28, code == 29:
			t.setAttr(code-20, false)
		case (code >= 30 && code <= 37) || (code >= 90 && code <= 97):
			t.fg = parts[i]
		case code == 39:
			t.fg = ""
		case (code >= 40 && code <= 47) || (code >= 100 && code <= 107):
			t.bg = parts[i]
		case code == 49:
			t.bg = ""
		case code == 38 || code == 48:
			n := extendedLen(parts[i+1:])
			if n < 0 {
				return
			}
			val := strings.Join(parts[i:i+1+n], ";")
			if code == 38 {
				t.fg = val
			} else {
				t.bg = val
			}
			i += n
		}
	}
}

// extendedLen returns how many parameters follow a 38/48 introducer:
// 2 for "5;N", 4 for "2;R;G;B", or -1 when the sequence is truncated.
func extendedLen(rest []string) int {
	if len(rest) == 0 {
		return -1
	}
	switch rest[0] {
	case "5":
		if len(rest) >= 2 {
			return 2
		}
	case "2":
		if len(rest) >= 4 {
			return 4
		}
	}
	return -1
}

func (t *Tracker) setAttr(code int, on bool) {
	var a attr
	switch code {
	case 1:
		a = attrBold
	case 2:
		a = attrDim
	case 3:
		a = attrItalic
	case 4:
		a = attrUnderline
	case 5:
		a = attrBlink
	case 7:
		a = attrReverse
	case 8:
		a = attrHidden
	case 9:
		a = attrStrike
	default:
		return
	}
	if on {
		t.attrs |= a
	} else {
		t.attrs &^= a
	}
}

// Restore returns the minimal SGR sequence to re-establish current state.
// Returns empty string if no styling is active.
func (t *Tracker) Restore() string {
	var codes []string
	for _, ac := range attrCodes {
		if t.attrs&ac.a != 0 {
			codes = append(codes, ac.code)
		}
	}
	if t.fg != "" {
		codes = append(codes, t.fg)
	}
	if t.bg != "" {
		codes = append(codes, t.bg)
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// IsActive returns true if any SGR state is set.
func (t *Tracker) IsActive() bool {
	return t.attrs != 0 || t.fg != "" || t.bg != ""
}
