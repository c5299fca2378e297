// ABOUTME: Process-wide default style, border and font behind an atomic pointer
// ABOUTME: Initialised on first use; callers resolve them once and pass them explicitly

package style

import "sync/atomic"

// DefaultFont is the figlet font used when none is configured.
const DefaultFont = "standard"

// Defaults bundles the values a render call falls back to.
type Defaults struct {
	Style  Style
	Border BorderGlyphs
	Font   string
}

// Builtin returns the defaults used before anything is configured: colour on
// with the terminal's own colours, single border, standard font.
func Builtin() Defaults {
	return Defaults{
		Style:  Style{UseColor: true},
		Border: SingleBorder(),
		Font:   DefaultFont,
	}
}

var current atomic.Pointer[Defaults]

// Current returns the active defaults.
func Current() Defaults {
	if d := current.Load(); d != nil {
		return *d
	}
	b := Builtin()
	current.CompareAndSwap(nil, &b)
	return *current.Load()
}

// SetCurrent atomically replaces the active defaults.
func SetCurrent(d Defaults) {
	current.Store(&d)
}
