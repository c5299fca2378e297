// ABOUTME: Border glyph sets: corners, edges and the title intersection pieces
// ABOUTME: Built-in single, double, rounded, heavy and ascii sets with fuzzy name lookup

package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mauromedda/termdraw/pkg/draw/fuzzy"
	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/width"
)

// ErrUnknownBorder is returned for border names with no built-in set.
var ErrUnknownBorder = errors.New("unknown border")

// BorderGlyphs are the eight glyphs of a frame plus the title placement.
// Every glyph must be exactly one cell wide.
type BorderGlyphs struct {
	Name string

	UpperLeft  string
	UpperRight string
	LowerLeft  string
	LowerRight string
	Horizontal string
	Vertical   string

	// TitleLeft and TitleRight bracket a title embedded in the top edge.
	TitleLeft  string
	TitleRight string

	TitleAlign layout.Align
}

// Validate reports the first glyph that is not one cell wide.
func (g BorderGlyphs) Validate() error {
	for _, f := range g.fields() {
		if w := width.EstimateWidth(*f.value); w != 1 {
			return fmt.Errorf("border %q: %s glyph %q is %d cells wide", g.Name, f.name, *f.value, w)
		}
	}
	return nil
}

type glyphField struct {
	name  string
	value *string
}

func (g *BorderGlyphs) fields() []glyphField {
	return []glyphField{
		{"upper_left", &g.UpperLeft},
		{"upper_right", &g.UpperRight},
		{"lower_left", &g.LowerLeft},
		{"lower_right", &g.LowerRight},
		{"horizontal", &g.Horizontal},
		{"vertical", &g.Vertical},
		{"title_left", &g.TitleLeft},
		{"title_right", &g.TitleRight},
	}
}

var borders = map[string]BorderGlyphs{
	"single":  newBorder("single", "┌┐└┘─│┤├"),
	"double":  newBorder("double", "╔╗╚╝═║╡╞"),
	"rounded": newBorder("rounded", "╭╮╰╯─│┤├"),
	"heavy":   newBorder("heavy", "┏┓┗┛━┃┫┣"),
	"ascii":   newBorder("ascii", "++++-|[]"),
}

// newBorder builds a centred-title set from eight glyphs in field order:
// UL UR LL LR, horizontal, vertical, title left, title right.
func newBorder(name, set string) BorderGlyphs {
	r := []rune(set)
	return BorderGlyphs{
		Name:       name,
		UpperLeft:  string(r[0]),
		UpperRight: string(r[1]),
		LowerLeft:  string(r[2]),
		LowerRight: string(r[3]),
		Horizontal: string(r[4]),
		Vertical:   string(r[5]),
		TitleLeft:  string(r[6]),
		TitleRight: string(r[7]),
		TitleAlign: layout.AlignCenter,
	}
}

// Border returns the built-in glyph set called name.
func Border(name string) (BorderGlyphs, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if g, ok := borders[key]; ok {
		return g, nil
	}
	return BorderGlyphs{}, fmt.Errorf("%w %q%s", ErrUnknownBorder, name, fuzzy.DidYouMean(key, BorderNames()))
}

// SingleBorder is the default glyph set.
func SingleBorder() BorderGlyphs { return borders["single"] }

// BorderNames lists the built-in glyph sets, sorted.
func BorderNames() []string {
	names := make([]string, 0, len(borders))
	for n := range borders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
