// ABOUTME: Figlet font metrics: the Metrics interface and its go-figure implementation
// ABOUTME: Input is folded to narrow forms; unknown fonts surface as ErrUnknownFont instead of panics

// Package figlet places large block-letter text inside the terminal window,
// falling back to a smaller font and then to plain text when it does not fit.
package figlet

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	figure "github.com/common-nighthawk/go-figure"
	xwidth "golang.org/x/text/width"

	"github.com/mauromedda/termdraw/pkg/draw/width"
)

// ErrUnknownFont is returned for font names the font source cannot load.
var ErrUnknownFont = errors.New("unknown figlet font")

// Metrics measures and renders block-letter text.
type Metrics interface {
	Width(text, font string) (int, error)
	Height(text, font string) (int, error)
	// Render returns the block rows, each cut to maxWidth cells when
	// maxWidth is positive.
	Render(text, font string, maxWidth int) ([]string, error)
}

// Figure implements Metrics with the fonts bundled in go-figure. The last
// rendering is memoised since placement measures before it renders.
type Figure struct {
	mu       sync.Mutex
	lastKey  string
	lastRows []string
}

// NewFigure returns a go-figure backed Metrics.
func NewFigure() *Figure { return &Figure{} }

// Width is the widest row of the rendering.
func (f *Figure) Width(text, font string) (int, error) {
	rows, err := f.rows(text, font)
	if err != nil {
		return 0, err
	}
	w := 0
	for _, r := range rows {
		w = max(w, width.EstimateWidth(r))
	}
	return w, nil
}

// Height is the number of rows of the rendering.
func (f *Figure) Height(text, font string) (int, error) {
	rows, err := f.rows(text, font)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Render returns the rows of the rendering.
func (f *Figure) Render(text, font string, maxWidth int) ([]string, error) {
	rows, err := f.rows(text, font)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		if maxWidth > 0 {
			r = width.TruncatePlain(r, maxWidth)
		}
		out[i] = r
	}
	return out, nil
}

func (f *Figure) rows(text, font string) ([]string, error) {
	key := font + "\x00" + text
	f.mu.Lock()
	defer f.mu.Unlock()
	if key == f.lastKey && f.lastRows != nil {
		return f.lastRows, nil
	}
	rows, err := renderFigure(text, font)
	if err != nil {
		return nil, err
	}
	f.lastKey, f.lastRows = key, rows
	return rows, nil
}

// renderFigure converts go-figure's panics on missing fonts into errors.
func renderFigure(text, font string) (rows []string, err error) {
	if strings.TrimSpace(font) == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownFont)
	}
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("%w %q: %v", ErrUnknownFont, font, r)
		}
	}()
	folded := xwidth.Narrow.String(width.StripSequences(text))
	fig := figure.NewFigure(folded, font, false)
	for _, r := range fig.Slicify() {
		rows = append(rows, strings.TrimRight(r, " "))
	}
	// Fonts pad with blank rows; they carry no glyphs.
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}
