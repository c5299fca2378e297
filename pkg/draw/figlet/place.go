// ABOUTME: Figlet placement engine: primary font, then the small font, then plain text
// ABOUTME: A font is accepted only when its whole block fits inside the window at the requested spot

package figlet

import (
	"fmt"
	"strings"

	"github.com/mauromedda/termdraw/pkg/draw/internal/pool"
	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/render"
	"github.com/mauromedda/termdraw/pkg/draw/seq"
	"github.com/mauromedda/termdraw/pkg/draw/style"
	"github.com/mauromedda/termdraw/pkg/draw/width"
)

// FallbackFont is tried when the requested font does not fit.
const FallbackFont = "small"

// Stage is the step of the cascade that produced a placement.
type Stage int

const (
	// StagePrimary is the requested font.
	StagePrimary Stage = iota
	// StageFallback is FallbackFont.
	StageFallback
	// StagePlain is unstyled text centred in the window; it always succeeds.
	StagePlain
)

func (s Stage) String() string {
	switch s {
	case StagePrimary:
		return "primary"
	case StageFallback:
		return "fallback"
	default:
		return "plain"
	}
}

// PlaceSpec describes a banner request.
type PlaceSpec struct {
	Text string
	// Font is the primary font; empty means style.DefaultFont.
	Font string
	// Top is the row of the first block row.
	Top int
	// Center is the column the block is centred on; negative means the
	// window centre.
	Center int

	WindowWidth  int
	WindowHeight int

	Style style.Style
}

// Placement reports where and how the text was drawn.
type Placement struct {
	Stage  Stage
	Font   string
	Left   int
	Top    int
	Width  int
	Height int
	// Diagnostics explains every rejected stage.
	Diagnostics []string
}

// Place runs the cascade and renders the accepted stage.
func Place(p PlaceSpec, m Metrics) (Placement, render.Result) {
	winW, winH := max(0, p.WindowWidth), max(0, p.WindowHeight)
	center := p.Center
	if center < 0 {
		center = winW / 2
	}
	primary := p.Font
	if primary == "" {
		primary = style.DefaultFont
	}

	var diags []string
	candidates := []struct {
		stage Stage
		font  string
	}{
		{StagePrimary, primary},
		{StageFallback, FallbackFont},
	}
	for i, c := range candidates {
		if i > 0 && c.font == primary {
			diags = append(diags, fmt.Sprintf("%s: same font as primary, skipped", c.stage))
			continue
		}
		pl, rows, reason := try(p, m, c.font, center, winW, winH)
		if reason != "" {
			diags = append(diags, fmt.Sprintf("%s %q: %s", c.stage, c.font, reason))
			continue
		}
		pl.Stage = c.stage
		pl.Diagnostics = diags
		return pl, renderBlock(pl, rows, p.Style)
	}

	pl, res := plain(p, center, winW, winH)
	pl.Diagnostics = diags
	return pl, res
}

// try measures font and reports why it cannot be placed, or "" when it fits.
func try(p PlaceSpec, m Metrics, font string, center, winW, winH int) (Placement, []string, string) {
	w, err := m.Width(p.Text, font)
	if err != nil {
		return Placement{}, nil, err.Error()
	}
	h, err := m.Height(p.Text, font)
	if err != nil {
		return Placement{}, nil, err.Error()
	}
	x := center - w/2
	switch {
	case w == 0 || h == 0:
		return Placement{}, nil, "renders no glyphs"
	case p.Top < 0:
		return Placement{}, nil, fmt.Sprintf("top %d is above the window", p.Top)
	case x < 0:
		return Placement{}, nil, fmt.Sprintf("%d cells wide, starts at column %d", w, x)
	case x+w > winW:
		return Placement{}, nil, fmt.Sprintf("%d cells wide, ends past column %d", w, winW)
	case p.Top+h > winH:
		return Placement{}, nil, fmt.Sprintf("%d rows tall, ends past row %d", h, winH)
	}
	rows, err := m.Render(p.Text, font, winW)
	if err != nil {
		return Placement{}, nil, err.Error()
	}
	return Placement{Font: font, Left: x, Top: p.Top, Width: w, Height: h}, rows, ""
}

func renderBlock(pl Placement, rows []string, st style.Style) render.Result {
	return render.OK(pool.Build(func(sb *strings.Builder) {
		sb.WriteString(st.Prefix())
		for i, r := range rows {
			if i >= pl.Height {
				break
			}
			sb.WriteString(seq.CursorPosition(pl.Left, pl.Top+i))
			sb.WriteString(width.PadRight(r, pl.Width))
		}
		sb.WriteString(st.Suffix())
	}))
}

// plain centres the text on center inside the widest field the window allows.
func plain(p PlaceSpec, center, winW, winH int) (Placement, render.Result) {
	left, fieldW := 0, winW
	if half := min(center, winW-center); half > 0 && p.Center >= 0 {
		left, fieldW = center-half, 2*half
	}
	top := min(max(0, p.Top), max(0, winH-1))
	region := layout.Rect(left, top, fieldW, max(0, winH-top))
	res, n := render.RenderText(render.TextSpec{
		Text:   p.Text,
		Region: region,
		Align:  layout.AlignMiddle,
		Style:  p.Style,
	})
	return Placement{Stage: StagePlain, Left: left, Top: top, Width: fieldW, Height: n}, res
}
