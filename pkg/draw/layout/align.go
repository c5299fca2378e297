// ABOUTME: Alignment calculator mapping content width into an absolute column
// ABOUTME: Left, center (middle) and right placement with floor division toward the origin

package layout

import (
	"fmt"
	"strings"
)

// Align controls horizontal placement of content inside a field.
type Align int

const (
	// AlignLeft places content at the field origin (default).
	AlignLeft Align = iota
	// AlignCenter centres content; odd slack rounds toward the origin.
	AlignCenter
	// AlignRight places content against the far edge of the field.
	AlignRight
)

// AlignMiddle is the same placement as AlignCenter.
const AlignMiddle = AlignCenter

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign accepts left, center, centre, middle and right.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre", "middle":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// AlignColumn returns the absolute column where content of contentWidth
// cells starts inside a field of fieldWidth cells beginning at origin.
// The result is never left of origin.
func AlignColumn(contentWidth, fieldWidth int, mode Align, origin int) int {
	slack := max(0, fieldWidth-contentWidth)
	switch mode {
	case AlignRight:
		return origin + slack
	case AlignCenter:
		return origin + slack/2
	default:
		return origin
	}
}

// AlignRow is the vertical counterpart of AlignColumn: with middle set the
// block is centred in the field, otherwise it starts at origin.
func AlignRow(contentHeight, fieldHeight int, middle bool, origin int) int {
	if !middle {
		return origin
	}
	return origin + max(0, fieldHeight-contentHeight)/2
}
