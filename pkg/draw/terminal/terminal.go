// ABOUTME: Terminal interface: the raw output sink plus window size and resize notifications
// ABOUTME: EnsureReady is the explicit one-time readiness check a host makes before drawing

package terminal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTerminal is returned when the sink is not an interactive terminal.
	ErrNotTerminal = errors.New("output is not a terminal")
	// ErrZeroSize is returned when the terminal reports no usable cells.
	ErrZeroSize = errors.New("terminal has zero size")
)

// Terminal abstracts the device rendered output is written to: size
// queries, raw writes, and resize notifications.
type Terminal interface {
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
}

// ttyChecker is implemented by terminals that can tell whether they are
// attached to a real TTY.
type ttyChecker interface {
	IsTerminal() bool
}

// EnsureReady checks once that t can be drawn on and returns its size.
func EnsureReady(t Terminal) (width, height int, err error) {
	if c, ok := t.(ttyChecker); ok && !c.IsTerminal() {
		return 0, 0, ErrNotTerminal
	}
	w, h, err := t.Size()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNotTerminal, err)
	}
	if w <= 0 || h <= 0 {
		return w, h, fmt.Errorf("%w: %dx%d", ErrZeroSize, w, h)
	}
	return w, h, nil
}
