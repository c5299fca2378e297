// ABOUTME: Result type returned by every renderer: composed output or a diagnostic error
// ABOUTME: compose runs a renderer on a pooled builder and turns panics into failed results

// Package render composes positioned, coloured escape-sequence output for
// pages of text, frames, boxes, progress bars, sliders and bar charts. Every
// function is pure: it returns a Result and never writes to a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/mauromedda/termdraw/pkg/draw/internal/pool"
)

// Result is the outcome of one render call.
type Result struct {
	Output string
	Err    error
}

// OK wraps successful output.
func OK(out string) Result { return Result{Output: out} }

// Fail wraps a render failure.
func Fail(err error) Result { return Result{Err: err} }

// Failed reports whether the render produced a diagnostic instead of output.
func (r Result) Failed() bool { return r.Err != nil }

// compose runs fn against a pooled builder. An error from fn, or a panic,
// becomes a failed Result naming op.
func compose(op string, fn func(sb *strings.Builder) error) (res Result) {
	sb := pool.GetBuilder()
	defer pool.PutBuilder(sb)
	defer func() {
		if r := recover(); r != nil {
			res = Fail(fmt.Errorf("render %s: panic: %v", op, r))
		}
	}()
	if err := fn(sb); err != nil {
		return Fail(fmt.Errorf("render %s: %w", op, err))
	}
	return OK(sb.String())
}
