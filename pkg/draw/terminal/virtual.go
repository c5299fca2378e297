// ABOUTME: VirtualTerminal implements Terminal for tests without a real TTY
// ABOUTME: Captures output, simulates resizes and can be told to fail writes

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
type VirtualTerminal struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	width    int
	height   int
	resizeFn func(width, height int)
	writeErr error
	writes   int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Write appends data to the internal buffer, or fails with the error set by
// FailWrites.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writes++
	if v.writeErr != nil {
		return 0, fmt.Errorf("writing to virtual terminal: %w", v.writeErr)
	}
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// Writes returns how many Write calls were made, failed ones included.
func (v *VirtualTerminal) Writes() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writes
}

// FailWrites makes every later Write fail with err; nil restores success.
func (v *VirtualTerminal) FailWrites(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// SetSize updates the terminal dimensions and, if a resize callback
// is registered, invokes it with the new size.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
}
