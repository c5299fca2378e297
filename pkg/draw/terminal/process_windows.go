// ABOUTME: Windows stub for ProcessTerminal resize handling
// ABOUTME: Windows has no SIGWINCH; callers redraw on their own schedule

//go:build windows

package terminal

// startResizeListener is a no-op on Windows.
func (t *ProcessTerminal) startResizeListener() func() {
	return func() {}
}
