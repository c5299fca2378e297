// ABOUTME: Unix-specific SIGWINCH handling for ProcessTerminal resize events
// ABOUTME: A goroutine forwards each signal to the registered callback until stopped

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// startResizeListener sets up a SIGWINCH handler and returns its stop func.
func (t *ProcessTerminal) startResizeListener() func() {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-sigCh:
				t.notifyResize()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
