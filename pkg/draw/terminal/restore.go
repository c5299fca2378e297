// ABOUTME: Panic guards that put the cursor and colours back before reporting the panic
// ABOUTME: RestoreOnPanic exits the process; RecoverGoroutine only logs

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mauromedda/termdraw/pkg/draw/seq"
)

// Restore shows the cursor, leaves the alternate screen and resets colours.
func Restore(t Terminal) {
	_, _ = t.Write([]byte(seq.ShowCursor + seq.AltScreenExit + seq.Reset))
}

// RestoreOnPanic should be deferred at the top of main. On panic it restores
// the terminal, prints the panic value and stack trace, then exits with
// code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	Restore(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that draw. Unlike RestoreOnPanic it does not exit.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	Restore(t)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
