// ABOUTME: ProcessTerminal implements Terminal on an *os.File using golang.org/x/term
// ABOUTME: Reports TTY status and colour profile; platform files handle resize signals

package terminal

import (
	"fmt"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a file, usually os.Stdout.
type ProcessTerminal struct {
	out *os.File

	mu       sync.Mutex
	resizeFn func(width, height int)
	stop     func()
}

// NewProcessTerminal returns a ProcessTerminal writing to out, or to
// os.Stdout when out is nil.
func NewProcessTerminal(out *os.File) *ProcessTerminal {
	if out == nil {
		out = os.Stdout
	}
	return &ProcessTerminal{out: out}
}

// IsTerminal reports whether the output file is a TTY.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.out.Fd()))
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to %s: %w", t.out.Name(), err)
	}
	return n, nil
}

// Profile returns the colour profile the output supports, honouring
// NO_COLOR and CLICOLOR_FORCE.
func (t *ProcessTerminal) Profile() termenv.Profile {
	return termenv.NewOutput(t.out).EnvColorProfile()
}

// OnResize registers a callback invoked when the terminal is resized.
// The platform listener is started on first registration.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeFn = fn
	if t.stop == nil {
		t.stop = t.startResizeListener()
	}
}

// Close stops the resize listener.
func (t *ProcessTerminal) Close() error {
	t.mu.Lock()
	stop := t.stop
	t.stop = nil
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
	return nil
}

func (t *ProcessTerminal) notifyResize() {
	t.mu.Lock()
	fn := t.resizeFn
	t.mu.Unlock()

	if fn == nil {
		return
	}
	w, h, err := t.Size()
	if err != nil {
		return
	}
	fn(w, h)
}
