// ABOUTME: E2E tests for termdraw through the real binary PTY
// ABOUTME: One-shot drawing commands and the interruptible demo watch loop

package e2e

import (
	"testing"
	"time"
)

func TestFrame_DrawsAndExits(t *testing.T) {
	s := start(t, 40, 10, "frame", "--width", "3", "--height", "1", "--border", "ascii", "--no-color")
	defer s.close()

	s.expectStringTimeout(t, "+---+", 5*time.Second)
	s.waitExit(t, 5*time.Second)
}

func TestFiglet_FallsBackToPlainInNarrowWindow(t *testing.T) {
	s := start(t, 6, 3, "figlet", "hello")
	defer s.close()

	s.expectStringTimeout(t, "hello", 5*time.Second)
	s.waitExit(t, 5*time.Second)
}

func TestDemoWatch_CtrlC_RestoresTerminal(t *testing.T) {
	s := start(t, 80, 24, "demo", "--watch", "--interval", "50ms")
	defer s.close()

	s.expectStringTimeout(t, "termdraw", 5*time.Second)

	s.sendCtrl(t, 'c')

	s.expectStringTimeout(t, "\x1b[?1049l", 5*time.Second)
	s.waitExit(t, 5*time.Second)
}

func TestDemo_NotATerminal(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
	out, err := command(t, "demo").CombinedOutput()
	if err == nil {
		t.Fatalf("demo on a pipe succeeded; output %q", out)
	}
}
