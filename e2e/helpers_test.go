// ABOUTME: E2E harness: builds the termdraw binary once and runs it inside a real PTY
// ABOUTME: Output is collected in the background; expectations poll it with a timeout

package e2e

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// binary builds cmd/termdraw into a temp dir the first time it is called.
func binary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "termdraw-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "termdraw")
		out, err := exec.Command("go", "build", "-o", binPath, "../cmd/termdraw").CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("go build: %w\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatal(buildErr)
	}
	return binPath
}

// command returns an unstarted termdraw command with an empty settings home.
func command(t *testing.T, args ...string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command(binary(t), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "TERMDRAW_HOME="+t.TempDir(), "TERM=xterm-256color")
	return cmd
}

type session struct {
	cmd  *exec.Cmd
	ptmx *os.File

	mu   sync.Mutex
	out  bytes.Buffer
	done chan struct{}
}

// start runs termdraw with args on a cols x rows PTY and an empty settings home.
func start(t *testing.T, cols, rows uint16, args ...string) *session {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
	if runtime.GOOS == "windows" {
		t.Skip("PTY tests need a Unix host")
	}

	cmd := command(t, args...)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: cols, Rows: rows})
	if err != nil {
		t.Fatalf("starting termdraw: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, done: make(chan struct{})}
	go s.collect()
	return s
}

func (s *session) collect() {
	defer close(s.done)
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !strings.Contains(s.output(), want) {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %q; got %q", want, s.output())
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// sendCtrl writes the control character for key, e.g. 'c' for Ctrl+C.
func (s *session) sendCtrl(t *testing.T, key byte) {
	t.Helper()
	if _, err := s.ptmx.Write([]byte{key & 0x1f}); err != nil {
		t.Fatalf("sending Ctrl+%c: %v", key, err)
	}
}

// waitExit waits for the process and fails on a non-zero status.
func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	errCh := make(chan error, 1)
	go func() { errCh <- s.cmd.Wait() }()
	select {
	case err := <-errCh:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			t.Fatalf("termdraw exited with %d; output %q", exitErr.ExitCode(), s.output())
		} else if err != nil {
			t.Fatalf("waiting for termdraw: %v", err)
		}
	case <-time.After(timeout):
		_ = s.cmd.Process.Kill()
		t.Fatalf("termdraw did not exit within %v", timeout)
	}
	select {
	case <-s.done:
	case <-time.After(time.Second):
	}
}

func (s *session) close() {
	_ = s.ptmx.Close()
	if s.cmd.ProcessState == nil {
		_ = s.cmd.Process.Kill()
		_, _ = s.cmd.Process.Wait()
	}
}
