// ABOUTME: Polling mtime watcher used to redraw when settings or style files change
// ABOUTME: Changed polls once; Run polls on a ticker until the context is cancelled

package config

import (
	"context"
	"os"
	"sync"
	"time"
)

// DefaultInterval is the polling period used when none is given.
const DefaultInterval = time.Second

// Watcher detects changes to a fixed set of files by comparing mtimes.
// Creating, modifying or removing a watched file all count as a change.
type Watcher struct {
	mu       sync.Mutex
	paths    []string
	interval time.Duration
	mtimes   map[string]time.Time
}

// NewWatcher snapshots paths. A non-positive interval uses DefaultInterval.
func NewWatcher(interval time.Duration, paths ...string) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	w := &Watcher{
		paths:    paths,
		interval: interval,
		mtimes:   make(map[string]time.Time),
	}
	w.snapshotLocked()
	return w
}

// Changed reports whether any file changed since the last snapshot and
// takes a new snapshot if so.
func (w *Watcher) Changed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.checkLocked() {
		return false
	}
	w.snapshotLocked()
	return true
}

// Run calls onChange after every detected change until ctx is done.
// It returns ctx.Err().
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if w.Changed() {
				onChange()
			}
		}
	}
}

// checkLocked compares current mtimes with stored snapshots. Must hold mu.
func (w *Watcher) checkLocked() bool {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			if _, existed := w.mtimes[path]; existed {
				return true
			}
			continue
		}
		prev, ok := w.mtimes[path]
		if !ok || !info.ModTime().Equal(prev) {
			return true
		}
	}
	return false
}

// snapshotLocked records current mtimes. Must hold mu.
func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}
