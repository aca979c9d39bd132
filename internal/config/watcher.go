// ABOUTME: Polling file watcher used by the CLI to re-render on input or style edits
// ABOUTME: Compares mtimes each tick; creation and removal count as changes

package config

import (
	"context"
	"os"
	"time"
)

// DefaultWatchInterval is the polling interval used when none is given.
const DefaultWatchInterval = 500 * time.Millisecond

// Watcher polls a fixed set of files for modification. It is driven by a
// single goroutine through Run.
type Watcher struct {
	paths    []string
	interval time.Duration
	mtimes   map[string]time.Time
}

// NewWatcher snapshots paths. Files that do not exist yet are watched for
// creation.
func NewWatcher(paths []string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	w := &Watcher{
		paths:    paths,
		interval: interval,
		mtimes:   make(map[string]time.Time),
	}
	w.changed()
	return w
}

// Run calls onChange after every poll that observes a change, until ctx is
// done. It returns ctx.Err().
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if w.changed() {
				onChange()
			}
		}
	}
}

// changed compares current mtimes with the snapshot and records the new
// state.
func (w *Watcher) changed() bool {
	changed := false
	for _, path := range w.paths {
		info, err := os.Stat(path)
		prev, existed := w.mtimes[path]
		if err != nil {
			if existed {
				delete(w.mtimes, path)
				changed = true
			}
			continue
		}
		if !existed || !info.ModTime().Equal(prev) {
			w.mtimes[path] = info.ModTime()
			changed = true
		}
	}
	return changed
}
