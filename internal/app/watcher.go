// Package app provides long-running tool plumbing.
package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"board-cropper/internal/image"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a directory for new screenshots and triggers a callback
// once each file has stopped changing. Screenshot tools often create the file
// first and write it in several chunks, so a path is only reported after no
// event has been seen for the settle period.
type Watcher struct {
	dir     string
	settle  time.Duration
	watcher *fsnotify.Watcher
	onImage func(path string) // Called from the Run goroutine

	mu      sync.Mutex
	pending map[string]time.Time
}

// NewWatcher creates a watcher on dir.
func NewWatcher(dir string, settle time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:     dir,
		settle:  settle,
		watcher: fw,
		pending: make(map[string]time.Time),
	}, nil
}

// OnImage sets the callback invoked with the path of each settled image.
func (w *Watcher) OnImage(callback func(path string)) {
	w.onImage = callback
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	interval := w.settle / 2
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !image.IsSupportedFormat(ev.Name) {
				continue
			}
			w.mu.Lock()
			w.pending[ev.Name] = time.Now()
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher: %v", err)
		case now := <-ticker.C:
			for _, path := range w.settled(now) {
				if w.onImage != nil {
					w.onImage(path)
				}
			}
		}
	}
}

// settled removes and returns the paths that have been quiet for the settle period.
func (w *Watcher) settled(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for path, last := range w.pending {
		if now.Sub(last) >= w.settle {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	return ready
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
