// Package watch reports edits to a single file.
//
// The parent directory is watched rather than the file itself, so editors
// that save by writing a temporary file and renaming it over the original
// keep being followed. Bursts of events are collapsed into one callback.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/ripple/pkg/errors"
)

// DefaultDelay is how long the file must stay quiet before a change is
// reported.
const DefaultDelay = 50 * time.Millisecond

// Watcher follows one file.
type Watcher struct {
	fs    *fsnotify.Watcher
	path  string
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New watches path. Changes are reported once the file has been quiet for
// delay.
func New(path string, delay time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WithPath("watch.New", errors.KindConfig, path, err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.New("watch.New", errors.KindConfig, err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, errors.WithPath("watch.New", errors.KindConfig, path, err)
	}
	return &Watcher{fs: fs, path: abs, delay: delay}, nil
}

// Run calls onChange after each burst of edits until ctx is done. Watcher
// errors are reported and do not stop it.
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	for {
		select {
		case <-ctx.Done():
			w.stop()
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.matches(event) {
				w.schedule(onChange)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			errors.ReportError("watch.Run", errors.KindConfig, err)
		}
	}
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) schedule(onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, onChange)
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.stop()
	return w.fs.Close()
}
