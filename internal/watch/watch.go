// Package watch triggers regeneration passes when watched directories
// change, debouncing rapid bursts of filesystem events.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches editor save bursts into one regeneration.
const DefaultDebounce = 2 * time.Second

// Watcher runs a callback after changes under the watched directories have
// settled for the debounce interval.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(context.Context)

	// Ignore drops events for matching paths before debouncing. Needed when
	// the callback writes into a watched directory, or the run would
	// retrigger itself.
	Ignore func(path string) bool
}

// New creates a Watcher. A zero debounce uses DefaultDebounce.
func New(debounce time.Duration, onChange func(context.Context)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{watcher: fsw, debounce: debounce, onChange: onChange}, nil
}

// Add registers a directory. Missing paths are skipped with a debug log so
// optional dirs (doc/, translations/) don't have to exist up front.
func (w *Watcher) Add(path string) error {
	if _, err := os.Stat(path); err != nil {
		slog.Debug("Not watching missing path", logfields.Path(path))
		return nil
	}
	if err := w.watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	slog.Info("Watching for changes", logfields.Path(path))
	return nil
}

// Run blocks until ctx is cancelled, invoking the callback after each
// debounced change burst. The watcher keeps running when a callback pass
// fails; the pass is responsible for its own error logging.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if w.Ignore != nil && w.Ignore(event.Name) {
				continue
			}
			slog.Debug("Change detected", logfields.Path(event.Name))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))

		case <-pending:
			pending = nil
			w.onChange(ctx)
		}
	}
}
