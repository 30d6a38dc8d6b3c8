// Package watch hot-reloads the config file when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/agiangrant/timepicker/config"
	"github.com/agiangrant/timepicker/internal/logger"
)

// DefaultDelay coalesces the burst of events editors produce on save.
const DefaultDelay = 100 * time.Millisecond

// Watcher reloads one config file on write or create and hands the parsed
// result to a callback. Files that fail to parse are logged and skipped.
type Watcher struct {
	path     string
	delay    time.Duration
	onChange func(config.File)

	watcher *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

// New starts watching the directory that holds path. The callback runs on
// a timer goroutine; hosts must hop to their UI goroutine before touching
// a picker.
func New(path string, onChange func(config.File)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Editors replace files by rename, so watch the directory, not the file.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch directory: %w", err)
	}
	return &Watcher{
		path:     path,
		delay:    DefaultDelay,
		onChange: onChange,
		watcher:  fw,
	}, nil
}

// SetDelay changes the debounce delay. Call before Run.
func (w *Watcher) SetDelay(d time.Duration) *Watcher {
	w.delay = d
	return w
}

// Run processes file events until ctx is cancelled or the watcher closes.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimer()
	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("config watch error: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.reload)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Watcher) reload() {
	cfg, err := config.Load(w.path)
	if err != nil {
		logger.Warnf("config reload skipped: %v", err)
		return
	}
	logger.Infof("config reloaded from %s", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
