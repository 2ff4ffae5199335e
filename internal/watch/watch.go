// Package watch reloads a route table when its file changes on disk.
package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the bursts of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// Reloader is reloaded on change; *routes.Table is one.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration
	Logger   *slog.Logger
	// OnReload is called after every reload attempt with its result.
	OnReload func(error)
}

// Watcher watches one file. The file's directory is watched rather than the
// file itself so that replacing the file (as many editors do) is seen.
type Watcher struct {
	file     string
	target   Reloader
	opts     Options
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	debounce *time.Timer
}

// New starts watching file. Call Run to act on changes and Close when done.
func New(file string, target Reloader, opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch: %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{file: abs, target: target, opts: opts, watcher: fw}, nil
}

// Run reloads the target after changes to the file until ctx is done or
// the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	w.opts.Logger.Info("watching route file", "file", w.file)

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.file {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.opts.Logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.opts.Debounce, func() {
		err := w.target.Reload(ctx)
		if err != nil {
			w.opts.Logger.Error("reload failed", "file", w.file, "error", err)
		} else {
			w.opts.Logger.Info("reloaded", "file", w.file)
		}
		if w.opts.OnReload != nil {
			w.opts.OnReload(err)
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}
