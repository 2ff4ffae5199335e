package routes

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/rohanthewiz/urlresolve"
)

// Table holds the URL configuration built from a route source and swaps in a
// new one on Reload. Readers always see a complete configuration.
type Table struct {
	source  string
	loader  *Loader
	opts    []urlresolve.Option
	logger  *slog.Logger
	reload  sync.Mutex
	current atomic.Pointer[urlresolve.URLs[View]]
	version atomic.Uint64
}

// NewTable loads source and builds the first configuration.
func NewTable(ctx context.Context, source string, loader *Loader, logger *slog.Logger, opts ...urlresolve.Option) (*Table, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if loader == nil {
		loader = &Loader{}
	}

	t := &Table{source: source, loader: loader, opts: opts, logger: logger}
	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// URLs returns the current configuration.
func (t *Table) URLs() *urlresolve.URLs[View] {
	return t.current.Load()
}

// Source returns where the table is loaded from.
func (t *Table) Source() string {
	return t.source
}

// Version counts successful loads, starting at 1.
func (t *Table) Version() uint64 {
	return t.version.Load()
}

// Reload rebuilds the configuration from the source.
// On failure the current configuration stays in place.
// Reloads run one at a time, so the last one started is the one left in place.
func (t *Table) Reload(ctx context.Context) error {
	t.reload.Lock()
	defer t.reload.Unlock()

	f, err := t.loader.Load(ctx, t.source)
	if err != nil {
		t.logger.Error("route table load failed", "source", t.source, "error", err)
		return err
	}

	opts := append([]urlresolve.Option{urlresolve.WithLogger(t.logger)}, t.opts...)
	urls, err := f.Build(opts...)
	if err != nil {
		t.logger.Error("route table build failed", "source", t.source, "error", err)
		return err
	}

	t.current.Store(urls)
	v := t.version.Add(1)
	t.logger.Info("route table loaded", "source", t.source, "version", v, "routes", len(urls.Routes()))
	return nil
}
