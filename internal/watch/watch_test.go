package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rohanthewiz/assert"

	"github.com/rohanthewiz/urlresolve/internal/routes"
	"github.com/rohanthewiz/urlresolve/internal/watch"
)

type countingReloader struct {
	n atomic.Int32
}

func (c *countingReloader) Reload(context.Context) error {
	c.n.Add(1)
	return nil
}

func waitFor(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return nil
}

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "routes.yaml")
	assert.Nil(t, os.WriteFile(file, []byte("a"), 0o644))

	target := &countingReloader{}
	reloaded := make(chan error, 10)
	w, err := watch.New(file, target, watch.Options{
		Debounce: 50 * time.Millisecond,
		OnReload: func(err error) { reloaded <- err },
	})
	assert.Nil(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	for i := 0; i < 5; i++ {
		assert.Nil(t, os.WriteFile(file, []byte{byte('a' + i)}, 0o644))
	}

	assert.Nil(t, waitFor(t, reloaded))
	assert.Equal(t, target.n.Load(), int32(1))
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "routes.yaml")
	assert.Nil(t, os.WriteFile(file, []byte("a"), 0o644))

	target := &countingReloader{}
	reloaded := make(chan error, 10)
	w, err := watch.New(file, target, watch.Options{
		Debounce: 20 * time.Millisecond,
		OnReload: func(err error) { reloaded <- err },
	})
	assert.Nil(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	assert.Nil(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, target.n.Load(), int32(0))
}

func TestWatchReloadsTable(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "routes.yaml")
	first := "views: [home]\nroutes:\n  - path: \"\"\n    view: home\n    name: home\n"
	assert.Nil(t, os.WriteFile(file, []byte(first), 0o644))

	table, err := routes.NewTable(context.Background(), file, nil, nil)
	assert.Nil(t, err)

	reloaded := make(chan error, 10)
	w, err := watch.New(file, table, watch.Options{OnReload: func(err error) { reloaded <- err }})
	assert.Nil(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	second := first + "  - path: about/\n    view: home\n    name: about\n"
	assert.Nil(t, os.WriteFile(file, []byte(second), 0o644))
	assert.Nil(t, waitFor(t, reloaded))

	path, err := table.URLs().Reverse("about")
	assert.Nil(t, err)
	assert.Equal(t, path, "/about/")
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := watch.New(filepath.Join(t.TempDir(), "no", "routes.yaml"), &countingReloader{}, watch.Options{})
	assert.True(t, err != nil)
}
