package urlresolve

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rohanthewiz/urlresolve/core/resolve"
)

// URLs is a built URL configuration: a root Resolver plus the prefix that
// reversed paths are given.
type URLs[T any] struct {
	root   *resolve.Resolver[T]
	prefix string
	logger *slog.Logger
}

// New builds a URL configuration from specs.
//
// Unless overridden by options the root template is "/", symbolic handlers
// stay unbound, and reversed paths start with "/".
func New[T any](specs []resolve.Spec[T], opts ...Option) (*URLs[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	root, err := resolve.Build(o.root, o.context, specs...)
	if err != nil {
		o.logger.Error("url configuration failed", "root", o.root, "error", err)
		return nil, fmt.Errorf("urlresolve: build: %w", err)
	}

	o.logger.Info("url configuration built",
		"root", o.root,
		"routes", len(root.ListRoutes()),
		"names", len(root.Names()),
	)

	return &URLs[T]{root: root, prefix: o.prefix, logger: o.logger}, nil
}

// Resolve finds the handler for path, which should include the root
// (usually a leading "/").
func (u *URLs[T]) Resolve(path string) (*resolve.Match[T], error) {
	m, err := u.root.Resolve(path)
	if err != nil {
		var nf *resolve.NotFound[T]
		if errors.As(err, &nf) {
			u.logger.Debug("no match", "path", path, "tried", len(nf.Tried))
		} else {
			u.logger.Warn("resolve failed", "path", path, "error", err)
		}
		return nil, err
	}
	u.logger.Debug("resolved", "path", path, "name", m.Name, "args", m.Args)
	return m, nil
}

// Reverse returns the path for the route registered as name, with the
// configured prefix in front.
func (u *URLs[T]) Reverse(name string, args ...string) (string, error) {
	return u.ReverseWithPrefix(u.prefix, name, args...)
}

// ReverseWithPrefix is Reverse with an explicit prefix.
func (u *URLs[T]) ReverseWithPrefix(prefix, name string, args ...string) (string, error) {
	path, err := u.root.Reverse(name, args...)
	if err != nil {
		u.logger.Debug("no reverse match", "name", name, "args", args)
		return "", err
	}
	return prefix + path, nil
}

// MustReverse is like Reverse but panics on error.
// Use it for names known to exist, e.g. in templates.
func (u *URLs[T]) MustReverse(name string, args ...string) string {
	path, err := u.Reverse(name, args...)
	if err != nil {
		panic(err)
	}
	return path
}

// Resolver returns the root Resolver.
func (u *URLs[T]) Resolver() *resolve.Resolver[T] {
	return u.root
}

// Routes lists every route in resolution order.
func (u *URLs[T]) Routes() []resolve.RouteList {
	return u.root.ListRoutes()
}

// Prefix returns the prefix Reverse puts in front of paths.
func (u *URLs[T]) Prefix() string {
	return u.prefix
}
