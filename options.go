package urlresolve

import (
	"io"
	"log/slog"

	"github.com/rohanthewiz/urlresolve/consts"
)

type options struct {
	context any
	root    string
	prefix  string
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		root:   consts.DefaultRoot,
		prefix: consts.PathSep,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures New.
type Option func(*options)

// WithContext sets the object symbolic handlers are looked up on.
// It may be a resolve.Catalog, a map[string]T, or any value with methods
// named like the handlers.
func WithContext(ctx any) Option {
	return func(o *options) {
		o.context = ctx
	}
}

// WithRoot sets the template of the root Resolver. Default "/".
func WithRoot(root string) Option {
	return func(o *options) {
		o.root = root
	}
}

// WithPrefix sets what Reverse puts in front of paths. Default "/".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
