package resolve

import (
	"errors"
	"fmt"
)

// Spec declares one entry of a pattern list. Build turns specs into nodes.
//
// Use URL or View for a Pattern and Include for a nested Resolver.
type Spec[T any] struct {
	Template string
	Handler  HandlerRef[T]
	Name     string
	Children []Spec[T]

	include    bool
	context    any
	hasContext bool
}

// URL declares a Pattern with a direct handler.
func URL[T any](template string, handler T, name string) Spec[T] {
	return Spec[T]{Template: template, Handler: Direct(handler), Name: name}
}

// View declares a Pattern whose handler is the member called symbol on the
// context given to Build (or to an enclosing WithContext).
func View[T any](template, symbol, name string) Spec[T] {
	return Spec[T]{Template: template, Handler: Symbol[T](symbol), Name: name}
}

// Include declares a Resolver matching template as a prefix over children.
func Include[T any](template string, children ...Spec[T]) Spec[T] {
	return Spec[T]{Template: template, Children: children, include: true}
}

// IsInclude reports whether the spec declares a Resolver.
func (s Spec[T]) IsInclude() bool {
	return s.include
}

// WithContext sets the context the spec's symbolic handler, or those of an
// Include's children, are bound against, in place of the one inherited from
// the enclosing list.
func (s Spec[T]) WithContext(ctx any) Spec[T] {
	s.context = ctx
	s.hasContext = true
	return s
}

// Context returns the context set by WithContext.
func (s Spec[T]) Context() (ctx any, ok bool) {
	return s.context, s.hasContext
}

// Patterns builds a list of nodes, binding symbolic handlers against ctx.
// Everything is checked here: empty or unknown handler names fail the build
// instead of surfacing when a path is resolved.
func Patterns[T any](ctx any, specs ...Spec[T]) ([]Node[T], error) {
	nodes := make([]Node[T], 0, len(specs))
	var errs []error

	for _, spec := range specs {
		n, err := spec.build(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		nodes = append(nodes, n)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nodes, nil
}

// Build builds the root Resolver for root (usually "/") over specs.
func Build[T any](root string, ctx any, specs ...Spec[T]) (*Resolver[T], error) {
	nodes, err := Patterns(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return NewResolver(root, nodes...)
}

func (s Spec[T]) build(ctx any) (Node[T], error) {
	if s.hasContext {
		ctx = s.context
	}

	if s.include {
		children, err := Patterns(ctx, s.Children...)
		if err != nil {
			return nil, fmt.Errorf("include %q: %w", s.Template, err)
		}
		return NewResolver(s.Template, children...)
	}

	if len(s.Children) > 0 {
		return nil, &ConfigError{Template: s.Template,
			Err: fmt.Errorf("%w: pattern has children; use Include", ErrInvalidSpec)}
	}

	p, err := NewPattern(s.Template, s.Handler, s.Name)
	if err != nil {
		return nil, err
	}
	if err := p.BindContext(ctx); err != nil {
		return nil, err
	}
	return p, nil
}
