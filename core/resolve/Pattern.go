package resolve

import (
	"fmt"
	"regexp"
)

// Node is one entry of a pattern list: a *Pattern or a *Resolver.
type Node[T any] interface {
	// Template is the raw template, with its `:name` placeholders.
	Template() string
	// Params are the placeholder names of Template, in order.
	Params() []string
	String() string

	node()
}

// Pattern associates a template with a handler.
// Only full matches of the path fragment it is given count as a match.
type Pattern[T any] struct {
	template string
	params   []string
	regex    *regexp.Regexp
	handler  HandlerRef[T]
	name     string
}

// NewPattern compiles template for full matching. name is optional and is
// what Reverse looks the pattern up by.
func NewPattern[T any](template string, handler HandlerRef[T], name string) (*Pattern[T], error) {
	if !handler.bound && handler.symbol == "" {
		return nil, &ConfigError{Template: template, Err: ErrEmptyHandlerName}
	}

	re, params, err := compileAnchored(template, anchorFull)
	if err != nil {
		return nil, err
	}

	return &Pattern[T]{
		template: template,
		params:   params,
		regex:    re,
		handler:  handler,
		name:     name,
	}, nil
}

func (p *Pattern[T]) node() {}

func (p *Pattern[T]) Template() string { return p.template }

func (p *Pattern[T]) Params() []string { return p.params }

func (p *Pattern[T]) Name() string { return p.name }

func (p *Pattern[T]) Handler() HandlerRef[T] { return p.handler }

func (p *Pattern[T]) String() string {
	return fmt.Sprintf("<%s %q>", p.name, p.template)
}

// BindContext looks a symbolic handler up on ctx and binds it.
// It does nothing for direct handlers or a nil ctx.
// Call it once, before the pattern is placed in a Resolver.
func (p *Pattern[T]) BindContext(ctx any) error {
	h, err := p.handler.bind(ctx)
	if err != nil {
		return &ConfigError{Template: p.template, Err: err}
	}
	p.handler = h
	return nil
}

// Resolve matches the whole of path against the pattern.
// ok is false when it does not match; that is not an error.
func (p *Pattern[T]) Resolve(path string) (m *Match[T], ok bool, err error) {
	sub := p.regex.FindStringSubmatch(path)
	if sub == nil {
		return nil, false, nil
	}
	if !p.handler.bound {
		return nil, false, &ConfigError{Template: p.template,
			Err: fmt.Errorf("%w: %q", ErrUnboundHandler, p.handler.symbol)}
	}

	args := make([]string, len(sub)-1)
	copy(args, sub[1:])
	keys := make([]string, len(p.params))
	copy(keys, p.params)

	return &Match[T]{
		Handler: p.handler.handler,
		Args:    args,
		Keys:    keys,
		Name:    p.name,
	}, true, nil
}
