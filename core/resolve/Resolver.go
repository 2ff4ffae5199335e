package resolve

import (
	"fmt"
	"regexp"
)

// Resolver matches a template as a prefix and hands the rest of the path to
// an ordered list of children, each a *Pattern or another *Resolver.
//
// A Resolver is immutable once built: its reverse lookup table is computed in
// NewResolver from the children's own tables, so Resolve and Reverse are safe
// for concurrent use.
type Resolver[T any] struct {
	template string
	params   []string
	regex    *regexp.Regexp
	children []Node[T]
	lookups  map[string]ReverseEntry
}

// NewResolver compiles template for prefix matching over children.
// The children must be fully built (and bound) before they are passed in.
func NewResolver[T any](template string, children ...Node[T]) (*Resolver[T], error) {
	re, params, err := compileAnchored(template, anchorPrefix)
	if err != nil {
		return nil, err
	}

	for i, child := range children {
		if child == nil {
			return nil, &ConfigError{Template: template, Err: fmt.Errorf("%w: child %d is nil", ErrInvalidSpec, i)}
		}
	}

	r := &Resolver[T]{
		template: template,
		params:   params,
		regex:    re,
		children: append([]Node[T](nil), children...),
	}
	r.lookups = r.populate()
	return r, nil
}

func (r *Resolver[T]) node() {}

func (r *Resolver[T]) Template() string { return r.template }

func (r *Resolver[T]) Params() []string { return r.params }

// Children returns the child nodes in declared order.
func (r *Resolver[T]) Children() []Node[T] {
	return append([]Node[T](nil), r.children...)
}

func (r *Resolver[T]) String() string {
	return fmt.Sprintf("<%s>", r.template)
}

// Resolve finds the handler for path.
//
// Children are tried in declared order and the first to match wins.
// Values captured by this Resolver (and any Resolver between it and the
// matching Pattern) come before the Pattern's own in Match.Args.
// When nothing matches, the error is a *NotFound[T].
func (r *Resolver[T]) Resolve(path string) (*Match[T], error) {
	m, miss, err := r.resolve(path)
	if err != nil {
		return nil, err
	}
	if miss != nil {
		return nil, miss
	}
	return m, nil
}

// resolve returns exactly one of a match, a miss, or an error.
func (r *Resolver[T]) resolve(path string) (*Match[T], *NotFound[T], error) {
	loc := r.regex.FindStringSubmatchIndex(path)
	if loc == nil {
		return nil, &NotFound[T]{Path: path}, nil
	}

	args := make([]string, 0, len(r.params))
	for i := 2; i+1 < len(loc); i += 2 {
		args = append(args, path[loc[i]:loc[i+1]])
	}
	subPath := path[loc[1]:]

	tried := make([]Attempt[T], 0, len(r.children))
	for _, child := range r.children {
		m, miss, control, err := r.try(child, subPath)

		switch control {
		case flowStop:
			m.prepend(r.params, args)
			return m, nil, nil
		case flowAbort:
			return nil, nil, err
		case flowNext:
			tried = appendAttempts(tried, child, miss)
		}
	}

	return nil, &NotFound[T]{Path: subPath, Tried: tried}, nil
}

// try resolves subPath against a single child.
func (r *Resolver[T]) try(child Node[T], subPath string) (*Match[T], *NotFound[T], flow, error) {
	switch c := child.(type) {
	case *Pattern[T]:
		m, ok, err := c.Resolve(subPath)
		switch {
		case err != nil:
			return nil, nil, flowAbort, err
		case ok:
			return m, nil, flowStop, nil
		}
		return nil, nil, flowNext, nil

	case *Resolver[T]:
		m, miss, err := c.resolve(subPath)
		switch {
		case err != nil:
			return nil, nil, flowAbort, err
		case miss != nil:
			return nil, miss, flowNext, nil
		}
		return m, nil, flowStop, nil
	}

	return nil, nil, flowAbort, fmt.Errorf("%w: unknown node type %T", ErrInvalidSpec, child)
}

// appendAttempts records a child that did not match. A child Resolver whose
// own children were tried contributes one entry per nested attempt.
func appendAttempts[T any](tried []Attempt[T], child Node[T], miss *NotFound[T]) []Attempt[T] {
	if miss == nil || len(miss.Tried) == 0 {
		return append(tried, Attempt[T]{Node: child})
	}
	for i := range miss.Tried {
		nested := miss.Tried[i]
		tried = append(tried, Attempt[T]{Node: child, Nested: &nested})
	}
	return tried
}
