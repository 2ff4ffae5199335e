package resolve

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound matches any *NotFound via errors.Is.
	ErrNotFound = errors.New("resolve: no match")

	// ErrNoReverseMatch matches any *NoReverseMatch via errors.Is.
	ErrNoReverseMatch = errors.New("resolve: no reverse match")

	ErrEmptyHandlerName = errors.New("empty handler name not permitted")
	ErrHandlerNotFound  = errors.New("handler not found on context")
	ErrHandlerType      = errors.New("handler has wrong type")
	ErrUnboundHandler   = errors.New("symbolic handler was never bound to a context")
	ErrInvalidSpec      = errors.New("invalid pattern spec")
)

// NotFound is returned when a path cannot be resolved.
//
// Path is the part of the path left unmatched at the level that failed.
// Tried lists every branch attempted below that level. A nil Tried means the
// matcher itself did not match; a non-nil (possibly empty) Tried means its
// prefix matched and all of its children were exhausted.
type NotFound[T any] struct {
	Path  string
	Tried []Attempt[T]
}

func (e *NotFound[T]) Error() string {
	return fmt.Sprintf("resolve: no match for %q (%d tried)", e.Path, len(e.Tried))
}

func (e *NotFound[T]) Is(target error) bool {
	return target == ErrNotFound
}

// Attempt records one branch tried during a failed resolution.
// Nested is set when Node is a Resolver whose own children were tried.
type Attempt[T any] struct {
	Node   Node[T]
	Nested *Attempt[T]
}

// Chain flattens the attempt into the list of nodes from this level down.
func (a Attempt[T]) Chain() []Node[T] {
	chain := []Node[T]{a.Node}
	for n := a.Nested; n != nil; n = n.Nested {
		chain = append(chain, n.Node)
	}
	return chain
}

// Template joins the templates along the chain, giving the path shape that was tried.
func (a Attempt[T]) Template() string {
	var sb strings.Builder
	for _, n := range a.Chain() {
		sb.WriteString(n.Template())
	}
	return sb.String()
}

func (a Attempt[T]) String() string {
	chain := a.Chain()
	parts := make([]string, len(chain))
	for i, n := range chain {
		parts[i] = n.String()
	}
	return strings.Join(parts, " -> ")
}

// NoReverseMatch is returned when a name cannot be reversed into a path,
// either because nothing is registered under it or because the argument
// count is wrong. Expected is -1 for an unknown name.
type NoReverseMatch struct {
	Name     string
	Args     []string
	Expected int
	Message  string
}

func (e *NoReverseMatch) Error() string {
	return e.Message
}

func (e *NoReverseMatch) Is(target error) bool {
	return target == ErrNoReverseMatch
}

func unknownName(name string, args []string) *NoReverseMatch {
	return &NoReverseMatch{
		Name:     name,
		Args:     args,
		Expected: -1,
		Message: fmt.Sprintf("Reverse for %q with arguments [%s] not found.",
			name, strings.Join(args, ", ")),
	}
}

func wrongArgCount(name string, expected int, args []string) *NoReverseMatch {
	plural := "s"
	if expected == 1 {
		plural = ""
	}
	return &NoReverseMatch{
		Name:     name,
		Args:     args,
		Expected: expected,
		Message: fmt.Sprintf("URL pattern named %q expects %d argument%s, but got %d: [%s]",
			name, expected, plural, len(args), strings.Join(args, ", ")),
	}
}

// ConfigError reports a pattern that could not be built.
type ConfigError struct {
	Template string
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("resolve: pattern %q: %v", e.Template, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
