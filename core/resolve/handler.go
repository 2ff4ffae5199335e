package resolve

import (
	"fmt"
	"reflect"
)

// HandlerRef refers to a handler either directly or by a symbolic name that is
// looked up on a context object while the tree is being built.
type HandlerRef[T any] struct {
	handler T
	symbol  string
	bound   bool
}

// Direct refers to h itself.
func Direct[T any](h T) HandlerRef[T] {
	return HandlerRef[T]{handler: h, bound: true}
}

// Symbol refers to the member called name on a context supplied later.
func Symbol[T any](name string) HandlerRef[T] {
	return HandlerRef[T]{symbol: name}
}

// Symbol returns the symbolic name, or "" for a direct reference.
func (h HandlerRef[T]) Symbol() string {
	return h.symbol
}

// Bound reports whether the reference holds a usable handler.
func (h HandlerRef[T]) Bound() bool {
	return h.bound
}

func (h HandlerRef[T]) String() string {
	switch {
	case h.symbol != "" && !h.bound:
		return h.symbol + " (unbound)"
	case h.symbol != "":
		return h.symbol
	}
	return fmt.Sprintf("%T", h.handler)
}

// Catalog is a context that hands out handlers by name.
type Catalog[T any] interface {
	Handler(name string) (T, bool)
}

// bind resolves a symbolic reference against ctx.
//
// ctx may be a Catalog[T], a map[string]T, or any value with a method of the
// symbolic name. In the last case the method value is bound to ctx.
// Direct references and nil contexts are left as they are.
func (h HandlerRef[T]) bind(ctx any) (HandlerRef[T], error) {
	if h.bound || h.symbol == "" || ctx == nil {
		return h, nil
	}

	switch c := ctx.(type) {
	case Catalog[T]:
		fn, ok := c.Handler(h.symbol)
		if !ok {
			return h, fmt.Errorf("%w: %q", ErrHandlerNotFound, h.symbol)
		}
		return HandlerRef[T]{handler: fn, symbol: h.symbol, bound: true}, nil
	case map[string]T:
		fn, ok := c[h.symbol]
		if !ok {
			return h, fmt.Errorf("%w: %q", ErrHandlerNotFound, h.symbol)
		}
		return HandlerRef[T]{handler: fn, symbol: h.symbol, bound: true}, nil
	}

	method := reflect.ValueOf(ctx).MethodByName(h.symbol)
	if !method.IsValid() {
		return h, fmt.Errorf("%w: %q on %T", ErrHandlerNotFound, h.symbol, ctx)
	}

	want := reflect.TypeOf((*T)(nil)).Elem()
	switch {
	case want.Kind() == reflect.Interface && method.Type().AssignableTo(want):
	case want.Kind() != reflect.Interface && method.Type().ConvertibleTo(want):
		// Func types convert when their signatures are identical; this
		// also gives the value the named handler type.
		method = method.Convert(want)
	default:
		return h, fmt.Errorf("%w: %T.%s is %s, want %s", ErrHandlerType, ctx, h.symbol, method.Type(), want)
	}

	fn, ok := method.Interface().(T)
	if !ok {
		return h, fmt.Errorf("%w: %T.%s", ErrHandlerType, ctx, h.symbol)
	}
	return HandlerRef[T]{handler: fn, symbol: h.symbol, bound: true}, nil
}
