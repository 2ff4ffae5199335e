package resolve

// Match holds the details of a successful resolution.
type Match[T any] struct {
	// Handler is the bound handler of the matched Pattern.
	Handler T

	// Args are the captured values, outermost Resolver first.
	Args []string

	// Keys are the placeholder names, parallel to Args.
	Keys []string

	// Name is the registration name of the matched Pattern ("" when unnamed).
	Name string
}

// Params pairs each captured value with its placeholder name.
func (m *Match[T]) Params() []Parameter {
	params := make([]Parameter, len(m.Args))
	for i, arg := range m.Args {
		params[i] = Parameter{Key: m.Keys[i], Value: arg}
	}
	return params
}

// Param returns the value captured for key. When a name repeats
// across levels the innermost capture wins.
func (m *Match[T]) Param(key string) (string, bool) {
	for i := len(m.Keys) - 1; i >= 0; i-- {
		if m.Keys[i] == key {
			return m.Args[i], true
		}
	}
	return "", false
}

// prepend adds a Resolver's own captures in front of the child's.
func (m *Match[T]) prepend(keys, args []string) {
	if len(args) == 0 {
		return
	}
	m.Args = append(append(make([]string, 0, len(args)+len(m.Args)), args...), m.Args...)
	m.Keys = append(append(make([]string, 0, len(keys)+len(m.Keys)), keys...), m.Keys...)
}
