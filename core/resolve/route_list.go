package resolve

import (
	"fmt"
	"io"
	"strings"
)

// RouteList describes one Pattern reachable from a Resolver, for listings
// and documentation.
//
// Fields:
//   - Name: registration name ("" when unnamed)
//   - Template: full template from the Resolver down, e.g. "users/:id/"
//   - Params: placeholder names along the way, outermost first
//   - HandlerRef: the handler's symbolic name, or its type for direct handlers
//   - Reversible: whether Reverse(Name) leads back to this pattern; false for
//     unnamed patterns and for names shadowed by an earlier declaration
type RouteList struct {
	Name       string
	Template   string
	Params     []string
	HandlerRef string
	Reversible bool
}

// ListRoutes returns every Pattern below r in resolution order.
func (r *Resolver[T]) ListRoutes() (routes []RouteList) {
	r.walk("", nil, func(p *Pattern[T], template string, params []string) {
		route := RouteList{
			Name:       p.name,
			Template:   template,
			Params:     params,
			HandlerRef: p.handler.String(),
		}
		if p.name != "" {
			entry, ok := r.lookups[p.name]
			route.Reversible = ok && entry.target == any(p)
		}
		routes = append(routes, route)
	})
	return
}

func (r *Resolver[T]) walk(prefix string, params []string, visit func(*Pattern[T], string, []string)) {
	for _, child := range r.children {
		switch c := child.(type) {
		case *Resolver[T]:
			c.walk(prefix+c.template, join(params, c.params), visit)
		case *Pattern[T]:
			visit(c, prefix+c.template, join(params, c.params))
		}
	}
}

func join(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}

// Dump writes the tree below r as an indented outline, one node per line.
func (r *Resolver[T]) Dump(w io.Writer) error {
	if _, err := fmt.Fprintln(w, r.String()); err != nil {
		return err
	}
	return r.dump(w, 1)
}

func (r *Resolver[T]) dump(w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, child := range r.children {
		if _, err := fmt.Fprintf(w, "%s%s", indent, child); err != nil {
			return err
		}
		switch c := child.(type) {
		case *Pattern[T]:
			if _, err := fmt.Fprintf(w, " -> %s\n", c.handler); err != nil {
				return err
			}
		case *Resolver[T]:
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			if err := c.dump(w, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
