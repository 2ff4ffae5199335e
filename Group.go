package urlresolve

import (
	"github.com/rohanthewiz/urlresolve/core/resolve"
)

// Group collects route specs under a common prefix.
// Groups can be nested to build the same hierarchy Include does, with
// the declaration order of the calls kept as the resolution order.
//
//	g := urlresolve.NewGroup[Handler]("")
//	g.URL("", home, "home")
//	api := g.Group("api/:v/")
//	api.URL(":id/profile", profile, "profile")
//	urls, err := urlresolve.New(g.Specs())
type Group[T any] struct {
	// prefix is the template the group's Include matches as a prefix
	prefix string
	// entries are the group's specs and subgroups in declaration order
	entries []groupEntry[T]
	// context overrides the inherited handler context when set
	context    any
	hasContext bool
}

// groupEntry is either a spec or a subgroup.
type groupEntry[T any] struct {
	spec  resolve.Spec[T]
	group *Group[T]
}

// NewGroup starts a group. Use "" for the top-level list.
func NewGroup[T any](prefix string) *Group[T] {
	return &Group[T]{prefix: prefix}
}

// Group adds a subgroup matching prefix after the parent's prefix and
// returns it. The subgroup sits where it was declared among its siblings.
func (g *Group[T]) Group(prefix string) *Group[T] {
	sub := NewGroup[T](prefix)
	g.entries = append(g.entries, groupEntry[T]{group: sub})
	return sub
}

// URL adds a route with a direct handler.
func (g *Group[T]) URL(template string, handler T, name string) *Group[T] {
	return g.Add(resolve.URL(template, handler, name))
}

// View adds a route whose handler is looked up by symbol on the context.
func (g *Group[T]) View(template, symbol, name string) *Group[T] {
	return g.Add(resolve.View[T](template, symbol, name))
}

// Add appends ready-made specs.
func (g *Group[T]) Add(specs ...resolve.Spec[T]) *Group[T] {
	for _, spec := range specs {
		g.entries = append(g.entries, groupEntry[T]{spec: spec})
	}
	return g
}

// WithContext binds the group's symbolic handlers against ctx instead of the
// context of the enclosing list, or the one given to New for a top-level group.
// Entries with a context of their own keep it.
func (g *Group[T]) WithContext(ctx any) *Group[T] {
	g.context = ctx
	g.hasContext = true
	return g
}

// Specs returns the group's own entries, subgroups included as Includes.
func (g *Group[T]) Specs() []resolve.Spec[T] {
	specs := make([]resolve.Spec[T], 0, len(g.entries))
	for _, e := range g.entries {
		spec := e.spec
		if e.group != nil {
			spec = e.group.Spec()
		}
		if _, ok := spec.Context(); g.hasContext && !ok {
			spec = spec.WithContext(g.context)
		}
		specs = append(specs, spec)
	}
	return specs
}

// Spec returns the whole group as a single Include.
func (g *Group[T]) Spec() resolve.Spec[T] {
	return resolve.Include(g.prefix, g.Specs()...)
}
