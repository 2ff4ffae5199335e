package resolve

import "sort"

// ReverseEntry is what Reverse needs to rebuild a path for a name:
// the placeholder names it expects and the template to fill, both relative
// to the Resolver holding the entry.
type ReverseEntry struct {
	Params   []string
	Template string

	// target is the *Pattern the entry leads back to.
	target any
}

// populate builds the reverse lookup table from the children.
//
// Children are walked last to first and later writes overwrite earlier ones,
// so when names collide the earliest-declared child wins. A nested Resolver
// contributes its own, already built, table prefixed with its template and
// placeholder names; collisions are settled per level, not across the tree.
func (r *Resolver[T]) populate() map[string]ReverseEntry {
	lookups := make(map[string]ReverseEntry)

	for i := len(r.children) - 1; i >= 0; i-- {
		switch c := r.children[i].(type) {
		case *Resolver[T]:
			for name, sub := range c.lookups {
				params := make([]string, 0, len(c.params)+len(sub.Params))
				params = append(append(params, c.params...), sub.Params...)
				lookups[name] = ReverseEntry{
					Params:   params,
					Template: c.template + sub.Template,
					target:   sub.target,
				}
			}
		case *Pattern[T]:
			if c.name == "" {
				continue
			}
			lookups[c.name] = ReverseEntry{
				Params:   append([]string(nil), c.params...),
				Template: c.template,
				target:   c,
			}
		}
	}

	return lookups
}

// Reverse builds the path fragment, relative to this Resolver, for the
// pattern registered as name, filling its placeholders with args in order.
//
// It fails with a *NoReverseMatch when name is unknown or when the number of
// args differs from the number of placeholders.
func (r *Resolver[T]) Reverse(name string, args ...string) (string, error) {
	entry, ok := r.lookups[name]
	if !ok {
		return "", unknownName(name, args)
	}
	if len(args) != len(entry.Params) {
		return "", wrongArgCount(name, len(entry.Params), args)
	}
	return fillTemplate(entry.Template, args), nil
}

// Lookup returns the reverse entry registered as name.
func (r *Resolver[T]) Lookup(name string) (ReverseEntry, bool) {
	entry, ok := r.lookups[name]
	if !ok {
		return ReverseEntry{}, false
	}
	entry.Params = append([]string(nil), entry.Params...)
	return entry, true
}

// Names returns every name Reverse accepts, sorted.
func (r *Resolver[T]) Names() []string {
	names := make([]string, 0, len(r.lookups))
	for name := range r.lookups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
