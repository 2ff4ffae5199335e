// Package resolve compiles URL path templates into matchers, composes them
// into a tree, and resolves paths in both directions.
//
// A template is literal text plus `:name` placeholders, each capturing one
// or more characters other than "/":
//
//	users/:id/profile
//
// A *Pattern matches a whole path fragment and carries a handler of any type
// T. A *Resolver matches its template as a prefix and hands the rest of the
// path to its children, in order; the first child to match wins.
//
//	root, err := resolve.Build("/", nil,
//		resolve.URL("", home, "home"),
//		resolve.Include("api/:v/",
//			resolve.URL(":id/profile", profile, "profile"),
//		),
//	)
//
//	m, err := root.Resolve("/api/2/42/profile")
//	// m.Args == []string{"2", "42"}, m.Name == "profile"
//
//	p, err := root.Reverse("profile", "2", "42")
//	// p == "api/2/42/profile"
//
// Handlers may also be named symbolically with View and looked up on a
// context object when the tree is built.
package resolve
