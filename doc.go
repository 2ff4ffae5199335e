// Package urlresolve maps URL paths to handlers and route names back to
// paths.
//
// Routes are declared as a list of specs (see package core/resolve) or with
// a Group, and built with New:
//
//	urls, err := urlresolve.New([]resolve.Spec[Handler]{
//		resolve.URL("", home, "home"),
//		resolve.Include("users/",
//			resolve.URL(":id/", user, "user"),
//		),
//	})
//
//	m, err := urls.Resolve("/users/42/")   // m.Handler == user, m.Args == ["42"]
//	p, err := urls.Reverse("user", "42")   // "/users/42/"
//
// Routes are tried in declared order and the first match wins. When two
// routes share a name, Reverse uses the one declared first.
package urlresolve
