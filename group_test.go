package urlresolve_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/urlresolve"
)

type handler func(args ...string) string

func reply(s string) handler {
	return func(args ...string) string { return s }
}

func TestGroup(t *testing.T) {
	g := urlresolve.NewGroup[handler]("")
	g.URL("", reply("home"), "home")

	// Nested groups keep their declared position
	users := g.Group("users/")
	users.URL("", reply("list"), "users")
	users.URL(":id/", reply("show"), "user")

	g.URL("about/", reply("about"), "about")

	urls, err := urlresolve.New(g.Specs())
	assert.Nil(t, err)

	m, err := urls.Resolve("/users/5/")
	assert.Nil(t, err)
	assert.Equal(t, m.Name, "user")
	assert.Equal(t, m.Handler(), "show")
	assert.Equal(t, m.Args[0], "5")

	path, err := urls.Reverse("about")
	assert.Nil(t, err)
	assert.Equal(t, path, "/about/")

	routes := urls.Routes()
	assert.Equal(t, len(routes), 4)
	assert.Equal(t, routes[1].Template, "users/")
	assert.Equal(t, routes[3].Name, "about")
}

func TestGroupNested(t *testing.T) {
	g := urlresolve.NewGroup[handler]("")
	v := g.Group("api/:v/")
	v.Group("users/:id/").URL("profile", reply("profile"), "profile")

	urls, err := urlresolve.New(g.Specs())
	assert.Nil(t, err)

	path, err := urls.Reverse("profile", "2", "42")
	assert.Nil(t, err)
	assert.Equal(t, path, "/api/2/users/42/profile")

	m, err := urls.Resolve(path)
	assert.Nil(t, err)
	assert.DeepEqual(t, m.Args, []string{"2", "42"})
}

type adminViews struct{}

func (adminViews) Dashboard(args ...string) string { return "admin dashboard" }

type siteViews struct{}

func (siteViews) Dashboard(args ...string) string { return "site dashboard" }

func TestGroupWithContext(t *testing.T) {
	g := urlresolve.NewGroup[handler]("")
	g.View("", "Dashboard", "site")
	g.Group("admin/").WithContext(adminViews{}).View("", "Dashboard", "admin")

	urls, err := urlresolve.New(g.Specs(), urlresolve.WithContext(siteViews{}))
	assert.Nil(t, err)

	m, err := urls.Resolve("/")
	assert.Nil(t, err)
	assert.Equal(t, m.Handler(), "site dashboard")

	m, err = urls.Resolve("/admin/")
	assert.Nil(t, err)
	assert.Equal(t, m.Handler(), "admin dashboard")
}

func TestTopLevelGroupWithContext(t *testing.T) {
	g := urlresolve.NewGroup[handler]("").WithContext(adminViews{})
	g.View("", "Dashboard", "admin")
	g.Group("site/").WithContext(siteViews{}).View("", "Dashboard", "site")

	urls, err := urlresolve.New(g.Specs())
	assert.Nil(t, err)

	m, err := urls.Resolve("/")
	assert.Nil(t, err)
	assert.Equal(t, m.Handler(), "admin dashboard")

	m, err = urls.Resolve("/site/")
	assert.Nil(t, err)
	assert.Equal(t, m.Handler(), "site dashboard")

	// The group's context wins over the one given to New.
	urls, err = urlresolve.New(g.Specs(), urlresolve.WithContext(siteViews{}))
	assert.Nil(t, err)
	m, err = urls.Resolve("/")
	assert.Nil(t, err)
	assert.Equal(t, m.Handler(), "admin dashboard")
}

func TestGroupSpec(t *testing.T) {
	g := urlresolve.NewGroup[handler]("blog/")
	g.URL(":slug/", reply("post"), "post")

	spec := g.Spec()
	assert.True(t, spec.IsInclude())
	assert.Equal(t, spec.Template, "blog/")
	assert.Equal(t, len(spec.Children), 1)
}
