package resolve_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/urlresolve/core/resolve"
)

func TestReverseStatic(t *testing.T) {
	r := mustBuild(t,
		resolve.URL("", named("home"), "home"),
		resolve.URL("about/", named("about"), "about"),
	)

	path, err := r.Reverse("about")
	assert.Nil(t, err)
	assert.Equal(t, path, "about/")

	path, err = r.Reverse("home")
	assert.Nil(t, err)
	assert.Equal(t, path, "")
}

func TestReverseNested(t *testing.T) {
	r := mustBuild(t,
		resolve.Include("api/:v/",
			resolve.URL(":id/profile", named("profile"), "profile"),
		),
	)

	path, err := r.Reverse("profile", "2", "42")
	assert.Nil(t, err)
	assert.Equal(t, path, "api/2/42/profile")

	entry, ok := r.Lookup("profile")
	assert.True(t, ok)
	assert.Equal(t, entry.Template, "api/:v/:id/profile")
	assert.DeepEqual(t, entry.Params, []string{"v", "id"})
}

func TestReverseEarliestDeclarationWins(t *testing.T) {
	r := mustBuild(t,
		resolve.URL("first/", named("a"), "x"),
		resolve.URL("second/", named("b"), "x"),
	)

	path, err := r.Reverse("x")
	assert.Nil(t, err)
	assert.Equal(t, path, "first/")
}

func TestReverseEarliestDeclarationWinsAcrossIncludes(t *testing.T) {
	r := mustBuild(t,
		resolve.Include("one/",
			resolve.URL("page/", named("a"), "page"),
		),
		resolve.Include("two/",
			resolve.URL("page/", named("b"), "page"),
		),
		resolve.URL("three/page/", named("c"), "page"),
	)

	path, err := r.Reverse("page")
	assert.Nil(t, err)
	assert.Equal(t, path, "one/page/")
}

func TestReverseWrongArgumentCount(t *testing.T) {
	r := mustBuild(t, resolve.URL("users/:id/", named("user"), "user"))

	_, err := r.Reverse("user")
	assert.True(t, errors.Is(err, resolve.ErrNoReverseMatch))
	assert.Contains(t, err.Error(), "expects 1 argument,")
	assert.Contains(t, err.Error(), "got 0")

	var nrm *resolve.NoReverseMatch
	assert.True(t, errors.As(err, &nrm))
	assert.Equal(t, nrm.Name, "user")
	assert.Equal(t, nrm.Expected, 1)

	_, err = r.Reverse("user", "1", "2")
	assert.Equal(t, err.Error(), `URL pattern named "user" expects 1 argument, but got 2: [1, 2]`)
}

func TestReverseWrongArgumentCountPlural(t *testing.T) {
	r := mustBuild(t, resolve.URL(":a/:b/", named("pair"), "pair"))

	_, err := r.Reverse("pair", "1")
	assert.Contains(t, err.Error(), "expects 2 arguments")
	assert.Contains(t, err.Error(), "got 1")
}

func TestReverseUnknownName(t *testing.T) {
	r := mustBuild(t, resolve.URL("about/", named("about"), "about"))

	_, err := r.Reverse("nope", "a")
	assert.True(t, errors.Is(err, resolve.ErrNoReverseMatch))
	assert.False(t, errors.Is(err, resolve.ErrNotFound))
	assert.Equal(t, err.Error(), `Reverse for "nope" with arguments [a] not found.`)

	var nrm *resolve.NoReverseMatch
	assert.True(t, errors.As(err, &nrm))
	assert.Equal(t, nrm.Expected, -1)
}

func TestReverseUnnamedPatternsAreNotIndexed(t *testing.T) {
	r := mustBuild(t,
		resolve.URL("anon/", named("anon"), ""),
		resolve.URL("known/", named("known"), "known"),
	)

	_, err := r.Reverse("")
	assert.True(t, errors.Is(err, resolve.ErrNoReverseMatch))
	assert.DeepEqual(t, r.Names(), []string{"known"})
}

func TestReverseRoundTrip(t *testing.T) {
	r := mustBuild(t,
		resolve.URL("", named("home"), "home"),
		resolve.Include("blog/:year/",
			resolve.URL("", named("archive"), "archive"),
			resolve.URL(":slug/", named("post"), "post"),
			resolve.Include("tag/:tag/",
				resolve.URL("page/:n", named("tagged"), "tagged"),
			),
		),
	)

	cases := []struct {
		name string
		args []string
	}{
		{"home", nil},
		{"archive", []string{"2024"}},
		{"post", []string{"2024", "hello-world"}},
		{"tagged", []string{"2023", "go", "3"}},
	}

	for _, c := range cases {
		path, err := r.Reverse(c.name, c.args...)
		assert.Nil(t, err)

		m, err := r.Resolve("/" + path)
		assert.Nil(t, err)
		assert.Equal(t, m.Name, c.name)
		assert.Equal(t, len(m.Args), len(c.args))
		for i := range c.args {
			assert.Equal(t, m.Args[i], c.args[i])
		}
	}
}

func TestReverseNames(t *testing.T) {
	r := mustBuild(t,
		resolve.URL("b/", named("b"), "b"),
		resolve.Include("x/",
			resolve.URL("a/", named("a"), "a"),
		),
	)
	assert.DeepEqual(t, r.Names(), []string{"a", "b"})
}
