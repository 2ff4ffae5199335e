package resolve_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/urlresolve/core/resolve"
)

type view func(args ...string) string

func named(name string) view {
	return func(args ...string) string {
		return name + "(" + strings.Join(args, ",") + ")"
	}
}

func mustBuild(t *testing.T, specs ...resolve.Spec[view]) *resolve.Resolver[view] {
	t.Helper()
	r, err := resolve.Build("/", nil, specs...)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return r
}

func TestResolveStatic(t *testing.T) {
	r := mustBuild(t,
		resolve.URL("", named("home"), "home"),
		resolve.URL("about/", named("about"), "about"),
	)

	m, err := r.Resolve("/")
	assert.Nil(t, err)
	assert.Equal(t, m.Name, "home")
	assert.Equal(t, len(m.Args), 0)
	assert.Equal(t, m.Handler(), "home()")

	m, err = r.Resolve("/about/")
	assert.Nil(t, err)
	assert.Equal(t, m.Name, "about")
}

func TestResolveLiteralDot(t *testing.T) {
	r := mustBuild(t, resolve.URL("a.b", named("ab"), "ab"))

	m, err := r.Resolve("/a.b")
	assert.Nil(t, err)
	assert.Equal(t, m.Name, "ab")

	_, err = r.Resolve("/axb")
	assert.True(t, errors.Is(err, resolve.ErrNotFound))
}

func TestResolveParameterExcludesSeparator(t *testing.T) {
	r := mustBuild(t, resolve.URL("users/:id/profile", named("profile"), "profile"))

	m, err := r.Resolve("/users/abc/profile")
	assert.Nil(t, err)
	assert.DeepEqual(t, m.Args, []string{"abc"})

	_, err = r.Resolve("/users/1/2/profile")
	assert.True(t, errors.Is(err, resolve.ErrNotFound))
}

func TestResolveFirstMatchWins(t *testing.T) {
	calls := 0
	var second view = func(args ...string) string {
		calls++
		return "second"
	}
	r := mustBuild(t,
		resolve.Include("users/",
			resolve.URL(":id/", named("first"), "first"),
		),
		resolve.Include("users/",
			resolve.URL(":id/", second, "second"),
		),
	)

	m, err := r.Resolve("/users/7/")
	assert.Nil(t, err)
	assert.Equal(t, m.Name, "first")
	assert.Equal(t, m.Handler("7"), "first(7)")
	assert.Equal(t, calls, 0)
}

func TestResolveBacktracksToNextSibling(t *testing.T) {
	r := mustBuild(t,
		resolve.Include("users/",
			resolve.URL(":id/edit", named("edit"), "edit"),
		),
		resolve.Include("users/",
			resolve.URL(":id/delete", named("delete"), "delete"),
		),
	)

	m, err := r.Resolve("/users/7/delete")
	assert.Nil(t, err)
	assert.Equal(t, m.Name, "delete")
	assert.DeepEqual(t, m.Args, []string{"7"})
}

func TestResolveNestedParameterOrder(t *testing.T) {
	r := mustBuild(t,
		resolve.Include("api/:v/",
			resolve.URL(":id/profile", named("profile"), "profile"),
		),
	)

	m, err := r.Resolve("/api/2/42/profile")
	assert.Nil(t, err)
	assert.Equal(t, m.Name, "profile")
	assert.DeepEqual(t, m.Args, []string{"2", "42"})
	assert.DeepEqual(t, m.Keys, []string{"v", "id"})

	params := m.Params()
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Key, "v")
	assert.Equal(t, params[0].Value, "2")
	assert.Equal(t, params[1].Key, "id")
	assert.Equal(t, params[1].Value, "42")

	v, ok := m.Param("id")
	assert.True(t, ok)
	assert.Equal(t, v, "42")

	_, ok = m.Param("missing")
	assert.False(t, ok)
}

func TestResolveDeepNesting(t *testing.T) {
	r := mustBuild(t,
		resolve.Include("org/:org/",
			resolve.Include("team/:team/",
				resolve.Include("member/:member/",
					resolve.URL("", named("member"), "member"),
				),
			),
		),
	)

	m, err := r.Resolve("/org/acme/team/red/member/ann/")
	assert.Nil(t, err)
	assert.DeepEqual(t, m.Args, []string{"acme", "red", "ann"})
	assert.DeepEqual(t, m.Keys, []string{"org", "team", "member"})
}

func TestResolveNotFoundTrail(t *testing.T) {
	r := mustBuild(t,
		resolve.URL("", named("home"), "home"),
		resolve.URL("about/", named("about"), "about"),
		resolve.Include("users/",
			resolve.URL("", named("users"), "users"),
		),
	)

	_, err := r.Resolve("/zzz")
	var nf *resolve.NotFound[view]
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, nf.Path, "zzz")
	assert.Equal(t, len(nf.Tried), 3)
	assert.Equal(t, nf.Tried[0].Node.Template(), "")
	assert.Equal(t, nf.Tried[1].Node.Template(), "about/")
	assert.Equal(t, nf.Tried[2].Node.Template(), "users/")
	assert.True(t, nf.Tried[2].Nested == nil)
}

func TestResolveNotFoundNestedTrail(t *testing.T) {
	r := mustBuild(t,
		resolve.Include("users/",
			resolve.URL("", named("users"), "users"),
			resolve.URL(":id/", named("user"), "user"),
		),
	)

	_, err := r.Resolve("/users/1/2/")
	var nf *resolve.NotFound[view]
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, nf.Path, "users/1/2/")
	assert.Equal(t, len(nf.Tried), 2)

	assert.Equal(t, nf.Tried[0].Node.Template(), "users/")
	assert.True(t, nf.Tried[0].Nested != nil)
	assert.Equal(t, nf.Tried[0].Nested.Node.Template(), "")
	assert.Equal(t, nf.Tried[1].Nested.Node.Template(), ":id/")

	assert.Equal(t, len(nf.Tried[1].Chain()), 2)
	assert.Equal(t, nf.Tried[1].Template(), "users/:id/")
	assert.Equal(t, nf.Tried[1].String(), `<users/> -> <user ":id/">`)
}

func TestResolvePrefixMissHasNoTrail(t *testing.T) {
	r, err := resolve.NewResolver[view]("/")
	assert.Nil(t, err)

	_, err = r.Resolve("no-slash")
	var nf *resolve.NotFound[view]
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, nf.Path, "no-slash")
	assert.True(t, nf.Tried == nil)
}

func TestResolveEmptyChildrenAlwaysFails(t *testing.T) {
	r, err := resolve.NewResolver[view]("/")
	assert.Nil(t, err)

	for _, path := range []string{"/", "/x", "/x/y/"} {
		_, err = r.Resolve(path)
		var nf *resolve.NotFound[view]
		assert.True(t, errors.As(err, &nf))
		assert.True(t, nf.Tried != nil)
		assert.Equal(t, len(nf.Tried), 0)
	}
}

func TestResolveEmptyIncludeIsRecordedInTrail(t *testing.T) {
	r := mustBuild(t,
		resolve.Include[view]("empty/"),
		resolve.URL("other/", named("other"), "other"),
	)

	_, err := r.Resolve("/empty/x")
	var nf *resolve.NotFound[view]
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, len(nf.Tried), 2)
	assert.Equal(t, nf.Tried[0].Node.Template(), "empty/")
	assert.True(t, nf.Tried[0].Nested == nil)
}

func TestResolveUnboundHandlerFailsLoudly(t *testing.T) {
	r := mustBuild(t,
		resolve.Include("a/",
			resolve.View[view]("b/", "missing", "b"),
		),
		resolve.URL("a/b/", named("never"), "never"),
	)

	m, err := r.Resolve("/a/b/")
	assert.True(t, m == nil)
	assert.True(t, errors.Is(err, resolve.ErrUnboundHandler))
	assert.False(t, errors.Is(err, resolve.ErrNotFound))
}

func TestResolveMatchesAreIndependent(t *testing.T) {
	r := mustBuild(t,
		resolve.Include(":lang/",
			resolve.URL(":page/", named("page"), "page"),
		),
	)

	a, err := r.Resolve("/en/home/")
	assert.Nil(t, err)
	b, err := r.Resolve("/fr/accueil/")
	assert.Nil(t, err)

	a.Args[0] = "changed"
	assert.DeepEqual(t, b.Args, []string{"fr", "accueil"})
}

func TestPatternString(t *testing.T) {
	p, err := resolve.NewPattern("users/:id/", resolve.Direct(named("user")), "user")
	assert.Nil(t, err)
	assert.Equal(t, p.String(), `<user "users/:id/">`)
	assert.DeepEqual(t, p.Params(), []string{"id"})

	r, err := resolve.NewResolver[view]("api/", p)
	assert.Nil(t, err)
	assert.Equal(t, r.String(), "<api/>")
	assert.Equal(t, len(r.Children()), 1)
}

func TestPatternResolveIsFullMatch(t *testing.T) {
	p, err := resolve.NewPattern("users/:id/", resolve.Direct(named("user")), "user")
	assert.Nil(t, err)

	_, ok, err := p.Resolve("users/1/extra")
	assert.Nil(t, err)
	assert.False(t, ok)

	m, ok, err := p.Resolve("users/1/")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.DeepEqual(t, m.Args, []string{"1"})
}
