package pages

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"site/framework"
	"site/internal/cms"
)

type resolverFixture struct {
	store     *fakeStore
	redirects *fakeRedirects
	outcomes  []Outcome
	resolver  *Resolver
}

func newResolverFixture(t *testing.T) *resolverFixture {
	t.Helper()

	fixture := &resolverFixture{
		store:     newFakeStore(),
		redirects: &fakeRedirects{targets: map[string]string{}},
	}
	resolver, err := NewResolver(Config{
		Store:        fixture.store,
		Redirects:    fixture.redirects,
		FallbackHome: &cms.Page{ID: "home-static", Slug: HomeSlug, Title: "Home"},
		Metadata: func(page *cms.Page) framework.Metadata {
			if page == nil {
				return framework.Metadata{Title: "Site"}
			}
			return framework.Metadata{Title: page.Title + " | Site"}
		},
		OnResolve: func(outcome Outcome) {
			fixture.outcomes = append(fixture.outcomes, outcome)
		},
	})
	require.NoError(t, err)
	fixture.resolver = resolver
	return fixture
}

func TestResolveRendersStoredPage(t *testing.T) {
	fx := newResolverFixture(t)
	about := &cms.Page{ID: "1", Slug: "about", Title: "About"}
	fx.store.published["about"] = about

	resolution, err := fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(false), []string{"about"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeFound, resolution.Outcome)
	assert.Same(t, about, resolution.Page)
	assert.Equal(t, []redirectCall{{url: "/about", disableNotFound: true}}, fx.redirects.calls)
	assert.Equal(t, []Outcome{OutcomeFound}, fx.outcomes)
}

func TestResolveAbsentSegmentsBehavesLikeHome(t *testing.T) {
	fx := newResolverFixture(t)
	home := &cms.Page{ID: "h", Slug: HomeSlug}
	fx.store.published[HomeSlug] = home

	fromNil, err := fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(false), nil)
	require.NoError(t, err)
	fromHome, err := fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(false), []string{"home"})
	require.NoError(t, err)

	assert.Equal(t, fromHome, fromNil)
	assert.Same(t, home, fromNil.Page)
}

func TestResolveEmptyStoreUsesFallbackHome(t *testing.T) {
	fx := newResolverFixture(t)

	resolution, err := fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(false), []string{"home"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeFallback, resolution.Outcome)
	assert.Equal(t, "home-static", resolution.Page.ID)
}

func TestResolveFallbackOnlyAppliesToHome(t *testing.T) {
	fx := newResolverFixture(t)

	_, err := fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(false), []string{"about"})
	assert.ErrorIs(t, err, cms.ErrNotFound)
	assert.Equal(t, []redirectCall{{url: "/about", disableNotFound: false}}, fx.redirects.calls)
	assert.Equal(t, []Outcome{OutcomeNotFound}, fx.outcomes)
}

func TestResolveMultiSegmentSkipsLookup(t *testing.T) {
	fx := newResolverFixture(t)
	fx.store.published["a"] = &cms.Page{ID: "a"}
	fx.redirects.targets["/a/b"] = "/a"

	_, err := fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(false), []string{"a", "b"})

	var redirect *framework.RedirectError
	require.ErrorAs(t, err, &redirect)
	assert.Equal(t, "/a", redirect.Location)
	assert.Equal(t, http.StatusTemporaryRedirect, redirect.StatusCode)
	assert.Zero(t, fx.store.pageQueryCount())
	assert.Equal(t, []Outcome{OutcomeRedirect}, fx.outcomes)
}

func TestResolveRedirectStillAppliesToExistingPage(t *testing.T) {
	fx := newResolverFixture(t)
	fx.store.published["old"] = &cms.Page{ID: "1", Slug: "old"}
	fx.redirects.targets["/old"] = "/new"

	_, err := fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(false), []string{"old"})

	var redirect *framework.RedirectError
	require.ErrorAs(t, err, &redirect)
	assert.Equal(t, "/new", redirect.Location)
}

func TestResolveDraftOnlyPage(t *testing.T) {
	fx := newResolverFixture(t)
	fx.store.drafts["upcoming"] = &cms.Page{ID: "d", Slug: "upcoming"}

	preview, err := fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(true), []string{"upcoming"})
	require.NoError(t, err)
	assert.Equal(t, "d", preview.Page.ID)
	assert.True(t, preview.Draft)

	_, err = fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(false), []string{"upcoming"})
	assert.ErrorIs(t, err, cms.ErrNotFound)
	assert.Equal(t, redirectCall{url: "/upcoming", disableNotFound: false}, fx.redirects.calls[len(fx.redirects.calls)-1])
}

func TestResolvePropagatesStoreErrors(t *testing.T) {
	fx := newResolverFixture(t)
	boom := errors.New("cms down")
	fx.store.failNext = boom

	_, err := fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(false), []string{"about"})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, fx.redirects.calls)
	assert.Equal(t, []Outcome{OutcomeError}, fx.outcomes)
}

func TestResolvePropagatesDecodeErrors(t *testing.T) {
	fx := newResolverFixture(t)

	_, err := fx.resolver.Resolve(context.Background(), fx.resolver.NewScope(false), []string{"bad%zz"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cms.ErrNotFound)
	assert.Zero(t, fx.store.pageQueryCount())
}

func TestResolveReusesScopeLookup(t *testing.T) {
	fx := newResolverFixture(t)
	fx.store.published["about"] = &cms.Page{ID: "1", Slug: "about"}
	scope := fx.resolver.NewScope(false)

	first, err := fx.resolver.Resolve(context.Background(), scope, []string{"about"})
	require.NoError(t, err)
	second, err := fx.resolver.Resolve(context.Background(), scope, []string{"about"})
	require.NoError(t, err)

	assert.Same(t, first.Page, second.Page)
	assert.Equal(t, 1, fx.store.pageQueryCount())
}

func TestMetadataMultiSegmentSkipsStore(t *testing.T) {
	fx := newResolverFixture(t)

	meta, err := fx.resolver.Metadata(context.Background(), fx.resolver.NewScope(false), []string{"a", "b"})
	require.NoError(t, err)

	assert.True(t, meta.IsZero())
	assert.Zero(t, fx.store.pageQueryCount())
}

func TestMetadataUsesItsOwnLookup(t *testing.T) {
	fx := newResolverFixture(t)
	fx.store.published["about"] = &cms.Page{ID: "1", Slug: "about", Title: "About"}
	scope := fx.resolver.NewScope(false)

	_, err := fx.resolver.Resolve(context.Background(), scope, []string{"about"})
	require.NoError(t, err)
	meta, err := fx.resolver.Metadata(context.Background(), scope, []string{"about"})
	require.NoError(t, err)
	_, err = fx.resolver.Metadata(context.Background(), scope, []string{"about"})
	require.NoError(t, err)

	assert.Equal(t, "About | Site", meta.Title)
	assert.Equal(t, 2, fx.store.pageQueryCount())
}

func TestMetadataMissingPageUsesDefaults(t *testing.T) {
	fx := newResolverFixture(t)

	meta, err := fx.resolver.Metadata(context.Background(), fx.resolver.NewScope(false), nil)
	require.NoError(t, err)

	assert.Equal(t, "Site", meta.Title)
	assert.Equal(t, []cms.PageQuery{{Slug: HomeSlug}}, fx.store.pageQueries)
}

func TestStaticParamsExcludesHome(t *testing.T) {
	fx := newResolverFixture(t)
	fx.store.slugs = []string{"home", "about", "contact"}

	params, err := fx.resolver.StaticParams(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Params{{Slug: []string{"about"}}, {Slug: []string{"contact"}}}, params)
	assert.Equal(t, []cms.SlugQuery{{Draft: false, Limit: 1000, OverrideAccess: false}}, fx.store.slugQueries)
}

func TestStaticParamsPropagatesErrors(t *testing.T) {
	fx := newResolverFixture(t)
	fx.store.failNext = errors.New("cms down")

	_, err := fx.resolver.StaticParams(context.Background())
	assert.Error(t, err)
}

func TestNewResolverRequiresDependencies(t *testing.T) {
	_, err := NewResolver(Config{Redirects: &fakeRedirects{}})
	assert.Error(t, err)

	_, err = NewResolver(Config{Store: newFakeStore()})
	assert.Error(t, err)
}
