package pages

import (
	"context"
	"errors"
	"fmt"

	"site/framework"
	"site/internal/cms"
)

type Outcome string

const (
	OutcomeFound    Outcome = "found"
	OutcomeFallback Outcome = "fallback"
	OutcomeRedirect Outcome = "redirect"
	OutcomeNotFound Outcome = "not_found"
	OutcomeError    Outcome = "error"
)

// RedirectResolver answers a decoded URL with a *framework.RedirectError,
// a not-found error, or nil when disableNotFound is set and nothing
// matches.
type RedirectResolver interface {
	Resolve(ctx context.Context, url string, disableNotFound bool) error
}

// MetadataFunc turns a page (possibly nil) into head metadata.
type MetadataFunc func(page *cms.Page) framework.Metadata

type Config struct {
	Store        cms.Store
	Redirects    RedirectResolver
	Metadata     MetadataFunc
	FallbackHome *cms.Page

	StaticParamsLimit int

	// OnResolve is told how every page request ended.
	OnResolve func(outcome Outcome)
}

type Resolver struct {
	store        cms.Store
	redirects    RedirectResolver
	metadata     MetadataFunc
	fallbackHome *cms.Page
	staticLimit  int
	onResolve    func(outcome Outcome)
}

func NewResolver(cfg Config) (*Resolver, error) {
	if cfg.Store == nil {
		return nil, errors.New("page store is required")
	}
	if cfg.Redirects == nil {
		return nil, errors.New("redirect resolver is required")
	}

	metadata := cfg.Metadata
	if metadata == nil {
		metadata = func(*cms.Page) framework.Metadata { return framework.Metadata{} }
	}

	onResolve := cfg.OnResolve
	if onResolve == nil {
		onResolve = func(Outcome) {}
	}

	limit := cfg.StaticParamsLimit
	if limit < 1 {
		limit = 1000
	}

	return &Resolver{
		store:        cfg.Store,
		redirects:    cfg.Redirects,
		metadata:     metadata,
		fallbackHome: cfg.FallbackHome,
		staticLimit:  limit,
		onResolve:    onResolve,
	}, nil
}

func (r *Resolver) NewScope(draft bool) *Scope {
	return NewScope(r.store, draft)
}

// Resolution is a page that should be rendered.
type Resolution struct {
	Outcome Outcome
	Route   Route
	Page    *cms.Page
	Draft   bool
}

// Resolve decides what a catch-all request renders. A returned error is
// either a redirect, a not-found error from the redirect resolver, or a
// failure to propagate.
func (r *Resolver) Resolve(ctx context.Context, scope *Scope, segments []string) (Resolution, error) {
	route, err := Decode(segments)
	if err != nil {
		r.onResolve(OutcomeError)
		return Resolution{}, err
	}

	var page *cms.Page
	outcome := OutcomeFound
	if route.HasKey && route.Key != "" {
		page, err = scope.Page.Find(ctx, route.Key)
		if err != nil {
			r.onResolve(OutcomeError)
			return Resolution{}, err
		}

		if page == nil && route.Key == HomeSlug && r.fallbackHome != nil {
			page = r.fallbackHome
			outcome = OutcomeFallback
		}
	}

	if page == nil {
		err := r.redirects.Resolve(ctx, route.URL, false)
		if err == nil {
			err = fmt.Errorf("no page for %q: %w", route.URL, cms.ErrNotFound)
		}
		r.onResolve(classify(err))
		return Resolution{Route: route, Draft: scope.Draft}, err
	}

	// Redirects still apply to existing pages so moved content keeps
	// forwarding.
	if err := r.redirects.Resolve(ctx, route.URL, true); err != nil {
		r.onResolve(classify(err))
		return Resolution{Route: route, Draft: scope.Draft}, err
	}

	r.onResolve(outcome)
	return Resolution{
		Outcome: outcome,
		Route:   route,
		Page:    page,
		Draft:   scope.Draft,
	}, nil
}

// Metadata builds head metadata with the scope's metadata lookup. Paths
// with more than one segment yield empty metadata without a query.
func (r *Resolver) Metadata(ctx context.Context, scope *Scope, segments []string) (framework.Metadata, error) {
	key, ok, err := LookupKey(segments)
	if err != nil {
		return framework.Metadata{}, err
	}
	if !ok {
		return framework.Metadata{}, nil
	}

	var page *cms.Page
	if key != "" {
		page, err = scope.Metadata.Find(ctx, key)
		if err != nil {
			return framework.Metadata{}, err
		}
	}

	return r.metadata(page), nil
}

// Params is one ahead-of-time route, shaped like the catch-all params.
type Params struct {
	Slug []string `json:"slug"`
}

// StaticParams lists every published page except home. It runs with the
// store's default access rules.
func (r *Resolver) StaticParams(ctx context.Context) ([]Params, error) {
	slugs, err := r.store.ListPageSlugs(ctx, cms.SlugQuery{
		Draft:          false,
		Limit:          r.staticLimit,
		OverrideAccess: false,
	})
	if err != nil {
		return nil, err
	}

	params := make([]Params, 0, len(slugs))
	for _, slug := range slugs {
		if slug == HomeSlug {
			continue
		}
		params = append(params, Params{Slug: []string{slug}})
	}

	return params, nil
}

func classify(err error) Outcome {
	var redirect *framework.RedirectError
	switch {
	case errors.As(err, &redirect):
		return OutcomeRedirect
	case errors.Is(err, cms.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
