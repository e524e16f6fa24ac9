package appcore

import (
	"context"
	"net/http"

	"site/framework"
	"site/internal/pages"
)

// LoadPage resolves the catch-all request into a renderable page. Redirects
// and misses come back as errors for the route engine to answer.
func LoadPage(
	ctx context.Context,
	appCtx *Context,
	r *http.Request,
	params framework.CatchAllParams,
) (PageView, error) {
	resolver, err := pageResolver(appCtx)
	if err != nil {
		return PageView{}, err
	}

	resolution, err := resolver.Resolve(ctx, requestScope(appCtx, r), params.Segments)
	if err != nil {
		return PageView{}, err
	}

	return PageView{
		Site:  appCtx.site,
		Page:  *resolution.Page,
		Draft: resolution.Draft,
	}, nil
}

func LoadMetadata(
	ctx context.Context,
	appCtx *Context,
	r *http.Request,
	params framework.CatchAllParams,
) (framework.Metadata, error) {
	resolver, err := pageResolver(appCtx)
	if err != nil {
		return framework.Metadata{}, err
	}

	return resolver.Metadata(ctx, requestScope(appCtx, r), params.Segments)
}

func requestScope(appCtx *Context, r *http.Request) *pages.Scope {
	if scope, ok := pages.ScopeFrom(r.Context()); ok {
		return scope
	}
	return appCtx.resolver.NewScope(appCtx.IsDraft(r))
}

func pageResolver(appCtx *Context) (*pages.Resolver, error) {
	if appCtx == nil || appCtx.resolver == nil {
		return nil, errPageResolverUnavailable
	}
	return appCtx.resolver, nil
}
