package web

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"site/framework/httpserver"
	"site/internal/cms"
	"site/internal/config"
	"site/internal/draftmode"
	"site/internal/metrics"
	"site/internal/pages"
	"site/internal/ratelimit"
	"site/internal/redirects"
	"site/internal/richtext"
	"site/internal/seo"
	"site/internal/web/appcore"
	"site/internal/web/components"
)

type Options struct {
	Config       config.Config
	Store        cms.Store
	FallbackHome *cms.Page
	Draft        *draftmode.Manager
	// Metrics is optional. When nil no series are recorded and no
	// metrics endpoint is mounted.
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewHandler wires the page resolver, draft mode endpoints and metrics
// into one http.Handler. ctx bounds background work such as rate limiter
// eviction.
func NewHandler(ctx context.Context, opts Options) (http.Handler, *pages.Resolver, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	draft := opts.Draft
	if draft == nil {
		draft = draftmode.New("")
	}

	var onRedirect func(string)
	var onResolve func(pages.Outcome)
	if opts.Metrics != nil {
		onRedirect = opts.Metrics.IncRedirectLookup
		onResolve = func(outcome pages.Outcome) { opts.Metrics.IncPageResolution(string(outcome)) }
	}

	site := appcore.SiteInfo{
		Name:    cfg.SiteName,
		RootURL: cfg.RootURL,
		CMSURL:  cfg.CMSURL,
	}
	metadata := seo.NewGenerator(seo.Options{
		SiteName: cfg.SiteName,
		RootURL:  cfg.RootURL,
		MediaURL: cfg.CMSURL,
	})

	resolver, err := pages.NewResolver(pages.Config{
		Store:             opts.Store,
		Redirects:         redirects.NewResolver(opts.Store, onRedirect),
		Metadata:          metadata.Generate,
		FallbackHome:      opts.FallbackHome,
		StaticParamsLimit: cfg.StaticParamsLimit,
		OnResolve:         onResolve,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create page resolver: %w", err)
	}

	limiterOpts := []ratelimit.Option{}
	if opts.Metrics != nil {
		limiterOpts = append(limiterOpts, ratelimit.WithOnDenied(opts.Metrics.IncRateLimitDenied))
	}
	previewLimiter := ratelimit.New(ctx, limiterOpts...)

	cachePolicies := httpserver.DefaultCachePolicies()
	if strings.TrimSpace(cfg.CacheHTML) != "" {
		cachePolicies.HTML = cfg.CacheHTML
	}
	if strings.TrimSpace(cfg.CachePrivate) != "" {
		cachePolicies.Private = cfg.CachePrivate
	}

	mounts := []httpserver.Mount{
		{Name: "preview", Pattern: draftmode.PreviewPath, Handler: previewLimiter.Middleware(draft.PreviewHandler())},
		{Name: "exit_preview", Pattern: draftmode.ExitPreviewPath, Handler: draft.ExitHandler()},
		{Name: "highlight_styles", Pattern: components.HighlightStylesPath, Handler: highlightStyles(cachePolicies.Static)},
	}
	var instrument func(route string, next http.Handler) http.Handler
	if opts.Metrics != nil {
		mounts = append(mounts, httpserver.Mount{Name: "metrics", Pattern: cfg.MetricsPath, Handler: opts.Metrics.Handler()})
		instrument = opts.Metrics.Instrument
	}

	handler, err := httpserver.New(httpserver.Config[*appcore.Context]{
		AppContext:       appcore.NewContext(resolver, site, draft.Enabled),
		Handlers:         Handlers(),
		IsNotFoundError:  appcore.IsNotFoundError,
		NotFoundPage:     NotFoundPage(site),
		Static:           httpserver.StaticMount{URLPrefix: "/assets/", Dir: cfg.StaticDir},
		Mounts:           mounts,
		CachePolicies:    cachePolicies,
		IsPrivateRequest: draft.Enabled,
		Instrument:       instrument,
		PageMiddleware: []func(http.Handler) http.Handler{
			pages.ScopeMiddleware(opts.Store, draft.Enabled),
		},
		LogServerError: func(err error) {
			logger.Error("site server error", "error", err)
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create http server: %w", err)
	}

	return handler, resolver, nil
}

// highlightStyles serves the code block theme for both color schemes.
func highlightStyles(cacheControl string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		css, err := richtext.StyleSheet()
		if err != nil {
			http.Error(w, "highlight styles unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", cacheControl)
		_, _ = io.WriteString(w, css)
	})
}
