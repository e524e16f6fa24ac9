package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"site/framework"
	"site/framework/engine"
)

const defaultCacheControlPolicy = "public, max-age=3600, s-maxage=3600"
const defaultPrivateCachePolicy = "private, no-store"
const defaultHealthPath = "/healthz"
const defaultHealthBody = "ok"
const defaultStaticPrefix = "/assets/"

const (
	RoutePage   = "page"
	RouteStatic = "static"
	RouteHealth = "health"
)

type StaticMount struct {
	URLPrefix string
	Dir       string
}

// Mount registers an extra handler next to the page routes. Mounted
// patterns take precedence over the catch-all page route.
type Mount struct {
	Name    string
	Pattern string
	Handler http.Handler
}

type CachePolicies struct {
	HTML    string
	Private string
	Static  string
	Health  string
	Error   string
}

func DefaultCachePolicies() CachePolicies {
	return CachePolicies{
		HTML:    defaultCacheControlPolicy,
		Private: defaultPrivateCachePolicy,
		Static:  defaultCacheControlPolicy,
		Health:  defaultCacheControlPolicy,
		Error:   defaultCacheControlPolicy,
	}
}

type Config[C interface{}] struct {
	AppContext C
	Handlers   []framework.RouteHandler[C]

	Static StaticMount
	Mounts []Mount

	CachePolicies CachePolicies

	// IsPrivateRequest marks requests whose responses must not be shared
	// by caches, such as draft previews.
	IsPrivateRequest func(r *http.Request) bool
	// Instrument wraps every registered handler with the route name.
	Instrument func(route string, next http.Handler) http.Handler
	// PageMiddleware wraps the page route only, outermost first.
	PageMiddleware []func(next http.Handler) http.Handler

	IsNotFoundError func(err error) bool
	NotFoundPage    func(notFoundContext framework.NotFoundContext) templ.Component
	LogServerError  func(err error)

	HealthPath string
	HealthBody string
}

type server[C interface{}] struct {
	cachePolicies CachePolicies
	isPrivate     func(r *http.Request) bool
	notFoundPage  func(notFoundContext framework.NotFoundContext) templ.Component
	logServerErr  func(err error)
	healthPath    string
	healthBody    string

	routeEngine *engine.Engine[C]
}

func New[C interface{}](cfg Config[C]) (http.Handler, error) {
	cachePolicies := withDefaultPolicies(cfg.CachePolicies)
	healthPath := normalizeHealthPath(cfg.HealthPath)
	healthBody := strings.TrimSpace(cfg.HealthBody)
	if healthBody == "" {
		healthBody = defaultHealthBody
	}

	isPrivate := cfg.IsPrivateRequest
	if isPrivate == nil {
		isPrivate = func(*http.Request) bool { return false }
	}

	instrument := cfg.Instrument
	if instrument == nil {
		instrument = func(_ string, next http.Handler) http.Handler { return next }
	}

	srv := &server[C]{
		cachePolicies: cachePolicies,
		isPrivate:     isPrivate,
		notFoundPage:  cfg.NotFoundPage,
		logServerErr:  cfg.LogServerError,
		healthPath:    healthPath,
		healthBody:    healthBody,
	}

	routeEngine, err := engine.New(engine.Config[C]{
		AppContext:        cfg.AppContext,
		Handlers:          cfg.Handlers,
		RenderPage:        srv.renderPage,
		IsNotFoundError:   cfg.IsNotFoundError,
		HandleNotFound:    srv.handleNotFound,
		HandleRedirect:    srv.handleRedirect,
		HandleServerError: srv.handleServerError,
	})
	if err != nil {
		return nil, fmt.Errorf("create route engine: %w", err)
	}
	srv.routeEngine = routeEngine

	mux := http.NewServeMux()
	if strings.TrimSpace(cfg.Static.Dir) != "" {
		prefix := normalizeStaticPrefix(cfg.Static.URLPrefix)
		fs := http.FileServer(http.Dir(cfg.Static.Dir))
		mux.Handle(prefix, instrument(RouteStatic, withCachePolicy(cachePolicies.Static, http.StripPrefix(prefix, fs))))
	}

	for _, mount := range cfg.Mounts {
		if strings.TrimSpace(mount.Pattern) == "" || mount.Handler == nil {
			return nil, fmt.Errorf("mount %q: pattern and handler are required", mount.Name)
		}
		name := strings.TrimSpace(mount.Name)
		if name == "" {
			name = mount.Pattern
		}
		mux.Handle(mount.Pattern, instrument(name, mount.Handler))
	}

	mux.Handle(healthPath, instrument(RouteHealth, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		srv.handleHealth(w)
	})))
	var page http.Handler = http.HandlerFunc(srv.handleRoute)
	for idx := len(cfg.PageMiddleware) - 1; idx >= 0; idx-- {
		page = cfg.PageMiddleware[idx](page)
	}
	mux.Handle("/", instrument(RoutePage, page))
	return mux, nil
}

func (s *server[C]) handleRoute(w http.ResponseWriter, r *http.Request) {
	if s.routeEngine.ServeRoute(w, r) {
		return
	}

	s.handleNotFound(w, r, framework.NotFoundContext{
		RequestPath: r.URL.Path,
		Source:      framework.NotFoundSourceUnmatchedRoute,
	})
}

func (s *server[C]) renderPage(r *http.Request, w http.ResponseWriter, component templ.Component) error {
	return s.renderPageWithStatus(r, w, component, 0, s.htmlCachePolicyFor(r))
}

func (s *server[C]) renderPageWithStatus(
	r *http.Request,
	w http.ResponseWriter,
	component templ.Component,
	statusCode int,
	cachePolicy string,
) error {
	setCachePolicy(w, cachePolicy)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if statusCode > 0 {
		w.WriteHeader(statusCode)
	}
	return component.Render(r.Context(), w)
}

func (s *server[C]) htmlCachePolicyFor(r *http.Request) string {
	if r != nil && s.isPrivate(r) {
		return s.cachePolicies.Private
	}

	return s.cachePolicies.HTML
}

func (s *server[C]) errorCachePolicyFor(r *http.Request) string {
	if r != nil && s.isPrivate(r) {
		return s.cachePolicies.Private
	}

	return s.cachePolicies.Error
}

func (s *server[C]) handleNotFound(
	w http.ResponseWriter,
	r *http.Request,
	notFoundContext framework.NotFoundContext,
) {
	if s.notFoundPage == nil {
		setCachePolicy(w, s.errorCachePolicyFor(r))
		http.NotFound(w, r)
		return
	}

	component := s.notFoundPage(notFoundContext)
	if component == nil {
		setCachePolicy(w, s.errorCachePolicyFor(r))
		http.NotFound(w, r)
		return
	}
	if err := s.renderPageWithStatus(r, w, component, http.StatusNotFound, s.errorCachePolicyFor(r)); err != nil {
		s.handleServerError(w, fmt.Errorf("render not found page: %w", err))
	}
}

func (s *server[C]) handleRedirect(
	w http.ResponseWriter,
	r *http.Request,
	redirect *framework.RedirectError,
) {
	setCachePolicy(w, s.htmlCachePolicyFor(r))
	http.Redirect(w, r, redirect.Location, redirect.StatusCode)
}

func (s *server[C]) handleServerError(w http.ResponseWriter, err error) {
	setCachePolicy(w, s.cachePolicies.Private)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	if s.logServerErr != nil {
		s.logServerErr(err)
		return
	}

	slog.Error("framework server error", "error", err)
}

func (s *server[C]) handleHealth(w http.ResponseWriter) {
	setCachePolicy(w, s.cachePolicies.Health)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.healthBody))
}

func normalizeStaticPrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return defaultStaticPrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

func normalizeHealthPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return defaultHealthPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func withDefaultPolicies(policies CachePolicies) CachePolicies {
	defaults := DefaultCachePolicies()
	if strings.TrimSpace(policies.HTML) == "" {
		policies.HTML = defaults.HTML
	}
	if strings.TrimSpace(policies.Private) == "" {
		policies.Private = defaults.Private
	}
	if strings.TrimSpace(policies.Static) == "" {
		policies.Static = defaults.Static
	}
	if strings.TrimSpace(policies.Health) == "" {
		policies.Health = defaults.Health
	}
	if strings.TrimSpace(policies.Error) == "" {
		policies.Error = defaults.Error
	}
	return policies
}

func setCachePolicy(w http.ResponseWriter, policy string) {
	policy = strings.TrimSpace(policy)
	if policy == "" {
		return
	}
	w.Header().Set("Cache-Control", policy)
}

func withCachePolicy(policy string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCachePolicy(w, policy)
		next.ServeHTTP(w, r)
	})
}
