package framework

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
)

type EmptyParams struct{}

// CatchAllParams holds the raw, still percent-encoded segments matched by
// a catch-all pattern. Segments is nil when the request path had none.
type CatchAllParams struct {
	Segments []string
}

// ParamsParser receives the escaped request path.
type ParamsParser[P interface{}] func(path string) (P, bool)

type PageLoader[C interface{}, P interface{}, VM interface{}] func(
	ctx context.Context,
	appCtx C,
	r *http.Request,
	params P,
) (VM, error)

type MetadataLoader[C interface{}, P interface{}] func(
	ctx context.Context,
	appCtx C,
	r *http.Request,
	params P,
) (Metadata, error)

type PageRenderer[VM interface{}] func(view VM) templ.Component

type LayoutRenderer[VM interface{}] func(meta Metadata, view VM, child templ.Component) templ.Component

type PageModule[C interface{}, P interface{}, VM interface{}] struct {
	Pattern     string
	ParseParams ParamsParser[P]
	Metadata    MetadataLoader[C, P]
	Load        PageLoader[C, P, VM]
	Render      PageRenderer[VM]
	Layouts     []LayoutRenderer[VM]
}

type RuntimeContext[C interface{}] interface {
	AppContext() C
	RenderPage(r *http.Request, w http.ResponseWriter, component templ.Component) error
	IsNotFound(err error) bool
	RespondNotFound(w http.ResponseWriter, r *http.Request, notFoundContext NotFoundContext)
	RespondRedirect(w http.ResponseWriter, r *http.Request, redirect *RedirectError)
	RespondServerError(w http.ResponseWriter, err error)
}

type NotFoundSource string

const (
	NotFoundSourcePageLoad       NotFoundSource = "page_load"
	NotFoundSourceUnmatchedRoute NotFoundSource = "unmatched_route"
)

type NotFoundContext struct {
	RequestPath         string
	MatchedRoutePattern string
	Source              NotFoundSource
}

// RedirectError is returned by a loader to answer the request with a
// redirect instead of a rendered page.
type RedirectError struct {
	Location   string
	StatusCode int
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("redirect %d to %q", e.StatusCode, e.Location)
}

// Redirect builds a RedirectError, defaulting to 307 like a server-side
// redirect issued mid-render.
func Redirect(location string, statusCode int) *RedirectError {
	if statusCode == 0 {
		statusCode = http.StatusTemporaryRedirect
	}
	return &RedirectError{Location: location, StatusCode: statusCode}
}

type RouteHandler[C interface{}] interface {
	TryServe(runtime RuntimeContext[C], w http.ResponseWriter, r *http.Request) bool
}

type PageOnlyRouteHandler[C interface{}, P interface{}, VM interface{}] struct {
	Page PageModule[C, P, VM]
}

func (h PageOnlyRouteHandler[C, P, VM]) TryServe(
	runtime RuntimeContext[C],
	w http.ResponseWriter,
	r *http.Request,
) bool {
	return servePageModule(runtime, w, r, h.Page)
}

func applyLayouts[VM interface{}](
	layouts []LayoutRenderer[VM],
	meta Metadata,
	view VM,
	child templ.Component,
) templ.Component {
	wrapped := child
	for idx := len(layouts) - 1; idx >= 0; idx-- {
		wrapped = layouts[idx](meta, view, wrapped)
	}
	return wrapped
}

func servePageModule[C interface{}, P interface{}, VM interface{}](
	runtime RuntimeContext[C],
	w http.ResponseWriter,
	r *http.Request,
	module PageModule[C, P, VM],
) bool {
	params, ok := module.ParseParams(r.URL.EscapedPath())
	if !ok {
		return false
	}

	view, err := module.Load(r.Context(), runtime.AppContext(), r, params)
	if err != nil {
		handleLoadError(runtime, w, r, err, module.Pattern, NotFoundSourcePageLoad)
		return true
	}

	meta := Metadata{}
	if module.Metadata != nil {
		meta, err = module.Metadata(r.Context(), runtime.AppContext(), r, params)
		if err != nil {
			runtime.RespondServerError(w, fmt.Errorf("metadata route %q: %w", module.Pattern, err))
			return true
		}
	}

	component := applyLayouts(module.Layouts, meta, view, module.Render(view))
	if err := runtime.RenderPage(r, w, component); err != nil {
		runtime.RespondServerError(w, fmt.Errorf("render route %q: %w", module.Pattern, err))
	}
	return true
}

func handleLoadError[C interface{}](
	runtime RuntimeContext[C],
	w http.ResponseWriter,
	r *http.Request,
	err error,
	routePattern string,
	source NotFoundSource,
) {
	var redirect *RedirectError
	if errors.As(err, &redirect) {
		runtime.RespondRedirect(w, r, redirect)
		return
	}

	if runtime.IsNotFound(err) {
		runtime.RespondNotFound(w, r, NotFoundContext{
			RequestPath:         r.URL.Path,
			MatchedRoutePattern: routePattern,
			Source:              source,
		})
		return
	}

	runtime.RespondServerError(w, fmt.Errorf("load route %q: %w", routePattern, err))
}
