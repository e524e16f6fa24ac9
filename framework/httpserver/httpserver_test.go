package httpserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"site/framework"
)

type componentFunc func(ctx context.Context, w io.Writer) error

func (f componentFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}

func textComponent(value string) templ.Component {
	return componentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

func wrapComponent(tag string, child templ.Component) templ.Component {
	return componentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "["+tag+"]"); err != nil {
			return err
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "[/"+tag+"]")
		return err
	})
}

func aboutPage(load framework.PageLoader[*struct{}, framework.EmptyParams, string]) framework.RouteHandler[*struct{}] {
	return framework.PageOnlyRouteHandler[*struct{}, framework.EmptyParams, string]{
		Page: framework.PageModule[*struct{}, framework.EmptyParams, string]{
			Pattern: "/about",
			ParseParams: func(path string) (framework.EmptyParams, bool) {
				return framework.EmptyParams{}, path == "/about"
			},
			Load:   load,
			Render: func(view string) templ.Component { return textComponent(view) },
			Layouts: []framework.LayoutRenderer[string]{
				func(_ framework.Metadata, _ string, child templ.Component) templ.Component {
					return wrapComponent("layout", child)
				},
			},
		},
	}
}

func TestHTTPServerCachePolicies(t *testing.T) {
	t.Parallel()

	staticDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(staticDir, "file.txt"), []byte("asset"), 0o644); err != nil {
		t.Fatalf("write static asset: %v", err)
	}

	handler, err := New(Config[*struct{}]{
		AppContext: &struct{}{},
		Handlers: []framework.RouteHandler[*struct{}]{
			aboutPage(func(context.Context, *struct{}, *http.Request, framework.EmptyParams) (string, error) {
				return "page", nil
			}),
		},
		Static: StaticMount{
			URLPrefix: "/assets/",
			Dir:       staticDir,
		},
		CachePolicies: CachePolicies{
			HTML:    "html-cache",
			Private: "private-cache",
			Static:  "static-cache",
			Health:  "health-cache",
			Error:   "error-cache",
		},
		IsPrivateRequest: func(r *http.Request) bool {
			return r.Header.Get("X-Draft") == "1"
		},
		NotFoundPage: func(framework.NotFoundContext) templ.Component {
			return textComponent("not-found")
		},
	})
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	recPage := httptest.NewRecorder()
	handler.ServeHTTP(recPage, httptest.NewRequest(http.MethodGet, "/about", nil))
	if recPage.Code != http.StatusOK {
		t.Fatalf("page status: expected %d, got %d", http.StatusOK, recPage.Code)
	}
	if got := recPage.Header().Get("Cache-Control"); got != "html-cache" {
		t.Fatalf("page cache policy: expected %q, got %q", "html-cache", got)
	}
	if body := strings.TrimSpace(recPage.Body.String()); body != "[layout]page[/layout]" {
		t.Fatalf("page body: expected layout-wrapped response, got %q", body)
	}

	reqDraft := httptest.NewRequest(http.MethodGet, "/about", nil)
	reqDraft.Header.Set("X-Draft", "1")
	recDraft := httptest.NewRecorder()
	handler.ServeHTTP(recDraft, reqDraft)
	if got := recDraft.Header().Get("Cache-Control"); got != "private-cache" {
		t.Fatalf("draft cache policy: expected %q, got %q", "private-cache", got)
	}

	recStatic := httptest.NewRecorder()
	handler.ServeHTTP(recStatic, httptest.NewRequest(http.MethodGet, "/assets/file.txt", nil))
	if recStatic.Code != http.StatusOK {
		t.Fatalf("static status: expected %d, got %d", http.StatusOK, recStatic.Code)
	}
	if got := recStatic.Header().Get("Cache-Control"); got != "static-cache" {
		t.Fatalf("static cache policy: expected %q, got %q", "static-cache", got)
	}

	recHealth := httptest.NewRecorder()
	handler.ServeHTTP(recHealth, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if recHealth.Code != http.StatusOK {
		t.Fatalf("health status: expected %d, got %d", http.StatusOK, recHealth.Code)
	}
	if got := recHealth.Header().Get("Cache-Control"); got != "health-cache" {
		t.Fatalf("health cache policy: expected %q, got %q", "health-cache", got)
	}
	if body := strings.TrimSpace(recHealth.Body.String()); body != "ok" {
		t.Fatalf("health body: expected %q, got %q", "ok", body)
	}
}

func TestHTTPServerNotFoundContextForLoadAndUnmatched(t *testing.T) {
	t.Parallel()

	errNotFound := errors.New("not found")
	ctxs := make([]framework.NotFoundContext, 0, 2)

	handler, err := New(Config[*struct{}]{
		AppContext: &struct{}{},
		Handlers: []framework.RouteHandler[*struct{}]{
			aboutPage(func(context.Context, *struct{}, *http.Request, framework.EmptyParams) (string, error) {
				return "", errNotFound
			}),
		},
		IsNotFoundError: func(err error) bool { return errors.Is(err, errNotFound) },
		NotFoundPage: func(notFoundContext framework.NotFoundContext) templ.Component {
			ctxs = append(ctxs, notFoundContext)
			return textComponent("missing")
		},
		CachePolicies: CachePolicies{
			Error: "error-cache",
		},
	})
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	recLoadNotFound := httptest.NewRecorder()
	handler.ServeHTTP(recLoadNotFound, httptest.NewRequest(http.MethodGet, "/about", nil))
	if recLoadNotFound.Code != http.StatusNotFound {
		t.Fatalf("load not found status: expected %d, got %d", http.StatusNotFound, recLoadNotFound.Code)
	}
	if got := recLoadNotFound.Header().Get("Cache-Control"); got != "error-cache" {
		t.Fatalf("load not found cache policy: expected %q, got %q", "error-cache", got)
	}

	recUnmatched := httptest.NewRecorder()
	handler.ServeHTTP(recUnmatched, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if recUnmatched.Code != http.StatusNotFound {
		t.Fatalf("unmatched status: expected %d, got %d", http.StatusNotFound, recUnmatched.Code)
	}

	if len(ctxs) != 2 {
		t.Fatalf("expected 2 not-found contexts, got %d", len(ctxs))
	}
	if ctxs[0].Source != framework.NotFoundSourcePageLoad {
		t.Fatalf("expected first source %q, got %q", framework.NotFoundSourcePageLoad, ctxs[0].Source)
	}
	if ctxs[1].Source != framework.NotFoundSourceUnmatchedRoute {
		t.Fatalf("expected second source %q, got %q", framework.NotFoundSourceUnmatchedRoute, ctxs[1].Source)
	}
	if ctxs[1].RequestPath != "/missing" {
		t.Fatalf("expected second request path /missing, got %q", ctxs[1].RequestPath)
	}
}

func TestHTTPServerRedirectMountsAndInstrumentation(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seenRoutes := make(map[string]int)
	var loggedErr error

	handler, err := New(Config[*struct{}]{
		AppContext: &struct{}{},
		Handlers: []framework.RouteHandler[*struct{}]{
			aboutPage(func(context.Context, *struct{}, *http.Request, framework.EmptyParams) (string, error) {
				return "", framework.Redirect("/contact", 0)
			}),
		},
		Mounts: []Mount{
			{
				Name:    "exit",
				Pattern: "/exit",
				Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusTeapot)
				}),
			},
			{
				Name:    "boom",
				Pattern: "/boom",
				Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusNoContent)
				}),
			},
		},
		Instrument: func(route string, next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				mu.Lock()
				seenRoutes[route]++
				mu.Unlock()
				next.ServeHTTP(w, r)
			})
		},
		LogServerError: func(err error) { loggedErr = err },
	})
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	recRedirect := httptest.NewRecorder()
	handler.ServeHTTP(recRedirect, httptest.NewRequest(http.MethodGet, "/about", nil))
	if recRedirect.Code != http.StatusTemporaryRedirect {
		t.Fatalf("redirect status: expected %d, got %d", http.StatusTemporaryRedirect, recRedirect.Code)
	}
	if loc := recRedirect.Header().Get("Location"); loc != "/contact" {
		t.Fatalf("redirect location: expected /contact, got %q", loc)
	}

	recMount := httptest.NewRecorder()
	handler.ServeHTTP(recMount, httptest.NewRequest(http.MethodGet, "/exit", nil))
	if recMount.Code != http.StatusTeapot {
		t.Fatalf("mount status: expected %d, got %d", http.StatusTeapot, recMount.Code)
	}

	if seenRoutes[RoutePage] != 1 || seenRoutes["exit"] != 1 {
		t.Fatalf("unexpected instrumented routes: %v", seenRoutes)
	}
	if loggedErr != nil {
		t.Fatalf("did not expect server error, got %v", loggedErr)
	}
}

func TestHTTPServerRejectsIncompleteMount(t *testing.T) {
	t.Parallel()

	_, err := New(Config[*struct{}]{
		AppContext: &struct{}{},
		Mounts:     []Mount{{Name: "broken", Pattern: "/broken"}},
	})
	if err == nil {
		t.Fatal("expected error for mount without handler")
	}
}

func TestHTTPServerPageMiddlewareWrapsOnlyPages(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, name)))
			})
		}
	}

	handler, err := New(Config[*struct{}]{
		AppContext: &struct{}{},
		Handlers: []framework.RouteHandler[*struct{}]{
			aboutPage(func(ctx context.Context, _ *struct{}, _ *http.Request, _ framework.EmptyParams) (string, error) {
				value, _ := ctx.Value(ctxKey{}).(string)
				return "seen:" + value, nil
			}),
		},
		PageMiddleware: []func(http.Handler) http.Handler{tag("outer"), tag("inner")},
	})
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))
	if body := rec.Body.String(); body != "[layout]seen:inner[/layout]" {
		t.Fatalf("unexpected body %q", body)
	}

	healthRec := httptest.NewRecorder()
	handler.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if strings.Join(order, ",") != "outer,inner" {
		t.Fatalf("unexpected middleware order %v", order)
	}
}
