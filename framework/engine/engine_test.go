package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"site/framework"
)

type testAppContext struct{}

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

func staticModule(load framework.PageLoader[*testAppContext, framework.EmptyParams, string]) framework.PageModule[*testAppContext, framework.EmptyParams, string] {
	return framework.PageModule[*testAppContext, framework.EmptyParams, string]{
		Pattern: "/about",
		ParseParams: func(path string) (framework.EmptyParams, bool) {
			return framework.EmptyParams{}, path == "/about"
		},
		Load:   load,
		Render: func(view string) templ.Component { return textComponent(view) },
	}
}

func captureRender(rendered *string) func(*http.Request, http.ResponseWriter, templ.Component) error {
	return func(_ *http.Request, _ http.ResponseWriter, component templ.Component) error {
		var b bytes.Buffer
		if err := component.Render(context.Background(), &b); err != nil {
			return err
		}
		*rendered = b.String()
		return nil
	}
}

func TestServeRoutePageOnly(t *testing.T) {
	var rendered string

	routeEngine, err := New(Config[*testAppContext]{
		AppContext: &testAppContext{},
		Handlers: []framework.RouteHandler[*testAppContext]{
			framework.PageOnlyRouteHandler[*testAppContext, framework.EmptyParams, string]{
				Page: staticModule(func(context.Context, *testAppContext, *http.Request, framework.EmptyParams) (string, error) {
					return "page", nil
				}),
			},
		},
		RenderPage: captureRender(&rendered),
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if !routeEngine.ServeRoute(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil)) {
		t.Fatal("expected route to match")
	}
	if rendered != "page" {
		t.Fatalf("expected page content, got %q", rendered)
	}

	if routeEngine.ServeRoute(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil)) {
		t.Fatal("did not expect missing route to match")
	}
}

func TestServeRoutePassesEscapedPathToParser(t *testing.T) {
	var seen string

	routeEngine, err := New(Config[*testAppContext]{
		AppContext: &testAppContext{},
		Handlers: []framework.RouteHandler[*testAppContext]{
			framework.PageOnlyRouteHandler[*testAppContext, framework.EmptyParams, string]{
				Page: framework.PageModule[*testAppContext, framework.EmptyParams, string]{
					Pattern: "/[[...slug]]",
					ParseParams: func(path string) (framework.EmptyParams, bool) {
						seen = path
						return framework.EmptyParams{}, true
					},
					Load: func(context.Context, *testAppContext, *http.Request, framework.EmptyParams) (string, error) {
						return "", nil
					},
					Render: func(view string) templ.Component { return textComponent(view) },
				},
			},
		},
		RenderPage: func(*http.Request, http.ResponseWriter, templ.Component) error { return nil },
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	routeEngine.ServeRoute(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/caf%C3%A9/a%2Fb", nil))
	if seen != "/caf%C3%A9/a%2Fb" {
		t.Fatalf("expected escaped path, got %q", seen)
	}
}

func TestNotFoundRedirectAndServerErrorClassification(t *testing.T) {
	errNotFound := errors.New("not found")
	errBoom := errors.New("boom")

	t.Run("not found", func(t *testing.T) {
		notFoundCalled := false
		serverErrorCalled := false
		var notFoundContext framework.NotFoundContext

		routeEngine, err := New(Config[*testAppContext]{
			AppContext: &testAppContext{},
			Handlers: []framework.RouteHandler[*testAppContext]{
				framework.PageOnlyRouteHandler[*testAppContext, framework.EmptyParams, string]{
					Page: staticModule(func(context.Context, *testAppContext, *http.Request, framework.EmptyParams) (string, error) {
						return "", errNotFound
					}),
				},
			},
			RenderPage:      func(*http.Request, http.ResponseWriter, templ.Component) error { return nil },
			IsNotFoundError: func(err error) bool { return errors.Is(err, errNotFound) },
			HandleNotFound: func(_ http.ResponseWriter, _ *http.Request, ctx framework.NotFoundContext) {
				notFoundCalled = true
				notFoundContext = ctx
			},
			HandleServerError: func(http.ResponseWriter, error) {
				serverErrorCalled = true
			},
		})
		if err != nil {
			t.Fatalf("new engine: %v", err)
		}

		if !routeEngine.ServeRoute(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil)) {
			t.Fatal("expected route to match")
		}
		if !notFoundCalled {
			t.Fatal("expected not found callback")
		}
		if notFoundContext.Source != framework.NotFoundSourcePageLoad {
			t.Fatalf("expected not-found source %q, got %q", framework.NotFoundSourcePageLoad, notFoundContext.Source)
		}
		if notFoundContext.MatchedRoutePattern != "/about" {
			t.Fatalf("expected matched route pattern /about, got %q", notFoundContext.MatchedRoutePattern)
		}
		if serverErrorCalled {
			t.Fatal("did not expect server error callback")
		}
	})

	t.Run("redirect", func(t *testing.T) {
		var got *framework.RedirectError

		routeEngine, err := New(Config[*testAppContext]{
			AppContext: &testAppContext{},
			Handlers: []framework.RouteHandler[*testAppContext]{
				framework.PageOnlyRouteHandler[*testAppContext, framework.EmptyParams, string]{
					Page: staticModule(func(context.Context, *testAppContext, *http.Request, framework.EmptyParams) (string, error) {
						return "", framework.Redirect("/contact", 0)
					}),
				},
			},
			RenderPage: func(*http.Request, http.ResponseWriter, templ.Component) error { return nil },
			HandleRedirect: func(_ http.ResponseWriter, _ *http.Request, redirect *framework.RedirectError) {
				got = redirect
			},
		})
		if err != nil {
			t.Fatalf("new engine: %v", err)
		}

		routeEngine.ServeRoute(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil))
		if got == nil {
			t.Fatal("expected redirect callback")
		}
		if got.Location != "/contact" || got.StatusCode != http.StatusTemporaryRedirect {
			t.Fatalf("unexpected redirect %+v", got)
		}
	})

	t.Run("default redirect writes location", func(t *testing.T) {
		routeEngine, err := New(Config[*testAppContext]{
			AppContext: &testAppContext{},
			Handlers: []framework.RouteHandler[*testAppContext]{
				framework.PageOnlyRouteHandler[*testAppContext, framework.EmptyParams, string]{
					Page: staticModule(func(context.Context, *testAppContext, *http.Request, framework.EmptyParams) (string, error) {
						return "", framework.Redirect("/contact", http.StatusMovedPermanently)
					}),
				},
			},
			RenderPage: func(*http.Request, http.ResponseWriter, templ.Component) error { return nil },
		})
		if err != nil {
			t.Fatalf("new engine: %v", err)
		}

		rec := httptest.NewRecorder()
		routeEngine.ServeRoute(rec, httptest.NewRequest(http.MethodGet, "/about", nil))
		if rec.Code != http.StatusMovedPermanently {
			t.Fatalf("expected status %d, got %d", http.StatusMovedPermanently, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/contact" {
			t.Fatalf("expected location /contact, got %q", loc)
		}
	})

	t.Run("server error", func(t *testing.T) {
		notFoundCalled := false
		serverErrorCalled := false

		routeEngine, err := New(Config[*testAppContext]{
			AppContext: &testAppContext{},
			Handlers: []framework.RouteHandler[*testAppContext]{
				framework.PageOnlyRouteHandler[*testAppContext, framework.EmptyParams, string]{
					Page: staticModule(func(context.Context, *testAppContext, *http.Request, framework.EmptyParams) (string, error) {
						return "", errBoom
					}),
				},
			},
			RenderPage:      func(*http.Request, http.ResponseWriter, templ.Component) error { return nil },
			IsNotFoundError: func(error) bool { return false },
			HandleNotFound: func(http.ResponseWriter, *http.Request, framework.NotFoundContext) {
				notFoundCalled = true
			},
			HandleServerError: func(http.ResponseWriter, error) {
				serverErrorCalled = true
			},
		})
		if err != nil {
			t.Fatalf("new engine: %v", err)
		}

		if !routeEngine.ServeRoute(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil)) {
			t.Fatal("expected route to match")
		}
		if notFoundCalled {
			t.Fatal("did not expect not found callback")
		}
		if !serverErrorCalled {
			t.Fatal("expected server error callback")
		}
	})
}

func TestLayoutOrderAndMetadata(t *testing.T) {
	var rendered string

	routeEngine, err := New(Config[*testAppContext]{
		AppContext: &testAppContext{},
		Handlers: []framework.RouteHandler[*testAppContext]{
			framework.PageOnlyRouteHandler[*testAppContext, framework.EmptyParams, string]{
				Page: framework.PageModule[*testAppContext, framework.EmptyParams, string]{
					Pattern: "/about",
					ParseParams: func(path string) (framework.EmptyParams, bool) {
						return framework.EmptyParams{}, path == "/about"
					},
					Metadata: func(context.Context, *testAppContext, *http.Request, framework.EmptyParams) (framework.Metadata, error) {
						return framework.Metadata{Title: "About"}, nil
					},
					Load: func(context.Context, *testAppContext, *http.Request, framework.EmptyParams) (string, error) {
						return "body", nil
					},
					Render: func(view string) templ.Component { return textComponent(view) },
					Layouts: []framework.LayoutRenderer[string]{
						func(meta framework.Metadata, _ string, child templ.Component) templ.Component {
							return wrapComponent("outer:"+meta.Title, child)
						},
						func(_ framework.Metadata, _ string, child templ.Component) templ.Component {
							return wrapComponent("inner", child)
						},
					},
				},
			},
		},
		RenderPage: captureRender(&rendered),
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if !routeEngine.ServeRoute(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil)) {
		t.Fatal("expected route to match")
	}
	if rendered != "[outer:About][inner]body[/inner][/outer:About]" {
		t.Fatalf("unexpected render output: %q", rendered)
	}
}

func TestMetadataErrorIsServerError(t *testing.T) {
	var serverErr error

	routeEngine, err := New(Config[*testAppContext]{
		AppContext: &testAppContext{},
		Handlers: []framework.RouteHandler[*testAppContext]{
			framework.PageOnlyRouteHandler[*testAppContext, framework.EmptyParams, string]{
				Page: framework.PageModule[*testAppContext, framework.EmptyParams, string]{
					Pattern: "/about",
					ParseParams: func(path string) (framework.EmptyParams, bool) {
						return framework.EmptyParams{}, path == "/about"
					},
					Metadata: func(context.Context, *testAppContext, *http.Request, framework.EmptyParams) (framework.Metadata, error) {
						return framework.Metadata{}, errors.New("store down")
					},
					Load: func(context.Context, *testAppContext, *http.Request, framework.EmptyParams) (string, error) {
						return "body", nil
					},
					Render: func(view string) templ.Component { return textComponent(view) },
				},
			},
		},
		RenderPage: func(*http.Request, http.ResponseWriter, templ.Component) error { return nil },
		HandleServerError: func(_ http.ResponseWriter, err error) {
			serverErr = err
		},
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	routeEngine.ServeRoute(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil))
	if serverErr == nil {
		t.Fatal("expected metadata failure to reach the server error callback")
	}
}
