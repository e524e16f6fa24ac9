package engine

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"site/framework"
)

type Config[C interface{}] struct {
	AppContext C
	Handlers   []framework.RouteHandler[C]

	RenderPage func(r *http.Request, w http.ResponseWriter, component templ.Component) error

	IsNotFoundError   func(err error) bool
	HandleNotFound    func(w http.ResponseWriter, r *http.Request, notFoundContext framework.NotFoundContext)
	HandleRedirect    func(w http.ResponseWriter, r *http.Request, redirect *framework.RedirectError)
	HandleServerError func(w http.ResponseWriter, err error)
}

type Engine[C interface{}] struct {
	appContext C
	handlers   []framework.RouteHandler[C]

	renderPage func(r *http.Request, w http.ResponseWriter, component templ.Component) error

	isNotFound  func(err error) bool
	notFound    func(w http.ResponseWriter, r *http.Request, notFoundContext framework.NotFoundContext)
	redirect    func(w http.ResponseWriter, r *http.Request, redirect *framework.RedirectError)
	serverError func(w http.ResponseWriter, err error)
}

func New[C interface{}](cfg Config[C]) (*Engine[C], error) {
	if cfg.RenderPage == nil {
		return nil, errors.New("render page callback is required")
	}

	isNotFound := cfg.IsNotFoundError
	if isNotFound == nil {
		isNotFound = func(error) bool { return false }
	}

	notFound := cfg.HandleNotFound
	if notFound == nil {
		notFound = func(w http.ResponseWriter, r *http.Request, _ framework.NotFoundContext) {
			http.NotFound(w, r)
		}
	}

	redirect := cfg.HandleRedirect
	if redirect == nil {
		redirect = func(w http.ResponseWriter, r *http.Request, target *framework.RedirectError) {
			http.Redirect(w, r, target.Location, target.StatusCode)
		}
	}

	serverError := cfg.HandleServerError
	if serverError == nil {
		serverError = func(w http.ResponseWriter, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}

	return &Engine[C]{
		appContext:  cfg.AppContext,
		handlers:    cfg.Handlers,
		renderPage:  cfg.RenderPage,
		isNotFound:  isNotFound,
		notFound:    notFound,
		redirect:    redirect,
		serverError: serverError,
	}, nil
}

func (engine *Engine[C]) ServeRoute(w http.ResponseWriter, r *http.Request) bool {
	for _, handler := range engine.handlers {
		if handler.TryServe(engine, w, r) {
			return true
		}
	}

	return false
}

func (engine *Engine[C]) AppContext() C {
	return engine.appContext
}

func (engine *Engine[C]) RenderPage(
	r *http.Request,
	w http.ResponseWriter,
	component templ.Component,
) error {
	return engine.renderPage(r, w, component)
}

func (engine *Engine[C]) IsNotFound(err error) bool {
	return engine.isNotFound(err)
}

func (engine *Engine[C]) RespondNotFound(
	w http.ResponseWriter,
	r *http.Request,
	notFoundContext framework.NotFoundContext,
) {
	engine.notFound(w, r, notFoundContext)
}

func (engine *Engine[C]) RespondRedirect(
	w http.ResponseWriter,
	r *http.Request,
	redirect *framework.RedirectError,
) {
	engine.redirect(w, r, redirect)
}

func (engine *Engine[C]) RespondServerError(w http.ResponseWriter, err error) {
	engine.serverError(w, err)
}
