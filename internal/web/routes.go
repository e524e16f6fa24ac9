package web

import (
	"github.com/a-h/templ"
	"site/framework"
	"site/framework/router"
	"site/internal/web/appcore"
	"site/internal/web/components"
)

// CatchAllPattern matches every path, including "/".
const CatchAllPattern = "/[[...slug]]"

var catchAll = router.MustCompile(CatchAllPattern)

func ParseCatchAll(path string) (framework.CatchAllParams, bool) {
	match, ok := catchAll.Match(path)
	if !ok {
		return framework.CatchAllParams{}, false
	}
	return framework.CatchAllParams{Segments: match.CatchAll}, true
}

func PageModule() framework.PageModule[*appcore.Context, framework.CatchAllParams, appcore.PageView] {
	return framework.PageModule[*appcore.Context, framework.CatchAllParams, appcore.PageView]{
		Pattern:     CatchAllPattern,
		ParseParams: ParseCatchAll,
		Metadata:    appcore.LoadMetadata,
		Load:        appcore.LoadPage,
		Render:      components.Page,
		Layouts: []framework.LayoutRenderer[appcore.PageView]{
			components.RootLayout,
		},
	}
}

func Handlers() []framework.RouteHandler[*appcore.Context] {
	return []framework.RouteHandler[*appcore.Context]{
		framework.PageOnlyRouteHandler[*appcore.Context, framework.CatchAllParams, appcore.PageView]{
			Page: PageModule(),
		},
	}
}

func NotFoundPage(site appcore.SiteInfo) func(notFoundContext framework.NotFoundContext) templ.Component {
	return func(notFoundContext framework.NotFoundContext) templ.Component {
		meta := framework.Metadata{Title: "404 | " + site.Name}
		return components.Document(meta, site, false, components.NotFound(notFoundContext.RequestPath))
	}
}
