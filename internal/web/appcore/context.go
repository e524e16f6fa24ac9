package appcore

import (
	"errors"
	"net/http"

	"site/internal/cms"
	"site/internal/pages"
)

var errPageResolverUnavailable = errors.New("page resolver unavailable")

// SiteInfo is the static part of every rendered document.
type SiteInfo struct {
	Name string
	// RootURL is this site's public origin.
	RootURL string
	// CMSURL is the CMS origin. Uploaded media and the live preview
	// messages come from there.
	CMSURL string
}

type Context struct {
	resolver *pages.Resolver
	site     SiteInfo
	isDraft  func(r *http.Request) bool
}

func NewContext(resolver *pages.Resolver, site SiteInfo, isDraft func(r *http.Request) bool) *Context {
	if isDraft == nil {
		isDraft = func(*http.Request) bool { return false }
	}

	return &Context{
		resolver: resolver,
		site:     site,
		isDraft:  isDraft,
	}
}

func (c *Context) Site() SiteInfo {
	if c == nil {
		return SiteInfo{}
	}
	return c.site
}

func (c *Context) IsDraft(r *http.Request) bool {
	return c != nil && c.isDraft(r)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, cms.ErrNotFound)
}
