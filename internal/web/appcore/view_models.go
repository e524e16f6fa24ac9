package appcore

import "site/internal/cms"

type PageView struct {
	Site  SiteInfo
	Page  cms.Page
	Draft bool
}

// LivePreview reports whether the CMS live preview listener should be
// attached.
func (v PageView) LivePreview() bool {
	return v.Draft
}
