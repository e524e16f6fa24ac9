package components

import (
	"strings"

	"github.com/a-h/templ"
	"site/framework"
	"site/internal/cms"
	"site/internal/richtext"
	"site/internal/web/appcore"
)

// HighlightStylesPath serves the code highlight rules linked from every
// document.
const HighlightStylesPath = "/styles/highlight.css"

const stylesheetPath = "/assets/site.css"

var columnSpans = map[string]string{
	"oneThird":  "col-4",
	"half":      "col-6",
	"twoThirds": "col-8",
	"full":      "col-12",
}

func columnSpan(size string) string {
	if span, ok := columnSpans[size]; ok {
		return span
	}
	return columnSpans["full"]
}

func knownBlock(blockType cms.BlockType) bool {
	switch blockType {
	case cms.BlockContent, cms.BlockCallToAction, cms.BlockMedia:
		return true
	default:
		return false
	}
}

func linkClass(appearance string) string {
	switch strings.TrimSpace(appearance) {
	case "inline":
		return "link-inline"
	case "outline":
		return "button button-outline"
	default:
		return "button button-default"
	}
}

func linkLabel(link cms.Link) string {
	if label := strings.TrimSpace(link.Label); label != "" {
		return label
	}
	return link.Href()
}

// mediaSrc resolves upload URLs served relative to the CMS origin.
func mediaSrc(origin string, src string) string {
	src = strings.TrimSpace(src)
	if strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//") {
		src = strings.TrimRight(origin, "/") + src
	}
	return string(templ.URL(src))
}

func richTextClass(class string) string {
	return strings.TrimSpace("rich-text " + class)
}

// richTextHref resolves a rich text link. Links to CMS documents use the
// same routes as link fields.
func richTextHref(link *richtext.Link) string {
	if link == nil {
		return ""
	}
	if link.Slug != "" {
		return cms.Link{
			Type:      cms.LinkReference,
			Reference: &cms.Reference{RelationTo: link.Collection, Slug: link.Slug},
		}.Href()
	}
	return link.URL
}

func uploadMedia(upload *richtext.Upload) *cms.Media {
	if upload == nil {
		return nil
	}
	return &cms.Media{
		URL:      upload.URL,
		Alt:      upload.Alt,
		MIMEType: upload.MIMEType,
		Width:    upload.Width,
		Height:   upload.Height,
	}
}

type livePreviewConfig struct {
	Origin string `json:"origin"`
}

func newLivePreviewConfig(serverURL string) livePreviewConfig {
	return livePreviewConfig{Origin: strings.TrimRight(serverURL, "/")}
}

func documentTitle(meta framework.Metadata, site appcore.SiteInfo) string {
	if title := strings.TrimSpace(meta.Title); title != "" {
		return title
	}
	return site.Name
}

func adminURL(site appcore.SiteInfo) string {
	return strings.TrimRight(site.CMSURL, "/") + "/admin"
}
