package seo

import (
	"net/url"
	"strings"

	"site/framework"
	"site/internal/cms"
	"site/internal/richtext"
)

const (
	DefaultImagePath   = "/website-template-OG.webp"
	defaultDescription = "An open-source website built with Payload and Go."
	descriptionLength  = 160
)

type Options struct {
	SiteName string
	// RootURL is the public origin of this site, used for og:url.
	RootURL string
	// MediaURL is the origin serving uploaded media, usually the CMS.
	MediaURL string
}

type Generator struct {
	opts Options
}

func NewGenerator(opts Options) *Generator {
	opts.SiteName = strings.TrimSpace(opts.SiteName)
	if opts.SiteName == "" {
		opts.SiteName = "Payload Website Template"
	}
	opts.RootURL = strings.TrimRight(strings.TrimSpace(opts.RootURL), "/")
	opts.MediaURL = strings.TrimRight(strings.TrimSpace(opts.MediaURL), "/")

	return &Generator{opts: opts}
}

// Generate builds head metadata for page. A nil page yields the site
// defaults.
func (g *Generator) Generate(page *cms.Page) framework.Metadata {
	title := g.opts.SiteName
	description := ""
	pagePath := "/"
	var image *cms.Media

	if page != nil {
		if metaTitle := strings.TrimSpace(page.Meta.Title); metaTitle != "" {
			title = metaTitle + " | " + g.opts.SiteName
		}
		description = strings.TrimSpace(page.Meta.Description)
		if description == "" {
			description = firstRichText(page).Excerpt(descriptionLength)
		}
		if slug := strings.TrimSpace(page.Slug); slug != "" && slug != "home" {
			pagePath = "/" + url.PathEscape(slug)
		}
		image = page.Meta.Image
	}

	ogDescription := description
	if ogDescription == "" {
		ogDescription = defaultDescription
	}

	return framework.Metadata{
		Title:       title,
		Description: description,
		OpenGraph: &framework.OpenGraph{
			Type:        "website",
			SiteName:    g.opts.SiteName,
			Title:       title,
			Description: ogDescription,
			URL:         g.opts.RootURL + pagePath,
			Images:      []framework.OpenGraphImage{g.imageFor(image)},
		},
	}
}

func (g *Generator) imageFor(media *cms.Media) framework.OpenGraphImage {
	if media == nil || strings.TrimSpace(media.URL) == "" {
		return framework.OpenGraphImage{URL: absoluteURL(g.opts.MediaURL, DefaultImagePath)}
	}

	return framework.OpenGraphImage{
		URL:    absoluteURL(g.opts.MediaURL, media.URL),
		Alt:    media.Alt,
		Width:  media.Width,
		Height: media.Height,
	}
}

func absoluteURL(origin string, ref string) string {
	ref = strings.TrimSpace(ref)
	if parsed, err := url.Parse(ref); err == nil && parsed.IsAbs() {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return origin + ref
}

func firstRichText(page *cms.Page) richtext.Document {
	if !page.Hero.RichText.IsEmpty() {
		return page.Hero.RichText
	}

	for _, block := range page.Layout {
		if !block.RichText.IsEmpty() {
			return block.RichText
		}
		for _, column := range block.Columns {
			if !column.RichText.IsEmpty() {
				return column.RichText
			}
		}
	}

	return richtext.Document{}
}
