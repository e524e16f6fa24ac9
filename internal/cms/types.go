package cms

import (
	"strings"

	"site/internal/richtext"
)

type HeroType string

const (
	HeroNone         HeroType = "none"
	HeroHighImpact   HeroType = "highImpact"
	HeroMediumImpact HeroType = "mediumImpact"
	HeroLowImpact    HeroType = "lowImpact"
)

func ParseHeroType(value string) HeroType {
	switch HeroType(strings.TrimSpace(value)) {
	case HeroHighImpact:
		return HeroHighImpact
	case HeroMediumImpact:
		return HeroMediumImpact
	case HeroLowImpact:
		return HeroLowImpact
	default:
		return HeroNone
	}
}

type BlockType string

const (
	BlockContent      BlockType = "content"
	BlockCallToAction BlockType = "cta"
	BlockMedia        BlockType = "mediaBlock"
)

type LinkType string

const (
	LinkReference LinkType = "reference"
	LinkCustom    LinkType = "custom"
)

type Media struct {
	URL      string `yaml:"url"`
	Alt      string `yaml:"alt"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	MIMEType string `yaml:"mimeType"`
}

type Reference struct {
	RelationTo string `yaml:"relationTo"`
	Slug       string `yaml:"slug"`
}

type Link struct {
	Type       LinkType   `yaml:"type"`
	Label      string     `yaml:"label"`
	URL        string     `yaml:"url"`
	NewTab     bool       `yaml:"newTab"`
	Appearance string     `yaml:"appearance"`
	Reference  *Reference `yaml:"reference"`
}

// Href resolves the link target. References to pages live at the site
// root; references to any other collection are prefixed with its name.
func (l Link) Href() string {
	if l.Type == LinkReference && l.Reference != nil {
		if target := referencePath(*l.Reference); target != "" {
			return target
		}
	}

	return strings.TrimSpace(l.URL)
}

func referencePath(ref Reference) string {
	slug := strings.TrimSpace(ref.Slug)
	if slug == "" {
		return ""
	}

	relation := strings.TrimSpace(ref.RelationTo)
	if relation == "" || relation == PagesCollection {
		return "/" + slug
	}

	return "/" + relation + "/" + slug
}

type Hero struct {
	Type     HeroType          `yaml:"type"`
	RichText richtext.Document `yaml:"richText"`
	Links    []Link            `yaml:"links"`
	Media    *Media            `yaml:"media"`
}

type Column struct {
	Size     string            `yaml:"size"`
	RichText richtext.Document `yaml:"richText"`
}

type Block struct {
	Type      BlockType         `yaml:"blockType"`
	ID        string            `yaml:"id"`
	BlockName string            `yaml:"blockName"`
	Columns   []Column          `yaml:"columns"`
	RichText  richtext.Document `yaml:"richText"`
	Links     []Link            `yaml:"links"`
	Media     *Media            `yaml:"media"`
}

type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       *Media `yaml:"image"`
}

type Page struct {
	ID        string  `yaml:"id"`
	Title     string  `yaml:"title"`
	Slug      string  `yaml:"slug"`
	UpdatedAt string  `yaml:"updatedAt"`
	Hero      Hero    `yaml:"hero"`
	Layout    []Block `yaml:"layout"`
	Meta      Meta    `yaml:"meta"`
}

type RedirectTarget struct {
	Type      LinkType
	URL       string
	Reference *Reference
}

type Redirect struct {
	ID   string
	From string
	To   RedirectTarget
}

// Location returns where the redirect points, or "" when the target is
// incomplete.
func (r Redirect) Location() string {
	if r.To.Type == LinkReference && r.To.Reference != nil {
		if target := referencePath(*r.To.Reference); target != "" {
			return target
		}
	}

	return strings.TrimSpace(r.To.URL)
}
