package cms

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fallback_home.yaml
var defaultHomeYAML []byte

// LoadFallbackHome reads the document served for "home" while the CMS has
// no page with that slug. An empty path selects the built-in document.
func LoadFallbackHome(path string) (*Page, error) {
	raw := defaultHomeYAML
	source := "built-in fallback home"

	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fallback home %q: %w", path, err)
		}
		raw = data
		source = path
	}

	return parseFallbackHome(raw, source)
}

func parseFallbackHome(raw []byte, source string) (*Page, error) {
	var page Page
	if err := yaml.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	if strings.TrimSpace(page.Slug) == "" {
		page.Slug = "home"
	}
	if strings.TrimSpace(page.Title) == "" {
		page.Title = "Home"
	}
	page.Hero.Type = ParseHeroType(string(page.Hero.Type))
	for idx := range page.Hero.Links {
		normalizeLink(&page.Hero.Links[idx])
	}
	for idx := range page.Layout {
		for linkIdx := range page.Layout[idx].Links {
			normalizeLink(&page.Layout[idx].Links[linkIdx])
		}
	}

	return &page, nil
}

func normalizeLink(link *Link) {
	if link.Type != LinkReference {
		link.Type = LinkCustom
	}
	if strings.TrimSpace(link.Appearance) == "" {
		link.Appearance = "default"
	}
}
