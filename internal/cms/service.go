package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	genqlientgraphql "github.com/Khan/genqlient/graphql"
	"site/internal/gql"
	"site/internal/richtext"
)

const PagesCollection = "pages"

var ErrNotFound = errors.New("not found")

const (
	OutcomeFound   = "found"
	OutcomeMissing = "missing"
	OutcomeError   = "error"
)

// QueryObserver is told about every store round trip.
type QueryObserver func(operation string, outcome string, elapsed time.Duration)

// PageQuery mirrors a single-document find on the pages collection.
type PageQuery struct {
	Slug           string
	Draft          bool
	OverrideAccess bool
}

// SlugQuery lists page slugs without pagination.
type SlugQuery struct {
	Draft          bool
	Limit          int
	OverrideAccess bool
}

type Service struct {
	client  genqlientgraphql.Client
	observe QueryObserver
}

func NewService(client genqlientgraphql.Client, observe QueryObserver) *Service {
	if observe == nil {
		observe = func(string, string, time.Duration) {}
	}

	return &Service{
		client:  client,
		observe: observe,
	}
}

// FindPage returns the first page whose slug equals q.Slug, or ErrNotFound.
func (s *Service) FindPage(ctx context.Context, q PageQuery) (*Page, error) {
	start := time.Now()
	ctx = gql.WithAccessOverride(ctx, q.OverrideAccess)

	response, err := gql.PageBySlug(ctx, s.client, q.Slug, q.Draft, 1)
	if err != nil {
		s.observe("PageBySlug", OutcomeError, time.Since(start))
		return nil, fmt.Errorf("query page %q: %w", q.Slug, err)
	}

	if response == nil || response.Pages == nil || len(response.Pages.Docs) == 0 {
		s.observe("PageBySlug", OutcomeMissing, time.Since(start))
		return nil, ErrNotFound
	}

	page, err := mapPage(response.Pages.Docs[0], q.Slug)
	if err != nil {
		s.observe("PageBySlug", OutcomeError, time.Since(start))
		return nil, fmt.Errorf("map page %q: %w", q.Slug, err)
	}

	s.observe("PageBySlug", OutcomeFound, time.Since(start))
	return &page, nil
}

func (s *Service) ListPageSlugs(ctx context.Context, q SlugQuery) ([]string, error) {
	start := time.Now()
	ctx = gql.WithAccessOverride(ctx, q.OverrideAccess)

	limit := q.Limit
	if limit < 1 {
		limit = 1000
	}

	response, err := gql.PageSlugs(ctx, s.client, q.Draft, limit)
	if err != nil {
		s.observe("PageSlugs", OutcomeError, time.Since(start))
		return nil, fmt.Errorf("query page slugs: %w", err)
	}

	if response == nil || response.Pages == nil {
		s.observe("PageSlugs", OutcomeMissing, time.Since(start))
		return []string{}, nil
	}

	slugs := make([]string, 0, len(response.Pages.Docs))
	for _, doc := range response.Pages.Docs {
		slug := strOr(doc.Slug, "")
		if slug == "" {
			continue
		}
		slugs = append(slugs, slug)
	}

	s.observe("PageSlugs", OutcomeFound, time.Since(start))
	return slugs, nil
}

// FindRedirect returns the redirect registered for the exact path from,
// or ErrNotFound.
func (s *Service) FindRedirect(ctx context.Context, from string) (*Redirect, error) {
	start := time.Now()

	response, err := gql.RedirectByFrom(ctx, s.client, from)
	if err != nil {
		s.observe("RedirectByFrom", OutcomeError, time.Since(start))
		return nil, fmt.Errorf("query redirect %q: %w", from, err)
	}

	if response == nil || response.Redirects == nil || len(response.Redirects.Docs) == 0 {
		s.observe("RedirectByFrom", OutcomeMissing, time.Since(start))
		return nil, ErrNotFound
	}

	s.observe("RedirectByFrom", OutcomeFound, time.Since(start))
	doc := response.Redirects.Docs[0]
	redirect := Redirect{
		ID:   doc.Id,
		From: doc.From,
	}
	if doc.To != nil {
		redirect.To = RedirectTarget{
			Type: parseLinkType(doc.To.Type),
			URL:  strOr(doc.To.Url, ""),
		}
		if doc.To.Reference != nil {
			redirect.To.Reference = newReference(doc.To.Reference.RelationTo, doc.To.Reference.Slug)
		}
	}

	return &redirect, nil
}

func mapPage(doc gql.PageBySlugPagesDocsPage, requestedSlug string) (Page, error) {
	hero, err := mapHero(doc.Hero)
	if err != nil {
		return Page{}, err
	}
	layout, err := mapLayout(doc.Layout)
	if err != nil {
		return Page{}, err
	}

	page := Page{
		ID:        doc.Id,
		Slug:      strOr(doc.Slug, requestedSlug),
		Title:     pickTitle(doc.Title, doc.Slug, doc.Id),
		UpdatedAt: strOr(doc.UpdatedAt, ""),
		Hero:      hero,
		Layout:    layout,
	}

	if doc.Meta != nil {
		page.Meta = Meta{
			Title:       strOr(doc.Meta.Title, ""),
			Description: strOr(doc.Meta.Description, ""),
		}
		if doc.Meta.Image != nil {
			page.Meta.Image = newMedia(
				doc.Meta.Image.Url,
				doc.Meta.Image.Alt,
				doc.Meta.Image.MimeType,
				doc.Meta.Image.Width,
				doc.Meta.Image.Height,
			)
		}
	}

	return page, nil
}

func mapHero(hero *gql.PageBySlugPagesDocsPageHeroPage_Hero) (Hero, error) {
	if hero == nil {
		return Hero{Type: HeroNone}, nil
	}

	text, err := parseRichText(hero.RichText, "hero")
	if err != nil {
		return Hero{}, err
	}

	out := Hero{
		Type:     ParseHeroType(strOr(hero.Type, "")),
		RichText: text,
		Links:    mapHeroLinks(hero.Links),
	}
	if hero.Media != nil {
		out.Media = newMedia(hero.Media.Url, hero.Media.Alt, hero.Media.MimeType, hero.Media.Width, hero.Media.Height)
	}

	return out, nil
}

func mapLayout(layout []gql.PageBySlugPagesDocsPageLayoutPage_Layout) ([]Block, error) {
	out := make([]Block, 0, len(layout))
	for _, item := range layout {
		switch block := item.(type) {
		case *gql.PageBySlugPagesDocsPageLayoutContent:
			columns := make([]Column, 0, len(block.Columns))
			for i, column := range block.Columns {
				text, err := parseRichText(column.RichText, fmt.Sprintf("block %q column %d", strOr(block.Id, ""), i))
				if err != nil {
					return nil, err
				}
				columns = append(columns, Column{
					Size:     strOr(column.Size, "full"),
					RichText: text,
				})
			}
			out = append(out, Block{
				Type:      BlockContent,
				ID:        strOr(block.Id, ""),
				BlockName: strOr(block.BlockName, ""),
				Columns:   columns,
			})
		case *gql.PageBySlugPagesDocsPageLayoutCallToAction:
			text, err := parseRichText(block.RichText, fmt.Sprintf("block %q", strOr(block.Id, "")))
			if err != nil {
				return nil, err
			}
			out = append(out, Block{
				Type:      BlockCallToAction,
				ID:        strOr(block.Id, ""),
				BlockName: strOr(block.BlockName, ""),
				RichText:  text,
				Links:     mapCallToActionLinks(block.Links),
			})
		case *gql.PageBySlugPagesDocsPageLayoutMediaBlock:
			mapped := Block{
				Type:      BlockMedia,
				ID:        strOr(block.Id, ""),
				BlockName: strOr(block.BlockName, ""),
			}
			if block.Media != nil {
				mapped.Media = newMedia(block.Media.Url, block.Media.Alt, block.Media.MimeType, block.Media.Width, block.Media.Height)
			}
			out = append(out, mapped)
		}
	}

	return out, nil
}

func parseRichText(raw *json.RawMessage, field string) (richtext.Document, error) {
	if raw == nil {
		return richtext.Document{}, nil
	}

	doc, err := richtext.ParseLexical(*raw)
	if err != nil {
		return richtext.Document{}, fmt.Errorf("%s rich text: %w", field, err)
	}

	return doc, nil
}

func mapHeroLinks(links []gql.PageBySlugPagesDocsPageHeroPage_HeroLinksPage_Hero_Links) []Link {
	out := make([]Link, 0, len(links))
	for _, item := range links {
		if item.Link == nil {
			continue
		}
		link := Link{
			Type:       parseLinkType(item.Link.Type),
			Label:      strOr(item.Link.Label, ""),
			URL:        strOr(item.Link.Url, ""),
			NewTab:     boolOr(item.Link.NewTab, false),
			Appearance: strOr(item.Link.Appearance, "default"),
		}
		if item.Link.Reference != nil {
			link.Reference = newReference(item.Link.Reference.RelationTo, item.Link.Reference.Slug)
		}
		out = append(out, link)
	}

	return out
}

func mapCallToActionLinks(links []gql.PageBySlugPagesDocsPageLayoutCallToActionLinksCallToAction_Links) []Link {
	out := make([]Link, 0, len(links))
	for _, item := range links {
		if item.Link == nil {
			continue
		}
		link := Link{
			Type:       parseLinkType(item.Link.Type),
			Label:      strOr(item.Link.Label, ""),
			URL:        strOr(item.Link.Url, ""),
			NewTab:     boolOr(item.Link.NewTab, false),
			Appearance: strOr(item.Link.Appearance, "default"),
		}
		if item.Link.Reference != nil {
			link.Reference = newReference(item.Link.Reference.RelationTo, item.Link.Reference.Slug)
		}
		out = append(out, link)
	}

	return out
}

func newReference(relationTo *string, slug *string) *Reference {
	if strings.TrimSpace(strOr(slug, "")) == "" {
		return nil
	}

	return &Reference{
		RelationTo: strOr(relationTo, PagesCollection),
		Slug:       strOr(slug, ""),
	}
}

func newMedia(urlValue *string, alt *string, mimeType *string, width *float64, height *float64) *Media {
	urlString := strOr(urlValue, "")
	if urlString == "" {
		return nil
	}

	return &Media{
		URL:      urlString,
		Alt:      strOr(alt, ""),
		Width:    int(math.Round(floatOr(width, 0))),
		Height:   int(math.Round(floatOr(height, 0))),
		MIMEType: strOr(mimeType, ""),
	}
}

func parseLinkType(value *string) LinkType {
	if strOr(value, "") == string(LinkReference) {
		return LinkReference
	}

	return LinkCustom
}

func pickTitle(title string, slug *string, fallback string) string {
	if v := strings.TrimSpace(title); v != "" {
		return v
	}
	if v := strings.TrimSpace(strOr(slug, "")); v != "" {
		return v
	}
	return fallback
}

func strOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return fallback
	}

	return trimmed
}

func floatOr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}

	return *value
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}

	return *value
}
