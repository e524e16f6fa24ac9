package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Khan/genqlient/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"site/internal/gql"
	"site/internal/richtext"
)

type recordedRequest struct {
	opName    string
	variables map[string]interface{}
	override  bool
}

type fakeGraphQLClient struct {
	requests []recordedRequest
	fail     error
}

func (c *fakeGraphQLClient) MakeRequest(
	ctx context.Context,
	req *graphql.Request,
	resp *graphql.Response,
) error {
	c.requests = append(c.requests, recordedRequest{
		opName:    req.OpName,
		variables: requestVars(req),
		override:  gql.AccessOverride(ctx),
	})
	if c.fail != nil {
		return c.fail
	}

	switch req.OpName {
	case "PageBySlug":
		switch requestVars(req)["slug"] {
		case "missing":
			return decodeGraphQLData(resp, `{"Pages": {"docs": []}}`)
		case "broken":
			return decodeGraphQLData(resp, `{"Pages": {"docs": [{"id": "page-2", "title": "Broken", "hero": {"type": "lowImpact", "richText": {"editor": {}}}}]}}`)
		}
		return decodeGraphQLData(resp, fmt.Sprintf(`{
			"Pages": {
				"docs": [
					{
						"id": "page-1",
						"title": "About us",
						"slug": "about",
						"updatedAt": "2025-02-01T10:00:00.000Z",
						"hero": {
							"type": "mediumImpact",
							"richText": %s,
							"links": [
								{"link": {"type": "reference", "label": "Contact", "reference": {"relationTo": "pages", "slug": "contact"}}},
								{"link": {"type": "custom", "label": "Docs", "url": "https://docs.example.com", "newTab": true, "appearance": "outline"}},
								{"link": null}
							],
							"media": {"url": "/media/hero.webp", "alt": "Team", "mimeType": "image/webp", "width": 1599.6, "height": 900}
						},
						"layout": [
							{"__typename": "Content", "id": "b1", "blockName": "Intro", "columns": [{"size": "half", "richText": %s}, {"richText": null}]},
							{"__typename": "CallToAction", "id": "b2", "richText": %s, "links": [{"link": {"type": "reference", "label": "Post", "reference": {"relationTo": "posts", "slug": "launch"}}}]},
							{"__typename": "MediaBlock", "id": "b3", "media": {"url": "/media/office.jpg", "alt": "Office"}}
						],
						"meta": {"title": "About", "description": "Who we are", "image": {"url": "/media/og.webp"}}
					}
				]
			}
		}`, lexicalParagraph("About"), lexicalParagraph("left"), lexicalParagraph("Talk to us")))
	case "PageSlugs":
		return decodeGraphQLData(resp, `{
			"Pages": {"docs": [{"slug": "home"}, {"slug": "about"}, {"slug": null}, {"slug": "  "}, {"slug": "contact"}]}
		}`)
	case "RedirectByFrom":
		switch requestVars(req)["from"] {
		case "/old":
			return decodeGraphQLData(resp, `{
				"Redirects": {"docs": [{"id": "r1", "from": "/old", "to": {"type": "reference", "reference": {"relationTo": "pages", "slug": "about"}}}]}
			}`)
		case "/external":
			return decodeGraphQLData(resp, `{
				"Redirects": {"docs": [{"id": "r2", "from": "/external", "to": {"type": "custom", "url": "https://example.com"}}]}
			}`)
		default:
			return decodeGraphQLData(resp, `{"Redirects": {"docs": []}}`)
		}
	}

	return errors.New("unexpected operation " + req.OpName)
}

func lexicalParagraph(text string) string {
	encoded, _ := json.Marshal(text)
	return `{"root": {"type": "root", "children": [{"type": "paragraph", "children": [{"type": "text", "format": 0, "text": ` +
		string(encoded) + `}]}]}}`
}

func decodeGraphQLData(resp *graphql.Response, payload string) error {
	return json.Unmarshal([]byte(payload), resp.Data)
}

func requestVars(req *graphql.Request) map[string]interface{} {
	values := make(map[string]interface{})
	if req == nil || req.Variables == nil {
		return values
	}

	raw, err := json.Marshal(req.Variables)
	if err != nil {
		return values
	}
	_ = json.Unmarshal(raw, &values)
	return values
}

func TestFindPageMapsDocument(t *testing.T) {
	client := &fakeGraphQLClient{}
	service := NewService(client, nil)

	page, err := service.FindPage(context.Background(), PageQuery{Slug: "about"})
	require.NoError(t, err)

	assert.Equal(t, "page-1", page.ID)
	assert.Equal(t, "About us", page.Title)
	assert.Equal(t, HeroMediumImpact, page.Hero.Type)
	require.Len(t, page.Hero.RichText.Nodes, 1)
	assert.Equal(t, richtext.KindParagraph, page.Hero.RichText.Nodes[0].Kind)
	require.Len(t, page.Hero.Links, 2)
	assert.Equal(t, "/contact", page.Hero.Links[0].Href())
	assert.Equal(t, "default", page.Hero.Links[0].Appearance)
	assert.Equal(t, "https://docs.example.com", page.Hero.Links[1].Href())
	assert.True(t, page.Hero.Links[1].NewTab)
	require.NotNil(t, page.Hero.Media)
	assert.Equal(t, 1600, page.Hero.Media.Width)

	require.Len(t, page.Layout, 3)
	assert.Equal(t, BlockContent, page.Layout[0].Type)
	require.Len(t, page.Layout[0].Columns, 2)
	assert.Equal(t, "half", page.Layout[0].Columns[0].Size)
	assert.Equal(t, "left", richtext.PlainText(page.Layout[0].Columns[0].RichText.Nodes))
	assert.Equal(t, "full", page.Layout[0].Columns[1].Size)
	assert.True(t, page.Layout[0].Columns[1].RichText.IsEmpty())
	assert.Equal(t, BlockCallToAction, page.Layout[1].Type)
	assert.Equal(t, "Talk to us", richtext.PlainText(page.Layout[1].RichText.Nodes))
	assert.Equal(t, "/posts/launch", page.Layout[1].Links[0].Href())
	assert.Equal(t, BlockMedia, page.Layout[2].Type)
	assert.Equal(t, "Office", page.Layout[2].Media.Alt)

	assert.Equal(t, "About", page.Meta.Title)
	require.NotNil(t, page.Meta.Image)
	assert.Equal(t, "/media/og.webp", page.Meta.Image.URL)
}

func TestFindPageQueryVariables(t *testing.T) {
	client := &fakeGraphQLClient{}
	service := NewService(client, nil)

	_, err := service.FindPage(context.Background(), PageQuery{Slug: "about", Draft: true, OverrideAccess: true})
	require.NoError(t, err)
	_, err = service.FindPage(context.Background(), PageQuery{Slug: "about"})
	require.NoError(t, err)

	require.Len(t, client.requests, 2)
	assert.Equal(t, map[string]interface{}{"slug": "about", "draft": true, "limit": float64(1)}, client.requests[0].variables)
	assert.True(t, client.requests[0].override)
	assert.Equal(t, false, client.requests[1].variables["draft"])
	assert.False(t, client.requests[1].override)
}

func TestFindPageMissingReturnsErrNotFound(t *testing.T) {
	service := NewService(&fakeGraphQLClient{}, nil)

	page, err := service.FindPage(context.Background(), PageQuery{Slug: "missing"})
	assert.Nil(t, page)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindPageRejectsMalformedRichText(t *testing.T) {
	var seen []string
	observe := func(operation string, outcome string, _ time.Duration) {
		seen = append(seen, operation+":"+outcome)
	}
	service := NewService(&fakeGraphQLClient{}, observe)

	page, err := service.FindPage(context.Background(), PageQuery{Slug: "broken"})
	assert.Nil(t, page)
	assert.ErrorIs(t, err, richtext.ErrMissingRoot)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"PageBySlug:error"}, seen)
}

func TestFindPageWrapsTransportErrors(t *testing.T) {
	boom := errors.New("connection refused")
	service := NewService(&fakeGraphQLClient{fail: boom}, nil)

	_, err := service.FindPage(context.Background(), PageQuery{Slug: "about"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestListPageSlugsSkipsEmptySlugs(t *testing.T) {
	client := &fakeGraphQLClient{}
	service := NewService(client, nil)

	slugs, err := service.ListPageSlugs(context.Background(), SlugQuery{Limit: 1000})
	require.NoError(t, err)

	assert.Equal(t, []string{"home", "about", "contact"}, slugs)
	require.Len(t, client.requests, 1)
	assert.Equal(t, false, client.requests[0].variables["draft"])
	assert.Equal(t, float64(1000), client.requests[0].variables["limit"])
	assert.False(t, client.requests[0].override)
}

func TestFindRedirect(t *testing.T) {
	service := NewService(&fakeGraphQLClient{}, nil)

	internal, err := service.FindRedirect(context.Background(), "/old")
	require.NoError(t, err)
	assert.Equal(t, "/about", internal.Location())

	external, err := service.FindRedirect(context.Background(), "/external")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", external.Location())

	_, err = service.FindRedirect(context.Background(), "/nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceReportsQueryOutcomes(t *testing.T) {
	var seen []string
	observe := func(operation string, outcome string, _ time.Duration) {
		seen = append(seen, operation+":"+outcome)
	}
	service := NewService(&fakeGraphQLClient{}, observe)

	_, _ = service.FindPage(context.Background(), PageQuery{Slug: "about"})
	_, _ = service.FindPage(context.Background(), PageQuery{Slug: "missing"})
	_, _ = service.FindRedirect(context.Background(), "/old")

	assert.Equal(t, "PageBySlug:found,PageBySlug:missing,RedirectByFrom:found", strings.Join(seen, ","))
}
