package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseMarkdown(t *testing.T) {
	doc := ParseMarkdown("# Title\n\nSome **bold** and *soft*\ntext with `code` and [a link](cms://pages/about).\n\n" +
		"1. one\n2. two\n\n> quoted\n\n```go\nfmt.Println(1)\n```\n\n![Alt text](/media/a.png)\n\n---\n")

	require.Len(t, doc.Nodes, 7)

	assert.Equal(t, KindHeading, doc.Nodes[0].Kind)
	assert.Equal(t, 1, doc.Nodes[0].Level)

	paragraph := doc.Nodes[1]
	assert.Equal(t, KindParagraph, paragraph.Kind)
	var bold, code bool
	var link *Link
	for _, child := range paragraph.Children {
		bold = bold || (child.Text == "bold" && child.Format.Has(FormatBold))
		code = code || (child.Text == "code" && child.Format.Has(FormatCode))
		if child.Kind == KindLink {
			link = child.Link
		}
	}
	assert.True(t, bold)
	assert.True(t, code)
	assert.Equal(t, &Link{Collection: "pages", Slug: "about"}, link)

	list := doc.Nodes[2]
	assert.Equal(t, ListNumber, list.ListType)
	require.Len(t, list.Children, 2)
	assert.Equal(t, "two", PlainText(list.Children[1].Children))

	assert.Equal(t, KindQuote, doc.Nodes[3].Kind)
	assert.Equal(t, Node{Kind: KindCode, Language: "go", Text: "fmt.Println(1)"}, doc.Nodes[4])
	assert.Equal(t, &Upload{URL: "/media/a.png", Alt: "Alt text"}, doc.Nodes[5].Upload)
	assert.Equal(t, KindRule, doc.Nodes[6].Kind)
}

func TestParseMarkdownLinks(t *testing.T) {
	cases := map[string]Link{
		"[x](cms://contact)":            {Collection: "pages", Slug: "contact"},
		"[x](cms://posts/launch)":       {Collection: "posts", Slug: "launch"},
		"[x](/docs#setup)":              {URL: "/docs#setup"},
		"[x](https://example.com)":      {URL: "https://example.com"},
		"[x](javascript:alert(1))":      {},
		"[x](JAVASCRIPT:alert(1))":      {},
		"[x](data:text/html;base64,AA)": {},
	}

	for source, want := range cases {
		doc := ParseMarkdown(source)
		require.Len(t, doc.Nodes, 1, source)
		require.NotEmpty(t, doc.Nodes[0].Children, source)
		assert.Equal(t, &want, doc.Nodes[0].Children[0].Link, source)
	}
}

func TestParseMarkdownDropsRawHTML(t *testing.T) {
	doc := ParseMarkdown("<script>alert(1)</script>\n\nplain")

	assert.Equal(t, "plain", PlainText(doc.Nodes))
}

func TestDocumentFromYAML(t *testing.T) {
	var value struct {
		Body Document `yaml:"body"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("body: |\n  ## Hi\n\n  there\n"), &value))

	require.Len(t, value.Body.Nodes, 2)
	assert.Equal(t, "Hi there", PlainText(value.Body.Nodes))

	err := yaml.Unmarshal([]byte("body:\n  - not\n  - markdown\n"), &value)
	assert.ErrorContains(t, err, "markdown string")
}
