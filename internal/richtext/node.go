// Package richtext holds the block and inline tree that CMS rich text
// fields decode into. Documents come from the editor's JSON state or, for
// content kept in files, from markdown.
package richtext

import (
	"net/url"
	"strconv"
	"strings"
)

type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindHeading   Kind = "heading"
	KindText      Kind = "text"
	KindLineBreak Kind = "linebreak"
	KindLink      Kind = "link"
	KindList      Kind = "list"
	KindListItem  Kind = "listitem"
	KindQuote     Kind = "quote"
	KindRule      Kind = "horizontalrule"
	KindCode      Kind = "code"
	KindBanner    Kind = "banner"
	KindUpload    Kind = "upload"
)

// Format is the editor's text format bitmask.
type Format uint16

const (
	FormatBold Format = 1 << iota
	FormatItalic
	FormatStrikethrough
	FormatUnderline
	FormatCode
	FormatSubscript
	FormatSuperscript
)

func (f Format) Has(flag Format) bool {
	return f&flag != 0
}

func (f Format) Without(flag Format) Format {
	return f &^ flag
}

type ListType string

const (
	ListBullet ListType = "bullet"
	ListNumber ListType = "number"
	ListCheck  ListType = "check"
)

// Link is the target of a link node. Collection and Slug are set for
// links to other CMS documents, URL for everything else.
type Link struct {
	URL        string
	NewTab     bool
	Collection string
	Slug       string
}

type Upload struct {
	URL      string
	Alt      string
	MIMEType string
	Width    int
	Height   int
}

type Node struct {
	Kind   Kind
	Text   string
	Format Format
	// Level is 1-6 for headings.
	Level    int
	ListType ListType
	Start    int
	Checked  bool
	Link     *Link
	Language string
	// Style is the banner variant: info, warning, error or success.
	Style    string
	Upload   *Upload
	Children []Node
}

type Document struct {
	Nodes []Node
}

func (d Document) IsEmpty() bool {
	return len(d.Nodes) == 0
}

// HeadingTag returns "h1" to "h6", clamping levels outside that range.
func (n Node) HeadingTag() string {
	level := min(max(n.Level, 1), 6)
	return "h" + strconv.Itoa(level)
}

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// safeURL drops targets with schemes a browser would execute, keeping
// relative references and fragments.
func safeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" && !allowedSchemes[strings.ToLower(parsed.Scheme)] {
		return ""
	}

	return raw
}
