package richtext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrMissingRoot = errors.New("rich text state has no root node")

type lexicalState struct {
	Root *lexicalNode `json:"root"`
}

type lexicalNode struct {
	Type string `json:"type"`
	Text string `json:"text"`
	// Format is a bitmask on text nodes and an alignment string on
	// element nodes.
	Format     json.RawMessage `json:"format"`
	Tag        string          `json:"tag"`
	ListType   string          `json:"listType"`
	Start      int             `json:"start"`
	Checked    *bool           `json:"checked"`
	RelationTo string          `json:"relationTo"`
	Value      json.RawMessage `json:"value"`
	Fields     *lexicalFields  `json:"fields"`
	Children   []lexicalNode   `json:"children"`
}

type lexicalFields struct {
	LinkType  string           `json:"linkType"`
	URL       string           `json:"url"`
	NewTab    bool             `json:"newTab"`
	Doc       *lexicalRelation `json:"doc"`
	BlockType string           `json:"blockType"`
	Language  string           `json:"language"`
	Code      string           `json:"code"`
	Style     string           `json:"style"`
	Content   json.RawMessage  `json:"content"`
	Media     json.RawMessage  `json:"media"`
}

type lexicalRelation struct {
	RelationTo string          `json:"relationTo"`
	Value      json.RawMessage `json:"value"`
}

// lexicalDoc is a populated relationship. Unpopulated ones arrive as a
// bare ID and decode to the zero value.
type lexicalDoc struct {
	Slug     string   `json:"slug"`
	URL      string   `json:"url"`
	Alt      string   `json:"alt"`
	MimeType string   `json:"mimeType"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
}

// ParseLexical decodes the editor state stored in a rich text field. An
// empty or null field yields an empty document.
func ParseLexical(raw []byte) (Document, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Document{}, nil
	}

	var state lexicalState
	if err := json.Unmarshal(raw, &state); err != nil {
		return Document{}, fmt.Errorf("decode rich text: %w", err)
	}
	if state.Root == nil {
		return Document{}, ErrMissingRoot
	}

	nodes, err := convertLexicalChildren(state.Root.Children)
	if err != nil {
		return Document{}, err
	}

	return Document{Nodes: nodes}, nil
}

func convertLexicalChildren(children []lexicalNode) ([]Node, error) {
	nodes := make([]Node, 0, len(children))
	for _, child := range children {
		node, ok, err := convertLexical(child)
		if err != nil {
			return nil, err
		}
		if ok {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

func convertLexical(in lexicalNode) (Node, bool, error) {
	switch in.Type {
	case "text":
		return Node{Kind: KindText, Text: in.Text, Format: textFormat(in.Format)}, true, nil
	case "tab":
		return Node{Kind: KindText, Text: "\t"}, true, nil
	case "linebreak":
		return Node{Kind: KindLineBreak}, true, nil
	case "horizontalrule":
		return Node{Kind: KindRule}, true, nil
	case "upload":
		upload := decodeUpload(in.Value)
		if upload == nil {
			return Node{}, false, nil
		}
		return Node{Kind: KindUpload, Upload: upload}, true, nil
	case "block":
		return convertLexicalBlock(in.Fields)
	}

	children, err := convertLexicalChildren(in.Children)
	if err != nil {
		return Node{}, false, err
	}

	switch in.Type {
	case "paragraph":
		return Node{Kind: KindParagraph, Children: children}, true, nil
	case "heading":
		level, _ := strconv.Atoi(strings.TrimPrefix(in.Tag, "h"))
		return Node{Kind: KindHeading, Level: level, Children: children}, true, nil
	case "quote":
		return Node{Kind: KindQuote, Children: children}, true, nil
	case "list":
		listType := ListType(in.ListType)
		if listType != ListNumber && listType != ListCheck {
			listType = ListBullet
		}
		return Node{Kind: KindList, ListType: listType, Start: in.Start, Children: children}, true, nil
	case "listitem":
		return Node{Kind: KindListItem, Checked: in.Checked != nil && *in.Checked, Children: children}, true, nil
	case "link", "autolink":
		return Node{Kind: KindLink, Link: lexicalLink(in.Fields), Children: children}, true, nil
	default:
		return Node{}, false, nil
	}
}

func convertLexicalBlock(fields *lexicalFields) (Node, bool, error) {
	if fields == nil {
		return Node{}, false, nil
	}

	switch fields.BlockType {
	case "code":
		return Node{Kind: KindCode, Language: strings.TrimSpace(fields.Language), Text: fields.Code}, true, nil
	case "banner":
		content, err := ParseLexical(fields.Content)
		if err != nil {
			return Node{}, false, fmt.Errorf("banner content: %w", err)
		}
		style := strings.TrimSpace(fields.Style)
		if style == "" {
			style = "info"
		}
		return Node{Kind: KindBanner, Style: style, Children: content.Nodes}, true, nil
	case "mediaBlock":
		upload := decodeUpload(fields.Media)
		if upload == nil {
			return Node{}, false, nil
		}
		return Node{Kind: KindUpload, Upload: upload}, true, nil
	default:
		return Node{}, false, nil
	}
}

func textFormat(raw json.RawMessage) Format {
	var bits float64
	if err := json.Unmarshal(raw, &bits); err != nil || bits < 0 {
		return 0
	}
	return Format(bits)
}

func lexicalLink(fields *lexicalFields) *Link {
	if fields == nil {
		return &Link{}
	}

	link := &Link{NewTab: fields.NewTab}
	if fields.LinkType == "internal" && fields.Doc != nil {
		var doc lexicalDoc
		if err := json.Unmarshal(fields.Doc.Value, &doc); err == nil {
			link.Collection = fields.Doc.RelationTo
			link.Slug = strings.TrimSpace(doc.Slug)
		}
		return link
	}

	link.URL = safeURL(fields.URL)
	return link
}

func decodeUpload(raw json.RawMessage) *Upload {
	var doc lexicalDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}

	src := safeURL(doc.URL)
	if src == "" {
		return nil
	}

	return &Upload{
		URL:      src,
		Alt:      strings.TrimSpace(doc.Alt),
		MIMEType: strings.TrimSpace(doc.MimeType),
		Width:    roundDimension(doc.Width),
		Height:   roundDimension(doc.Height),
	}
}

func roundDimension(value *float64) int {
	if value == nil {
		return 0
	}
	return int(math.Round(*value))
}
