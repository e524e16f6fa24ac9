package richtext

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// ReferenceScheme addresses another CMS document from markdown, as
// cms://<collection>/<slug>. A bare cms://<slug> points at a page.
const ReferenceScheme = "cms://"

// ParseMarkdown builds a document from markdown source. Raw HTML is
// dropped.
func ParseMarkdown(source string) Document {
	if strings.TrimSpace(source) == "" {
		return Document{}
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	root := p.Parse([]byte(source))

	return Document{Nodes: convertBlocks(root.GetChildren())}
}

func convertBlocks(children []ast.Node) []Node {
	nodes := make([]Node, 0, len(children))
	for _, child := range children {
		switch block := child.(type) {
		case *ast.Paragraph:
			// A paragraph holding only an image becomes a standalone upload.
			if upload, ok := soleImage(block); ok {
				nodes = append(nodes, upload)
				continue
			}
			nodes = append(nodes, Node{Kind: KindParagraph, Children: convertInline(block.Children, 0)})
		case *ast.Heading:
			nodes = append(nodes, Node{Kind: KindHeading, Level: block.Level, Children: convertInline(block.Children, 0)})
		case *ast.BlockQuote:
			nodes = append(nodes, Node{Kind: KindQuote, Children: flattenQuote(convertBlocks(block.Children))})
		case *ast.List:
			nodes = append(nodes, convertList(block))
		case *ast.CodeBlock:
			nodes = append(nodes, Node{
				Kind:     KindCode,
				Language: infoLanguage(block.Info),
				Text:     strings.TrimSuffix(string(block.Literal), "\n"),
			})
		case *ast.HorizontalRule:
			nodes = append(nodes, Node{Kind: KindRule})
		}
	}
	return nodes
}

func convertList(list *ast.List) Node {
	node := Node{Kind: KindList, ListType: ListBullet}
	if list.ListFlags&ast.ListTypeOrdered != 0 {
		node.ListType = ListNumber
		node.Start = list.Start
	}

	for _, child := range list.Children {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}

		var inline []Node
		for _, block := range convertBlocks(item.Children) {
			// List items hold inline content; tight list paragraphs are
			// unwrapped and nested lists kept as children.
			if block.Kind == KindParagraph {
				inline = append(inline, block.Children...)
				continue
			}
			inline = append(inline, block)
		}
		node.Children = append(node.Children, Node{Kind: KindListItem, Children: inline})
	}

	return node
}

// flattenQuote keeps quotes inline like the editor does, separating the
// quoted paragraphs with line breaks.
func flattenQuote(blocks []Node) []Node {
	var out []Node
	for idx, block := range blocks {
		if idx > 0 {
			out = append(out, Node{Kind: KindLineBreak})
		}
		if block.Kind == KindParagraph {
			out = append(out, block.Children...)
			continue
		}
		out = append(out, block)
	}
	return out
}

func convertInline(children []ast.Node, format Format) []Node {
	var nodes []Node
	for _, child := range children {
		switch inline := child.(type) {
		case *ast.Text:
			text := strings.ReplaceAll(string(inline.Literal), "\n", " ")
			if text != "" {
				nodes = append(nodes, Node{Kind: KindText, Text: text, Format: format})
			}
		case *ast.Emph:
			nodes = append(nodes, convertInline(inline.Children, format|FormatItalic)...)
		case *ast.Strong:
			nodes = append(nodes, convertInline(inline.Children, format|FormatBold)...)
		case *ast.Del:
			nodes = append(nodes, convertInline(inline.Children, format|FormatStrikethrough)...)
		case *ast.Code:
			nodes = append(nodes, Node{Kind: KindText, Text: string(inline.Literal), Format: format | FormatCode})
		case *ast.Softbreak:
			nodes = append(nodes, Node{Kind: KindText, Text: " ", Format: format})
		case *ast.Hardbreak:
			nodes = append(nodes, Node{Kind: KindLineBreak})
		case *ast.Link:
			nodes = append(nodes, Node{
				Kind:     KindLink,
				Link:     markdownLink(string(inline.Destination)),
				Children: convertInline(inline.Children, format),
			})
		case *ast.Image:
			nodes = append(nodes, imageNode(inline))
		}
	}
	return nodes
}

func markdownLink(destination string) *Link {
	target, ok := strings.CutPrefix(strings.TrimSpace(destination), ReferenceScheme)
	if !ok {
		return &Link{URL: safeURL(destination)}
	}

	collection, slug, found := strings.Cut(strings.Trim(target, "/"), "/")
	if !found {
		collection, slug = "pages", collection
	}
	return &Link{Collection: collection, Slug: slug}
}

func soleImage(paragraph *ast.Paragraph) (Node, bool) {
	if len(paragraph.Children) != 1 {
		return Node{}, false
	}
	image, ok := paragraph.Children[0].(*ast.Image)
	if !ok {
		return Node{}, false
	}
	return imageNode(image), true
}

func imageNode(image *ast.Image) Node {
	return Node{
		Kind: KindUpload,
		Upload: &Upload{
			URL: safeURL(string(image.Destination)),
			Alt: strings.TrimSpace(PlainText(convertInline(image.Children, 0))),
		},
	}
}

func infoLanguage(info []byte) string {
	fields := strings.Fields(string(info))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
