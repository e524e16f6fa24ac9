package richtext

import (
	"strings"
	"unicode/utf8"
)

// PlainText flattens nodes to their visible words. Code blocks and
// uploads contribute nothing.
func PlainText(nodes []Node) string {
	var out strings.Builder
	writeText(&out, nodes)
	return strings.Join(strings.Fields(out.String()), " ")
}

func writeText(out *strings.Builder, nodes []Node) {
	for _, node := range nodes {
		switch node.Kind {
		case KindText:
			out.WriteString(node.Text)
		case KindLink:
			writeText(out, node.Children)
		case KindCode, KindUpload, KindRule:
		case KindLineBreak:
			out.WriteByte(' ')
		default:
			out.WriteByte(' ')
			writeText(out, node.Children)
			out.WriteByte(' ')
		}
	}
}

// Excerpt returns at most limit runes of the document's text, cut at a
// word boundary and marked with an ellipsis when shortened.
func (d Document) Excerpt(limit int) string {
	if limit < 1 {
		return ""
	}

	text := PlainText(d.Nodes)
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:limit-1])
	if space := strings.LastIndexByte(cut, ' '); space > len(cut)/2 {
		cut = cut[:space]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
