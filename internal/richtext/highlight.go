package richtext

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	lightTheme = "github"
	darkTheme  = "github-dark"
)

var formatter = chromahtml.New(chromahtml.WithClasses(true), chromahtml.TabWidth(2))

// Highlight renders code as chroma markup using CSS classes, so the same
// output works under both themes of StyleSheet. Unknown languages are
// guessed from the source.
func Highlight(code string, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := formatter.Format(&out, styles.Get(lightTheme), iterator); err != nil {
		return "", err
	}
	return out.String(), nil
}

var (
	styleSheetOnce sync.Once
	styleSheet     string
	styleSheetErr  error
)

// StyleSheet returns the highlight rules for the light theme followed by
// dark theme rules that apply under [data-theme="dark"].
func StyleSheet() (string, error) {
	styleSheetOnce.Do(func() {
		var out strings.Builder
		if styleSheetErr = formatter.WriteCSS(&out, styles.Get(lightTheme)); styleSheetErr != nil {
			return
		}

		var dark strings.Builder
		if styleSheetErr = formatter.WriteCSS(&dark, styles.Get(darkTheme)); styleSheetErr != nil {
			return
		}
		for _, rule := range strings.SplitAfter(dark.String(), "\n") {
			out.WriteString(darkRule(rule))
		}
		styleSheet = out.String()
	})
	return styleSheet, styleSheetErr
}

// darkRule scopes one chroma rule line, which looks like
// "/* Keyword */ .chroma .k { ... }".
func darkRule(rule string) string {
	comment, selector, found := strings.Cut(rule, "*/ ")
	if !found {
		return rule
	}
	return comment + `*/ [data-theme="dark"] ` + selector
}
