package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightUsesClasses(t *testing.T) {
	html, err := Highlight("package main\n\nfunc main() {}\n", "go")
	require.NoError(t, err)

	assert.Contains(t, html, `class="chroma"`)
	assert.Contains(t, html, `<span class="kd">func</span>`)
	assert.NotContains(t, html, "style=")
}

func TestHighlightEscapesSource(t *testing.T) {
	html, err := Highlight("<script>alert(1)</script>", "unknown-language")
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;")
}

func TestStyleSheetScopesDarkTheme(t *testing.T) {
	css, err := StyleSheet()
	require.NoError(t, err)

	assert.Contains(t, css, "/* Background */ .bg {")
	assert.Contains(t, css, `/* Background */ [data-theme="dark"] .bg {`)
	assert.Contains(t, css, `[data-theme="dark"] .chroma .k {`)

	light, _, found := strings.Cut(css, `[data-theme="dark"]`)
	require.True(t, found)
	assert.Contains(t, light, ".chroma .k {")
}
