package cms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"site/internal/richtext"
)

func TestLoadFallbackHomeBuiltIn(t *testing.T) {
	page, err := LoadFallbackHome("")
	require.NoError(t, err)

	assert.Equal(t, "home", page.Slug)
	assert.Equal(t, HeroLowImpact, page.Hero.Type)
	require.NotEmpty(t, page.Hero.RichText.Nodes)
	assert.Equal(t, richtext.KindHeading, page.Hero.RichText.Nodes[0].Kind)
	assert.Contains(t, richtext.PlainText(page.Hero.RichText.Nodes), "Payload Website Template")
	assert.Equal(t, "Payload Website Template", page.Meta.Title)
}

func TestLoadFallbackHomeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Welcome
hero:
  type: banner
  links:
    - label: Start
      url: /start
layout:
  - blockType: content
    columns:
      - size: full
        richText: Hello
`), 0o600))

	page, err := LoadFallbackHome(path)
	require.NoError(t, err)

	assert.Equal(t, "home", page.Slug)
	assert.Equal(t, "Welcome", page.Title)
	assert.Equal(t, HeroNone, page.Hero.Type)
	require.Len(t, page.Hero.Links, 1)
	assert.Equal(t, LinkCustom, page.Hero.Links[0].Type)
	assert.Equal(t, "default", page.Hero.Links[0].Appearance)
	require.Len(t, page.Layout, 1)
	assert.Equal(t, BlockContent, page.Layout[0].Type)
	assert.Equal(t, "Hello", richtext.PlainText(page.Layout[0].Columns[0].RichText.Nodes))
}

func TestLoadFallbackHomeErrors(t *testing.T) {
	_, err := LoadFallbackHome(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hero: [unterminated"), 0o600))
	_, err = LoadFallbackHome(path)
	assert.Error(t, err)
}
