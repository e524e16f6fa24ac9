package templgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloSource = "package sample\n\ntempl Hello(name string) {\n\t<p>{ name }</p>\n}\n"

func TestRunWritesGeneratedFiles(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "views", "hello.templ")
	writeTestFile(t, source, helloSource)

	result, err := Run(Config{Paths: []string{root}, BasePath: root})
	require.NoError(t, err)

	target := filepath.Join(root, "views", "hello_templ.go")
	assert.Equal(t, []string{target}, result.Written)
	generated, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(generated), "func Hello(name string) templ.Component")
	assert.Contains(t, string(generated), "views/hello.templ")
}

func TestRunCheckReportsStaleFiles(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "hello.templ")
	writeTestFile(t, source, helloSource)

	result, err := Run(Config{Files: []string{source}, BasePath: root, Check: true})
	assert.ErrorIs(t, err, ErrStale)
	assert.Equal(t, []string{filepath.Join(root, "hello_templ.go")}, result.Stale)

	_, err = Run(Config{Files: []string{source}, BasePath: root})
	require.NoError(t, err)

	result, err = Run(Config{Files: []string{source}, BasePath: root, Check: true})
	require.NoError(t, err)
	assert.Empty(t, result.Stale)
	assert.Empty(t, result.Written)
}

func TestRunRejectsBadSelections(t *testing.T) {
	root := t.TempDir()

	_, err := Run(Config{BasePath: root})
	assert.ErrorContains(t, err, "no templ files found")

	_, err = Run(Config{Files: []string{filepath.Join(root, "hello.go")}})
	assert.ErrorContains(t, err, ".templ extension")

	broken := filepath.Join(root, "broken.templ")
	writeTestFile(t, broken, "package sample\n\ntempl Broken( {\n")
	_, err = Run(Config{Files: []string{broken}, BasePath: root})
	assert.ErrorContains(t, err, "parse")
}

func writeTestFile(t *testing.T, name string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}
