// Package templgen compiles .templ sources into the committed _templ.go
// files, or reports which committed files no longer match their source.
package templgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/a-h/templ/generator"
	"github.com/a-h/templ/parser/v2"
)

var ErrStale = errors.New("generated files are out of date")

type Config struct {
	Files []string
	Paths []string
	// BasePath anchors the file names embedded in generated errors,
	// usually the module root.
	BasePath string
	// Check compares instead of writing.
	Check bool
}

type Result struct {
	Written []string
	Stale   []string
}

func Run(cfg Config) (Result, error) {
	basePath := strings.TrimSpace(cfg.BasePath)
	if basePath == "" {
		basePath = "."
	}

	sources, err := collectSources(cfg.Files, cfg.Paths)
	if err != nil {
		return Result{}, err
	}
	if len(sources) == 0 {
		return Result{}, errors.New("no templ files found")
	}

	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return Result{}, fmt.Errorf("resolve base path %q: %w", basePath, err)
	}

	var result Result
	for _, source := range sources {
		target := targetPath(source)
		output, err := compile(source, baseAbs)
		if err != nil {
			return result, err
		}

		if cfg.Check {
			current, err := os.ReadFile(target)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return result, fmt.Errorf("read %q: %w", target, err)
			}
			if !bytes.Equal(current, output) {
				result.Stale = append(result.Stale, target)
			}
			continue
		}

		if err := os.WriteFile(target, output, 0o644); err != nil {
			return result, fmt.Errorf("write %q: %w", target, err)
		}
		result.Written = append(result.Written, target)
	}

	if len(result.Stale) > 0 {
		return result, fmt.Errorf("%w: %s", ErrStale, strings.Join(result.Stale, ", "))
	}
	return result, nil
}

func targetPath(source string) string {
	return strings.TrimSuffix(source, ".templ") + "_templ.go"
}

func collectSources(files []string, paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var all []string
	add := func(name string) error {
		absPath, err := filepath.Abs(name)
		if err != nil {
			return fmt.Errorf("resolve file %q: %w", name, err)
		}
		if _, ok := seen[absPath]; !ok {
			seen[absPath] = struct{}{}
			all = append(all, absPath)
		}
		return nil
	}

	for _, name := range files {
		if filepath.Ext(name) != ".templ" {
			return nil, fmt.Errorf("file %q must have .templ extension", name)
		}
		if err := add(name); err != nil {
			return nil, err
		}
	}

	for _, root := range paths {
		walkErr := filepath.WalkDir(root, func(name string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() || filepath.Ext(name) != ".templ" {
				return nil
			}
			return add(name)
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walk path %q: %w", root, walkErr)
		}
	}

	sort.Strings(all)
	return all, nil
}

func compile(source string, baseAbs string) ([]byte, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", source, err)
	}

	relName, err := filepath.Rel(baseAbs, source)
	if err != nil {
		return nil, fmt.Errorf("compute relative filename for %q: %w", source, err)
	}

	var output bytes.Buffer
	if _, err := generator.Generate(tree, &output, generator.WithFileName(filepath.ToSlash(relName))); err != nil {
		return nil, fmt.Errorf("generate %q: %w", source, err)
	}

	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated output for %q: %w", source, err)
	}
	return formatted, nil
}
