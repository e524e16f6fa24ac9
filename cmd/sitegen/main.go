package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"site/internal/cms"
	"site/internal/config"
	"site/internal/gql"
	"site/internal/pages"
	"site/internal/redirects"
)

var CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Params struct {
		Limit  int    `short:"l" help:"Maximum number of slugs to request (defaults to SITE_STATIC_PARAMS_LIMIT)"`
		Output string `short:"o" help:"Write the JSON list to this file instead of stdout"`
	} `cmd:"" help:"Print the catch-all route params to prerender at build time"`

	Fallback struct {
		File string `arg:"" optional:"" help:"YAML file to check (defaults to SITE_HOME_FALLBACK_FILE or the built-in page)"`
	} `cmd:"" help:"Validate the static home page used when the CMS has none"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("sitegen"),
		kong.Description("Build-time helpers for the site frontend."),
	)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	cfg := config.Load()
	ctx := context.Background()

	var err error
	switch kctx.Command() {
	case "params":
		err = runParamsCommand(ctx, cfg)
	case "fallback", "fallback <file>":
		file := CLI.Fallback.File
		if file == "" {
			file = cfg.HomeFallbackFile
		}
		err = runFallback(file, os.Stdout)
	default:
		err = fmt.Errorf("unknown command %q", kctx.Command())
	}
	if err != nil {
		slog.Error("sitegen failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}

func runParamsCommand(ctx context.Context, cfg config.Config) error {
	limit := cfg.StaticParamsLimit
	if CLI.Params.Limit > 0 {
		limit = CLI.Params.Limit
	}

	store := cms.NewService(gql.NewClient(cfg), nil)
	return writeOutput(CLI.Params.Output, os.Stdout, func(out io.Writer) error {
		return runParams(ctx, store, limit, out)
	})
}

// writeOutput runs write against path, or against stdout when path is
// empty. A failed close is reported like a failed write.
func writeOutput(path string, stdout io.Writer, write func(out io.Writer) error) (err error) {
	if path == "" {
		return write(stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	return write(file)
}

func runParams(ctx context.Context, store cms.Store, limit int, out io.Writer) error {
	resolver, err := pages.NewResolver(pages.Config{
		Store:             store,
		Redirects:         redirects.NewResolver(store, nil),
		StaticParamsLimit: limit,
	})
	if err != nil {
		return err
	}

	params, err := resolver.StaticParams(ctx)
	if err != nil {
		return err
	}
	slog.Debug("static params listed", "count", len(params))

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(params)
}

func runFallback(file string, out io.Writer) error {
	page, err := cms.LoadFallbackHome(file)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "fallback home %q: hero=%s blocks=%d\n", page.Title, page.Hero.Type, len(page.Layout))
	return err
}
