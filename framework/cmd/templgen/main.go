package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"site/framework/templgen"
)

var CLI struct {
	File  []string `help:"templ file to compile (repeatable)"`
	Path  []string `help:"directory to scan for .templ files (repeatable)"`
	Base  string   `default:"." help:"base path for file names embedded in generated output"`
	Check bool     `help:"fail when a generated file differs from its source instead of writing it"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("templgen"),
		kong.Description("Compile templ components into committed Go files."),
	)

	result, err := templgen.Run(templgen.Config{
		Files:    CLI.File,
		Paths:    CLI.Path,
		BasePath: CLI.Base,
		Check:    CLI.Check,
	})
	if err != nil {
		slog.Error("templgen failed", "stale", result.Stale, "error", err)
		os.Exit(1)
	}
	slog.Info("templgen done", "written", len(result.Written))
}
