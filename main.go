package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"site/internal/cms"
	"site/internal/config"
	"site/internal/draftmode"
	"site/internal/gql"
	"site/internal/metrics"
	"site/internal/web"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("site server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	m := metrics.New()
	store := cms.NewService(gql.NewClient(cfg), m.ObserveStoreQuery)

	fallback, err := cms.LoadFallbackHome(cfg.HomeFallbackFile)
	if err != nil {
		return err
	}

	draft := draftmode.New(cfg.PreviewSecret,
		draftmode.WithSecureCookie(strings.HasPrefix(cfg.RootURL, "https://")),
	)
	if !draft.Available() {
		logger.Warn("SITE_PREVIEW_SECRET is empty, draft previews are disabled")
	}

	handler, _, err := web.NewHandler(ctx, web.Options{
		Config:       cfg,
		Store:        store,
		FallbackHome: fallback,
		Draft:        draft,
		Metrics:      m,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("site server listening", "addr", cfg.ListenAddr, "cms", cfg.CMSURL)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Info("site server shutting down")
	return server.Shutdown(shutdownCtx)
}
