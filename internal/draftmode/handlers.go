package draftmode

import (
	"log/slog"
	"net/http"
	"strings"
)

const (
	PreviewPath     = "/next/preview"
	ExitPreviewPath = "/next/exit-preview"
)

// PreviewHandler enables draft mode and forwards to the relative path
// given in the query, once the preview secret checks out.
func (m *Manager) PreviewHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "private, no-store")

		if !m.Available() {
			http.NotFound(w, r)
			return
		}

		query := r.URL.Query()
		path := strings.TrimSpace(query.Get("path"))
		if path == "" {
			http.Error(w, "Insufficient search params", http.StatusNotFound)
			return
		}

		if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.Contains(path, "\\") {
			http.Error(w, "This endpoint can only be used for relative previews", http.StatusBadRequest)
			return
		}

		if !m.MatchesSecret(query.Get("previewSecret")) {
			slog.Warn("draft preview rejected", "path", path)
			http.Error(w, "You are not allowed to preview this page", http.StatusForbidden)
			return
		}

		if err := m.Enable(w); err != nil {
			slog.Error("enable draft mode", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, path, http.StatusTemporaryRedirect)
	})
}

func (m *Manager) ExitHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		m.Disable(w)
		w.Header().Set("Cache-Control", "private, no-store")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Draft mode is disabled"))
	})
}
