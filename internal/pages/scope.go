package pages

import (
	"context"
	"net/http"

	"site/internal/cms"
)

// Scope carries the per-request lookups. The page body and the metadata
// generator each get their own memo.
type Scope struct {
	Draft    bool
	Page     *Lookup
	Metadata *Lookup
}

func NewScope(store cms.Store, draft bool) *Scope {
	return &Scope{
		Draft:    draft,
		Page:     NewLookup(store, draft),
		Metadata: NewLookup(store, draft),
	}
}

type scopeKey struct{}

func WithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

func ScopeFrom(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(*Scope)
	return scope, ok && scope != nil
}

// ScopeMiddleware attaches a fresh Scope to every request. draft reports
// whether the request runs in preview mode.
func ScopeMiddleware(store cms.Store, draft func(r *http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := NewScope(store, draft != nil && draft(r))
			next.ServeHTTP(w, r.WithContext(WithScope(r.Context(), scope)))
		})
	}
}
