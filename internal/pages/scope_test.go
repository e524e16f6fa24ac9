package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeMiddlewareCreatesFreshScopePerRequest(t *testing.T) {
	store := newFakeStore()
	var scopes []*Scope
	handler := ScopeMiddleware(store, func(r *http.Request) bool {
		return r.URL.Query().Get("draft") == "1"
	})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		scope, ok := ScopeFrom(r.Context())
		require.True(t, ok)
		scopes = append(scopes, scope)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about?draft=1", nil))

	require.Len(t, scopes, 2)
	assert.NotSame(t, scopes[0], scopes[1])
	assert.NotSame(t, scopes[0].Page, scopes[0].Metadata)
	assert.False(t, scopes[0].Draft)
	assert.True(t, scopes[1].Draft)
	assert.True(t, scopes[1].Page.Draft())
}

func TestScopeFromMissing(t *testing.T) {
	_, ok := ScopeFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
