package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestLimiter(opts ...Option) (*IPLimiter, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	defaults := []Option{
		WithRate(1, 3),
		WithTTL(100 * time.Millisecond),
	}
	return New(ctx, append(defaults, opts...)...), cancel
}

func TestAllow_BurstThenReject(t *testing.T) {
	l, cancel := newTestLimiter()
	defer cancel()

	for i := 0; i < 3; i++ {
		if !l.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed (within burst)", i+1)
		}
	}

	if l.allow("10.0.0.1") {
		t.Fatal("request 4 should be denied (burst exhausted)")
	}
	if !l.allow("10.0.0.2") {
		t.Fatal("another ip should have its own bucket")
	}
}

func TestMiddleware_RejectsWith429(t *testing.T) {
	denied := 0
	l, cancel := newTestLimiter(WithRate(1, 1), WithOnDenied(func(string) { denied++ }))
	defer cancel()

	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/next/preview", nil)
	req.RemoteAddr = "192.0.2.7:5123"
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusNoContent {
		t.Fatalf("first status = %d, want %d", first.Code, http.StatusNoContent)
	}

	second := httptest.NewRecorder()
	req.RemoteAddr = "192.0.2.7:6000"
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want %d", second.Code, http.StatusTooManyRequests)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After header")
	}
	if denied != 1 {
		t.Fatalf("denied callback calls = %d, want 1", denied)
	}
}

func TestCleanup_EvictsIdleVisitors(t *testing.T) {
	l, cancel := newTestLimiter(WithTTL(20 * time.Millisecond))
	defer cancel()

	l.allow("10.0.0.1")

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		l.mu.Lock()
		n := len(l.visitors)
		l.mu.Unlock()
		if n == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("idle visitor was not evicted")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[2001:db8::1]:443"
	if got := clientIP(req); got != "2001:db8::1" {
		t.Fatalf("clientIP = %q", got)
	}

	req.RemoteAddr = "bare"
	if got := clientIP(req); got != "bare" {
		t.Fatalf("clientIP = %q", got)
	}
}
