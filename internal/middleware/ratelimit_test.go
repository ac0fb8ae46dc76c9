package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func rateLimitedHandler(rl *RateLimiter) http.Handler {
	return rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doRequest(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2, time.Minute)
	defer rl.Stop()
	h := rateLimitedHandler(rl)

	for i := 0; i < 2; i++ {
		if rec := doRequest(h, "10.0.0.1:1234"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want %d", i+1, rec.Code, http.StatusOK)
		}
	}

	rec := doRequest(h, "10.0.0.1:1234")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status after burst = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !strings.Contains(rec.Body.String(), "too many requests") {
		t.Errorf("body = %q, want a too-many-requests error", rec.Body.String())
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)
	defer rl.Stop()
	h := rateLimitedHandler(rl)

	if rec := doRequest(h, "10.0.0.1:1234"); rec.Code != http.StatusOK {
		t.Fatalf("first client status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec := doRequest(h, "10.0.0.1:1234"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("first client should be throttled, got %d", rec.Code)
	}

	// A different IP has its own bucket.
	if rec := doRequest(h, "10.0.0.2:1234"); rec.Code != http.StatusOK {
		t.Errorf("second client status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRateLimiterPrunesIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)
	defer rl.Stop()

	rl.getLimiter("10.0.0.1")
	rl.getLimiter("10.0.0.2")

	rl.prune(time.Now().Add(2 * time.Minute))

	rl.mu.Lock()
	remaining := len(rl.visitors)
	rl.mu.Unlock()
	if remaining != 0 {
		t.Errorf("visitors after prune = %d, want 0", remaining)
	}
}

func TestRateLimiterStop(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Millisecond)
	rl.Stop()

	// The limiter still works after the cleanup goroutine exits.
	if !rl.getLimiter("10.0.0.1").Allow() {
		t.Error("fresh visitor should be allowed after Stop")
	}
}
