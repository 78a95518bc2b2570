package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func newTestRateLimiter(burst int) *RateLimiter {
	return NewRateLimiter(RateLimiterConfig{
		// rate casi nulo: una vez gastado el burst no se repone en el test
		Rate:            rate.Limit(0.001),
		Burst:           burst,
		CleanupInterval: time.Hour,
	})
}

func doLimited(t *testing.T, handler http.Handler, userID string) int {
	t.Helper()

	req := httptest.NewRequest("GET", "/pets", nil)
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func limitedHandler(rl *RateLimiter) http.Handler {
	var next http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	// mismo orden que el router: claims primero, límite después
	return AuthContext(nil)(rl.Middleware()(next))
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := newTestRateLimiter(3)
	defer rl.Stop()

	h := limitedHandler(rl)

	for i := 0; i < 3; i++ {
		if code := doLimited(t, h, "user-1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := doLimited(t, h, "user-1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
}

func TestRateLimiter_IsolatesUsers(t *testing.T) {
	rl := newTestRateLimiter(1)
	defer rl.Stop()

	h := limitedHandler(rl)

	if code := doLimited(t, h, "user-1"); code != http.StatusOK {
		t.Fatalf("user-1 first request: expected 200, got %d", code)
	}
	if code := doLimited(t, h, "user-1"); code != http.StatusTooManyRequests {
		t.Fatalf("user-1 second request: expected 429, got %d", code)
	}

	// otro usuario tiene su propio bucket
	if code := doLimited(t, h, "user-2"); code != http.StatusOK {
		t.Fatalf("user-2: expected 200, got %d", code)
	}

	if rl.LimiterCount() != 2 {
		t.Fatalf("expected 2 active limiters, got %d", rl.LimiterCount())
	}
}

func TestRateLimiter_SkipsAnonymousRequests(t *testing.T) {
	rl := newTestRateLimiter(1)
	defer rl.Stop()

	h := limitedHandler(rl)

	// sin claims no hay límite: el handler decide el 401
	for i := 0; i < 5; i++ {
		if code := doLimited(t, h, ""); code != http.StatusOK {
			t.Fatalf("anonymous request %d: expected 200, got %d", i, code)
		}
	}
	if rl.LimiterCount() != 0 {
		t.Fatalf("expected no limiters for anonymous traffic, got %d", rl.LimiterCount())
	}
}

func TestRateLimiter_RetryAfterHeader(t *testing.T) {
	rl := newTestRateLimiter(1)
	defer rl.Stop()

	h := limitedHandler(rl)
	doLimited(t, h, "user-1")

	req := httptest.NewRequest("GET", "/pets", nil)
	req.Header.Set("X-Debug-User-ID", "user-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}
