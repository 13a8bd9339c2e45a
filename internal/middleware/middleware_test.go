package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter_LocalFallback(t *testing.T) {
	rl := NewRateLimiter(t.Context(), nil, PerMinute(2, 2), "test")

	r := gin.New()
	r.GET("/x", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}

	// Another client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("second client should pass, got %d", w.Code)
	}
}

func TestRateLimiter_Key(t *testing.T) {
	rl := NewRateLimiter(t.Context(), nil, PerMinute(1, 1), "ai")
	if got := rl.key("10.0.0.1"); got != "ratelimit:ai:ip:10.0.0.1" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestLocalLimiter_CleanupStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := newLocalLimiter(ctx)

	cancel()

	select {
	case <-l.done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup goroutine did not exit after cancel")
	}
}

func TestLocalLimiter_Evict(t *testing.T) {
	l := &localLimiter{limiters: make(map[string]*limiterEntry), now: time.Now}
	if _, err := l.allow("k", PerMinute(10, 1)); err != nil {
		t.Fatalf("allow: %v", err)
	}

	l.now = func() time.Time { return time.Now().Add(entryTTL + time.Minute) }
	l.evict()

	if len(l.limiters) != 0 {
		t.Fatalf("expected stale entry to be evicted, have %d", len(l.limiters))
	}
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)

	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	good, _ := tokens.Issue(7, "ana")

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"valid", "Bearer " + good, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
			if tc.want == http.StatusOK {
				var body map[string]uint
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body["id"] != 7 {
					t.Fatalf("unexpected body %s", w.Body.String())
				}
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	r.ServeHTTP(w, req)

	if w.Body.String() != "abc-123" || w.Header().Get(HeaderRequestID) != "abc-123" {
		t.Fatalf("incoming id not propagated: body=%q header=%q", w.Body.String(), w.Header().Get(HeaderRequestID))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Fatal("expected a generated request id")
	}
}

func TestCORSMiddleware_Wildcard(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"*"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}
