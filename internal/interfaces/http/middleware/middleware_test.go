package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type countingLimiter struct {
	limit int
	seen  map[string]int
	err   error
}

func (l *countingLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if window != time.Minute {
		return false, errors.New("unexpected window")
	}
	l.seen[key]++
	return l.seen[key] <= limit, nil
}

func newLimitedEngine(cfg RateLimitConfig, limiter RateLimiter) *gin.Engine {
	r := gin.New()
	r.POST("/generate", RateLimit(cfg, limiter), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	limiter := &countingLimiter{seen: map[string]int{}}
	r := newLimitedEngine(RateLimitConfig{Enabled: true, RequestsPerMinute: 2}, limiter)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests && w.Body.String() != `{"error":"Too many requests"}` {
			t.Fatalf("body = %s", w.Body.String())
		}
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != 429 {
		t.Fatalf("codes = %v", codes)
	}
	if limiter.seen["ratelimit:10.0.0.1:/generate"] != 3 {
		t.Fatalf("keys = %v", limiter.seen)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	limiter := &countingLimiter{err: errors.New("connection refused")}
	r := newLimitedEngine(RateLimitConfig{Enabled: true, RequestsPerMinute: 1}, limiter)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: code = %d", i, w.Code)
		}
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newLimitedEngine(RateLimitConfig{Enabled: false}, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	r.ServeHTTP(w, req)
	if w.Body.String() != "req-123" || w.Header().Get(RequestIDHeader) != "req-123" {
		t.Fatalf("propagated id = %q / %q", w.Body.String(), w.Header().Get(RequestIDHeader))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(w.Body.String()) != 36 {
		t.Fatalf("generated id = %q", w.Body.String())
	}

	for _, bad := range []string{"has space", "tab	here", strings.Repeat("x", 65)} {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, bad)
		r.ServeHTTP(w, req)
		if w.Body.String() == bad || len(w.Body.String()) != 36 {
			t.Fatalf("invalid id %q was not replaced: %q", bad, w.Body.String())
		}
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError || w.Body.String() != `{"error":"Internal server error"}` {
		t.Fatalf("code = %d body = %s", w.Code, w.Body.String())
	}
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(16))
	r.POST("/", func(c *gin.Context) {
		var body map[string]any
		err := c.ShouldBindJSON(&body)
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			c.Status(http.StatusRequestEntityTooLarge)
		case err != nil:
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusOK)
		}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"topic":"`+strings.Repeat("x", 64)+`"}`)))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversized body code = %d, want 413", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body code = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("small body code = %d", w.Code)
	}
}
