package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allowed, l.err
}

func newLimitContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/login")
	return c
}

func TestRateLimit_Allowed(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	called := false
	h := RateLimit(limiter, zerolog.Nop())(func(echo.Context) error {
		called = true
		return nil
	})

	if err := h(newLimitContext()); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if !called {
		t.Fatal("next handler never ran")
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "/login:203.0.113.7" {
		t.Fatalf("unexpected limiter key: %v", limiter.keys)
	}
}

func TestRateLimit_Denied(t *testing.T) {
	h := RateLimit(&stubLimiter{allowed: false}, zerolog.Nop())(func(echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	err := h(newLimitContext())
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 HTTPError, got %v", err)
	}
}

func TestRateLimit_StoreFailureFailsOpen(t *testing.T) {
	limiter := &stubLimiter{allowed: false, err: errors.New("redis unreachable")}
	called := false
	h := RateLimit(limiter, zerolog.Nop())(func(echo.Context) error {
		called = true
		return nil
	})

	if err := h(newLimitContext()); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if !called {
		t.Fatal("store failure must not block the request")
	}
}
