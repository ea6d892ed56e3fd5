package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"shopcart/internal/auth"
	"shopcart/internal/config"
	"shopcart/internal/handler"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	cfg := &config.Config{SessionSecret: "test-secret"}
	tokens := auth.NewTokenService(cfg.SessionSecret)

	Register(
		e,
		cfg,
		tokens,
		nil,
		handler.NewAuthHandler(nil),
		handler.NewProductHandler(nil),
		handler.NewCartHandler(nil),
		handler.NewSeedHandler(nil, nil),
	)
	return e
}

func TestRouter_CORS(t *testing.T) {
	t.Run("cross-origin requests are allowed", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(echo.HeaderOrigin, "http://example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("preflight succeeds", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
		req.Header.Set(echo.HeaderOrigin, "http://example.com")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}

func TestRouter_GuardedRoutesRejectMissingCookie(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
