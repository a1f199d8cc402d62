package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"identity/config"
	deliverycontext "identity/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(buf *bytes.Buffer, debug bool, h echo.HandlerFunc) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/*", h)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	e := newTestServer(&bytes.Buffer{}, false, func(c echo.Context) error {
		seen = deliverycontext.RequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	t.Run("reuses client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "bad id\twith spaces")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, "bad id\twith spaces", got)
		assert.Len(t, got, 36)
		assert.Equal(t, got, seen)
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		assert.False(t, validRequestID(strings.Repeat("a", maxRequestIDLength+1)))
		assert.True(t, validRequestID(strings.Repeat("a", maxRequestIDLength)))
	})
}

func TestLoggerMiddleware_RedactsOAuthParams(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf, true, func(c echo.Context) error {
		return c.NoContent(http.StatusFound)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=secret-code&state=secret-state&scope=email", nil))

	out := buf.String()
	require.NotEmpty(t, out)
	assert.NotContains(t, out, "secret-code")
	assert.NotContains(t, out, "secret-state")
	assert.Contains(t, out, "scope=email")
}

func TestLoggerMiddleware_Levels(t *testing.T) {
	t.Run("success is silent outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestServer(&buf, false, func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/home", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("health is silent in debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestServer(&buf, true, func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("handler error is logged with final status", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestServer(&buf, false, func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusForbidden, "nope")
		})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/me", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, buf.String(), `"status":403`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})
}

func TestRedactQuery(t *testing.T) {
	values, err := url.ParseQuery("token=abc&page=2")
	require.NoError(t, err)

	assert.Equal(t, "page=2&token=REDACTED", redactQuery(values))
}
