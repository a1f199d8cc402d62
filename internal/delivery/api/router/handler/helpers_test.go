package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"identity/config"
	"identity/internal/delivery/api/cookie"
	"identity/internal/delivery/api/render"
	"identity/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			LandingPath:           "/home",
			ProfileCompletionPath: "/auth/complete-profile",
		},
		Cookie: &config.CookieConfig{
			Name:        "token",
			PendingName: "profile_pending",
			StateName:   "oauth_state",
			Path:        "/",
			HTTPOnly:    true,
			SameSite:    "lax",
		},
	}
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	renderer, err := render.New()
	require.NoError(t, err)
	e.Renderer = renderer

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestJar() *cookie.Jar {
	return cookie.NewJar(newTestConfig())
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}
