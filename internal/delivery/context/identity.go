package context

import (
	"log/slog"

	"identity/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	KeyIdentity     ContextKey = "identity"
	KeySessionToken ContextKey = "session_token"
)

// SetIdentity stores the identity resolved from the session.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the identity set by the auth middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity, ok && identity != nil
}

// BindSession stores the authenticated identity and its token, and tags the
// request-scoped logger with the identity id.
func BindSession(c echo.Context, identity *entity.Identity, token string, fallback *slog.Logger) {
	SetIdentity(c, identity)
	c.Set(string(KeySessionToken), token)

	ctx := c.Request().Context()
	logger := GetLoggerOrDefault(ctx, fallback).With(slog.String("identity_id", identity.ID.String()))
	c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
}

// GetSessionToken returns the session token the request authenticated with.
func GetSessionToken(c echo.Context) string {
	token, _ := c.Get(string(KeySessionToken)).(string)

	return token
}
