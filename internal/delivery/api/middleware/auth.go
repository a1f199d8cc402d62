package middleware

import (
	"log/slog"
	"strings"

	"identity/internal/delivery/api/cookie"
	deliverycontext "identity/internal/delivery/context"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware protects routes with the session token.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	jar       *cookie.Jar
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware. logger is used for
// requests that carry no request-scoped logger.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, jar *cookie.Jar, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC, jar: jar, logger: logger}
}

// Authenticate requires a valid session. A missing token fails with 401, an
// invalid, expired or revoked one with 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := SessionToken(c, m.jar)
		if token == "" {
			return domainerrors.ErrSessionMissing
		}

		session, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.BindSession(c, session.Identity, token, m.logger)

		return next(c)
	}
}

// SessionToken returns the session cookie, falling back to a bearer header.
func SessionToken(c echo.Context, jar *cookie.Jar) string {
	if token := jar.SessionToken(c); token != "" {
		return token
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return ""
}
