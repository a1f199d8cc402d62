// Package cookie builds the cookies carrying session, profile completion and
// OAuth state values.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"identity/config"
	"identity/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// stateTTL bounds how long a consent screen may stay open.
const stateTTL = 10 * time.Minute

const stateSeparator = "."

// Jar reads and writes the service cookies with the configured attributes.
type Jar struct {
	cfg config.CookieConfig
	now func() time.Time
}

// NewJar is the constructor for Jar.
func NewJar(cfg *config.Config) *Jar {
	jar := &Jar{now: time.Now}
	if cfg != nil && cfg.Cookie != nil {
		jar.cfg = *cfg.Cookie
	}

	return jar
}

// SetSession sets the session cookie until the token expires.
func (j *Jar) SetSession(c echo.Context, token *service.IssuedToken) {
	c.SetCookie(j.build(j.cfg.Name, token.Value, token.ExpiresAt))
}

// SessionToken returns the session cookie value or an empty string.
func (j *Jar) SessionToken(c echo.Context) string {
	return j.read(c, j.cfg.Name)
}

// ClearSession expires the session cookie.
func (j *Jar) ClearSession(c echo.Context) {
	c.SetCookie(j.expired(j.cfg.Name))
}

// SetPendingProfile sets the profile completion proof.
func (j *Jar) SetPendingProfile(c echo.Context, token *service.IssuedToken) {
	c.SetCookie(j.build(j.cfg.PendingName, token.Value, token.ExpiresAt))
}

// PendingProfileToken returns the profile completion proof or an empty string.
func (j *Jar) PendingProfileToken(c echo.Context) string {
	return j.read(c, j.cfg.PendingName)
}

// ClearPendingProfile expires the profile completion proof.
func (j *Jar) ClearPendingProfile(c echo.Context) {
	c.SetCookie(j.expired(j.cfg.PendingName))
}

// SetOAuthState keeps the state and PKCE verifier until the provider redirects back.
func (j *Jar) SetOAuthState(c echo.Context, state, verifier string) {
	cookie := j.build(j.cfg.StateName, state+stateSeparator+verifier, j.now().Add(stateTTL))
	// The provider redirect is a cross-site top-level navigation.
	if cookie.SameSite == http.SameSiteStrictMode {
		cookie.SameSite = http.SameSiteLaxMode
	}
	c.SetCookie(cookie)
}

// OAuthState returns the stored state and verifier. Both are empty when the
// cookie is missing or malformed.
func (j *Jar) OAuthState(c echo.Context) (state, verifier string) {
	state, verifier, ok := strings.Cut(j.read(c, j.cfg.StateName), stateSeparator)
	if !ok {
		return "", ""
	}

	return state, verifier
}

// ClearOAuthState expires the OAuth state cookie.
func (j *Jar) ClearOAuthState(c echo.Context) {
	c.SetCookie(j.expired(j.cfg.StateName))
}

func (j *Jar) read(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func (j *Jar) build(name, value string, expires time.Time) *http.Cookie {
	maxAge := int(expires.Sub(j.now()).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     j.cfg.Path,
		Domain:   j.cfg.Domain,
		Expires:  expires,
		MaxAge:   maxAge,
		Secure:   j.cfg.Secure,
		HttpOnly: j.cfg.HTTPOnly,
		SameSite: sameSite(j.cfg.SameSite),
	}
}

func (j *Jar) expired(name string) *http.Cookie {
	cookie := j.build(name, "", time.Unix(0, 0))
	cookie.MaxAge = -1

	return cookie
}

func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}
