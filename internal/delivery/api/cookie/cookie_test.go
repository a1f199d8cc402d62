package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"identity/config"
	"identity/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJar(sameSite string) *Jar {
	jar := NewJar(&config.Config{Cookie: &config.CookieConfig{
		Name:        "token",
		PendingName: "profile_pending",
		StateName:   "oauth_state",
		Path:        "/",
		HTTPOnly:    true,
		Secure:      true,
		SameSite:    sameSite,
	}})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	jar.now = func() time.Time { return now }

	return jar
}

func responseCookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	cookies := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		cookies[c.Name] = c
	}

	return cookies
}

func TestJar_SetSession(t *testing.T) {
	jar := newTestJar("lax")
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	jar.SetSession(c, &service.IssuedToken{Value: "signed", ExpiresAt: jar.now().Add(time.Hour)})

	cookie := responseCookies(rec)["token"]
	require.NotNil(t, cookie)
	assert.Equal(t, "signed", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)
}

func TestJar_ClearSession(t *testing.T) {
	jar := newTestJar("")
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), rec)

	jar.ClearSession(c)

	cookie := responseCookies(rec)["token"]
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestJar_ReadCookies(t *testing.T) {
	jar := newTestJar("lax")
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "session"})
	req.AddCookie(&http.Cookie{Name: "profile_pending", Value: "pending"})
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "session", jar.SessionToken(c))
	assert.Equal(t, "pending", jar.PendingProfileToken(c))

	empty := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, jar.SessionToken(empty))
}

func TestJar_OAuthStateRoundTrip(t *testing.T) {
	jar := newTestJar("strict")
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/google", nil), rec)

	jar.SetOAuthState(c, "state-abc", "verifier-xyz")

	cookie := responseCookies(rec)["oauth_state"]
	require.NotNil(t, cookie)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite, "state must survive the provider redirect")
	assert.Equal(t, int(stateTTL.Seconds()), cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: cookie.Value})
	state, verifier := jar.OAuthState(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, "state-abc", state)
	assert.Equal(t, "verifier-xyz", verifier)

	malformed := httptest.NewRequest(http.MethodGet, "/auth/google/callback", nil)
	malformed.AddCookie(&http.Cookie{Name: "oauth_state", Value: "no-separator"})
	state, verifier = jar.OAuthState(e.NewContext(malformed, httptest.NewRecorder()))
	assert.Empty(t, state)
	assert.Empty(t, verifier)
}
