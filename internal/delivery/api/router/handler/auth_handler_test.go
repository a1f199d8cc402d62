package handler

import (
	"net/http"
	"testing"
	"time"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	mockUsecase "identity/internal/mocks/usecase"
	"identity/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler      *AuthHandler
	identityUC   *mockUsecase.MockIdentityUsecase
	federationUC *mockUsecase.MockFederationUsecase
	sessionUC    *mockUsecase.MockSessionUsecase
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	fx := authHandlerFixtures{
		identityUC:   mockUsecase.NewMockIdentityUsecase(t),
		federationUC: mockUsecase.NewMockFederationUsecase(t),
		sessionUC:    mockUsecase.NewMockSessionUsecase(t),
	}
	fx.handler = NewAuthHandler(AuthHandlerParams{
		IdentityUC:   fx.identityUC,
		FederationUC: fx.federationUC,
		SessionUC:    fx.sessionUC,
		Jar:          newTestJar(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func sessionToken() *service.IssuedToken {
	return &service.IssuedToken{Value: "session-token", JTI: "jti", ExpiresAt: time.Now().Add(time.Hour)}
}

func TestAuthHandler_Register(t *testing.T) {
	fx := createTestAuthHandler(t)
	e := newTestEcho(t)
	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"secret1"}`)
	identity := entity.NewLocalIdentity("a@x.com", "secret1")
	identity.ApplyPasswordHash("$2a$10$hash")

	fx.identityUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{Email: "a@x.com", Password: "secret1"}).
		Return(&usecase.RegisterOutput{Identity: identity}, nil)

	require.NoError(t, fx.handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "secret1")
	data := decodeData(t, rec)
	assert.Equal(t, identity.ID.String(), data["id"])
	assert.Equal(t, "incomplete", data["profileState"])
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	fx := createTestAuthHandler(t)
	c, _ := newJSONContext(newTestEcho(t), http.MethodPost, "/auth/register", `{"email":`)

	assert.ErrorIs(t, fx.handler.Register(c), domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("complete profile sets session", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, rec := newJSONContext(newTestEcho(t), http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"secret1"}`)
		identity := entity.NewLocalIdentity("a@x.com", "secret1")
		identity.Gender = entity.GenderMale

		fx.identityUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "secret1"}).
			Return(&usecase.AuthResult{Identity: identity, State: entity.ProfileComplete, Session: sessionToken(), RedirectURL: "/home"}, nil)

		require.NoError(t, fx.handler.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookie := findCookie(rec, "token")
		require.NotNil(t, cookie)
		assert.Equal(t, "session-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "complete", decodeData(t, rec)["profileState"])
	})

	t.Run("incomplete profile is gated", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, rec := newJSONContext(newTestEcho(t), http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"secret1"}`)

		fx.identityUC.EXPECT().Login(mock.Anything, mock.Anything).Return(&usecase.AuthResult{
			Identity:       entity.NewLocalIdentity("a@x.com", "secret1"),
			State:          entity.ProfileIncomplete,
			PendingProfile: &service.IssuedToken{Value: "pending-token", ExpiresAt: time.Now().Add(time.Minute)},
			RedirectURL:    "/auth/complete-profile?userId=abc",
		}, nil)

		require.NoError(t, fx.handler.Login(c))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Nil(t, findCookie(rec, "token"))
		require.NotNil(t, findCookie(rec, "profile_pending"))
		data := decodeData(t, rec)
		assert.Equal(t, "incomplete", data["profileState"])
		assert.Equal(t, "/auth/complete-profile?userId=abc", data["completionUrl"])
	})

	t.Run("missing password", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, _ := newJSONContext(newTestEcho(t), http.MethodPost, "/auth/login", `{"email":"a@x.com"}`)

		assert.ErrorIs(t, fx.handler.Login(c), domainerrors.ErrValidationFailed)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, rec := newJSONContext(newTestEcho(t), http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"nope"}`)
		fx.identityUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		assert.ErrorIs(t, fx.handler.Login(c), domainerrors.ErrInvalidCredentials)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuthHandler_GoogleLogin(t *testing.T) {
	fx := createTestAuthHandler(t)
	c, rec := newJSONContext(newTestEcho(t), http.MethodGet, "/auth/google", "")

	fx.federationUC.EXPECT().BeginGoogleLogin(mock.Anything).Return(&usecase.BeginFederationOutput{
		AuthURL: "https://accounts.google.com/o/oauth2/auth?state=s1", State: "s1", Verifier: "v1",
	}, nil)

	require.NoError(t, fx.handler.GoogleLogin(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=s1", rec.Header().Get("Location"))
	state := findCookie(rec, "oauth_state")
	require.NotNil(t, state)
	assert.Equal(t, "s1.v1", state.Value)
	assert.True(t, state.HttpOnly)
}

func TestAuthHandler_GoogleCallback(t *testing.T) {
	t.Run("incomplete redirects to completion without session", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, rec := newJSONContext(newTestEcho(t), http.MethodGet, "/auth/google/callback?code=c1&state=s1", "")
		c.Request().AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1.v1"})

		fx.federationUC.EXPECT().GoogleCallback(mock.Anything, &usecase.FederationCallbackInput{
			Code: "c1", State: "s1", ExpectedState: "s1", Verifier: "v1",
		}).Return(&usecase.AuthResult{
			State:          entity.ProfileIncomplete,
			PendingProfile: &service.IssuedToken{Value: "pending-token", ExpiresAt: time.Now().Add(time.Minute)},
			RedirectURL:    "/auth/complete-profile?userId=u1",
		}, nil)

		require.NoError(t, fx.handler.GoogleCallback(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/auth/complete-profile?userId=u1", rec.Header().Get("Location"))
		assert.Nil(t, findCookie(rec, "token"))
		pending := findCookie(rec, "profile_pending")
		require.NotNil(t, pending)
		assert.Equal(t, "pending-token", pending.Value)
		state := findCookie(rec, "oauth_state")
		require.NotNil(t, state)
		assert.Equal(t, -1, state.MaxAge)
	})

	t.Run("complete sets session and redirects to landing", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, rec := newJSONContext(newTestEcho(t), http.MethodGet, "/auth/google/callback?code=c1&state=s1", "")
		c.Request().AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1.v1"})

		fx.federationUC.EXPECT().GoogleCallback(mock.Anything, mock.Anything).Return(&usecase.AuthResult{
			State:       entity.ProfileComplete,
			Session:     sessionToken(),
			RedirectURL: "/home",
		}, nil)

		require.NoError(t, fx.handler.GoogleCallback(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/home", rec.Header().Get("Location"))
		session := findCookie(rec, "token")
		require.NotNil(t, session)
		assert.Equal(t, "session-token", session.Value)
	})

	t.Run("provider error", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, _ := newJSONContext(newTestEcho(t), http.MethodGet, "/auth/google/callback?error=access_denied", "")

		assert.ErrorIs(t, fx.handler.GoogleCallback(c), domainerrors.ErrOAuthFailed)
	})

	t.Run("state mismatch", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, _ := newJSONContext(newTestEcho(t), http.MethodGet, "/auth/google/callback?code=c1&state=s1", "")

		fx.federationUC.EXPECT().GoogleCallback(mock.Anything, &usecase.FederationCallbackInput{Code: "c1", State: "s1"}).
			Return(nil, domainerrors.ErrOAuthStateInvalid)

		assert.ErrorIs(t, fx.handler.GoogleCallback(c), domainerrors.ErrOAuthStateInvalid)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	fx := createTestAuthHandler(t)
	c, rec := newJSONContext(newTestEcho(t), http.MethodPost, "/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: "token", Value: "session-token"})

	fx.sessionUC.EXPECT().Logout(mock.Anything, "session-token").Return(nil)

	require.NoError(t, fx.handler.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	cleared := findCookie(rec, "token")
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}
