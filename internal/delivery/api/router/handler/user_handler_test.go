package handler

import (
	"net/http"
	"testing"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	mockUsecase "identity/internal/mocks/usecase"
	"identity/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authenticatedIdentity() *entity.Identity {
	identity := entity.NewLocalIdentity("a@x.com", "secret1")
	identity.ApplyPasswordHash("$2a$10$hash")
	identity.FirstName = "Ada"
	identity.Gender = entity.GenderFemale

	return identity
}

func TestUserHandler_Me(t *testing.T) {
	h := NewUserHandler(mockUsecase.NewMockIdentityUsecase(t))
	identity := authenticatedIdentity()
	c, rec := newJSONContext(newTestEcho(t), http.MethodGet, "/user/me", "")
	deliverycontext.SetIdentity(c, identity)

	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$")
	data := decodeData(t, rec)
	assert.Equal(t, identity.ID.String(), data["id"])
	assert.Equal(t, "Female", data["gender"])
	assert.Equal(t, "complete", data["profileState"])
}

func TestUserHandler_Home(t *testing.T) {
	h := NewUserHandler(mockUsecase.NewMockIdentityUsecase(t))
	c, rec := newJSONContext(newTestEcho(t), http.MethodGet, "/home", "")
	deliverycontext.SetIdentity(c, authenticatedIdentity())

	require.NoError(t, h.Home(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome, Ada", decodeData(t, rec)["message"])
}

func TestUserHandler_WithoutIdentity(t *testing.T) {
	h := NewUserHandler(mockUsecase.NewMockIdentityUsecase(t))
	c, _ := newJSONContext(newTestEcho(t), http.MethodGet, "/user/me", "")

	assert.ErrorIs(t, h.Me(c), domainerrors.ErrSessionMissing)
}

func TestUserHandler_ChangePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		identityUC := mockUsecase.NewMockIdentityUsecase(t)
		h := NewUserHandler(identityUC)
		identity := authenticatedIdentity()
		c, rec := newJSONContext(newTestEcho(t), http.MethodPut, "/user/password",
			`{"currentPassword":"secret1","newPassword":"newsecret"}`)
		deliverycontext.SetIdentity(c, identity)

		identityUC.EXPECT().ChangePassword(mock.Anything, &usecase.ChangePasswordInput{
			IdentityID: identity.ID, CurrentPassword: "secret1", NewPassword: "newsecret",
		}).Return(nil)

		require.NoError(t, h.ChangePassword(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong current password", func(t *testing.T) {
		identityUC := mockUsecase.NewMockIdentityUsecase(t)
		h := NewUserHandler(identityUC)
		c, _ := newJSONContext(newTestEcho(t), http.MethodPut, "/user/password",
			`{"currentPassword":"nope","newPassword":"newsecret"}`)
		deliverycontext.SetIdentity(c, authenticatedIdentity())

		identityUC.EXPECT().ChangePassword(mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidCredentials)

		assert.ErrorIs(t, h.ChangePassword(c), domainerrors.ErrInvalidCredentials)
	})

	t.Run("missing new password", func(t *testing.T) {
		h := NewUserHandler(mockUsecase.NewMockIdentityUsecase(t))
		c, _ := newJSONContext(newTestEcho(t), http.MethodPut, "/user/password", `{"currentPassword":"secret1"}`)
		deliverycontext.SetIdentity(c, authenticatedIdentity())

		assert.ErrorIs(t, h.ChangePassword(c), domainerrors.ErrValidationFailed)
	})
}

func TestHealthCheck(t *testing.T) {
	c, rec := newJSONContext(newTestEcho(t), http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeData(t, rec)["status"])
}
