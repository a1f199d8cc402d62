package handler

import (
	"net/http"

	"identity/internal/delivery/api/response"
	deliverycontext "identity/internal/delivery/context"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves the authenticated identity's own resources.
type UserHandler struct {
	identityUC usecase.IdentityUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(identityUC usecase.IdentityUsecase) *UserHandler {
	return &UserHandler{identityUC: identityUC}
}

// Home is the protected landing resource.
func (h *UserHandler) Home(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrSessionMissing
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":  "Welcome, " + identity.FirstName,
		"identity": newIdentityResponse(identity),
	})
}

// Me returns the live identity the session resolves to.
func (h *UserHandler) Me(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrSessionMissing
	}

	return response.Success(c, http.StatusOK, newIdentityResponse(identity))
}

// ChangePassword replaces the authenticated identity's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrSessionMissing
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.identityUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		IdentityID:      identity.ID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated"})
}

// HealthCheck is the liveness probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
