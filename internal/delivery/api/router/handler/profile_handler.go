package handler

import (
	"net/http"

	"identity/config"
	"identity/internal/delivery/api/cookie"
	"identity/internal/delivery/api/render"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the profile completion step.
type ProfileHandler struct {
	profileUC      usecase.ProfileUsecase
	jar            *cookie.Jar
	completionPath string
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(profileUC usecase.ProfileUsecase, jar *cookie.Jar, cfg *config.Config) *ProfileHandler {
	completionPath := config.DefaultProfileCompletionPath
	if cfg != nil && cfg.Auth != nil && cfg.Auth.ProfileCompletionPath != "" {
		completionPath = cfg.Auth.ProfileCompletionPath
	}

	return &ProfileHandler{
		profileUC:      profileUC,
		jar:            jar,
		completionPath: completionPath,
	}
}

// CompletionPath returns the path the form and submission are served on.
func (h *ProfileHandler) CompletionPath() string {
	return h.completionPath
}

// ShowForm renders the completion form for an incomplete identity.
func (h *ProfileHandler) ShowForm(c echo.Context) error {
	id, err := parseUserID(c.QueryParam("userId"))
	if err != nil {
		return err
	}

	identity, err := h.profileUC.GetPendingProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, render.CompleteProfilePage, &completeProfileView{
		Action:    h.completionPath,
		UserID:    identity.ID.String(),
		FirstName: identity.FirstName,
		Genders:   entity.Genders,
	})
}

// Complete handles the completion submission, sets the session and redirects
// to the landing resource.
func (h *ProfileHandler) Complete(c echo.Context) error {
	var req completeProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	id, err := parseUserID(req.UserID)
	if err != nil {
		return err
	}

	result, err := h.profileUC.CompleteProfile(c.Request().Context(), &usecase.CompleteProfileInput{
		IdentityID:   id,
		Gender:       req.Gender,
		PendingToken: h.jar.PendingProfileToken(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.jar.ClearPendingProfile(c)
	h.jar.SetSession(c, result.Session)

	return c.Redirect(http.StatusFound, result.RedirectURL)
}

func parseUserID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("userId: is required")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("userId: must be a valid id")
	}

	return id, nil
}
