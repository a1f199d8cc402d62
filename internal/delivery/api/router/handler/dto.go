// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"identity/internal/domain/entity"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type completeProfileRequest struct {
	UserID string `json:"userId" form:"userId" validate:"required,uuid"`
	Gender string `json:"gender" form:"gender"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// identityResponse is the public view of an identity. It never carries the hash.
type identityResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Gender       string    `json:"gender,omitempty"`
	Origin       string    `json:"origin"`
	ProfileState string    `json:"profileState"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newIdentityResponse(identity *entity.Identity) *identityResponse {
	return &identityResponse{
		ID:           identity.ID.String(),
		Email:        identity.Email,
		FirstName:    identity.FirstName,
		LastName:     identity.LastName,
		Gender:       identity.Gender.String(),
		Origin:       string(identity.Origin),
		ProfileState: string(identity.ProfileState()),
		CreatedAt:    identity.CreatedAt,
	}
}

type loginResponse struct {
	Identity     *identityResponse `json:"identity,omitempty"`
	ProfileState string            `json:"profileState"`
	RedirectURL  string            `json:"redirectUrl,omitempty"`
	// CompletionURL is set instead of a session when the profile is incomplete.
	CompletionURL string `json:"completionUrl,omitempty"`
}

type completeProfileView struct {
	Action    string
	UserID    string
	FirstName string
	Genders   []entity.Gender
}
