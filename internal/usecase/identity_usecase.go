// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"identity/internal/domain/entity"
	"identity/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a local identity.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Gender    string
}

// LoginInput defines the data required for a local login.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to replace a password.
// CurrentPassword is ignored for identities that never had a usable password.
type ChangePasswordInput struct {
	IdentityID      uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created identity.
type RegisterOutput struct {
	Identity *entity.Identity
}

// AuthResult is the outcome of the profile completion gate. Exactly one of
// Session and PendingProfile is set, depending on State.
type AuthResult struct {
	Identity       *entity.Identity
	State          entity.ProfileState
	Session        *service.IssuedToken
	PendingProfile *service.IssuedToken
	// RedirectURL is the landing path for a complete profile and the
	// completion URL carrying the identity id otherwise.
	RedirectURL string
}

// Complete reports whether a session was issued.
func (r *AuthResult) Complete() bool {
	return r.State == entity.ProfileComplete
}

// AuthenticatedSession is a verified session resolved to its live identity.
type AuthenticatedSession struct {
	Identity  *entity.Identity
	JTI       string
	ExpiresAt time.Time
}

// IdentityUsecase defines local account operations.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	GetIdentity(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
}
