package usecase

import (
	"context"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// CompleteProfileInput defines the data submitted on the completion step.
// PendingToken is the proof issued when the gate blocked the session.
type CompleteProfileInput struct {
	IdentityID   uuid.UUID
	Gender       string
	PendingToken string
}

// ProfileUsecase drives the Incomplete to Complete transition.
type ProfileUsecase interface {
	// GetPendingProfile returns an identity that still has to complete its profile.
	GetPendingProfile(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
	CompleteProfile(ctx context.Context, input *CompleteProfileInput) (*AuthResult, error)
}
