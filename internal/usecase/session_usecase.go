package usecase

import "context"

// SessionUsecase defines session verification and logout.
type SessionUsecase interface {
	// Authenticate verifies a session token, rejects revoked ones and resolves
	// the embedded id to the live identity.
	Authenticate(ctx context.Context, token string) (*AuthenticatedSession, error)

	// Logout revokes the token until its expiry. Unverifiable tokens are ignored.
	Logout(ctx context.Context, token string) error
}
