package service

import (
	"context"
	"time"
)

// SessionDenylist records revoked session token ids until they would have expired.
type SessionDenylist interface {
	// Revoke denies jti until expiresAt. Past expiries are a no-op.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error

	// IsRevoked reports whether jti was revoked and has not yet expired.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
