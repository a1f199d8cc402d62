package service

import (
	"time"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// IssuedToken is a signed token together with the values needed to revoke it.
type IssuedToken struct {
	Value     string
	JTI       string
	ExpiresAt time.Time
}

// VerifiedSession is the result of verifying a session token.
type VerifiedSession struct {
	Snapshot  entity.SessionSnapshot
	JTI       string
	ExpiresAt time.Time
}

// TokenService is the Session Issuer's signing half: it mints and verifies
// session tokens and short-lived profile completion tokens.
type TokenService interface {
	// IssueSession signs a session token embedding the snapshot.
	IssueSession(snapshot entity.SessionSnapshot) (*IssuedToken, error)

	// VerifySession checks signature and expiry. Expired tokens fail with
	// ErrTokenExpired, every other failure with ErrTokenInvalid.
	VerifySession(token string) (*VerifiedSession, error)

	// IssueProfileCompletion signs a token proving the bearer came through a
	// federated callback for the identity.
	IssueProfileCompletion(identityID uuid.UUID) (*IssuedToken, error)

	// VerifyProfileCompletion returns the identity id bound to the token.
	VerifyProfileCompletion(token string) (uuid.UUID, error)

	// SessionTTL returns the lifetime of session tokens.
	SessionTTL() time.Duration

	// ProfileCompletionTTL returns the lifetime of profile completion tokens.
	ProfileCompletionTTL() time.Duration
}
