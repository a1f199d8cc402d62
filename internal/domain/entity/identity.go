// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is the central persisted user record. It may originate from local
// registration, from a federated login, or have both credentials linked.
type Identity struct {
	ID          uuid.UUID // Assigned at creation, immutable.
	Email       string    // Globally unique login identifier.
	FederatedID *string   // External provider subject, unique when set.
	FirstName   string
	LastName    string
	Gender      Gender // Empty until the profile is completed.
	Origin      OriginKind
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// PasswordHash is the stored one-way hash. Stores set it; callers change the
	// password through SetPassword.
	PasswordHash string

	// FederationTokens holds the provider tokens of the current request chain.
	// They are never persisted.
	FederationTokens *FederationTokens

	pendingPassword *string
}

// FederationTokens are the latest provider-issued credentials for an identity.
type FederationTokens struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// FederatedAssertion is the identity information a provider vouches for after
// a successful authorization code exchange.
type FederatedAssertion struct {
	ProviderID    string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
	Tokens        *FederationTokens
}

// SessionSnapshot is the subset of an identity embedded in a session token.
type SessionSnapshot struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Gender    Gender
}

// NewLocalIdentity builds an identity originating from local registration.
// The password is hashed by the store when the identity is first persisted.
func NewLocalIdentity(email, rawPassword string) *Identity {
	identity := &Identity{
		ID:     newIdentityID(),
		Email:  NormalizeEmail(email),
		Origin: OriginLocal,
	}
	identity.SetPassword(rawPassword)

	return identity
}

// NewFederatedIdentity builds an identity for a first federated login. The
// placeholder password is random and never disclosed, so it can not be used to log in.
func NewFederatedIdentity(assertion FederatedAssertion, placeholderPassword string) *Identity {
	providerID := assertion.ProviderID
	identity := &Identity{
		ID:               newIdentityID(),
		Email:            NormalizeEmail(assertion.Email),
		FederatedID:      &providerID,
		FirstName:        assertion.GivenName,
		LastName:         assertion.FamilyName,
		Origin:           OriginFederated,
		FederationTokens: assertion.Tokens,
		pendingPassword:  &placeholderPassword,
	}

	return identity
}

// SetPassword records a new raw password. It is hashed on the next store write
// unless the caller hashes it first.
func (i *Identity) SetPassword(rawPassword string) {
	i.pendingPassword = &rawPassword
	i.promoteOnPassword()
}

// SetPasswordHash replaces the password with a hash computed by the caller.
func (i *Identity) SetPasswordHash(hash string) {
	i.ApplyPasswordHash(hash)
	i.promoteOnPassword()
}

// PendingPassword returns the raw password awaiting hashing, if any.
func (i *Identity) PendingPassword() (string, bool) {
	if i.pendingPassword == nil {
		return "", false
	}

	return *i.pendingPassword, true
}

// ApplyPasswordHash stores the hash of the pending password and clears it.
func (i *Identity) ApplyPasswordHash(hash string) {
	i.PasswordHash = hash
	i.pendingPassword = nil
}

// LinkFederation attaches a provider subject. A local identity becomes
// linked; a federation-only identity keeps its placeholder password unusable.
func (i *Identity) LinkFederation(providerID string) {
	i.FederatedID = &providerID
	if i.Origin == OriginLocal {
		i.Origin = OriginLinked
	}
}

// A federation-only identity that sets a real password becomes linked.
func (i *Identity) promoteOnPassword() {
	if i.Origin == OriginFederated {
		i.Origin = OriginLinked
	}
}

// HasUsablePassword reports whether the identity can log in with a password.
// Federation-only identities hold a placeholder hash that must never match.
func (i *Identity) HasUsablePassword() bool {
	return i.Origin == OriginLocal || i.Origin == OriginLinked
}

// ProfileState reports the profile completion state of the identity.
func (i *Identity) ProfileState() ProfileState {
	if i.Gender.IsValid() {
		return ProfileComplete
	}

	return ProfileIncomplete
}

// Snapshot returns the fields embedded in a session token.
func (i *Identity) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		ID:        i.ID,
		FirstName: i.FirstName,
		LastName:  i.LastName,
		Gender:    i.Gender,
	}
}

// ProviderID returns the federated subject or an empty string.
func (i *Identity) ProviderID() string {
	if i.FederatedID == nil {
		return ""
	}

	return *i.FederatedID
}

// NormalizeEmail lowercases and trims an email so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newIdentityID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
