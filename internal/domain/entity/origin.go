package entity

import "identity/internal/errors"

// OriginKind tags how an identity holds its credentials.
type OriginKind string

const (
	// OriginLocal identities log in with a password only.
	OriginLocal OriginKind = "local"
	// OriginFederated identities log in through the provider only. Their stored
	// hash is a random placeholder.
	OriginFederated OriginKind = "federated"
	// OriginLinked identities hold a usable password and a provider subject.
	OriginLinked OriginKind = "linked"
)

// ErrInvalidOrigin is returned when an identity's credentials do not match its origin.
var ErrInvalidOrigin = errors.New("identity credentials do not match origin")

// ParseOriginKind maps a stored value back to an OriginKind.
func ParseOriginKind(s string) (OriginKind, bool) {
	switch k := OriginKind(s); k {
	case OriginLocal, OriginFederated, OriginLinked:
		return k, true
	default:
		return "", false
	}
}

// ValidateOrigin checks the credential fields required by the identity's origin.
func (i *Identity) ValidateOrigin() error {
	_, pending := i.PendingPassword()
	hasPassword := pending || i.PasswordHash != ""
	hasProvider := i.ProviderID() != ""

	switch i.Origin {
	case OriginLocal:
		if !hasPassword || hasProvider {
			return errors.Wrap(ErrInvalidOrigin, "local identity requires a password and no provider id")
		}
	case OriginFederated:
		if !hasProvider || !hasPassword {
			return errors.Wrap(ErrInvalidOrigin, "federated identity requires a provider id and a placeholder password")
		}
	case OriginLinked:
		if !hasProvider || !hasPassword {
			return errors.Wrap(ErrInvalidOrigin, "linked identity requires a password and a provider id")
		}
	default:
		return errors.Wrapf(ErrInvalidOrigin, "unknown origin %q", i.Origin)
	}

	return nil
}
