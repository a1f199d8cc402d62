package service

import "identity/internal/domain/entity"

// Credentials is the structural input checked before any store mutation.
type Credentials struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Gender    string
}

// CredentialValidator is a pure structural check. It returns the first
// violation as ErrValidationFailed with field details, or ErrInvalidGender.
type CredentialValidator interface {
	// ValidateRegistration checks email, password length and an optional gender.
	ValidateRegistration(creds Credentials) error

	// ValidatePassword checks a replacement password.
	ValidatePassword(password string) error

	// ValidateGender checks a required gender, as on the profile completion path.
	ValidateGender(gender string) (entity.Gender, error)
}
