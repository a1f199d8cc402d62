// Package validation implements structural input checks with go-playground/validator.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/errors"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// bcrypt ignores input beyond 72 bytes.
const maxPasswordLength = 72

type registrationInput struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=6,passwordbytes"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Gender    string `json:"gender" validate:"omitempty,gender"`
}

type passwordInput struct {
	Password string `json:"password" validate:"required,min=6,passwordbytes"`
}

type genderInput struct {
	Gender string `json:"gender" validate:"required,gender"`
}

type credentialValidator struct {
	validate *validator.Validate
}

// NewCredentialValidator returns the validator used before any store mutation.
func NewCredentialValidator() service.CredentialValidator {
	return &credentialValidator{validate: NewEngine()}
}

// NewEngine returns a validator.Validate with the identity-specific tags registered.
func NewEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})
	// Registration of a static func can only fail for an empty tag.
	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return entity.Gender(fl.Field().String()).IsValid()
	})
	// max counts runes; bcrypt rejects input by byte length.
	_ = v.RegisterValidation("passwordbytes", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordLength
	})

	return v
}

func (v *credentialValidator) ValidateRegistration(creds service.Credentials) error {
	input := registrationInput{
		Email:     strings.TrimSpace(creds.Email),
		Password:  creds.Password,
		FirstName: creds.FirstName,
		LastName:  creds.LastName,
		Gender:    creds.Gender,
	}

	return FirstViolation(v.validate.Struct(input))
}

func (v *credentialValidator) ValidatePassword(password string) error {
	return FirstViolation(v.validate.Struct(passwordInput{Password: password}))
}

func (v *credentialValidator) ValidateGender(gender string) (entity.Gender, error) {
	if err := FirstViolation(v.validate.Struct(genderInput{Gender: gender})); err != nil {
		return "", err
	}

	return entity.Gender(gender), nil
}

// FirstViolation converts the first failed rule of a validator error into a
// domain error with "field: reason" details.
func FirstViolation(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fe := validationErrs[0]
	if fe.Tag() == "gender" || (fe.Field() == "gender" && fe.Tag() == "required") {
		return domainerrors.ErrInvalidGender.WithDetails(describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(describe(fe))
}

func describe(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "email":
		return field + ": must be a valid email"
	case "min":
		if isPasswordField(fe.Field()) {
			return fmt.Sprintf("%s: must be at least %d characters", field, MinPasswordLength)
		}

		return fmt.Sprintf("%s: must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", field, fe.Param())
	case "passwordbytes":
		return fmt.Sprintf("%s: must be at most %d bytes", field, maxPasswordLength)
	case "gender":
		return field + ": must be one of Male, Female, Other"
	case "uuid":
		return field + ": must be a valid id"
	default:
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}

func isPasswordField(field string) bool {
	return field == "password" || field == "newPassword"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
