// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"identity/internal/infra/validation"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request bodies and reports the first
// violation as a domain validation error.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a CustomValidator sharing the identity tag set.
func New() *CustomValidator {
	return &CustomValidator{validate: validation.NewEngine()}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	return validation.FirstViolation(v.validate.Struct(i))
}
