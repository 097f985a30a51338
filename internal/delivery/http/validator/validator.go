// Package validator plugs the shared input rules into echo's c.Validate.
package validator

import (
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/validation"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validation.Validator
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validator: validation.New()}
}

// Validate returns a field-level ValidationError when i breaks its rules.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
