// Package validator wires go-playground/validator into echo's request
// validation hook.
package validator

import (
	domainerrors "inventario/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts a validator.Validate instance to echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds an EchoValidator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Violations surface as the standard
// validation error so the error handler renders them uniformly.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error()).
			WrapMessage("request validation failed")
	}

	return nil
}
