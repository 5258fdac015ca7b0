package validator

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/johnquangdev/transcript-insight/errors"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	return &CustomValidator{v: v}
}

// Validate performs struct validation. Failures surface as 400-class
// AppErrors so handlers can pass them straight to the error helper.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.v.Struct(i); err != nil {
		return apperrors.ErrValidation(err.Error())
	}
	return nil
}
