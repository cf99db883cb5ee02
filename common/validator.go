package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks payload against its `validate` struct tags.
func Validate(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return errors.New(validationErrors.Error())
		}
		return err
	}
	return nil
}

// ValidateVar checks a single value against a tag expression such as
// "required,dive,required".
func ValidateVar(field interface{}, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return errors.New(validationErrors.Error())
		}
		return err
	}
	return nil
}
