package domain

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the tags used by the domain payloads registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return true
		}
		return strings.TrimSpace(field.String()) != ""
	})
	return v
}

// ValidationError converts a validator failure into a validation_failed rejection.
func ValidationError(err error) error {
	if err == nil {
		return nil
	}
	return &RejectedError{Kind: RejectionKindValidationFailed, Reason: err.Error(), Err: err}
}
