// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator validates bound request structs
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports JSON field names
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens validation errors into field -> failed tag
func FieldErrors(err error) map[string]string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = fe.Tag()
	}

	return fields
}
