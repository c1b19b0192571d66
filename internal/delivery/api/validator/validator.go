// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"gameapi/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request DTOs and reports fields by their JSON path.
type CustomValidator struct {
	validate *validator.Validate
}

// FieldError lists the JSON paths of the fields that failed validation.
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "validate request")
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		// Drop the root struct name from the namespace.
		_, path, found := strings.Cut(fieldErr.Namespace(), ".")
		if !found {
			path = fieldErr.Field()
		}
		fields = append(fields, path)
	}

	return &FieldError{Fields: fields}
}
