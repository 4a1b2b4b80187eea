package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage translates a gin binding error into a client-facing
// message without leaking struct internals.
func BindingErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		parts := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			switch fieldErr.Tag() {
			case "required":
				parts = append(parts, fmt.Sprintf("%s is required", strings.ToLower(fieldErr.Field())))
			case "email":
				parts = append(parts, fmt.Sprintf("%s must be a valid email address", strings.ToLower(fieldErr.Field())))
			case "min":
				parts = append(parts, fmt.Sprintf("%s must be at least %s", strings.ToLower(fieldErr.Field()), fieldErr.Param()))
			default:
				parts = append(parts, fmt.Sprintf("%s is invalid", strings.ToLower(fieldErr.Field())))
			}
		}
		return strings.Join(parts, ", ")
	}
	return "Invalid request body"
}
