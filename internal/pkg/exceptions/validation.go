package exceptions

import (
	"medical-portal/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func formatFieldError(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return customMessage
}

// FormatFieldErrors maps each failing field (json name when registered) to
// its message. Non-validation errors produce an empty map.
func FormatFieldErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fieldErrors
	}
	for _, fieldErr := range validationErrors {
		fieldName := strings.ToLower(fieldErr.Field())
		if _, exists := fieldErrors[fieldName]; exists {
			continue
		}
		fieldErrors[fieldName] = fieldName + " " + formatFieldError(fieldErr)
	}
	return fieldErrors
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		return strings.ToLower(firstErr.Field()) + " " + formatFieldError(firstErr)
	}
	return constvars.ErrDevInvalidInput
}
