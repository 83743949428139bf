package middleware

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mahir/gradeplan/internal/gpa"
)

// RegisterValidators installs custom binding rules on gin's validator engine.
// Must run before the first request is bound.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("lettergrade", validLetterGrade)
	}
}

// validLetterGrade accepts an empty letter or one on the grade scale.
func validLetterGrade(fl validator.FieldLevel) bool {
	letter := fl.Field().String()
	return letter == "" || gpa.ValidLetter(letter)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "lettergrade":
		return e.Field() + " must be one of: " + strings.Join(gpa.Letters, ", ")
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "min":
		return e.Field() + " must have at least " + e.Param() + " items"
	default:
		return e.Field() + " failed " + e.Tag() + " validation"
	}
}

// describeBindingError flattens validator errors into per-field messages.
func describeBindingError(err error) interface{} {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, formatValidationError(fieldError))
	}
	return messages
}
