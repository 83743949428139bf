package apperrors

import "errors"

// Common errors
var (
	// Computation errors
	ErrEmptyInput       = errors.New("no credit hours to average")
	ErrInvalidTarget    = errors.New("target CGPA outside the grade scale")
	ErrInfeasibleTarget = errors.New("target CGPA is not achievable")

	// Catalog errors
	ErrUnknownCourse  = errors.New("course not in catalog")
	ErrUnknownProgram = errors.New("unknown program")

	// Record errors
	ErrEntryNotFound  = errors.New("record entry not found")
	ErrDuplicateEntry = errors.New("course already in record")
	ErrInvalidGrade   = errors.New("invalid grade")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
