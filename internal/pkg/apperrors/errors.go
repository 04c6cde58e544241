package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Request errors
	ErrBatchTooLarge = errors.New("too many student IDs")
)

// Student errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrMissingIdentifier = errors.New("StudentID or StudentOpenEMIS_ID is required")
	ErrNoUpdatableFields = errors.New("no updatable fields in payload")
	ErrQueryTooShort     = errors.New("q must be at least 3 characters")
)

// Photo errors
var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrEmptyPhoto    = errors.New("photo body is empty")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewValidationError creates a validation error with a human-readable message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}
