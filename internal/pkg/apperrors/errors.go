package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors (database or filesystem)
	ErrStorage = errors.New("storage failure")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")

	// User errors
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// CustomError carries a message on top of a sentinel error so callers can
// still match with errors.Is while the API surfaces something specific.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError reports a missing or invalid required field by name.
func NewValidationError(field string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// NewNotFoundError reports a missing record for the given entity.
func NewNotFoundError(entity string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: fmt.Sprintf("%s not found", entity),
	}
}

// NewStorageError wraps a database or filesystem failure. The cause stays
// attached for server-side logging but never reaches the response body.
func NewStorageError(cause error, message string) error {
	return &CustomError{
		Err:     fmt.Errorf("%w: %w", ErrStorage, cause),
		Message: message,
	}
}
