package response

import "fmt"

// Error codes returned to API callers
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInvalidIndex = "INVALID_INDEX"
	ErrCodeStoreFailure = "STORE_FAILURE"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
)

// AppError is the error type returned by the service layer.
// Details carries diagnostic text that is logged but never sent to clients.
type AppError struct {
	Code    string
	Message string
	Details string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// NewInvalidIndexError creates an error for out-of-range or stale move indices
func NewInvalidIndexError(message, details string) *AppError {
	return NewAppError(ErrCodeInvalidIndex, message, details)
}

// NewStoreFailureError creates an error for persistence failures
func NewStoreFailureError(message string, err error) *AppError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewAppError(ErrCodeStoreFailure, message, details)
}
