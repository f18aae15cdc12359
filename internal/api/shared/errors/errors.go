package errors

import (
	"errors"
	"net/http"
	"strings"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError is the error type returned by the executor. Message is what
// clients see; Details stay in the logs.
type APIError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

func newAPIError(code ErrorCode, status int, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Status:  status,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeBadRequest, http.StatusBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeNotFound, http.StatusNotFound, message, details)
}

func NewValidationError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeValidationFailed, http.StatusBadRequest, message, details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeUnauthorized, http.StatusUnauthorized, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeInternalError, http.StatusInternalServerError, message, details)
}

// NewDatabaseError hides storage failures behind a generic message
func NewDatabaseError(details ...string) *APIError {
	return newAPIError(ErrCodeDatabaseError, http.StatusInternalServerError, "Internal server error", details)
}

// NewServiceError reports a failed downstream procedure. Its message is shown to the client.
func NewServiceError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeServiceError, http.StatusInternalServerError, message, details)
}

// AsAPIError unwraps err into an APIError. Unknown errors become internal errors.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError("Internal server error", err.Error())
}
