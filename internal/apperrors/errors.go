package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to act.
var ErrForbidden = errors.New("forbidden")

// ErrUpstream indicates the practice backend failed or answered with something unusable.
var ErrUpstream = errors.New("upstream request failed")

// ErrInvalidTransition indicates a lifecycle action that is not allowed in the current status.
var ErrInvalidTransition = errors.New("invalid state transition")

// ErrConfirmationRequired indicates a destructive action was attempted without enough confirmations.
var ErrConfirmationRequired = errors.New("confirmation required")

// ErrInFlight indicates the same mutation is already being processed.
var ErrInFlight = errors.New("request already in flight")

// AppError carries an HTTP status and a user-facing message alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationFailedError wraps ErrValidation with a message.
func NewValidationFailedError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewConflictError wraps ErrDuplicate with a message.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewUpstreamError maps a backend HTTP status to the matching sentinel, keeping the server message.
func NewUpstreamError(status int, message string) *AppError {
	if message == "" {
		message = http.StatusText(status)
	}
	var cause error
	switch {
	case status == http.StatusNotFound:
		cause = ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		cause = ErrValidation
	case status == http.StatusUnauthorized:
		cause = ErrUnauthorized
	case status == http.StatusForbidden:
		cause = ErrForbidden
	case status == http.StatusConflict:
		cause = ErrDuplicate
	default:
		cause = ErrUpstream
		status = http.StatusBadGateway
	}
	return NewAppError(status, message, cause)
}

// MessageOf returns the user-facing message of an AppError in the chain, or fallback.
func MessageOf(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
