package errors

import (
	"net/http"

	"locus/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the business error code so WithDetails copies still compare equal
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Navigation errors
	ErrInvalidPage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAGE",
		"Page must be a positive integer",
		"",
	)

	ErrPageOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"PAGE_OUT_OF_RANGE",
		"Page is outside the document",
		"",
	)

	// Collaborator errors
	ErrRouteUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"ROUTE_UNAVAILABLE",
		"Route could not be loaded",
		"",
	)

	ErrDocumentUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"DOCUMENT_UNAVAILABLE",
		"Document could not be loaded",
		"",
	)

	ErrPanoramaUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PANORAMA_UNAVAILABLE",
		"Street-level image could not be fetched",
		"",
	)

	// ErrViewNotReady is only returned where there is nothing to show while
	// waiting; View itself reports not-ready as state, never as an error.
	ErrViewNotReady = NewBaseError(
		http.StatusServiceUnavailable,
		"VIEW_NOT_READY",
		"Viewer is still loading",
		"",
	)
)

// UpstreamError represents a failure of an external collaborator, implementing the AppError interface
type UpstreamError struct {
	base *BaseError
	err  error
}

// NewUpstreamError wraps a collaborator failure with the AppError it surfaces as
func NewUpstreamError(base *BaseError, err error) AppError {
	return &UpstreamError{
		base: base,
		err:  err,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return errors.Wrap(e.err, e.base.message).Error()
}

// Unwrap exposes both the collaborator error and the predefined error
func (e *UpstreamError) Unwrap() []error {
	return []error{e.base, e.err}
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return e.base.httpCode
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return e.base.errorCode
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return e.base.message
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.err.Error()
}
