package errors

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// FieldErrors is implemented by errors that point at individual form fields.
type FieldErrors interface {
	Fields() map[string]string
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Is matches errors sharing the same business code so WithDetails copies still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// WithMessage replaces the user-facing message, typically with the backend's own text.
func (e *BaseError) WithMessage(message string) *BaseError {
	if message == "" {
		return e
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Form and input errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Please fix the highlighted fields",
		"",
	)

	ErrConfirmationRequired = NewBaseError(
		http.StatusBadRequest,
		"CONFIRMATION_REQUIRED",
		`Type "Delete" to confirm`,
		"",
	)

	ErrImageInvalidType = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_INVALID_TYPE",
		"Please select an image file",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"Image size should be less than 5MB",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Unsupported status value",
		"",
	)

	// Approval desk errors
	ErrRejectionReasonTooShort = NewBaseError(
		http.StatusUnprocessableEntity,
		"REJECTION_REASON_TOO_SHORT",
		"Rejection reason must be at least 10 characters",
		"",
	)

	ErrPendingItemNotFound = NewBaseError(
		http.StatusNotFound,
		"PENDING_ITEM_NOT_FOUND",
		"This item is no longer waiting for approval",
		"",
	)

	// Banner errors
	ErrBannerLimitReached = NewBaseError(
		http.StatusConflict,
		"BANNER_LIMIT_REACHED",
		"Banner limit reached for this type",
		"",
	)

	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Please sign in again",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrInvalidTwoFactorCode = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TWO_FACTOR_CODE",
		"Invalid verification code",
		"",
	)

	ErrTwoFactorNotPending = NewBaseError(
		http.StatusBadRequest,
		"TWO_FACTOR_NOT_PENDING",
		"Sign in with your email and password first",
		"",
	)

	ErrInvalidEnrollmentURI = NewBaseError(
		http.StatusBadGateway,
		"INVALID_ENROLLMENT_URI",
		"Two-factor enrollment data is unavailable",
		"",
	)

	// Backend errors
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"Could not reach the server, please try again",
		"",
	)

	ErrBackendResponse = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_BAD_RESPONSE",
		"The server returned an unexpected response",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// ValidationError reports the fields of a form that failed validation
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a field-level validation error
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Message() + ": " + e.Details()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return ErrValidationFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details lists the failing fields in a stable order
func (e *ValidationError) Details() string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.fields[name])
	}

	return strings.Join(parts, "; ")
}

// Fields returns the per-field messages
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// Is lets errors.Is(err, ErrValidationFailed) match field errors
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// BackendError is a non-2xx answer of the Miorish REST API, implementing the AppError interface
type BackendError struct {
	status  int
	message string
}

// NewBackendError wraps the backend status and its optional server message
func NewBackendError(status int, message string) *BackendError {
	return &BackendError{status: status, message: strings.TrimSpace(message)}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return "backend responded " + http.StatusText(e.status) + ": " + e.Message()
}

// Status returns the backend's HTTP status
func (e *BackendError) Status() int {
	return e.status
}

// HTTPCode passes client errors through and reports server errors as a bad gateway
func (e *BackendError) HTTPCode() int {
	if e.status >= http.StatusBadRequest && e.status < http.StatusInternalServerError {
		return e.status
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_ERROR"
}

// ServerMessage returns the backend's own message, possibly empty
func (e *BackendError) ServerMessage() string {
	return e.message
}

// Message returns the server message or a generic one
func (e *BackendError) Message() string {
	if e.message != "" {
		return e.message
	}

	return "Request failed with status " + strconv.Itoa(e.status)
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return http.StatusText(e.status)
}
