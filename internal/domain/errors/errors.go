package errors

import (
	"net/http"

	"gameapi/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
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

// Message returns the user-facing error message
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

// Is ignores details, so a copy made by WithDetails still matches the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.httpCode == t.httpCode && e.errorCode == t.errorCode && e.message == t.message
}

// Predefined error types
var (
	// Request-shape errors
	ErrInvalidRequest = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST",
		"The request is missing required fields.",
		"",
	)

	ErrCredentialsRequired = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST",
		"username and password are required!",
		"",
	)

	ErrRegistrationFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST",
		"username and password are required.",
		"",
	)

	// Account errors
	ErrAuthenticationFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"Authentication failed!",
		"",
	)

	ErrPlayerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"A player with that username or email already exists.",
		"",
	)

	ErrMissingClaims = NewBaseError(
		http.StatusInternalServerError,
		"MISSING_CLAIMS",
		"player.username and player.player_id are required!",
		"",
	)

	ErrIDGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ID_GENERATION_FAILED",
		"Took too long generating a unique id.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password could not be processed.",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Token could not be issued.",
		"",
	)

	// Save errors
	ErrSaveNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Save document not found.",
		"",
	)

	ErrNoSavesFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No saves were found",
		"",
	)

	ErrSaveAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"A save with that id already exists.",
		"",
	)

	ErrSaveOwnerMissing = NewBaseError(
		http.StatusInternalServerError,
		"SAVE_OWNER_MISSING",
		"The save does not reference an existing player.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for logging and errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
