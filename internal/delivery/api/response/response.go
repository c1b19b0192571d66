// Package response writes the JSON bodies returned by the HTTP API.
// Payloads are passed through as-is, bare messages are wrapped as {message}
// and failures are always {code, message}.
package response

import (
	"net/http"

	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/errors"

	"github.com/labstack/echo/v4"
)

// MessageResponse wraps a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Code    string `json:"code"`    // Machine-readable error code, e.g., "INVALID_REQUEST" or "EXP"
	Message string `json:"message"` // User-friendly error message
}

// Success writes the payload unchanged.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes {message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Code:    errorCode,
		Message: message,
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}

// HandleAppError writes client errors directly. Server errors are handed to echo's
// HTTPErrorHandler so their cause gets logged before the generic body is sent.
func HandleAppError(c echo.Context, err error) error {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if ok && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
