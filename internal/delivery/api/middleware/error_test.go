package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/save/abc", nil), rec)

	m.HandleHTTPError(err, c)

	return rec, logs.String()
}

func body(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestHandleHTTPError_ClientAppError(t *testing.T) {
	rec, logs := handle(t, domainerrors.ErrSaveNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]string{"code": "NOT_FOUND", "message": "Save document not found."}, body(t, rec))
	assert.Empty(t, logs)
}

func TestHandleHTTPError_TokenError(t *testing.T) {
	rec, _ := handle(t, errors.WithStack(domainerrors.ErrTokenExpired))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, map[string]string{"code": "EXP", "message": "Token is expired!"}, body(t, rec))
}

func TestHandleHTTPError_ServerAppErrorIsLogged(t *testing.T) {
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert player")

	rec, logs := handle(t, errors.Wrap(storeErr, "failed to create player"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
	assert.Contains(t, logs, "connection reset")
	assert.Contains(t, logs, "/save/abc")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, _ := handle(t, echo.ErrMethodNotAllowed)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, map[string]string{"code": "HTTP_ERROR", "message": "Method Not Allowed"}, body(t, rec))
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	rec, logs := handle(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]string{
		"code":    "INTERNAL_ERROR",
		"message": "Internal server error, please try again later",
	}, body(t, rec))
	assert.Contains(t, logs, "boom")
}

func TestHandleHTTPError_CommittedResponseIsLeftAlone(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusAccepted, "done"))

	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
