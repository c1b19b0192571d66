package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestHandleAppError_ClientErrorIsWritten(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.Wrap(domainerrors.ErrPlayerAlreadyExists, "failed to create player"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"code":"CONFLICT","message":"`+domainerrors.ErrPlayerAlreadyExists.Message()+`"}`, rec.Body.String())
}

func TestHandleAppError_ServerErrorIsReturned(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("connection refused")

	err := HandleAppError(c, cause)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.False(t, c.Response().Committed)
	assert.Zero(t, rec.Body.Len())
}

func TestMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Message(c, http.StatusCreated, "player bob has been created successfully!"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"player bob has been created successfully!"}`, rec.Body.String())
}
