package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gameapi/config"
	deliverycontext "gameapi/internal/delivery/context"
	domainerrors "gameapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id-42", seen)
	assert.Equal(t, "client-id-42", deliverycontext.GetRequestID(c))
	assert.Equal(t, "client-id-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesUnusableClientID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "missing", id: ""},
		{name: "too long", id: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "control characters", id: "abc\tdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newBufferLogger()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.id != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.id)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			handler := NewRequestIDMiddleware(logger).Process(func(echo.Context) error { return nil })

			require.NoError(t, handler(c))
			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, tt.id, got)
			assert.Len(t, got, 36)
		})
	}
}

func TestRequestIDMiddleware_ScopedLoggerCarriesID(t *testing.T) {
	logger, buf := newBufferLogger()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-7")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside handler")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), `"request_id":"trace-7"`)
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		handler   echo.HandlerFunc
		wantLog   bool
		wantLevel string
		wantCode  string
	}{
		{
			name:    "debug disabled",
			debug:   false,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:      "success",
			debug:     true,
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog:   true,
			wantLevel: "INFO",
			wantCode:  `"status":200`,
		},
		{
			name:      "application error",
			debug:     true,
			handler:   func(echo.Context) error { return domainerrors.ErrSaveNotFound },
			wantLog:   true,
			wantLevel: "WARN",
			wantCode:  `"status":404`,
		},
		{
			name:      "unexpected error",
			debug:     true,
			handler:   func(echo.Context) error { return assert.AnError },
			wantLog:   true,
			wantLevel: "ERROR",
			wantCode:  `"status":500`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/save/", nil), httptest.NewRecorder())

			_ = NewLoggerMiddleware(logger, cfg).Handle(tt.handler)(c)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)
			assert.Contains(t, buf.String(), `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, buf.String(), tt.wantCode)
		})
	}
}
