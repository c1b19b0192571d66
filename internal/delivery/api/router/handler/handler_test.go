package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gameapi/internal/delivery/api/validator"
	"gameapi/internal/domain/entity"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/errors"
	mockUsecase "gameapi/internal/mocks/usecase"
	"gameapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(method, target, body, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestPlayerHandler_Login(t *testing.T) {
	playerUC := mockUsecase.NewMockPlayerUsecase(t)
	h := NewPlayerHandler(PlayerHandlerParams{PlayerUC: playerUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodPost, "/player/login", `{"username":"alice","password":"pw1"}`, "")

	playerUC.EXPECT().
		Authenticate(mock.Anything, &usecase.LoginInput{Login: "alice", Password: "pw1"}).
		Return(&usecase.LoginOutput{Token: "signed"}, nil)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"token": "signed"}, decodeBody(t, rec))
}

func TestPlayerHandler_Login_Rejected(t *testing.T) {
	playerUC := mockUsecase.NewMockPlayerUsecase(t)
	h := NewPlayerHandler(PlayerHandlerParams{PlayerUC: playerUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodPost, "/player/login", `{"username":"alice","password":"nope"}`, "")

	playerUC.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAuthenticationFailed)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authentication failed!", decodeBody(t, rec)["message"])
}

func TestPlayerHandler_Register(t *testing.T) {
	playerUC := mockUsecase.NewMockPlayerUsecase(t)
	h := NewPlayerHandler(PlayerHandlerParams{PlayerUC: playerUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodPost, "/player/", `{"username":"alice","password":"pw1","email":"a@example.com"}`, "")

	playerUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Username == "alice" && in.Password == "pw1" && in.Email != nil && *in.Email == "a@example.com"
		})).
		Return(&usecase.RegisterOutput{Player: &entity.PlayerView{PlayerID: "0011223344556677", Username: "alice"}}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"message": "player alice has been created successfully!"}, decodeBody(t, rec))
}

func TestPlayerHandler_Register_ServerErrorGoesToErrorHandler(t *testing.T) {
	playerUC := mockUsecase.NewMockPlayerUsecase(t)
	h := NewPlayerHandler(PlayerHandlerParams{PlayerUC: playerUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodPost, "/player/", `{"username":"alice","password":"pw1"}`, "")

	playerUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrIDGenerationFailed)

	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIDGenerationFailed)
	assert.Zero(t, rec.Body.Len())
}

func TestPlayerHandler_Register_MalformedBody(t *testing.T) {
	h := NewPlayerHandler(PlayerHandlerParams{PlayerUC: mockUsecase.NewMockPlayerUsecase(t), Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodPost, "/player/", `{"username":`, "")

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeBody(t, rec)["code"])
}

func TestPlayerHandler_ListPlayers(t *testing.T) {
	playerUC := mockUsecase.NewMockPlayerUsecase(t)
	h := NewPlayerHandler(PlayerHandlerParams{PlayerUC: playerUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodGet, "/player/all", "", "")

	playerUC.EXPECT().ListPlayers(mock.Anything).Return([]*entity.PlayerView{}, nil)

	require.NoError(t, h.ListPlayers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"players": []any{}}, decodeBody(t, rec))
}

func TestPlayerHandler_GetByToken(t *testing.T) {
	playerUC := mockUsecase.NewMockPlayerUsecase(t)
	h := NewPlayerHandler(PlayerHandlerParams{PlayerUC: playerUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodGet, "/player/", "", "BEARER abc")

	playerUC.EXPECT().ResolveToken(mock.Anything, "abc").Return(&entity.PlayerView{PlayerID: "0011223344556677", Username: "alice"}, nil)

	require.NoError(t, h.GetByToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decodeBody(t, rec)["username"])
}

func TestPlayerHandler_GetByToken_TokenErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{name: "absent", err: domainerrors.ErrTokenAbsent, code: "ABS"},
		{name: "expired", err: domainerrors.NewTokenError(domainerrors.TokenExpired, errors.New("exp")), code: "EXP"},
		{name: "early", err: domainerrors.ErrTokenNotYetValid, code: "EAR"},
		{name: "invalid", err: domainerrors.ErrTokenInvalid, code: "INV"},
		{name: "stale", err: domainerrors.ErrTokenStale, code: "NPF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playerUC := mockUsecase.NewMockPlayerUsecase(t)
			h := NewPlayerHandler(PlayerHandlerParams{PlayerUC: playerUC, Logger: newDiscardLogger()})
			c, rec := newContext(http.MethodGet, "/player/", "", "Bearer abc")

			playerUC.EXPECT().ResolveToken(mock.Anything, "abc").Return(nil, tt.err)

			require.NoError(t, h.GetByToken(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.code, decodeBody(t, rec)["code"])
		})
	}
}

func TestSaveHandler_Create_ValidationFailure(t *testing.T) {
	h := NewSaveHandler(SaveHandlerParams{SaveUC: mockUsecase.NewMockSaveUsecase(t), Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodPost, "/save/", `{"zone":{"name":"forest"}}`, "Bearer abc")

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "INVALID_REQUEST", body["code"])
	assert.Contains(t, body["message"], "chad")
}

func TestSaveHandler_Get(t *testing.T) {
	saveUC := mockUsecase.NewMockSaveUsecase(t)
	h := NewSaveHandler(SaveHandlerParams{SaveUC: saveUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodGet, "/save/a1b2c3d4e5f60718", "", "Bearer abc")
	c.SetParamNames("save_id")
	c.SetParamValues("a1b2c3d4e5f60718")

	saveUC.EXPECT().GetSave(mock.Anything, "abc", "a1b2c3d4e5f60718").
		Return(&entity.SaveDocument{SaveID: "a1b2c3d4e5f60718", Zone: "forest"}, nil)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "a1b2c3d4e5f60718", body["save_id"])
	assert.Equal(t, "forest", body["zone"])
}

func TestSaveHandler_Get_NotFound(t *testing.T) {
	saveUC := mockUsecase.NewMockSaveUsecase(t)
	h := NewSaveHandler(SaveHandlerParams{SaveUC: saveUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodGet, "/save/ffff", "", "Bearer abc")
	c.SetParamNames("save_id")
	c.SetParamValues("ffff")

	saveUC.EXPECT().GetSave(mock.Anything, "abc", "ffff").Return(nil, domainerrors.ErrSaveNotFound)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"code": "NOT_FOUND", "message": "Save document not found."}, decodeBody(t, rec))
}

func TestSaveHandler_List_NoneFound(t *testing.T) {
	saveUC := mockUsecase.NewMockSaveUsecase(t)
	h := NewSaveHandler(SaveHandlerParams{SaveUC: saveUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodGet, "/save/", "", "Bearer abc")

	saveUC.EXPECT().ListSaves(mock.Anything, "abc").Return(nil, domainerrors.ErrNoSavesFound)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{
		"code":    "NOT_FOUND",
		"message": "No saves were found",
		"saves":   []any{},
	}, decodeBody(t, rec))
}

func TestSaveHandler_List(t *testing.T) {
	saveUC := mockUsecase.NewMockSaveUsecase(t)
	h := NewSaveHandler(SaveHandlerParams{SaveUC: saveUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodGet, "/save/", "", "Bearer abc")

	saveUC.EXPECT().ListSaves(mock.Anything, "abc").Return([]*entity.SaveSummary{{SaveID: "a1b2c3d4e5f60718", Zone: "forest"}}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "a1b2c3d4e5f60718", body[0]["save_id"])
}

func TestSaveHandler_Delete(t *testing.T) {
	saveUC := mockUsecase.NewMockSaveUsecase(t)
	h := NewSaveHandler(SaveHandlerParams{SaveUC: saveUC, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodDelete, "/save/a1b2c3d4e5f60718", "", "Bearer abc")
	c.SetParamNames("save_id")
	c.SetParamValues("a1b2c3d4e5f60718")

	saveUC.EXPECT().DeleteSave(mock.Anything, "abc", "a1b2c3d4e5f60718").Return(nil)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "Save document deleted."}, decodeBody(t, rec))
}

func TestHealthCheck(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "ok"}, decodeBody(t, rec))
}
