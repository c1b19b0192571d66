// Package handler contains the echo handlers of the player and save routes.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"gameapi/internal/delivery/api/response"
	deliverycontext "gameapi/internal/delivery/context"
	"gameapi/internal/domain/entity"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlayerHandlerParams holds dependencies for PlayerHandler, injected by Fx.
type PlayerHandlerParams struct {
	fx.In

	PlayerUC usecase.PlayerUsecase
	Logger   *slog.Logger
}

// PlayerHandler serves the account routes.
type PlayerHandler struct {
	playerUC usecase.PlayerUsecase
	logger   *slog.Logger
}

// NewPlayerHandler is the constructor for PlayerHandler.
func NewPlayerHandler(params PlayerHandlerParams) *PlayerHandler {
	return &PlayerHandler{
		playerUC: params.PlayerUC,
		logger:   params.Logger,
	}
}

// LoginRequest carries the login name (username or email) and password.
// Emptiness is checked by the use case so the client gets its exact message.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest carries the fields of a new account.
type RegisterRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

// LoginResponse returns the bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// PlayersResponse wraps the player listing.
type PlayersResponse struct {
	Players []*entity.PlayerView `json:"players"`
}

// Login handles POST {player}/login.
func (h *PlayerHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidRequest.ErrorCode(), "Invalid login payload")
	}

	output, err := h.playerUC.Authenticate(c.Request().Context(), &usecase.LoginInput{
		Login:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{Token: output.Token})
}

// Register handles POST {player}/.
func (h *PlayerHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidRequest.ErrorCode(), "Invalid registration payload")
	}

	output, err := h.playerUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusCreated, fmt.Sprintf("player %s has been created successfully!", output.Player.Username))
}

// ListPlayers handles GET {player}/all.
func (h *PlayerHandler) ListPlayers(c echo.Context) error {
	players, err := h.playerUC.ListPlayers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PlayersResponse{Players: players})
}

// GetByToken handles GET {player}/ and returns the safe view of the token's player.
func (h *PlayerHandler) GetByToken(c echo.Context) error {
	player, err := h.playerUC.ResolveToken(c.Request().Context(), deliverycontext.BearerToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, player)
}
