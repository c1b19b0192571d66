package handler

import (
	"log/slog"
	"net/http"

	"gameapi/internal/delivery/api/response"
	deliverycontext "gameapi/internal/delivery/context"
	"gameapi/internal/domain/entity"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/errors"
	"gameapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SaveHandlerParams holds dependencies for SaveHandler, injected by Fx.
type SaveHandlerParams struct {
	fx.In

	SaveUC usecase.SaveUsecase
	Logger *slog.Logger
}

// SaveHandler serves the save-document routes.
type SaveHandler struct {
	saveUC usecase.SaveUsecase
	logger *slog.Logger
}

// NewSaveHandler is the constructor for SaveHandler.
func NewSaveHandler(params SaveHandlerParams) *SaveHandler {
	return &SaveHandler{
		saveUC: params.SaveUC,
		logger: params.Logger,
	}
}

// CreateSaveResponse confirms a new save and returns its id.
type CreateSaveResponse struct {
	Message string `json:"message"`
	SaveID  string `json:"save_id"`
}

// NoSavesResponse is the 404 body of the listing. It keeps an empty saves array
// so clients can read the field without a status check.
type NoSavesResponse struct {
	response.ErrorResponse
	Saves []*entity.SaveSummary `json:"saves"`
}

// Create handles POST {save}/.
func (h *SaveHandler) Create(c echo.Context) error {
	token := deliverycontext.BearerToken(c)

	var snapshot entity.Snapshot
	if err := c.Bind(&snapshot); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidRequest.ErrorCode(), "Invalid save payload")
	}

	if err := c.Validate(&snapshot); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidRequest.ErrorCode(), err.Error())
	}

	output, err := h.saveUC.CreateSave(c.Request().Context(), token, &snapshot)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateSaveResponse{
		Message: "Save document created.",
		SaveID:  output.SaveID,
	})
}

// Get handles GET {save}/:save_id.
func (h *SaveHandler) Get(c echo.Context) error {
	doc, err := h.saveUC.GetSave(c.Request().Context(), deliverycontext.BearerToken(c), c.Param("save_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, doc)
}

// List handles GET {save}/.
func (h *SaveHandler) List(c echo.Context) error {
	summaries, err := h.saveUC.ListSaves(c.Request().Context(), deliverycontext.BearerToken(c))
	if errors.Is(err, domainerrors.ErrNoSavesFound) {
		return c.JSON(http.StatusNotFound, NoSavesResponse{
			ErrorResponse: response.ErrorResponse{
				Code:    domainerrors.ErrNoSavesFound.ErrorCode(),
				Message: domainerrors.ErrNoSavesFound.Message(),
			},
			Saves: []*entity.SaveSummary{},
		})
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summaries)
}

// Delete handles DELETE {save}/:save_id.
func (h *SaveHandler) Delete(c echo.Context) error {
	if err := h.saveUC.DeleteSave(c.Request().Context(), deliverycontext.BearerToken(c), c.Param("save_id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Save document deleted.")
}
