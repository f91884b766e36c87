package handler

import (
	"log/slog"
	"net/http"

	"crm/internal/delivery/api/response"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DuplicateHandlerParams holds dependencies for DuplicateHandler, injected by Fx.
type DuplicateHandlerParams struct {
	fx.In

	DuplicateUC usecase.DuplicateUsecase
	Logger      *slog.Logger
}

// DuplicateHandler serves duplicate detection
type DuplicateHandler struct {
	duplicateUC usecase.DuplicateUsecase
	logger      *slog.Logger
}

// NewDuplicateHandler is the constructor for DuplicateHandler
func NewDuplicateHandler(params DuplicateHandlerParams) *DuplicateHandler {
	return &DuplicateHandler{
		duplicateUC: params.DuplicateUC,
		logger:      params.Logger,
	}
}

// FindDuplicates handles listing the likely duplicates of a customer
func (h *DuplicateHandler) FindDuplicates(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	customerID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	matches, err := h.duplicateUC.FindDuplicates(c.Request().Context(), actor, customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if matches == nil {
		matches = []*usecase.DuplicateMatch{}
	}

	return response.Success(c, http.StatusOK, matches)
}
