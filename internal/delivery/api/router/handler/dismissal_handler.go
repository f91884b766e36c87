package handler

import (
	"log/slog"
	"net/http"

	"crm/internal/delivery/api/response"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DismissalHandlerParams holds dependencies for DismissalHandler, injected by Fx.
type DismissalHandlerParams struct {
	fx.In

	DismissalUC usecase.DismissalUsecase
	Logger      *slog.Logger
}

// DismissalHandler serves the "not a duplicate" ledger
type DismissalHandler struct {
	dismissalUC usecase.DismissalUsecase
	logger      *slog.Logger
}

// NewDismissalHandler is the constructor for DismissalHandler
func NewDismissalHandler(params DismissalHandlerParams) *DismissalHandler {
	return &DismissalHandler{
		dismissalUC: params.DismissalUC,
		logger:      params.Logger,
	}
}

// Dismiss handles marking a pair of customers as not duplicates
func (h *DismissalHandler) Dismiss(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var input usecase.DismissInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dismissal input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	dismissal, err := h.dismissalUC.Dismiss(c.Request().Context(), actor, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ToDismissalResponse(dismissal))
}

// Undismiss handles removing a dismissal so the pair is detected again
func (h *DismissalHandler) Undismiss(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	customerAID, err := queryUUID(c, "customer_a_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	customerBID, err := queryUUID(c, "customer_b_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.dismissalUC.Undismiss(c.Request().Context(), actor, customerAID, customerBID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListDismissed handles listing dismissals, optionally relative to one customer
func (h *DismissalHandler) ListDismissed(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	customerID, err := optionalQueryUUID(c, "customer_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	entries, err := h.dismissalUC.ListDismissed(c.Request().Context(), actor, customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, MapSlice(entries, ToDismissalEntryResponse), 0, 0)
}
