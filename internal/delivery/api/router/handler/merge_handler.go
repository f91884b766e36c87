package handler

import (
	"log/slog"
	"net/http"

	"crm/internal/delivery/api/response"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MergeHandlerParams holds dependencies for MergeHandler, injected by Fx.
type MergeHandlerParams struct {
	fx.In

	MergeUC usecase.MergeUsecase
	Logger  *slog.Logger
}

// MergeHandler serves merge preview, execution, history and undo
type MergeHandler struct {
	mergeUC usecase.MergeUsecase
	logger  *slog.Logger
}

// NewMergeHandler is the constructor for MergeHandler
func NewMergeHandler(params MergeHandlerParams) *MergeHandler {
	return &MergeHandler{
		mergeUC: params.MergeUC,
		logger:  params.Logger,
	}
}

// ListMergesRequest represents the query of the merge history listing
type ListMergesRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=completed undone"`
	Limit  int    `json:"limit" validate:"min=0,max=200"`
	Offset int    `json:"offset" validate:"min=0"`
}

// Preview handles computing the field diff of a prospective merge
func (h *MergeHandler) Preview(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	primaryID, err := queryUUID(c, "primary_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	secondaryID, err := queryUUID(c, "secondary_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	preview, err := h.mergeUC.Preview(c.Request().Context(), actor, primaryID, secondaryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// Merge handles merging a secondary customer into a primary
func (h *MergeHandler) Merge(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var input usecase.MergeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merge input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.mergeUC.Merge(c.Request().Context(), actor, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ToMergeRecordResponse(record))
}

// ListMerges handles listing the merge history of the tenant
func (h *MergeHandler) ListMerges(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req ListMergesRequest
	if err := echo.QueryParamsBinder(c).
		String("status", &req.Status).
		Int("limit", &req.Limit).
		Int("offset", &req.Offset).
		BindError(); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merge history query")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	customerID, err := optionalQueryUUID(c, "customer_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summaries, err := h.mergeUC.ListMerges(c.Request().Context(), actor, repository.MergeRecordFilter{
		CustomerID: customerID,
		Status:     entity.MergeStatus(req.Status),
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, MapSlice(summaries, ToMergeSummaryResponse), req.Limit, req.Offset)
}

// GetMerge handles retrieving a single merge record
func (h *MergeHandler) GetMerge(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	mergeID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.mergeUC.GetMerge(c.Request().Context(), actor, mergeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ToMergeDetailResponse(detail))
}

// Undo handles reversing a completed merge
func (h *MergeHandler) Undo(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	mergeID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.mergeUC.Undo(c.Request().Context(), actor, mergeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.InfoContext(c.Request().Context(), "Merge undone via API",
		slog.String("merge_id", record.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return response.Success(c, http.StatusOK, ToMergeRecordResponse(record))
}
