package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"crm/internal/delivery/api/router/handler"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMergeHandler_Merge_Created(t *testing.T) {
	fx := newAPIFixtures(t)
	primaryID, secondaryID := uuid.New(), uuid.New()
	record := &entity.MergeRecord{
		ID:            uuid.New(),
		TenantID:      fx.actor.TenantID,
		PrimaryID:     primaryID,
		SecondaryID:   secondaryID,
		TouchedFields: []string{"name", "notes"},
		MovedRecords:  entity.MovedRecords{entity.RelatedInquiries: {uuid.New(), uuid.New()}},
		PerformedBy:   fx.actor.ID,
		PerformedAt:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:        entity.MergeStatusCompleted,
	}

	fx.mergeUC.EXPECT().
		Merge(mock.Anything, fx.actor, &usecase.MergeInput{
			PrimaryID:   primaryID,
			SecondaryID: secondaryID,
			Resolutions: entity.FieldResolutions{"name": entity.SideSecondary},
			Reason:      "same person",
		}).
		Return(record, nil)

	body := fmt.Sprintf(`{"primary_id":%q,"secondary_id":%q,"resolutions":{"name":"secondary"},"reason":"same person"}`, primaryID, secondaryID)
	rec, resp := fx.do(t, http.MethodPost, "/api/v1/merges", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := decodeData[handler.MergeRecordResponse](t, resp)
	assert.Equal(t, record.ID, data.ID)
	assert.Equal(t, 2, data.MovedRecordCount)
	assert.Equal(t, []string{"name", "notes"}, data.TouchedFields)
	assert.Equal(t, entity.MergeStatusCompleted, data.Status)
	assert.NotEmpty(t, resp.Meta.RequestID)
}

func TestMergeHandler_Merge_ValidationFailed(t *testing.T) {
	fx := newAPIFixtures(t)

	body := fmt.Sprintf(`{"primary_id":%q}`, uuid.New())
	rec, resp := fx.do(t, http.MethodPost, "/api/v1/merges", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Contains(t, fmt.Sprint(resp.Error.Details), "secondary_id")
	fx.mergeUC.AssertNotCalled(t, "Merge", mock.Anything, mock.Anything, mock.Anything)
}

func TestMergeHandler_Merge_UnresolvedConflict(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.mergeUC.EXPECT().
		Merge(mock.Anything, fx.actor, mock.AnythingOfType("*usecase.MergeInput")).
		Return(nil, errors.Wrap(domainerrors.NewUnresolvedFieldConflictError([]string{"phone", "email"}), "failed to merge"))

	body := fmt.Sprintf(`{"primary_id":%q,"secondary_id":%q}`, uuid.New(), uuid.New())
	rec, resp := fx.do(t, http.MethodPost, "/api/v1/merges", body)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "UNRESOLVED_FIELD_CONFLICT", resp.Error.Code)
	assert.Equal(t, map[string]any{"fields": []any{"phone", "email"}}, resp.Error.Details)
}

func TestMergeHandler_Merge_InvalidTarget(t *testing.T) {
	fx := newAPIFixtures(t)
	id := uuid.New()

	fx.mergeUC.EXPECT().
		Merge(mock.Anything, fx.actor, mock.AnythingOfType("*usecase.MergeInput")).
		Return(nil, domainerrors.NewInvalidMergeTargetError(domainerrors.ReasonSelfMerge, id, id))

	body := fmt.Sprintf(`{"primary_id":%q,"secondary_id":%q}`, id, id)
	rec, resp := fx.do(t, http.MethodPost, "/api/v1/merges", body)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "INVALID_MERGE_TARGET", resp.Error.Code)
	details, ok := resp.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "self_merge", details["reason"])
}

func TestMergeHandler_Merge_StorageFailureHidesDetails(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.mergeUC.EXPECT().
		Merge(mock.Anything, fx.actor, mock.AnythingOfType("*usecase.MergeInput")).
		Return(nil, domainerrors.NewStorageFailureError(errors.New("connection reset"), "move inquiries"))

	body := fmt.Sprintf(`{"primary_id":%q,"secondary_id":%q}`, uuid.New(), uuid.New())
	rec, resp := fx.do(t, http.MethodPost, "/api/v1/merges", body)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "STORAGE_FAILURE", resp.Error.Code)
	assert.Nil(t, resp.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestMergeHandler_Preview(t *testing.T) {
	fx := newAPIFixtures(t)
	primaryID, secondaryID := uuid.New(), uuid.New()
	preview := &entity.MergePreview{
		Primary:      entity.CustomerSummary{ID: primaryID, Name: "Tanaka"},
		Secondary:    entity.CustomerSummary{ID: secondaryID, Name: "Tanaka Taro"},
		ManualFields: []string{"name"},
		LineConflict: true,
	}

	fx.mergeUC.EXPECT().Preview(mock.Anything, fx.actor, primaryID, secondaryID).Return(preview, nil)

	rec, resp := fx.do(t, http.MethodGet, fmt.Sprintf("/api/v1/merges/preview?primary_id=%s&secondary_id=%s", primaryID, secondaryID), "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[entity.MergePreview](t, resp)
	assert.Equal(t, []string{"name"}, data.ManualFields)
	assert.True(t, data.LineConflict)
}

func TestMergeHandler_Preview_MissingParameter(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, resp := fx.do(t, http.MethodGet, "/api/v1/merges/preview?primary_id="+uuid.NewString(), "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Contains(t, fmt.Sprint(resp.Error.Details), "secondary_id")
}

func TestMergeHandler_ListMerges(t *testing.T) {
	fx := newAPIFixtures(t)
	customerID := uuid.New()
	record := &entity.MergeRecord{ID: uuid.New(), Status: entity.MergeStatusUndone}

	fx.mergeUC.EXPECT().
		ListMerges(mock.Anything, fx.actor, repository.MergeRecordFilter{
			CustomerID: &customerID,
			Status:     entity.MergeStatusUndone,
			Limit:      10,
			Offset:     20,
		}).
		Return([]*entity.MergeRecordSummary{{Record: record, PrimaryName: "Sato", SecondaryName: "Sato K"}}, nil)

	rec, resp := fx.do(t, http.MethodGet, "/api/v1/merges?status=undone&limit=10&offset=20&customer_id="+customerID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData[[]handler.MergeRecordResponse](t, resp)
	require.Len(t, data, 1)
	assert.Equal(t, "Sato", data[0].PrimaryName)
	assert.Equal(t, "Sato K", data[0].SecondaryName)
	require.NotNil(t, resp.Meta.Count)
	assert.Equal(t, 1, *resp.Meta.Count)
	assert.Equal(t, 10, resp.Meta.Limit)
}

func TestMergeHandler_ListMerges_RejectsUnknownStatus(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, resp := fx.do(t, http.MethodGet, "/api/v1/merges?status=pending", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}

func TestMergeHandler_GetMerge(t *testing.T) {
	fx := newAPIFixtures(t)
	record := &entity.MergeRecord{
		ID:            uuid.New(),
		PrimaryBefore: entity.CustomerSnapshot{Name: "Tanaka"},
		AppliedValues: entity.CustomerSnapshot{Name: "Tanaka Taro"},
		Status:        entity.MergeStatusCompleted,
	}

	fx.mergeUC.EXPECT().
		GetMerge(mock.Anything, fx.actor, record.ID).
		Return(&usecase.MergeDetail{
			MergeRecordSummary: &entity.MergeRecordSummary{Record: record, PrimaryName: "Tanaka Taro"},
			PrimaryDiff:        "-name: Tanaka\n+name: Tanaka Taro\n",
		}, nil)

	rec, resp := fx.do(t, http.MethodGet, "/api/v1/merges/"+record.ID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[handler.MergeDetailResponse](t, resp)
	assert.Equal(t, record.ID, data.ID)
	assert.Equal(t, "Tanaka", data.PrimaryBefore.Name)
	assert.Equal(t, "Tanaka Taro", data.AppliedValues.Name)
	assert.Contains(t, data.PrimaryDiff, "+name: Tanaka Taro")
}

func TestMergeHandler_GetMerge_InvalidID(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, resp := fx.do(t, http.MethodGet, "/api/v1/merges/not-a-uuid", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}

func TestMergeHandler_Undo(t *testing.T) {
	fx := newAPIFixtures(t)
	mergeID := uuid.New()
	undoneAt := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	fx.mergeUC.EXPECT().
		Undo(mock.Anything, fx.actor, mergeID).
		Return(&entity.MergeRecord{ID: mergeID, Status: entity.MergeStatusUndone, UndoneBy: &fx.actor.ID, UndoneAt: &undoneAt}, nil)

	rec, resp := fx.do(t, http.MethodPost, "/api/v1/merges/"+mergeID.String()+"/undo", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[handler.MergeRecordResponse](t, resp)
	assert.Equal(t, entity.MergeStatusUndone, data.Status)
	require.NotNil(t, data.UndoneBy)
	assert.Equal(t, fx.actor.ID, *data.UndoneBy)
}

func TestMergeHandler_Undo_Conflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{name: "already undone", err: domainerrors.ErrAlreadyUndone, code: "ALREADY_UNDONE"},
		{name: "primary merged away", err: domainerrors.ErrMergeUndoBlocked, code: "MERGE_UNDO_BLOCKED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)
			mergeID := uuid.New()

			fx.mergeUC.EXPECT().Undo(mock.Anything, fx.actor, mergeID).Return(nil, errors.Wrap(tt.err, "failed to undo merge"))

			rec, resp := fx.do(t, http.MethodPost, "/api/v1/merges/"+mergeID.String()+"/undo", "")

			require.Equal(t, http.StatusConflict, rec.Code)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}
