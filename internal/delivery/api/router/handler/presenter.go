package handler

import (
	"time"

	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/google/uuid"
)

// MergeRecordResponse is the JSON view of a merge record.
type MergeRecordResponse struct {
	ID               uuid.UUID           `json:"id"`
	PrimaryID        uuid.UUID           `json:"primary_id"`
	SecondaryID      uuid.UUID           `json:"secondary_id"`
	PrimaryName      string              `json:"primary_name,omitempty"`
	SecondaryName    string              `json:"secondary_name,omitempty"`
	TouchedFields    []string            `json:"touched_fields"`
	MovedRecords     entity.MovedRecords `json:"moved_records"`
	MovedRecordCount int                 `json:"moved_record_count"`
	SeveredLineID    string              `json:"severed_line_id,omitempty"`
	SeveredLineSide  entity.Side         `json:"severed_line_side,omitempty"`
	Reason           string              `json:"reason,omitempty"`
	PerformedBy      uuid.UUID           `json:"performed_by"`
	PerformedAt      time.Time           `json:"performed_at"`
	Status           entity.MergeStatus  `json:"status"`
	UndoneBy         *uuid.UUID          `json:"undone_by,omitempty"`
	UndoneAt         *time.Time          `json:"undone_at,omitempty"`
}

// MergeDetailResponse adds the snapshots and the primary diff to a merge record.
type MergeDetailResponse struct {
	MergeRecordResponse
	SecondarySnapshot entity.CustomerSnapshot `json:"secondary_snapshot"`
	PrimaryBefore     entity.CustomerSnapshot `json:"primary_before"`
	AppliedValues     entity.CustomerSnapshot `json:"applied_values"`
	PrimaryDiff       string                  `json:"primary_diff"`
}

// DismissalResponse is the JSON view of a dismissal.
type DismissalResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerAID uuid.UUID `json:"customer_a_id"`
	CustomerBID uuid.UUID `json:"customer_b_id"`
	Reason      string    `json:"reason,omitempty"`
	DismissedBy uuid.UUID `json:"dismissed_by"`
	DismissedAt time.Time `json:"dismissed_at"`
}

// DismissalEntryResponse is a dismissal with the current display data of both customers.
type DismissalEntryResponse struct {
	DismissalResponse
	CustomerA entity.CustomerSummary  `json:"customer_a"`
	CustomerB entity.CustomerSummary  `json:"customer_b"`
	Other     *entity.CustomerSummary `json:"other,omitempty"`
}

// ToMergeRecordResponse maps a merge record to its JSON view.
func ToMergeRecordResponse(record *entity.MergeRecord) MergeRecordResponse {
	touched := record.TouchedFields
	if touched == nil {
		touched = []string{}
	}
	moved := record.MovedRecords
	if moved == nil {
		moved = entity.MovedRecords{}
	}

	return MergeRecordResponse{
		ID:               record.ID,
		PrimaryID:        record.PrimaryID,
		SecondaryID:      record.SecondaryID,
		TouchedFields:    touched,
		MovedRecords:     moved,
		MovedRecordCount: moved.Total(),
		SeveredLineID:    record.SeveredLineID,
		SeveredLineSide:  record.SeveredLineSide,
		Reason:           record.Reason,
		PerformedBy:      record.PerformedBy,
		PerformedAt:      record.PerformedAt,
		Status:           record.Status,
		UndoneBy:         record.UndoneBy,
		UndoneAt:         record.UndoneAt,
	}
}

func ToMergeSummaryResponse(summary *entity.MergeRecordSummary) MergeRecordResponse {
	resp := ToMergeRecordResponse(summary.Record)
	resp.PrimaryName = summary.PrimaryName
	resp.SecondaryName = summary.SecondaryName

	return resp
}

// ToMergeDetailResponse maps a merge detail to its JSON view.
func ToMergeDetailResponse(detail *usecase.MergeDetail) MergeDetailResponse {
	return MergeDetailResponse{
		MergeRecordResponse: ToMergeSummaryResponse(detail.MergeRecordSummary),
		SecondarySnapshot:   detail.Record.SecondarySnapshot,
		PrimaryBefore:       detail.Record.PrimaryBefore,
		AppliedValues:       detail.Record.AppliedValues,
		PrimaryDiff:         detail.PrimaryDiff,
	}
}

func ToDismissalResponse(dismissal *entity.MergeDismissal) DismissalResponse {
	return DismissalResponse{
		ID:          dismissal.ID,
		CustomerAID: dismissal.Pair.A,
		CustomerBID: dismissal.Pair.B,
		Reason:      dismissal.Reason,
		DismissedBy: dismissal.DismissedBy,
		DismissedAt: dismissal.DismissedAt,
	}
}

// ToDismissalEntryResponse maps a dismissal entry to its JSON view.
func ToDismissalEntryResponse(entry *entity.DismissalEntry) DismissalEntryResponse {
	return DismissalEntryResponse{
		DismissalResponse: ToDismissalResponse(entry.Dismissal),
		CustomerA:         entry.CustomerA,
		CustomerB:         entry.CustomerB,
		Other:             entry.Other,
	}
}

// MapSlice applies fn to every item and never returns nil.
func MapSlice[T, R any](items []T, fn func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}

	return result
}
