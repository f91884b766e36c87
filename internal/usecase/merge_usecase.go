package usecase

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"

	"github.com/google/uuid"
)

// MergeInput represents the input for merging a secondary customer into a primary
type MergeInput struct {
	PrimaryID   uuid.UUID               `json:"primary_id" validate:"required"`
	SecondaryID uuid.UUID               `json:"secondary_id" validate:"required"`
	Resolutions entity.FieldResolutions `json:"resolutions"`
	Reason      string                  `json:"reason" validate:"max=1000"`
}

// MergeDetail is a merge record with the current display names of both customers
// and a unified diff of the primary before and after the merge.
type MergeDetail struct {
	*entity.MergeRecordSummary
	PrimaryDiff string
}

// MergeUsecase defines the interface for previewing, executing and undoing customer merges
type MergeUsecase interface {
	// Preview computes the field diff and related-record impact of a merge without writing anything
	Preview(ctx context.Context, actor entity.Actor, primaryID, secondaryID uuid.UUID) (*entity.MergePreview, error)

	// Merge merges the secondary into the primary in a single transaction
	Merge(ctx context.Context, actor entity.Actor, input *MergeInput) (*entity.MergeRecord, error)

	// Undo reverses a completed merge by restoring its snapshots
	Undo(ctx context.Context, actor entity.Actor, mergeID uuid.UUID) (*entity.MergeRecord, error)

	// ListMerges lists the merge history of the actor's tenant, newest first
	ListMerges(ctx context.Context, actor entity.Actor, filter repository.MergeRecordFilter) ([]*entity.MergeRecordSummary, error)

	// GetMerge retrieves a single merge record of the actor's tenant
	GetMerge(ctx context.Context, actor entity.Actor, mergeID uuid.UUID) (*MergeDetail, error)
}
