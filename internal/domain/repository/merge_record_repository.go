package repository

import (
	"context"
	"time"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
)

// MergeRecordFilter narrows a merge history listing.
type MergeRecordFilter struct {
	CustomerID *uuid.UUID // primary or secondary side
	Status     entity.MergeStatus
	Limit      int
	Offset     int
}

// MergeRecordRepository defines the interface for merge audit records. Records are never deleted.
type MergeRecordRepository interface {
	// CreateMergeRecord persists a new merge record.
	CreateMergeRecord(ctx context.Context, record *entity.MergeRecord) error

	// FindMergeRecordByID retrieves a merge record of the tenant. Returns ErrMergeNotFound.
	FindMergeRecordByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.MergeRecord, error)

	// LockMergeRecord loads a merge record of the tenant with a row-level lock. Returns ErrMergeNotFound.
	LockMergeRecord(ctx context.Context, tenantID, id uuid.UUID) (*entity.MergeRecord, error)

	// FindLatestCompletedMergeID returns the most recent completed merge onto the primary,
	// or uuid.Nil when there is none.
	FindLatestCompletedMergeID(ctx context.Context, tenantID, primaryID uuid.UUID) (uuid.UUID, error)

	// MarkMergeUndone transitions a completed record to undone.
	MarkMergeUndone(ctx context.Context, id, undoneBy uuid.UUID, undoneAt time.Time) error

	// ListMergeRecords lists the merge history of a tenant, newest first.
	ListMergeRecords(ctx context.Context, tenantID uuid.UUID, filter MergeRecordFilter) ([]*entity.MergeRecord, error)
}
