package impl

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/merging"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Undo reverses a completed merge by restoring the snapshots stored in its record
func (s *mergeService) Undo(ctx context.Context, actor entity.Actor, mergeID uuid.UUID) (*entity.MergeRecord, error) {
	var record *entity.MergeRecord
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()
		relatedRepo := repoFactory.NewRelatedRecordRepository()
		mergeRepo := repoFactory.NewMergeRecordRepository()

		var err error
		record, err = mergeRepo.LockMergeRecord(ctx, actor.TenantID, mergeID)
		if err != nil {
			return errors.Wrap(err, "failed to lock merge record")
		}
		if record.IsUndone() {
			return domainerrors.ErrAlreadyUndone.WithDetails(map[string]uuid.UUID{"merge_id": mergeID})
		}

		locked, err := customerRepo.LockCustomers(ctx, record.PrimaryID, record.SecondaryID)
		if err != nil {
			return errors.Wrap(err, "failed to lock customers")
		}
		primary, secondary, err := pairTargets(actor, record.PrimaryID, record.SecondaryID, locked)
		if err != nil {
			return domainerrors.NewStorageFailureError(err, "merge record references missing customers")
		}
		// Merge rejects secondaries that have absorbed customers, so this only
		// trips on rows changed outside the service.
		if primary.IsMerged() {
			return domainerrors.ErrMergeUndoBlocked.WithDetails(map[string]uuid.UUID{
				"merge_id":       mergeID,
				"primary_id":     primary.ID,
				"merged_into_id": *primary.MergedIntoID,
			})
		}

		// Merges onto the same primary are undone newest first; PrimaryBefore
		// only describes the primary as this merge found it.
		latestID, err := mergeRepo.FindLatestCompletedMergeID(ctx, actor.TenantID, primary.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find latest merge")
		}
		if latestID != record.ID {
			return domainerrors.ErrMergeUndoBlocked.WithDetails(map[string]uuid.UUID{
				"merge_id":          mergeID,
				"primary_id":        primary.ID,
				"blocking_merge_id": latestID,
			})
		}

		// Validation is complete; everything below writes.
		now := s.now().UTC()
		for _, entityType := range slices.Sorted(maps.Keys(record.MovedRecords)) {
			ids := record.MovedRecords[entityType]
			if len(ids) == 0 {
				continue
			}
			if _, err := relatedRepo.MoveByIDs(ctx, entityType, ids, secondary.ID); err != nil {
				return errors.Wrapf(err, "failed to move %s back", entityType)
			}
		}

		merging.Restore(primary, record.PrimaryBefore, record.TouchedFields)
		primary.UpdatedAt = now
		if err := customerRepo.UpdateCustomer(ctx, primary); err != nil {
			return errors.Wrap(err, "failed to restore primary customer")
		}

		record.SecondarySnapshot.RestoreTo(secondary)
		secondary.MergedIntoID = nil
		secondary.UpdatedAt = now
		if err := customerRepo.UpdateCustomer(ctx, secondary); err != nil {
			return errors.Wrap(err, "failed to restore secondary customer")
		}

		if err := mergeRepo.MarkMergeUndone(ctx, record.ID, actor.ID, now); err != nil {
			return errors.Wrap(err, "failed to mark merge undone")
		}
		record.Status = entity.MergeStatusUndone
		record.UndoneBy = &actor.ID
		record.UndoneAt = &now

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Merge undo failed",
			slog.String("tenant_id", actor.TenantID.String()),
			slog.String("merge_id", mergeID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.log(ctx).Info("Merge undone",
		slog.String("tenant_id", actor.TenantID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("merge_id", record.ID.String()),
		slog.String("primary_id", record.PrimaryID.String()),
		slog.String("secondary_id", record.SecondaryID.String()),
		slog.Int("moved_records", record.MovedRecords.Total()),
	)

	s.publish(ctx, mergeEvent(ctx, service.EventCustomerMergeUndone, record, actor.ID, *record.UndoneAt))

	return record, nil
}
