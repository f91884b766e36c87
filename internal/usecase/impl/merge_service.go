package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/merging"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const lineConflictWarning = "both customers have a LINE id; the one not kept will be disconnected"

type mergeService struct {
	txManager      repository.TransactionManager
	customerRepo   repository.CustomerRepository
	relatedRepo    repository.RelatedRecordRepository
	mergeRepo      repository.MergeRecordRepository
	eventPublisher service.EventPublisher
	mergeOptions   merging.Options
	logger         *slog.Logger
	now            func() time.Time
}

// MergeServiceParams holds dependencies for MergeService, injected by Fx.
type MergeServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CustomerRepo   repository.CustomerRepository
	RelatedRepo    repository.RelatedRecordRepository
	MergeRepo      repository.MergeRecordRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewMergeService creates a new merge service instance
func NewMergeService(params MergeServiceParams) usecase.MergeUsecase {
	opts := merging.Options{NoteSeparator: merging.DefaultNoteSeparator}
	if params.Config != nil && params.Config.Merge != nil && params.Config.Merge.NoteSeparator != "" {
		opts.NoteSeparator = params.Config.Merge.NoteSeparator
	}

	return &mergeService{
		txManager:      params.TxManager,
		customerRepo:   params.CustomerRepo,
		relatedRepo:    params.RelatedRepo,
		mergeRepo:      params.MergeRepo,
		eventPublisher: params.EventPublisher,
		mergeOptions:   opts,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (s *mergeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Preview computes the field diff and related-record impact of a merge. It performs no writes.
func (s *mergeService) Preview(ctx context.Context, actor entity.Actor, primaryID, secondaryID uuid.UUID) (*entity.MergePreview, error) {
	loaded, err := s.loadPair(ctx, s.customerRepo, primaryID, secondaryID)
	if err != nil {
		return nil, err
	}
	primary, secondary, err := mergeTargets(actor, primaryID, secondaryID, loaded)
	if err != nil {
		return nil, err
	}
	if err := checkNotAbsorbing(ctx, s.customerRepo, primaryID, secondaryID); err != nil {
		return nil, err
	}

	counts, err := s.relatedRepo.CountByCustomer(ctx, secondary.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count related records")
	}

	diffs := merging.Diff(primary, secondary)
	preview := &entity.MergePreview{
		Primary:       primary.Summary(),
		Secondary:     secondary.Summary(),
		Fields:        diffs,
		ManualFields:  merging.ManualFields(diffs),
		RelatedCounts: counts,
		LineConflict:  merging.HasLineConflict(primary, secondary),
	}
	if preview.LineConflict {
		preview.Warnings = append(preview.Warnings, lineConflictWarning)
	}

	return preview, nil
}

// Merge merges the secondary into the primary in a single transaction
func (s *mergeService) Merge(ctx context.Context, actor entity.Actor, input *usecase.MergeInput) (*entity.MergeRecord, error) {
	if input.PrimaryID == input.SecondaryID {
		return nil, domainerrors.NewInvalidMergeTargetError(domainerrors.ReasonSelfMerge, input.PrimaryID, input.SecondaryID).ForCustomer(input.PrimaryID)
	}

	var record *entity.MergeRecord
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()
		relatedRepo := repoFactory.NewRelatedRecordRepository()
		mergeRepo := repoFactory.NewMergeRecordRepository()

		locked, err := customerRepo.LockCustomers(ctx, input.PrimaryID, input.SecondaryID)
		if err != nil {
			return errors.Wrap(err, "failed to lock customers")
		}
		primary, secondary, err := mergeTargets(actor, input.PrimaryID, input.SecondaryID, locked)
		if err != nil {
			return err
		}
		if err := checkNotAbsorbing(ctx, customerRepo, input.PrimaryID, input.SecondaryID); err != nil {
			return err
		}

		plan, err := merging.Build(primary, secondary, input.Resolutions, s.mergeOptions)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		record = &entity.MergeRecord{
			ID:                uuid.New(),
			TenantID:          actor.TenantID,
			PrimaryID:         primary.ID,
			SecondaryID:       secondary.ID,
			SecondarySnapshot: entity.SnapshotOf(secondary),
			PrimaryBefore:     entity.SnapshotOf(primary),
			AppliedValues:     entity.SnapshotOf(plan.Result),
			TouchedFields:     plan.Touched,
			MovedRecords:      make(entity.MovedRecords, len(entity.RelatedEntityTypes())),
			SeveredLineID:     plan.SeveredLineID,
			SeveredLineSide:   plan.SeveredLineSide,
			Reason:            strings.TrimSpace(input.Reason),
			PerformedBy:       actor.ID,
			PerformedAt:       now,
			Status:            entity.MergeStatusCompleted,
		}

		// Validation is complete; everything below writes.
		merged := plan.Result
		merged.UpdatedAt = now
		if err := customerRepo.UpdateCustomer(ctx, merged); err != nil {
			return errors.Wrap(err, "failed to update primary customer")
		}

		for _, entityType := range entity.RelatedEntityTypes() {
			moved, err := relatedRepo.MoveAll(ctx, entityType, secondary.ID, primary.ID)
			if err != nil {
				return errors.Wrapf(err, "failed to move %s", entityType)
			}
			record.MovedRecords[entityType] = moved
		}

		absorbed := secondary.Clone()
		absorbed.LineID = ""
		if plan.SeveredLineSide == entity.SideSecondary {
			absorbed.LineDisconnectedByMergeID = &record.ID
		}
		absorbed.MergedIntoID = &primary.ID
		absorbed.UpdatedAt = now
		if err := customerRepo.UpdateCustomer(ctx, absorbed); err != nil {
			return errors.Wrap(err, "failed to update secondary customer")
		}

		if err := mergeRepo.CreateMergeRecord(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create merge record")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Customer merge failed",
			slog.String("tenant_id", actor.TenantID.String()),
			slog.String("primary_id", input.PrimaryID.String()),
			slog.String("secondary_id", input.SecondaryID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.log(ctx).Info("Customers merged",
		slog.String("tenant_id", actor.TenantID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("merge_id", record.ID.String()),
		slog.String("primary_id", record.PrimaryID.String()),
		slog.String("secondary_id", record.SecondaryID.String()),
		slog.Int("moved_records", record.MovedRecords.Total()),
		slog.Any("touched_fields", record.TouchedFields),
	)

	s.publish(ctx, mergeEvent(ctx, service.EventCustomerMerged, record, actor.ID, record.PerformedAt))
	if record.SeveredLineID != "" {
		event := mergeEvent(ctx, service.EventCustomerLineDisconnected, record, actor.ID, record.PerformedAt)
		event.LineID = record.SeveredLineID
		event.LineSide = string(record.SeveredLineSide)
		s.publish(ctx, event)
	}

	return record, nil
}

// loadPair reads both customers outside a transaction. Missing ids are left out.
func (s *mergeService) loadPair(ctx context.Context, customerRepo repository.CustomerRepository, primaryID, secondaryID uuid.UUID) ([]*entity.Customer, error) {
	if primaryID == secondaryID {
		return nil, domainerrors.NewInvalidMergeTargetError(domainerrors.ReasonSelfMerge, primaryID, secondaryID).ForCustomer(primaryID)
	}

	loaded := make([]*entity.Customer, 0, 2)
	for _, id := range []uuid.UUID{primaryID, secondaryID} {
		c, err := customerRepo.FindCustomerByID(ctx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrCustomerNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to find customer")
		}
		loaded = append(loaded, c)
	}

	return loaded, nil
}

// checkNotAbsorbing rejects a secondary that other customers are merged into.
func checkNotAbsorbing(ctx context.Context, customerRepo repository.CustomerRepository, primaryID, secondaryID uuid.UUID) error {
	absorbed, err := customerRepo.CountMergedInto(ctx, secondaryID)
	if err != nil {
		return errors.Wrap(err, "failed to count customers merged into secondary")
	}
	if absorbed > 0 {
		return domainerrors.NewInvalidMergeTargetError(domainerrors.ReasonSecondaryAbsorbed, primaryID, secondaryID).ForCustomer(secondaryID)
	}

	return nil
}

// publish delivers an event after commit. The database is the system of record,
// so a failed publish is logged and never returned.
func (s *mergeService) publish(ctx context.Context, event *service.MergeEvent) {
	if err := s.eventPublisher.PublishMergeEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to publish merge event",
			slog.String("type", string(event.Type)),
			slog.String("merge_id", event.MergeID),
			slog.Any("error", err),
		)
	}
}

func mergeEvent(ctx context.Context, eventType service.MergeEventType, record *entity.MergeRecord, actorID uuid.UUID, at time.Time) *service.MergeEvent {
	return &service.MergeEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		TenantID:    record.TenantID.String(),
		MergeID:     record.ID.String(),
		PrimaryID:   record.PrimaryID.String(),
		SecondaryID: record.SecondaryID.String(),
		ActorID:     actorID.String(),
		MovedCount:  record.MovedRecords.Total(),
		OccurredAt:  at,
	}
}
