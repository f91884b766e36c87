package postgres

import (
	"context"
	"slices"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultMergeListLimit = 50

// mergeRecordRepository implements the repository.MergeRecordRepository interface.
type mergeRecordRepository struct {
	db *gorm.DB
}

// NewMergeRecordRepository is the constructor for mergeRecordRepository.
func NewMergeRecordRepository(db *gorm.DB) repository.MergeRecordRepository {
	return &mergeRecordRepository{
		db: db,
	}
}

// CreateMergeRecord persists a new merge record.
func (repo *mergeRecordRepository) CreateMergeRecord(ctx context.Context, record *entity.MergeRecord) error {
	recordM := fromMergeRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewStorageFailureError(err, "failed to create merge record")
	}

	// Update the entity with generated values
	record.ID = recordM.ID

	return nil
}

// FindMergeRecordByID retrieves a merge record of the tenant.
func (repo *mergeRecordRepository) FindMergeRecordByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.MergeRecord, error) {
	return repo.findMergeRecord(repo.db.WithContext(ctx), tenantID, id)
}

// LockMergeRecord loads a merge record of the tenant with SELECT ... FOR UPDATE.
func (repo *mergeRecordRepository) LockMergeRecord(ctx context.Context, tenantID, id uuid.UUID) (*entity.MergeRecord, error) {
	return repo.findMergeRecord(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), tenantID, id)
}

func (repo *mergeRecordRepository) findMergeRecord(db *gorm.DB, tenantID, id uuid.UUID) (*entity.MergeRecord, error) {
	var recordM model.MergeRecordModel

	if err := db.
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrMergeNotFound.WithDetails(map[string]uuid.UUID{"merge_id": id})
		}

		return nil, domainerrors.NewStorageFailureError(err, "failed to find merge record")
	}

	return toMergeRecordDomain(&recordM), nil
}

// FindLatestCompletedMergeID returns the newest completed merge onto the primary.
func (repo *mergeRecordRepository) FindLatestCompletedMergeID(ctx context.Context, tenantID, primaryID uuid.UUID) (uuid.UUID, error) {
	var recordM model.MergeRecordModel

	if err := repo.db.WithContext(ctx).
		Select("id").
		Where("tenant_id = ? AND primary_id = ? AND status = ?", tenantID, primaryID, string(entity.MergeStatusCompleted)).
		Order("performed_at DESC, id").
		Take(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil
		}

		return uuid.Nil, domainerrors.NewStorageFailureError(err, "failed to find latest merge")
	}

	return recordM.ID, nil
}

// MarkMergeUndone transitions a completed record to undone.
func (repo *mergeRecordRepository) MarkMergeUndone(ctx context.Context, id, undoneBy uuid.UUID, undoneAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MergeRecordModel{}).
		Where("id = ? AND status = ?", id, string(entity.MergeStatusCompleted)).
		Updates(map[string]any{
			"status":    string(entity.MergeStatusUndone),
			"undone_by": undoneBy,
			"undone_at": undoneAt,
		})
	if result.Error != nil {
		return domainerrors.NewStorageFailureError(result.Error, "failed to mark merge undone")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrAlreadyUndone.WithDetails(map[string]uuid.UUID{"merge_id": id})
	}

	return nil
}

// ListMergeRecords lists the merge history of a tenant, newest first.
func (repo *mergeRecordRepository) ListMergeRecords(ctx context.Context, tenantID uuid.UUID, filter repository.MergeRecordFilter) ([]*entity.MergeRecord, error) {
	db := repo.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if filter.CustomerID != nil {
		db = db.Where("primary_id = ? OR secondary_id = ?", *filter.CustomerID, *filter.CustomerID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", string(filter.Status))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultMergeListLimit
	}

	var recordModels []*model.MergeRecordModel
	if err := db.
		Order("performed_at DESC, id").
		Limit(limit).
		Offset(filter.Offset).
		Find(&recordModels).Error; err != nil {
		return nil, domainerrors.NewStorageFailureError(err, "failed to list merge records")
	}

	records := make([]*entity.MergeRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toMergeRecordDomain(recordM))
	}

	return records, nil
}

// toMergeRecordDomain converts a GORM MergeRecordModel to a domain MergeRecord entity.
func toMergeRecordDomain(data *model.MergeRecordModel) *entity.MergeRecord {
	if data == nil {
		return nil
	}

	return &entity.MergeRecord{
		ID:                data.ID,
		TenantID:          data.TenantID,
		PrimaryID:         data.PrimaryID,
		SecondaryID:       data.SecondaryID,
		SecondarySnapshot: data.SecondarySnapshot.Data(),
		PrimaryBefore:     data.PrimaryBefore.Data(),
		AppliedValues:     data.AppliedValues.Data(),
		TouchedFields:     slices.Clone([]string(data.TouchedFields)),
		MovedRecords:      data.MovedRecords.Data(),
		SeveredLineID:     data.SeveredLineID,
		SeveredLineSide:   entity.Side(data.SeveredLineSide),
		Reason:            data.Reason,
		PerformedBy:       data.PerformedBy,
		PerformedAt:       data.PerformedAt,
		Status:            entity.MergeStatus(data.Status),
		UndoneBy:          data.UndoneBy,
		UndoneAt:          data.UndoneAt,
	}
}

// fromMergeRecordDomain converts a domain MergeRecord entity to a GORM MergeRecordModel.
func fromMergeRecordDomain(data *entity.MergeRecord) *model.MergeRecordModel {
	if data == nil {
		return nil
	}

	moved := data.MovedRecords
	if moved == nil {
		moved = entity.MovedRecords{}
	}

	return &model.MergeRecordModel{
		ID:                data.ID,
		TenantID:          data.TenantID,
		PrimaryID:         data.PrimaryID,
		SecondaryID:       data.SecondaryID,
		SecondarySnapshot: datatypes.NewJSONType(data.SecondarySnapshot),
		PrimaryBefore:     datatypes.NewJSONType(data.PrimaryBefore),
		AppliedValues:     datatypes.NewJSONType(data.AppliedValues),
		TouchedFields:     nonNilSlice(data.TouchedFields),
		MovedRecords:      datatypes.NewJSONType(moved),
		SeveredLineID:     data.SeveredLineID,
		SeveredLineSide:   string(data.SeveredLineSide),
		Reason:            data.Reason,
		PerformedBy:       data.PerformedBy,
		PerformedAt:       data.PerformedAt,
		Status:            string(data.Status),
		UndoneBy:          data.UndoneBy,
		UndoneAt:          data.UndoneAt,
	}
}
