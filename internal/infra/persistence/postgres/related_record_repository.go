package postgres

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// relatedRecordRegistry maps each related entity type to the model whose
// customer_id column references customers.
var relatedRecordRegistry = map[entity.RelatedEntityType]func() any{
	entity.RelatedInquiries:         func() any { return &model.InquiryModel{} },
	entity.RelatedPropertyInquiries: func() any { return &model.PropertyInquiryModel{} },
	entity.RelatedActivities:        func() any { return &model.ActivityModel{} },
	entity.RelatedAccessGrants:      func() any { return &model.AccessGrantModel{} },
	entity.RelatedMessageDrafts:     func() any { return &model.MessageDraftModel{} },
}

// relatedRecordRepository implements the repository.RelatedRecordRepository interface.
type relatedRecordRepository struct {
	db *gorm.DB
}

// NewRelatedRecordRepository is the constructor for relatedRecordRepository.
func NewRelatedRecordRepository(db *gorm.DB) repository.RelatedRecordRepository {
	return &relatedRecordRepository{
		db: db,
	}
}

// CountByCustomer counts the rows of every related entity type that reference the customer.
func (repo *relatedRecordRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (map[entity.RelatedEntityType]int64, error) {
	counts := make(map[entity.RelatedEntityType]int64, len(relatedRecordRegistry))
	for _, entityType := range entity.RelatedEntityTypes() {
		m, err := relatedModel(entityType)
		if err != nil {
			return nil, err
		}

		var count int64
		if err := repo.db.WithContext(ctx).
			Model(m).
			Where("customer_id = ?", customerID).
			Count(&count).Error; err != nil {
			return nil, domainerrors.NewStorageFailureError(err, "failed to count "+string(entityType))
		}
		counts[entityType] = count
	}

	return counts, nil
}

// MoveAll locks every row of the entity type referencing from, re-points them to to,
// and returns the moved row ids in ascending order.
func (repo *relatedRecordRepository) MoveAll(ctx context.Context, entityType entity.RelatedEntityType, from, to uuid.UUID) ([]uuid.UUID, error) {
	m, err := relatedModel(entityType)
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(m).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("customer_id = ?", from).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, domainerrors.NewStorageFailureError(err, "failed to select "+string(entityType)+" to move")
	}
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	if _, err := repo.MoveByIDs(ctx, entityType, ids, to); err != nil {
		return nil, err
	}

	return ids, nil
}

// MoveByIDs re-points exactly the given rows to the customer.
func (repo *relatedRecordRepository) MoveByIDs(ctx context.Context, entityType entity.RelatedEntityType, ids []uuid.UUID, to uuid.UUID) (int64, error) {
	m, err := relatedModel(entityType)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(m).
		Where("id IN ?", ids).
		UpdateColumn("customer_id", to)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return 0, domainerrors.ErrCustomerNotFound.WithDetails(map[string]uuid.UUID{"customer_id": to})
		}

		return 0, domainerrors.NewStorageFailureError(result.Error, "failed to move "+string(entityType))
	}

	return result.RowsAffected, nil
}

func relatedModel(entityType entity.RelatedEntityType) (any, error) {
	newModel, ok := relatedRecordRegistry[entityType]
	if !ok {
		return nil, errors.Errorf("unsupported related entity type: %s", entityType)
	}

	return newModel(), nil
}
