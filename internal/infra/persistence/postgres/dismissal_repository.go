package postgres

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dismissalRepository implements the repository.DismissalRepository interface.
type dismissalRepository struct {
	db *gorm.DB
}

// NewDismissalRepository is the constructor for dismissalRepository.
func NewDismissalRepository(db *gorm.DB) repository.DismissalRepository {
	return &dismissalRepository{
		db: db,
	}
}

// CreateDismissal persists a dismissal.
func (repo *dismissalRepository) CreateDismissal(ctx context.Context, dismissal *entity.MergeDismissal) error {
	dismissalM := fromDismissalDomain(dismissal)

	if err := repo.db.WithContext(ctx).Create(dismissalM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyDismissed.WithDetails(pairDetails(dismissal.Pair))
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(pairDetails(dismissal.Pair))
		}

		return domainerrors.NewStorageFailureError(err, "failed to create merge dismissal")
	}

	// Update the entity with generated values
	dismissal.ID = dismissalM.ID

	return nil
}

// DeleteDismissal removes the dismissal of a pair.
func (repo *dismissalRepository) DeleteDismissal(ctx context.Context, tenantID uuid.UUID, pair entity.CustomerPair) error {
	result := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_a_id = ? AND customer_b_id = ?", tenantID, pair.A, pair.B).
		Delete(&model.MergeDismissalModel{})
	if result.Error != nil {
		return domainerrors.NewStorageFailureError(result.Error, "failed to delete merge dismissal")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrDismissalNotFound.WithDetails(pairDetails(pair))
	}

	return nil
}

// IsDismissed reports whether the pair is dismissed.
func (repo *dismissalRepository) IsDismissed(ctx context.Context, tenantID uuid.UUID, pair entity.CustomerPair) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.MergeDismissalModel{}).
		Where("tenant_id = ? AND customer_a_id = ? AND customer_b_id = ?", tenantID, pair.A, pair.B).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewStorageFailureError(err, "failed to look up merge dismissal")
	}

	return count > 0, nil
}

// FindDismissedPartnerIDs returns every customer dismissed against the given customer.
func (repo *dismissalRepository) FindDismissedPartnerIDs(ctx context.Context, tenantID, customerID uuid.UUID) ([]uuid.UUID, error) {
	var asA, asB []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.MergeDismissalModel{}).
		Where("tenant_id = ? AND customer_a_id = ?", tenantID, customerID).
		Pluck("customer_b_id", &asA).Error; err != nil {
		return nil, domainerrors.NewStorageFailureError(err, "failed to find dismissed partners")
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.MergeDismissalModel{}).
		Where("tenant_id = ? AND customer_b_id = ?", tenantID, customerID).
		Pluck("customer_a_id", &asB).Error; err != nil {
		return nil, domainerrors.NewStorageFailureError(err, "failed to find dismissed partners")
	}

	return append(asA, asB...), nil
}

// ListDismissals lists the dismissals of a tenant, newest first.
func (repo *dismissalRepository) ListDismissals(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID) ([]*entity.MergeDismissal, error) {
	db := repo.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if customerID != nil {
		db = db.Where("customer_a_id = ? OR customer_b_id = ?", *customerID, *customerID)
	}

	var dismissalModels []*model.MergeDismissalModel
	if err := db.Order("dismissed_at DESC, id").Find(&dismissalModels).Error; err != nil {
		return nil, domainerrors.NewStorageFailureError(err, "failed to list merge dismissals")
	}

	dismissals := make([]*entity.MergeDismissal, 0, len(dismissalModels))
	for _, dismissalM := range dismissalModels {
		dismissals = append(dismissals, toDismissalDomain(dismissalM))
	}

	return dismissals, nil
}

func pairDetails(pair entity.CustomerPair) domainerrors.PairDetails {
	return domainerrors.PairDetails{CustomerAID: pair.A, CustomerBID: pair.B}
}

// toDismissalDomain converts a GORM MergeDismissalModel to a domain MergeDismissal entity.
func toDismissalDomain(data *model.MergeDismissalModel) *entity.MergeDismissal {
	if data == nil {
		return nil
	}

	return &entity.MergeDismissal{
		ID:          data.ID,
		TenantID:    data.TenantID,
		Pair:        entity.CustomerPair{A: data.CustomerAID, B: data.CustomerBID},
		Reason:      data.Reason,
		DismissedBy: data.DismissedBy,
		DismissedAt: data.DismissedAt,
	}
}

// fromDismissalDomain converts a domain MergeDismissal entity to a GORM MergeDismissalModel.
func fromDismissalDomain(data *entity.MergeDismissal) *model.MergeDismissalModel {
	if data == nil {
		return nil
	}

	return &model.MergeDismissalModel{
		ID:          data.ID,
		TenantID:    data.TenantID,
		CustomerAID: data.Pair.A,
		CustomerBID: data.Pair.B,
		Reason:      data.Reason,
		DismissedBy: data.DismissedBy,
		DismissedAt: data.DismissedAt,
	}
}
