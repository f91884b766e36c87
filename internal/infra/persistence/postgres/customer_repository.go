// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"slices"

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

// lastActivitySelect computes the most recent activity of each customer row.
const lastActivitySelect = `customers.*, (
	SELECT MAX(a.occurred_at) FROM activities a WHERE a.customer_id = customers.id
) AS last_activity_at`

// customerMergeColumns are the columns written when a merge or undo updates a customer.
var customerMergeColumns = []string{
	"name", "email", "phone", "line_id", "notes", "status",
	"move_in_date", "budget_min", "budget_max", "preferred_areas", "requirements",
	"email_normalized", "phone_digits", "name_normalized",
	"merged_into_id", "line_disconnected_by_merge_id", "updated_at",
}

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindCustomerByID retrieves a customer by id regardless of tenant.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Select(lastActivitySelect).
		Where("customers.id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithDetails(map[string]uuid.UUID{"customer_id": id})
		}

		return nil, domainerrors.NewStorageFailureError(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomersByIDs retrieves the customers of a tenant by id.
func (repo *customerRepository) FindCustomersByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*entity.Customer, error) {
	if len(ids) == 0 {
		return []*entity.Customer{}, nil
	}

	var customerModels []*model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Select(lastActivitySelect).
		Where("customers.tenant_id = ? AND customers.id IN ?", tenantID, ids).
		Order("customers.id").
		Find(&customerModels).Error; err != nil {
		return nil, domainerrors.NewStorageFailureError(err, "failed to find customers by IDs")
	}

	return toCustomerDomains(customerModels), nil
}

// LockCustomers loads the customers with SELECT ... FOR UPDATE in ascending id order,
// so two merges touching the same customers always lock them in the same order.
func (repo *customerRepository) LockCustomers(ctx context.Context, ids ...uuid.UUID) ([]*entity.Customer, error) {
	ids = slices.Clone(ids)
	slices.SortFunc(ids, compareUUID)
	ids = slices.Compact(ids)

	var customerModels []*model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", ids).
		Order("id").
		Find(&customerModels).Error; err != nil {
		return nil, domainerrors.NewStorageFailureError(err, "failed to lock customers")
	}

	return toCustomerDomains(customerModels), nil
}

// FindDuplicateCandidates returns non-merged customers of the tenant sharing at least one normalized key.
// Email, phone and LINE id matches are never truncated; Limit caps the name-only matches.
func (repo *customerRepository) FindDuplicateCandidates(ctx context.Context, query repository.DuplicateQuery) ([]*entity.Customer, error) {
	scope := func() *gorm.DB {
		db := repo.db.WithContext(ctx).
			Select(lastActivitySelect).
			Where("customers.tenant_id = ?", query.TenantID).
			Where("customers.id <> ?", query.ExcludeID).
			Where("customers.merged_into_id IS NULL")
		if len(query.DismissedIDs) > 0 {
			db = db.Where("customers.id NOT IN ?", query.DismissedIDs)
		}

		return db
	}

	strongKeys := []struct {
		column string
		value  string
	}{
		{"customers.email_normalized", query.Email},
		{"customers.phone_digits", query.Phone},
		{"customers.line_id", query.LineID},
	}

	customerModels := make([]*model.CustomerModel, 0)
	strong := repo.db.Where("1 = 0")
	hasStrong := false
	for _, key := range strongKeys {
		if key.value != "" {
			strong = strong.Or(key.column+" = ?", key.value)
			hasStrong = true
		}
	}
	if hasStrong {
		if err := scope().Where(strong).Order("customers.updated_at DESC").Find(&customerModels).Error; err != nil {
			return nil, domainerrors.NewStorageFailureError(err, "failed to find duplicate candidates")
		}
	}

	if query.Name != "" {
		nameOnly := scope().Where("customers.name_normalized = ?", query.Name)
		for _, key := range strongKeys {
			if key.value != "" {
				nameOnly = nameOnly.Where(key.column+" <> ?", key.value)
			}
		}
		nameOnly = nameOnly.Order("customers.updated_at DESC")
		if query.Limit > 0 {
			nameOnly = nameOnly.Limit(query.Limit)
		}

		var nameModels []*model.CustomerModel
		if err := nameOnly.Find(&nameModels).Error; err != nil {
			return nil, domainerrors.NewStorageFailureError(err, "failed to find name matches")
		}
		customerModels = append(customerModels, nameModels...)
	}

	return toCustomerDomains(customerModels), nil
}

// CountMergedInto counts the customers absorbed into the given customer.
func (repo *customerRepository) CountMergedInto(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("merged_into_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewStorageFailureError(err, "failed to count merged customers")
	}

	return count, nil
}

// UpdateCustomer persists the mergeable fields and merge pointers of a customer.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	result := repo.db.WithContext(ctx).
		Model(customerM).
		Select(customerMergeColumns).
		Updates(customerM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails(map[string]any{"customer_id": customer.ID})
		}

		return domainerrors.NewStorageFailureError(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerNotFound.WithDetails(map[string]uuid.UUID{"customer_id": customer.ID})
	}

	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

func compareUUID(a, b uuid.UUID) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:                        data.ID,
		TenantID:                  data.TenantID,
		Name:                      data.Name,
		Email:                     data.Email,
		Phone:                     data.Phone,
		LineID:                    data.LineID,
		Notes:                     data.Notes,
		Status:                    entity.CustomerStatus(data.Status),
		MoveInDate:                data.MoveInDate,
		BudgetMin:                 data.BudgetMin,
		BudgetMax:                 data.BudgetMax,
		PreferredAreas:            slices.Clone([]string(data.PreferredAreas)),
		Requirements:              slices.Clone([]string(data.Requirements)),
		MergedIntoID:              data.MergedIntoID,
		LineDisconnectedByMergeID: data.LineDisconnectedByMergeID,
		LastActivityAt:            data.LastActivityAt,
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}
}

func toCustomerDomains(models []*model.CustomerModel) []*entity.Customer {
	customers := make([]*entity.Customer, 0, len(models))
	for _, customerM := range models {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:                        data.ID,
		TenantID:                  data.TenantID,
		Name:                      data.Name,
		Email:                     data.Email,
		Phone:                     data.Phone,
		LineID:                    data.LineID,
		Notes:                     data.Notes,
		Status:                    string(data.Status),
		MoveInDate:                data.MoveInDate,
		BudgetMin:                 data.BudgetMin,
		BudgetMax:                 data.BudgetMax,
		PreferredAreas:            nonNilSlice(data.PreferredAreas),
		Requirements:              nonNilSlice(data.Requirements),
		MergedIntoID:              data.MergedIntoID,
		LineDisconnectedByMergeID: data.LineDisconnectedByMergeID,
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}
}

func nonNilSlice(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}

	return datatypes.JSONSlice[string](slices.Clone(values))
}
