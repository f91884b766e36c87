// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
)

// DuplicateQuery selects customers of a tenant sharing at least one normalized key.
// Empty keys are ignored. Limit applies to customers matching on name alone.
type DuplicateQuery struct {
	TenantID     uuid.UUID
	ExcludeID    uuid.UUID
	DismissedIDs []uuid.UUID
	Email        string
	Phone        string
	LineID       string
	Name         string
	Limit        int
}

// CustomerRepository defines the interface for customer-related database operations.
// Customers are never deleted by this subsystem.
type CustomerRepository interface {
	// FindCustomerByID retrieves a customer by id regardless of tenant, so callers
	// can tell a cross-tenant id from a missing one. Returns ErrCustomerNotFound.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomersByIDs retrieves the customers of a tenant by id. Missing ids are skipped.
	FindCustomersByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*entity.Customer, error)

	// LockCustomers loads the given customers with a row-level lock held until the
	// surrounding transaction ends. Rows are locked in ascending id order.
	LockCustomers(ctx context.Context, ids ...uuid.UUID) ([]*entity.Customer, error)

	// FindDuplicateCandidates returns non-merged customers that share a key with the query,
	// with their most recent activity timestamp populated. Every email, phone and LINE id
	// match is returned; name-only matches are capped at Limit, most recently updated first.
	FindDuplicateCandidates(ctx context.Context, query DuplicateQuery) ([]*entity.Customer, error)

	// CountMergedInto counts the customers whose merged-into reference points at the customer.
	CountMergedInto(ctx context.Context, customerID uuid.UUID) (int64, error)

	// UpdateCustomer persists the mergeable fields and merge pointers of a customer.
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error
}
