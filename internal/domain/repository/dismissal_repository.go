package repository

import (
	"context"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
)

// DismissalRepository defines the interface for the dismissal ledger.
// Pairs are always passed in canonical order.
type DismissalRepository interface {
	// CreateDismissal persists a dismissal. Returns ErrAlreadyDismissed when the pair is already dismissed.
	CreateDismissal(ctx context.Context, dismissal *entity.MergeDismissal) error

	// DeleteDismissal removes the dismissal of a pair. Returns ErrDismissalNotFound when none exists.
	DeleteDismissal(ctx context.Context, tenantID uuid.UUID, pair entity.CustomerPair) error

	// IsDismissed reports whether the pair is dismissed.
	IsDismissed(ctx context.Context, tenantID uuid.UUID, pair entity.CustomerPair) (bool, error)

	// FindDismissedPartnerIDs returns every customer dismissed against the given customer.
	FindDismissedPartnerIDs(ctx context.Context, tenantID, customerID uuid.UUID) ([]uuid.UUID, error)

	// ListDismissals lists the dismissals of a tenant, newest first, optionally
	// restricted to the pairs containing customerID.
	ListDismissals(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID) ([]*entity.MergeDismissal, error)
}
