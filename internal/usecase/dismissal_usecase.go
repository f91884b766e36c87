package usecase

import (
	"context"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
)

// DismissInput represents the input for dismissing a pair as not duplicates
type DismissInput struct {
	CustomerAID uuid.UUID `json:"customer_a_id" validate:"required"`
	CustomerBID uuid.UUID `json:"customer_b_id" validate:"required"`
	Reason      string    `json:"reason" validate:"max=1000"`
}

// DismissalUsecase defines the interface for the dismissal ledger.
// Pairs are unordered: (A, B) and (B, A) address the same dismissal.
type DismissalUsecase interface {
	// Dismiss records that the pair is not a duplicate
	Dismiss(ctx context.Context, actor entity.Actor, input *DismissInput) (*entity.MergeDismissal, error)

	// Undismiss removes the dismissal so the pair is detected again
	Undismiss(ctx context.Context, actor entity.Actor, customerAID, customerBID uuid.UUID) error

	// IsDismissed reports whether the pair is dismissed
	IsDismissed(ctx context.Context, actor entity.Actor, customerAID, customerBID uuid.UUID) (bool, error)

	// ListDismissed lists the dismissals of the actor's tenant with current customer display data.
	// When customerID is set only pairs containing it are returned and Other is resolved.
	ListDismissed(ctx context.Context, actor entity.Actor, customerID *uuid.UUID) ([]*entity.DismissalEntry, error)
}
