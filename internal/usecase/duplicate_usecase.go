package usecase

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/matching"

	"github.com/google/uuid"
)

// DuplicateMatch is a duplicate candidate bucketed against the configured review threshold.
type DuplicateMatch struct {
	*entity.DuplicateCandidate
	Likelihood matching.Likelihood `json:"likelihood"`
}

// DuplicateUsecase defines the interface for duplicate detection
type DuplicateUsecase interface {
	// FindDuplicates returns the likely duplicates of a customer of the actor's tenant,
	// excluding merged customers and dismissed pairs, highest confidence first.
	FindDuplicates(ctx context.Context, actor entity.Actor, customerID uuid.UUID) ([]*DuplicateMatch, error)
}
