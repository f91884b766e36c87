package repository

import (
	"context"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
)

// RelatedRecordRepository re-points the business records that reference a customer.
// Every entity type listed by entity.RelatedEntityTypes must be supported.
type RelatedRecordRepository interface {
	// CountByCustomer counts the rows of every related entity type that reference the customer.
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (map[entity.RelatedEntityType]int64, error)

	// MoveAll re-points every row of the entity type from one customer to another
	// and returns the ids of the moved rows.
	MoveAll(ctx context.Context, entityType entity.RelatedEntityType, from, to uuid.UUID) ([]uuid.UUID, error)

	// MoveByIDs re-points exactly the given rows to the customer and returns the number of rows updated.
	MoveByIDs(ctx context.Context, entityType entity.RelatedEntityType, ids []uuid.UUID, to uuid.UUID) (int64, error)
}
