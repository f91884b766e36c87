package entity

import "github.com/google/uuid"

// Actor is the authenticated staff member performing an operation.
// Every operation of the merge subsystem runs scoped to the actor's tenant.
type Actor struct {
	ID       uuid.UUID
	TenantID uuid.UUID
	Name     string
}
