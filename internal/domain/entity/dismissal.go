package entity

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// CustomerPair is an unordered pair of customers stored in canonical order (smaller id first).
type CustomerPair struct {
	A uuid.UUID
	B uuid.UUID
}

// NewCustomerPair returns the canonical pair for x and y, regardless of argument order.
func NewCustomerPair(x, y uuid.UUID) CustomerPair {
	if bytes.Compare(x[:], y[:]) > 0 {
		x, y = y, x
	}

	return CustomerPair{A: x, B: y}
}

// Contains reports whether id is one side of the pair.
func (p CustomerPair) Contains(id uuid.UUID) bool {
	return p.A == id || p.B == id
}

// Other returns the side of the pair that is not id.
func (p CustomerPair) Other(id uuid.UUID) uuid.UUID {
	if p.A == id {
		return p.B
	}

	return p.A
}

// MergeDismissal records an operator decision that a pair of customers is not a duplicate.
type MergeDismissal struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Pair        CustomerPair
	Reason      string
	DismissedBy uuid.UUID
	DismissedAt time.Time
}

// DismissalEntry is a dismissal resolved to the current display data of both customers.
// Other is set when the listing was requested relative to one of the two customers.
type DismissalEntry struct {
	Dismissal *MergeDismissal
	CustomerA CustomerSummary
	CustomerB CustomerSummary
	Other     *CustomerSummary
}
