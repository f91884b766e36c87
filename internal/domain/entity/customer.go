// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// CustomerStatus represents the lifecycle state of a customer.
type CustomerStatus string

const (
	// CustomerStatusActive indicates a customer that is currently being served.
	CustomerStatusActive CustomerStatus = "active"
	// CustomerStatusInactive indicates a customer with no ongoing business.
	CustomerStatusInactive CustomerStatus = "inactive"
	// CustomerStatusLost indicates a customer that went to a competitor or dropped out.
	CustomerStatusLost CustomerStatus = "lost"
)

// String returns the string representation of the CustomerStatus.
func (s CustomerStatus) String() string {
	return string(s)
}

// IsValid checks if the CustomerStatus is a valid value.
func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusLost:
		return true
	default:
		return false
	}
}

// Customer is the identity record of a person the tenant does business with.
type Customer struct {
	ID             uuid.UUID      // The Global Unique Identifier (GUID) for the customer.
	TenantID       uuid.UUID      // The tenant that owns this record.
	Name           string         // Display name as entered by staff.
	Email          string         // Optional contact email, empty when unknown.
	Phone          string         // Optional phone number as entered (not normalized).
	LineID         string         // Optional LINE messaging id; at most one active link per person.
	Notes          string         // Free text notes.
	Status         CustomerStatus // Lifecycle status.
	MoveInDate     *time.Time     // Desired move-in date.
	BudgetMin      *int64         // Lower bound of the rent budget.
	BudgetMax      *int64         // Upper bound of the rent budget.
	PreferredAreas []string       // Preferred areas, treated as a set.
	Requirements   []string       // Requirements such as "pets allowed", treated as a set.

	// MergedIntoID is set when this record has been absorbed by another customer.
	// Merged records are excluded from normal listing and duplicate detection.
	MergedIntoID *uuid.UUID

	// LineDisconnectedByMergeID references the merge record that severed this
	// customer's LINE link, if any.
	LineDisconnectedByMergeID *uuid.UUID

	// LastActivityAt is the most recent activity timestamp. It is read-only and
	// only populated by queries that compute it.
	LastActivityAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMerged reports whether the customer has been merged away into another customer.
func (c *Customer) IsMerged() bool {
	return c.MergedIntoID != nil
}

// ActivityAt returns the timestamp used to rank equally scored duplicates.
func (c *Customer) ActivityAt() time.Time {
	if c.LastActivityAt != nil {
		return *c.LastActivityAt
	}

	return c.UpdatedAt
}

// Clone returns a deep copy of the customer.
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}

	cloned := *c
	cloned.MoveInDate = cloneTime(c.MoveInDate)
	cloned.BudgetMin = cloneInt64(c.BudgetMin)
	cloned.BudgetMax = cloneInt64(c.BudgetMax)
	cloned.PreferredAreas = slices.Clone(c.PreferredAreas)
	cloned.Requirements = slices.Clone(c.Requirements)
	cloned.MergedIntoID = cloneUUID(c.MergedIntoID)
	cloned.LineDisconnectedByMergeID = cloneUUID(c.LineDisconnectedByMergeID)
	cloned.LastActivityAt = cloneTime(c.LastActivityAt)

	return &cloned
}

// Summary returns the display data of the customer.
func (c *Customer) Summary() CustomerSummary {
	return CustomerSummary{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		LineID:       c.LineID,
		Status:       c.Status,
		MergedIntoID: cloneUUID(c.MergedIntoID),
		UpdatedAt:    c.UpdatedAt,
	}
}

// CustomerSummary is the display data of a customer shown next to merge and dismissal entries.
type CustomerSummary struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	LineID       string         `json:"line_id,omitempty"`
	Status       CustomerStatus `json:"status"`
	MergedIntoID *uuid.UUID     `json:"merged_into_id,omitempty"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// CustomerSnapshot holds the verbatim mergeable field values of a customer.
// It is stored inside merge records so that undo is a restore, not a recomputation.
type CustomerSnapshot struct {
	Name                      string         `json:"name"`
	Email                     string         `json:"email"`
	Phone                     string         `json:"phone"`
	LineID                    string         `json:"line_id"`
	Notes                     string         `json:"notes"`
	Status                    CustomerStatus `json:"status"`
	MoveInDate                *time.Time     `json:"move_in_date"`
	BudgetMin                 *int64         `json:"budget_min"`
	BudgetMax                 *int64         `json:"budget_max"`
	PreferredAreas            []string       `json:"preferred_areas"`
	Requirements              []string       `json:"requirements"`
	MergedIntoID              *uuid.UUID     `json:"merged_into_id"`
	LineDisconnectedByMergeID *uuid.UUID     `json:"line_disconnected_by_merge_id"`
}

// SnapshotOf captures the current field values of c.
func SnapshotOf(c *Customer) CustomerSnapshot {
	return CustomerSnapshot{
		Name:                      c.Name,
		Email:                     c.Email,
		Phone:                     c.Phone,
		LineID:                    c.LineID,
		Notes:                     c.Notes,
		Status:                    c.Status,
		MoveInDate:                cloneTime(c.MoveInDate),
		BudgetMin:                 cloneInt64(c.BudgetMin),
		BudgetMax:                 cloneInt64(c.BudgetMax),
		PreferredAreas:            slices.Clone(c.PreferredAreas),
		Requirements:              slices.Clone(c.Requirements),
		MergedIntoID:              cloneUUID(c.MergedIntoID),
		LineDisconnectedByMergeID: cloneUUID(c.LineDisconnectedByMergeID),
	}
}

// RestoreTo overwrites every snapshotted field of c with the snapshot values.
func (s CustomerSnapshot) RestoreTo(c *Customer) {
	c.Name = s.Name
	c.Email = s.Email
	c.Phone = s.Phone
	c.LineID = s.LineID
	c.Notes = s.Notes
	c.Status = s.Status
	c.MoveInDate = cloneTime(s.MoveInDate)
	c.BudgetMin = cloneInt64(s.BudgetMin)
	c.BudgetMax = cloneInt64(s.BudgetMax)
	c.PreferredAreas = slices.Clone(s.PreferredAreas)
	c.Requirements = slices.Clone(s.Requirements)
	c.MergedIntoID = cloneUUID(s.MergedIntoID)
	c.LineDisconnectedByMergeID = cloneUUID(s.LineDisconnectedByMergeID)
}

// Customer materializes the snapshot as a customer value, used when a field
// table needs to read snapshotted values through the same accessors as live records.
func (s CustomerSnapshot) Customer() *Customer {
	c := &Customer{}
	s.RestoreTo(c)

	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}

func cloneInt64(i *int64) *int64 {
	if i == nil {
		return nil
	}
	v := *i

	return &v
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id

	return &v
}
