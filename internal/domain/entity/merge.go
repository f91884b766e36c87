package entity

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Side selects one of the two customers of a merge.
type Side string

const (
	// SidePrimary is the customer that survives the merge.
	SidePrimary Side = "primary"
	// SideSecondary is the customer that is absorbed by the merge.
	SideSecondary Side = "secondary"
)

// IsValid checks if the Side is a valid value.
func (s Side) IsValid() bool {
	return s == SidePrimary || s == SideSecondary
}

// FieldResolutions maps a conflicting field name to the side whose value wins.
type FieldResolutions map[string]Side

// MergeStatus is the lifecycle state of a merge record.
type MergeStatus string

const (
	MergeStatusCompleted MergeStatus = "completed"
	MergeStatusUndone    MergeStatus = "undone"
)

// MovedRecords is the exact set of related rows re-pointed by a merge, keyed by entity type.
type MovedRecords map[RelatedEntityType][]uuid.UUID

// Total returns the number of moved rows across all entity types.
func (m MovedRecords) Total() int {
	total := 0
	for _, ids := range m {
		total += len(ids)
	}

	return total
}

// Clone returns a deep copy of the moved record set.
func (m MovedRecords) Clone() MovedRecords {
	cloned := make(MovedRecords, len(m))
	for _, t := range slices.Sorted(maps.Keys(m)) {
		cloned[t] = slices.Clone(m[t])
	}

	return cloned
}

// MergeRecord is the audit record of a merge and the sole input to undo.
// It is created atomically with the merge, mutated once when undone, and never deleted.
type MergeRecord struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	PrimaryID   uuid.UUID
	SecondaryID uuid.UUID

	SecondarySnapshot CustomerSnapshot // Full state of the secondary immediately before the merge.
	PrimaryBefore     CustomerSnapshot // State of the primary immediately before the merge.
	AppliedValues     CustomerSnapshot // State of the primary immediately after the merge.
	TouchedFields     []string         // Primary fields whose value the merge changed.
	MovedRecords      MovedRecords

	// SeveredLineID is the LINE id dropped by the merge when both customers had distinct ids.
	SeveredLineID   string
	SeveredLineSide Side

	Reason      string
	PerformedBy uuid.UUID
	PerformedAt time.Time

	Status   MergeStatus
	UndoneBy *uuid.UUID
	UndoneAt *time.Time
}

// IsUndone reports whether the merge has already been reversed.
func (r *MergeRecord) IsUndone() bool {
	return r.Status == MergeStatusUndone
}

// MergeRecordSummary is a merge record joined with the current display names of both customers.
type MergeRecordSummary struct {
	Record        *MergeRecord
	PrimaryName   string
	SecondaryName string
}

// FieldKind classifies how a customer field takes part in a merge.
type FieldKind string

const (
	// FieldKindIdentity fields need an operator decision when both sides differ.
	FieldKindIdentity FieldKind = "identity"
	// FieldKindAccumulating fields combine both sides and never need a decision.
	FieldKindAccumulating FieldKind = "accumulating"
	// FieldKindPrecedence fields are decided by a fixed precedence rule.
	FieldKindPrecedence FieldKind = "precedence"
)

// FieldStrategy describes how the preview resolved a field.
type FieldStrategy string

const (
	FieldStrategyUnchanged  FieldStrategy = "unchanged"  // both sides equal, primary kept
	FieldStrategyAuto       FieldStrategy = "auto"       // exactly one side populated
	FieldStrategyManual     FieldStrategy = "manual"     // operator must choose
	FieldStrategyCombined   FieldStrategy = "combined"   // accumulating merge
	FieldStrategyPrecedence FieldStrategy = "precedence" // fixed precedence rule
)

// FieldDiff is the preview of a single field.
type FieldDiff struct {
	Field              string        `json:"field"`
	Kind               FieldKind     `json:"kind"`
	PrimaryValue       any           `json:"primary_value"`
	SecondaryValue     any           `json:"secondary_value"`
	Differs            bool          `json:"differs"`
	RequiresResolution bool          `json:"requires_resolution"`
	AutoResolved       Side          `json:"auto_resolved,omitempty"`
	Strategy           FieldStrategy `json:"strategy"`
}

// MergePreview is the field-by-field diff and the related-record impact of a prospective merge.
type MergePreview struct {
	Primary       CustomerSummary             `json:"primary"`
	Secondary     CustomerSummary             `json:"secondary"`
	Fields        []FieldDiff                 `json:"fields"`
	ManualFields  []string                    `json:"manual_fields"`
	RelatedCounts map[RelatedEntityType]int64 `json:"related_counts"`

	// LineConflict is set when both customers have distinct LINE ids; completing
	// the merge severs the losing side's messaging link.
	LineConflict bool     `json:"line_conflict"`
	Warnings     []string `json:"warnings,omitempty"`
}
