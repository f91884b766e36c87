// Package merging holds the field table that drives merge previews, merge
// execution and undo. Adding a customer attribute to merges only needs a
// new entry in the table.
package merging

import (
	"slices"
	"strings"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/matching"
)

// Field names used in previews, resolutions and merge records.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldLineID         = "line_id"
	FieldPhone          = "phone"
	FieldMoveInDate     = "move_in_date"
	FieldBudgetMin      = "budget_min"
	FieldBudgetMax      = "budget_max"
	FieldNotes          = "notes"
	FieldRequirements   = "requirements"
	FieldPreferredAreas = "preferred_areas"
	FieldStatus         = "status"
)

const dateLayout = time.DateOnly

// Field describes how one customer attribute takes part in a merge.
type Field struct {
	Name string
	Kind entity.FieldKind

	// Value returns the display value of the field.
	Value func(c *entity.Customer) any
	// Empty reports whether the field has no value.
	Empty func(c *entity.Customer) bool
	// Equal compares both sides after light normalization.
	Equal func(a, b *entity.Customer) bool
	// Copy overwrites the field of dst with the value of src.
	Copy func(dst, src *entity.Customer)
	// Combine computes the merged value into dst for non-identity fields.
	Combine func(dst, primary, secondary *entity.Customer, opts Options)
}

// Options tune how accumulating fields are combined.
type Options struct {
	// NoteSeparator is a format string with one %s verb for the secondary's name.
	NoteSeparator string
}

// DefaultNoteSeparator marks where the secondary's notes start.
const DefaultNoteSeparator = "\n\n--- merged from %s ---\n"

// Fields returns the field table in presentation order.
func Fields() []Field {
	return fieldTable
}

// Lookup finds a field by name.
func Lookup(name string) (Field, bool) {
	for _, f := range fieldTable {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

var fieldTable = []Field{
	stringField(FieldName, matching.NormalizeName,
		func(c *entity.Customer) *string { return &c.Name }),
	stringField(FieldEmail, matching.NormalizeEmail,
		func(c *entity.Customer) *string { return &c.Email }),
	stringField(FieldLineID, matching.NormalizeLineID,
		func(c *entity.Customer) *string { return &c.LineID }),
	stringField(FieldPhone, matching.NormalizePhone,
		func(c *entity.Customer) *string { return &c.Phone }),
	{
		Name:  FieldMoveInDate,
		Kind:  entity.FieldKindIdentity,
		Value: func(c *entity.Customer) any { return formatDate(c.MoveInDate) },
		Empty: func(c *entity.Customer) bool { return c.MoveInDate == nil },
		Equal: func(a, b *entity.Customer) bool { return formatDate(a.MoveInDate) == formatDate(b.MoveInDate) },
		Copy: func(dst, src *entity.Customer) {
			dst.MoveInDate = nil
			if src.MoveInDate != nil {
				v := *src.MoveInDate
				dst.MoveInDate = &v
			}
		},
	},
	int64Field(FieldBudgetMin, func(c *entity.Customer) **int64 { return &c.BudgetMin }),
	int64Field(FieldBudgetMax, func(c *entity.Customer) **int64 { return &c.BudgetMax }),
	{
		Name:  FieldNotes,
		Kind:  entity.FieldKindAccumulating,
		Value: func(c *entity.Customer) any { return c.Notes },
		Empty: func(c *entity.Customer) bool { return strings.TrimSpace(c.Notes) == "" },
		Equal: func(a, b *entity.Customer) bool { return strings.TrimSpace(a.Notes) == strings.TrimSpace(b.Notes) },
		Copy:  func(dst, src *entity.Customer) { dst.Notes = src.Notes },
		Combine: func(dst, primary, secondary *entity.Customer, opts Options) {
			dst.Notes = combineNotes(primary, secondary, opts)
		},
	},
	setField(FieldRequirements, func(c *entity.Customer) *[]string { return &c.Requirements }),
	setField(FieldPreferredAreas, func(c *entity.Customer) *[]string { return &c.PreferredAreas }),
	{
		Name:  FieldStatus,
		Kind:  entity.FieldKindPrecedence,
		Value: func(c *entity.Customer) any { return c.Status },
		Empty: func(c *entity.Customer) bool { return c.Status == "" },
		Equal: func(a, b *entity.Customer) bool { return a.Status == b.Status },
		Copy:  func(dst, src *entity.Customer) { dst.Status = src.Status },
		Combine: func(dst, primary, secondary *entity.Customer, _ Options) {
			dst.Status = ResolveStatus(primary.Status, secondary.Status)
		},
	},
}

// ResolveStatus applies the fixed status precedence: active beats everything,
// otherwise the primary's status wins.
func ResolveStatus(primary, secondary entity.CustomerStatus) entity.CustomerStatus {
	if primary == entity.CustomerStatusActive || secondary == entity.CustomerStatusActive {
		return entity.CustomerStatusActive
	}
	if primary == "" {
		return secondary
	}

	return primary
}

func stringField(name string, normalize func(string) string, ref func(c *entity.Customer) *string) Field {
	return Field{
		Name:  name,
		Kind:  entity.FieldKindIdentity,
		Value: func(c *entity.Customer) any { return *ref(c) },
		Empty: func(c *entity.Customer) bool { return normalize(*ref(c)) == "" },
		Equal: func(a, b *entity.Customer) bool { return normalize(*ref(a)) == normalize(*ref(b)) },
		Copy:  func(dst, src *entity.Customer) { *ref(dst) = *ref(src) },
	}
}

func int64Field(name string, ref func(c *entity.Customer) **int64) Field {
	return Field{
		Name: name,
		Kind: entity.FieldKindIdentity,
		Value: func(c *entity.Customer) any {
			if v := *ref(c); v != nil {
				return *v
			}

			return nil
		},
		Empty: func(c *entity.Customer) bool { return *ref(c) == nil },
		Equal: func(a, b *entity.Customer) bool {
			va, vb := *ref(a), *ref(b)
			if va == nil || vb == nil {
				return va == vb
			}

			return *va == *vb
		},
		Copy: func(dst, src *entity.Customer) {
			*ref(dst) = nil
			if v := *ref(src); v != nil {
				cp := *v
				*ref(dst) = &cp
			}
		},
	}
}

func setField(name string, ref func(c *entity.Customer) *[]string) Field {
	return Field{
		Name:  name,
		Kind:  entity.FieldKindAccumulating,
		Value: func(c *entity.Customer) any { return slices.Clone(*ref(c)) },
		Empty: func(c *entity.Customer) bool { return len(*ref(c)) == 0 },
		Equal: func(a, b *entity.Customer) bool {
			return slices.Equal(sortedSet(*ref(a)), sortedSet(*ref(b)))
		},
		Copy: func(dst, src *entity.Customer) { *ref(dst) = slices.Clone(*ref(src)) },
		Combine: func(dst, primary, secondary *entity.Customer, _ Options) {
			*ref(dst) = union(*ref(primary), *ref(secondary))
		},
	}
}

// union keeps the primary's order and appends unseen secondary values.
func union(primary, secondary []string) []string {
	result := make([]string, 0, len(primary)+len(secondary))
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	for _, v := range slices.Concat(primary, secondary) {
		key := strings.TrimSpace(v)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, v)
	}

	return result
}

func sortedSet(values []string) []string {
	return slices.Compact(slices.Sorted(slices.Values(union(values, nil))))
}

func combineNotes(primary, secondary *entity.Customer, opts Options) string {
	p, s := strings.TrimSpace(primary.Notes), strings.TrimSpace(secondary.Notes)
	switch {
	case s == "" || p == s:
		return primary.Notes
	case p == "":
		return secondary.Notes
	}

	separator := opts.NoteSeparator
	if separator == "" {
		separator = DefaultNoteSeparator
	}
	if strings.Contains(separator, "%s") {
		separator = strings.Replace(separator, "%s", secondary.Name, 1)
	}

	return primary.Notes + separator + secondary.Notes
}

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}

	return t.Format(dateLayout)
}
