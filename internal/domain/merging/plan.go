package merging

import (
	"maps"
	"slices"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
)

// Diff compares primary and secondary field by field. It never mutates either customer.
func Diff(primary, secondary *entity.Customer) []entity.FieldDiff {
	diffs := make([]entity.FieldDiff, 0, len(fieldTable))
	for _, f := range fieldTable {
		diff := entity.FieldDiff{
			Field:          f.Name,
			Kind:           f.Kind,
			PrimaryValue:   f.Value(primary),
			SecondaryValue: f.Value(secondary),
			Differs:        !f.Equal(primary, secondary),
		}

		switch f.Kind {
		case entity.FieldKindIdentity:
			diff.Strategy = entity.FieldStrategyUnchanged
			if diff.Differs {
				pEmpty, sEmpty := f.Empty(primary), f.Empty(secondary)
				switch {
				case sEmpty:
					diff.Strategy = entity.FieldStrategyAuto
					diff.AutoResolved = entity.SidePrimary
				case pEmpty:
					diff.Strategy = entity.FieldStrategyAuto
					diff.AutoResolved = entity.SideSecondary
				default:
					diff.Strategy = entity.FieldStrategyManual
					diff.RequiresResolution = true
				}
			}
		case entity.FieldKindAccumulating:
			diff.Strategy = entity.FieldStrategyCombined
		case entity.FieldKindPrecedence:
			diff.Strategy = entity.FieldStrategyPrecedence
		}

		diffs = append(diffs, diff)
	}

	return diffs
}

// ManualFields returns the names of the fields that need an operator decision.
func ManualFields(diffs []entity.FieldDiff) []string {
	fields := make([]string, 0)
	for _, d := range diffs {
		if d.RequiresResolution {
			fields = append(fields, d.Field)
		}
	}

	return fields
}

// HasLineConflict reports whether both customers hold distinct LINE ids.
func HasLineConflict(primary, secondary *entity.Customer) bool {
	f, _ := Lookup(FieldLineID)

	return !f.Empty(primary) && !f.Empty(secondary) && !f.Equal(primary, secondary)
}

// Plan is the computed outcome of merging secondary into primary.
type Plan struct {
	// Result is the primary as it will look after the merge.
	Result *entity.Customer
	// Touched lists the fields whose value differs from the primary's current value.
	Touched []string
	// SeveredLineID is the LINE id that loses when both sides hold distinct ids.
	SeveredLineID   string
	SeveredLineSide entity.Side
}

// Validate checks that every manual field has a resolution and that every
// resolution names a known identity field with a valid side. It returns
// *UnresolvedFieldConflictError naming the missing fields.
func Validate(primary, secondary *entity.Customer, resolutions entity.FieldResolutions) error {
	for _, name := range slices.Sorted(maps.Keys(resolutions)) {
		f, ok := Lookup(name)
		if !ok || f.Kind != entity.FieldKindIdentity {
			return domainerrors.ErrValidationFailed.WithDetails(map[string]string{
				"field":  name,
				"reason": "not a resolvable field",
			})
		}
		if !resolutions[name].IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails(map[string]string{
				"field":  name,
				"reason": "resolution must be primary or secondary",
			})
		}
	}

	var missing []string
	for _, name := range ManualFields(Diff(primary, secondary)) {
		if _, ok := resolutions[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return domainerrors.NewUnresolvedFieldConflictError(missing)
	}

	return nil
}

// Build validates the resolutions and computes the merged primary. Neither
// input is mutated.
func Build(primary, secondary *entity.Customer, resolutions entity.FieldResolutions, opts Options) (*Plan, error) {
	if err := Validate(primary, secondary, resolutions); err != nil {
		return nil, err
	}

	result := primary.Clone()
	for _, d := range Diff(primary, secondary) {
		f, _ := Lookup(d.Field)
		switch {
		case f.Combine != nil:
			f.Combine(result, primary, secondary, opts)
		case d.RequiresResolution:
			if resolutions[d.Field] == entity.SideSecondary {
				f.Copy(result, secondary)
			}
		case d.AutoResolved == entity.SideSecondary:
			f.Copy(result, secondary)
		}
	}

	plan := &Plan{Result: result}
	for _, f := range fieldTable {
		// Untouched fields keep the primary's exact representation, e.g. a nil set stays nil.
		if exactlyEqual(f, primary, result) {
			f.Copy(result, primary)

			continue
		}
		plan.Touched = append(plan.Touched, f.Name)
	}

	if HasLineConflict(primary, secondary) {
		if result.LineID == secondary.LineID {
			plan.SeveredLineID, plan.SeveredLineSide = primary.LineID, entity.SidePrimary
		} else {
			plan.SeveredLineID, plan.SeveredLineSide = secondary.LineID, entity.SideSecondary
		}
	}

	return plan, nil
}

// Restore copies the named fields from the snapshot back onto c.
func Restore(c *entity.Customer, snapshot entity.CustomerSnapshot, fields []string) {
	before := snapshot.Customer()
	for _, name := range fields {
		if f, ok := Lookup(name); ok {
			f.Copy(c, before)
		}
	}
}

// exactlyEqual compares display values verbatim, without the normalization Equal applies.
func exactlyEqual(f Field, a, b *entity.Customer) bool {
	va, vb := f.Value(a), f.Value(b)
	sa, okA := va.([]string)
	sb, okB := vb.([]string)
	if okA && okB {
		return slices.Equal(sa, sb)
	}

	return va == vb
}
