package impl

import (
	"context"
	"fmt"
	"strings"

	"crm/internal/domain/entity"
	"crm/internal/domain/merging"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// ListMerges lists the merge history of the actor's tenant, newest first
func (s *mergeService) ListMerges(ctx context.Context, actor entity.Actor, filter repository.MergeRecordFilter) ([]*entity.MergeRecordSummary, error) {
	records, err := s.mergeRepo.ListMergeRecords(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merge records")
	}

	return s.summarize(ctx, actor.TenantID, records)
}

// GetMerge retrieves a single merge record with a diff of the primary before and after the merge
func (s *mergeService) GetMerge(ctx context.Context, actor entity.Actor, mergeID uuid.UUID) (*usecase.MergeDetail, error) {
	record, err := s.mergeRepo.FindMergeRecordByID(ctx, actor.TenantID, mergeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find merge record")
	}

	summaries, err := s.summarize(ctx, actor.TenantID, []*entity.MergeRecord{record})
	if err != nil {
		return nil, err
	}

	diff, err := primaryDiff(record)
	if err != nil {
		return nil, err
	}

	return &usecase.MergeDetail{
		MergeRecordSummary: summaries[0],
		PrimaryDiff:        diff,
	}, nil
}

// summarize joins records with the current display names of their customers.
func (s *mergeService) summarize(ctx context.Context, tenantID uuid.UUID, records []*entity.MergeRecord) ([]*entity.MergeRecordSummary, error) {
	ids := make([]uuid.UUID, 0, len(records)*2)
	for _, r := range records {
		ids = append(ids, r.PrimaryID, r.SecondaryID)
	}
	customers, err := s.customerRepo.FindCustomersByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find merged customers")
	}
	names := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	summaries := make([]*entity.MergeRecordSummary, 0, len(records))
	for _, r := range records {
		secondaryName, ok := names[r.SecondaryID]
		if !ok {
			secondaryName = r.SecondarySnapshot.Name
		}
		summaries = append(summaries, &entity.MergeRecordSummary{
			Record:        r,
			PrimaryName:   names[r.PrimaryID],
			SecondaryName: secondaryName,
		})
	}

	return summaries, nil
}

// primaryDiff renders the primary's mergeable fields before and after the merge as a unified diff.
func primaryDiff(record *entity.MergeRecord) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(renderSnapshot(record.PrimaryBefore)),
		B:        difflib.SplitLines(renderSnapshot(record.AppliedValues)),
		FromFile: "primary (before)",
		ToFile:   "primary (after)",
		Context:  1,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to render merge diff")
	}

	return diff, nil
}

func renderSnapshot(snapshot entity.CustomerSnapshot) string {
	c := snapshot.Customer()

	var b strings.Builder
	for _, f := range merging.Fields() {
		value := f.Value(c)
		if values, ok := value.([]string); ok {
			value = strings.Join(values, ", ")
		}
		if value == nil {
			value = ""
		}
		// Multi-line notes are indented so every line stays attributed to its field.
		text := strings.ReplaceAll(fmt.Sprint(value), "\n", "\n    ")
		fmt.Fprintf(&b, "%s: %s\n", f.Name, text)
	}

	return b.String()
}
