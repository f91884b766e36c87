package impl

import (
	"context"
	"testing"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/merging"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mergeServiceFixtures runs the merge service against the in-memory store.
type mergeServiceFixtures struct {
	svc    usecase.MergeUsecase
	store  *memStore
	events *[]*service.MergeEvent
	actor  entity.Actor
}

func createTestMergeService(t *testing.T) mergeServiceFixtures {
	store := newMemStore()
	publisher, events := recordingPublisher(t)

	svc := NewMergeService(MergeServiceParams{
		TxManager:      store,
		CustomerRepo:   store,
		RelatedRepo:    store,
		MergeRepo:      store,
		EventPublisher: publisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
	clock := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	svc.(*mergeService).now = func() time.Time {
		clock = clock.Add(time.Second)

		return clock
	}

	return mergeServiceFixtures{
		svc:    svc,
		store:  store,
		events: events,
		actor:  newActor(uuid.New()),
	}
}

func (f mergeServiceFixtures) customer(c *entity.Customer) *entity.Customer {
	c.TenantID = f.actor.TenantID

	return f.store.addCustomer(c)
}

func fieldDiff(t *testing.T, preview *entity.MergePreview, name string) entity.FieldDiff {
	t.Helper()
	for _, d := range preview.Fields {
		if d.Field == name {
			return d
		}
	}
	t.Fatalf("field %q missing from preview", name)

	return entity.FieldDiff{}
}

func ptr[T any](v T) *T {
	return &v
}

func TestMergeService_TanakaScenario(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Tanaka", Email: "t@x.com", Notes: "called once"})
	s := fx.customer(&entity.Customer{Name: "Tanaka Taro", Notes: "viewed room 203"})

	preview, err := fx.svc.Preview(ctx, fx.actor, p.ID, s.ID)
	require.NoError(t, err)

	name := fieldDiff(t, preview, merging.FieldName)
	assert.True(t, name.Differs)
	assert.True(t, name.RequiresResolution)
	assert.Equal(t, entity.FieldStrategyManual, name.Strategy)

	email := fieldDiff(t, preview, merging.FieldEmail)
	assert.True(t, email.Differs)
	assert.False(t, email.RequiresResolution)
	assert.Equal(t, entity.SidePrimary, email.AutoResolved)
	assert.Equal(t, []string{merging.FieldName}, preview.ManualFields)

	record, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{
		PrimaryID:   p.ID,
		SecondaryID: s.ID,
		Resolutions: entity.FieldResolutions{merging.FieldName: entity.SideSecondary},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MergeStatusCompleted, record.Status)

	merged := fx.store.customer(p.ID)
	assert.Equal(t, "Tanaka Taro", merged.Name)
	assert.Equal(t, "t@x.com", merged.Email)
	assert.Contains(t, merged.Notes, "called once")
	assert.Contains(t, merged.Notes, "viewed room 203")

	absorbed := fx.store.customer(s.ID)
	require.NotNil(t, absorbed.MergedIntoID)
	assert.Equal(t, p.ID, *absorbed.MergedIntoID)

	_, err = fx.svc.Undo(ctx, fx.actor, record.ID)
	require.NoError(t, err)

	restored := fx.store.customer(p.ID)
	assert.Equal(t, "Tanaka", restored.Name)
	assert.Equal(t, "called once", restored.Notes)
	assert.Nil(t, fx.store.customer(s.ID).MergedIntoID)
}

func TestMergeService_Merge_RepointsRelatedRecords(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Sato", Email: "sato@example.com"})
	s := fx.customer(&entity.Customer{Name: "Sato", Email: "sato@example.com"})
	kept := fx.store.addRelated(entity.RelatedInquiries, p.ID)
	inquiry := fx.store.addRelated(entity.RelatedInquiries, s.ID)
	activity := fx.store.addRelated(entity.RelatedActivities, s.ID)
	draft := fx.store.addRelated(entity.RelatedMessageDrafts, s.ID)

	record, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: p.ID, SecondaryID: s.ID, Reason: "  same person  "})
	require.NoError(t, err)

	for _, id := range []uuid.UUID{kept, inquiry} {
		assert.Equal(t, p.ID, fx.store.related[entity.RelatedInquiries][id])
	}
	assert.Equal(t, p.ID, fx.store.related[entity.RelatedActivities][activity])
	assert.Equal(t, p.ID, fx.store.related[entity.RelatedMessageDrafts][draft])

	assert.Equal(t, []uuid.UUID{inquiry}, record.MovedRecords[entity.RelatedInquiries])
	assert.Equal(t, 3, record.MovedRecords.Total())
	assert.Equal(t, "same person", record.Reason)
	assert.Equal(t, fx.actor.ID, record.PerformedBy)

	stored, ok := fx.store.merges[record.ID]
	require.True(t, ok)
	assert.Equal(t, entity.MergeStatusCompleted, stored.Status)

	require.Len(t, *fx.events, 1)
	event := (*fx.events)[0]
	assert.Equal(t, service.EventCustomerMerged, event.Type)
	assert.Equal(t, record.ID.String(), event.MergeID)
	assert.Equal(t, 3, event.MovedCount)
}

func TestMergeService_UndoRoundTrip(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{
		Name:           "Suzuki Hanako",
		Email:          "hanako@example.com",
		Phone:          "090-1111-2222",
		LineID:         "U-primary",
		Notes:          "prefers email",
		Status:         entity.CustomerStatusInactive,
		BudgetMax:      ptr(int64(120000)),
		PreferredAreas: []string{"Shibuya"},
		Requirements:   []string{"pets allowed"},
	})
	s := fx.customer(&entity.Customer{
		Name:           "Suzuki Hanako",
		Email:          "h.suzuki@example.com",
		Phone:          "09011112222",
		LineID:         "U-secondary",
		Notes:          "walk-in on Sunday",
		Status:         entity.CustomerStatusActive,
		MoveInDate:     ptr(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
		BudgetMin:      ptr(int64(80000)),
		PreferredAreas: []string{"Meguro", "Shibuya"},
		Requirements:   []string{"balcony"},
	})
	fx.store.addRelated(entity.RelatedInquiries, p.ID)
	fx.store.addRelated(entity.RelatedInquiries, s.ID)
	fx.store.addRelated(entity.RelatedPropertyInquiries, s.ID)
	fx.store.addRelated(entity.RelatedAccessGrants, s.ID)

	primaryBefore := entity.SnapshotOf(fx.store.customer(p.ID))
	secondaryBefore := entity.SnapshotOf(fx.store.customer(s.ID))
	ownersBefore := fx.store.relatedOwners()

	record, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{
		PrimaryID:   p.ID,
		SecondaryID: s.ID,
		Resolutions: entity.FieldResolutions{
			merging.FieldEmail:  entity.SideSecondary,
			merging.FieldLineID: entity.SideSecondary,
		},
	})
	require.NoError(t, err)

	merged := fx.store.customer(p.ID)
	assert.Equal(t, "h.suzuki@example.com", merged.Email)
	assert.Equal(t, "U-secondary", merged.LineID)
	assert.Equal(t, entity.CustomerStatusActive, merged.Status)
	assert.Equal(t, []string{"Shibuya", "Meguro"}, merged.PreferredAreas)
	assert.Equal(t, int64(80000), *merged.BudgetMin)
	assert.Equal(t, "U-primary", record.SeveredLineID)
	assert.Equal(t, entity.SidePrimary, record.SeveredLineSide)
	assert.Empty(t, fx.store.customer(s.ID).LineID)

	undone, err := fx.svc.Undo(ctx, fx.actor, record.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MergeStatusUndone, undone.Status)
	require.NotNil(t, undone.UndoneBy)
	assert.Equal(t, fx.actor.ID, *undone.UndoneBy)

	assert.Equal(t, primaryBefore, entity.SnapshotOf(fx.store.customer(p.ID)))
	assert.Equal(t, secondaryBefore, entity.SnapshotOf(fx.store.customer(s.ID)))
	assert.Equal(t, ownersBefore, fx.store.relatedOwners())
	assert.Equal(t, entity.MergeStatusUndone, fx.store.merges[record.ID].Status)
}

func TestMergeService_Undo_RestoresOnlyMovedRecords(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Ito"})
	s := fx.customer(&entity.Customer{Name: "Ito"})
	moved := fx.store.addRelated(entity.RelatedActivities, s.ID)

	record, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: p.ID, SecondaryID: s.ID})
	require.NoError(t, err)

	// Recorded after the merge, so it belongs to the primary.
	later := fx.store.addRelated(entity.RelatedActivities, p.ID)

	_, err = fx.svc.Undo(ctx, fx.actor, record.ID)
	require.NoError(t, err)

	assert.Equal(t, s.ID, fx.store.related[entity.RelatedActivities][moved])
	assert.Equal(t, p.ID, fx.store.related[entity.RelatedActivities][later])
}

func TestMergeService_Undo_Twice(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Kato"})
	s := fx.customer(&entity.Customer{Name: "Kato", Notes: "second visit"})
	fx.store.addRelated(entity.RelatedInquiries, s.ID)

	record, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: p.ID, SecondaryID: s.ID})
	require.NoError(t, err)
	_, err = fx.svc.Undo(ctx, fx.actor, record.ID)
	require.NoError(t, err)

	before := fx.store.snapshot()

	_, err = fx.svc.Undo(ctx, fx.actor, record.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyUndone))

	assert.Equal(t, before.customers, fx.store.customers)
	assert.Equal(t, before.related, fx.store.related)
	assert.Equal(t, before.merges, fx.store.merges)
}

func TestMergeService_Merge_UnresolvedConflictMutatesNothing(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Yamada", Phone: "03-1234-5678", BudgetMax: ptr(int64(100000))})
	s := fx.customer(&entity.Customer{Name: "Yamada Jiro", Phone: "03-9999-0000", BudgetMax: ptr(int64(150000))})
	fx.store.addRelated(entity.RelatedInquiries, s.ID)

	before := fx.store.snapshot()

	_, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{
		PrimaryID:   p.ID,
		SecondaryID: s.ID,
		Resolutions: entity.FieldResolutions{merging.FieldName: entity.SidePrimary},
	})
	require.Error(t, err)

	var conflict *domainerrors.UnresolvedFieldConflictError
	require.ErrorAs(t, err, &conflict)
	assert.ElementsMatch(t, []string{merging.FieldPhone, merging.FieldBudgetMax}, conflict.Fields)

	assert.Equal(t, before.customers, fx.store.customers)
	assert.Equal(t, before.related, fx.store.related)
	assert.Empty(t, fx.store.merges)
	assert.Empty(t, *fx.events)
}

func TestMergeService_Merge_StorageFailureRollsBack(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Mori", Notes: "a"})
	s := fx.customer(&entity.Customer{Name: "Mori", Notes: "b"})
	fx.store.addRelated(entity.RelatedAccessGrants, s.ID)
	fx.store.failOn("CreateMergeRecord")

	before := fx.store.snapshot()

	_, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: p.ID, SecondaryID: s.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, errInjected)

	var storageErr *domainerrors.StorageFailureError
	assert.ErrorAs(t, err, &storageErr)

	assert.Equal(t, before.customers, fx.store.customers)
	assert.Equal(t, before.related, fx.store.related)
	assert.Empty(t, fx.store.merges)
	assert.Empty(t, *fx.events)
}

func TestMergeService_Undo_StorageFailureRollsBack(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Abe"})
	s := fx.customer(&entity.Customer{Name: "Abe", Email: "abe@example.com"})
	fx.store.addRelated(entity.RelatedInquiries, s.ID)

	record, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: p.ID, SecondaryID: s.ID})
	require.NoError(t, err)

	fx.store.failOn("MarkMergeUndone")
	before := fx.store.snapshot()

	_, err = fx.svc.Undo(ctx, fx.actor, record.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInjected)

	assert.Equal(t, before.customers, fx.store.customers)
	assert.Equal(t, before.related, fx.store.related)
	assert.Equal(t, entity.MergeStatusCompleted, fx.store.merges[record.ID].Status)
}

func TestMergeService_Merge_InvalidTargets(t *testing.T) {
	otherTenant := uuid.New()
	mergedInto := uuid.New()

	tests := []struct {
		name   string
		setup  func(fx mergeServiceFixtures) (uuid.UUID, uuid.UUID)
		reason domainerrors.InvalidMergeReason
	}{
		{
			name: "same customer",
			setup: func(fx mergeServiceFixtures) (uuid.UUID, uuid.UUID) {
				c := fx.customer(&entity.Customer{Name: "A"})
				return c.ID, c.ID
			},
			reason: domainerrors.ReasonSelfMerge,
		},
		{
			name: "secondary does not exist",
			setup: func(fx mergeServiceFixtures) (uuid.UUID, uuid.UUID) {
				return fx.customer(&entity.Customer{Name: "A"}).ID, uuid.New()
			},
			reason: domainerrors.ReasonNotFound,
		},
		{
			name: "secondary belongs to another tenant",
			setup: func(fx mergeServiceFixtures) (uuid.UUID, uuid.UUID) {
				p := fx.customer(&entity.Customer{Name: "A"})
				s := fx.store.addCustomer(&entity.Customer{TenantID: otherTenant, Name: "A"})
				return p.ID, s.ID
			},
			reason: domainerrors.ReasonCrossTenant,
		},
		{
			name: "primary already merged",
			setup: func(fx mergeServiceFixtures) (uuid.UUID, uuid.UUID) {
				p := fx.customer(&entity.Customer{Name: "A", MergedIntoID: &mergedInto})
				return p.ID, fx.customer(&entity.Customer{Name: "A"}).ID
			},
			reason: domainerrors.ReasonPrimaryMerged,
		},
		{
			name: "secondary already merged",
			setup: func(fx mergeServiceFixtures) (uuid.UUID, uuid.UUID) {
				p := fx.customer(&entity.Customer{Name: "A"})
				s := fx.customer(&entity.Customer{Name: "A", MergedIntoID: &mergedInto})
				return p.ID, s.ID
			},
			reason: domainerrors.ReasonSecondaryMerged,
		},
		{
			name: "secondary has absorbed other customers",
			setup: func(fx mergeServiceFixtures) (uuid.UUID, uuid.UUID) {
				p := fx.customer(&entity.Customer{Name: "A"})
				s := fx.customer(&entity.Customer{Name: "A"})
				fx.customer(&entity.Customer{Name: "A", MergedIntoID: &s.ID})
				return p.ID, s.ID
			},
			reason: domainerrors.ReasonSecondaryAbsorbed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMergeService(t)
			ctx := context.Background()
			primaryID, secondaryID := tt.setup(fx)
			before := fx.store.snapshot()

			_, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: primaryID, SecondaryID: secondaryID})
			require.Error(t, err)

			var target *domainerrors.InvalidMergeTargetError
			require.ErrorAs(t, err, &target)
			assert.Equal(t, tt.reason, target.Reason)
			assert.Equal(t, before.customers, fx.store.customers)
			assert.Empty(t, fx.store.merges)

			_, err = fx.svc.Preview(ctx, fx.actor, primaryID, secondaryID)
			require.ErrorAs(t, err, &target)
			assert.Equal(t, tt.reason, target.Reason)
		})
	}
}

func TestMergeService_Merge_RejectsUnknownResolution(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Ota"})
	s := fx.customer(&entity.Customer{Name: "Ota"})

	_, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{
		PrimaryID:   p.ID,
		SecondaryID: s.ID,
		Resolutions: entity.FieldResolutions{merging.FieldNotes: entity.SideSecondary},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, fx.store.merges)
}

func TestMergeService_Preview_DoesNotMutate(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Kimura", LineID: "U-1", Requirements: []string{"parking"}})
	s := fx.customer(&entity.Customer{Name: "Kimura", LineID: "U-2", Requirements: []string{"balcony"}})
	fx.store.addRelated(entity.RelatedInquiries, s.ID)
	fx.store.addRelated(entity.RelatedInquiries, s.ID)
	fx.store.addRelated(entity.RelatedActivities, s.ID)

	before := fx.store.snapshot()

	preview, err := fx.svc.Preview(ctx, fx.actor, p.ID, s.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), preview.RelatedCounts[entity.RelatedInquiries])
	assert.Equal(t, int64(1), preview.RelatedCounts[entity.RelatedActivities])
	assert.Equal(t, int64(0), preview.RelatedCounts[entity.RelatedMessageDrafts])
	assert.True(t, preview.LineConflict)
	assert.Len(t, preview.Warnings, 1)
	assert.Equal(t, []string{merging.FieldLineID}, preview.ManualFields)
	assert.Equal(t, entity.FieldStrategyCombined, fieldDiff(t, preview, merging.FieldRequirements).Strategy)

	assert.Equal(t, before.customers, fx.store.customers)
	assert.Equal(t, before.related, fx.store.related)
	assert.Empty(t, fx.store.merges)
}

func TestMergeService_Merge_SeversSecondaryLine(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Nakamura", LineID: "U-keep"})
	s := fx.customer(&entity.Customer{Name: "Nakamura", LineID: "U-drop"})

	record, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{
		PrimaryID:   p.ID,
		SecondaryID: s.ID,
		Resolutions: entity.FieldResolutions{merging.FieldLineID: entity.SidePrimary},
	})
	require.NoError(t, err)
	assert.Equal(t, "U-drop", record.SeveredLineID)
	assert.Equal(t, entity.SideSecondary, record.SeveredLineSide)

	absorbed := fx.store.customer(s.ID)
	assert.Empty(t, absorbed.LineID)
	require.NotNil(t, absorbed.LineDisconnectedByMergeID)
	assert.Equal(t, record.ID, *absorbed.LineDisconnectedByMergeID)
	assert.Equal(t, "U-keep", fx.store.customer(p.ID).LineID)

	require.Len(t, *fx.events, 2)
	severed := (*fx.events)[1]
	assert.Equal(t, service.EventCustomerLineDisconnected, severed.Type)
	assert.Equal(t, "U-drop", severed.LineID)
	assert.Equal(t, string(entity.SideSecondary), severed.LineSide)

	_, err = fx.svc.Undo(ctx, fx.actor, record.ID)
	require.NoError(t, err)

	restored := fx.store.customer(s.ID)
	assert.Equal(t, "U-drop", restored.LineID)
	assert.Nil(t, restored.LineDisconnectedByMergeID)
	assert.Equal(t, service.EventCustomerMergeUndone, (*fx.events)[2].Type)
}

func TestMergeService_ChainedMergeOntoPrimary(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Saito", Notes: "p", PreferredAreas: []string{"Shibuya"}})
	s1 := fx.customer(&entity.Customer{Name: "Saito", Notes: "s1", PreferredAreas: []string{"Meguro"}})
	s2 := fx.customer(&entity.Customer{Name: "Saito", Notes: "s2", PreferredAreas: []string{"Nakano"}})
	first := fx.store.addRelated(entity.RelatedInquiries, s1.ID)
	second := fx.store.addRelated(entity.RelatedInquiries, s2.ID)

	firstMerge, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: p.ID, SecondaryID: s1.ID})
	require.NoError(t, err)
	afterFirst := fx.store.customer(p.ID)
	require.Equal(t, "p\n--- Saito ---\ns1", afterFirst.Notes)

	secondMerge, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: p.ID, SecondaryID: s2.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Shibuya", "Meguro", "Nakano"}, fx.store.customer(p.ID).PreferredAreas)

	// The older merge stays until the newer one onto the same primary is undone.
	_, err = fx.svc.Undo(ctx, fx.actor, firstMerge.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMergeUndoBlocked)
	assert.Equal(t, entity.MergeStatusCompleted, fx.store.merges[firstMerge.ID].Status)
	assert.Equal(t, p.ID, fx.store.related[entity.RelatedInquiries][first])
	assert.Contains(t, fx.store.customer(p.ID).Notes, "s2")

	_, err = fx.svc.Undo(ctx, fx.actor, secondMerge.ID)
	require.NoError(t, err)
	restored := fx.store.customer(p.ID)
	assert.Equal(t, afterFirst.Notes, restored.Notes)
	assert.ElementsMatch(t, afterFirst.PreferredAreas, restored.PreferredAreas)
	assert.Equal(t, s2.ID, fx.store.related[entity.RelatedInquiries][second])
	assert.Nil(t, fx.store.customer(s2.ID).MergedIntoID)
	assert.NotNil(t, fx.store.customer(s1.ID).MergedIntoID)

	_, err = fx.svc.Undo(ctx, fx.actor, firstMerge.ID)
	require.NoError(t, err)
	restored = fx.store.customer(p.ID)
	assert.Equal(t, "p", restored.Notes)
	assert.Equal(t, []string{"Shibuya"}, restored.PreferredAreas)
	assert.Equal(t, s1.ID, fx.store.related[entity.RelatedInquiries][first])
	assert.Nil(t, fx.store.customer(s1.ID).MergedIntoID)
}

func TestMergeService_Undo_LatestLookupFailureRollsBack(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Kimura", Notes: "p"})
	s := fx.customer(&entity.Customer{Name: "Kimura", Notes: "s"})
	record, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: p.ID, SecondaryID: s.ID})
	require.NoError(t, err)

	fx.store.failOn("FindLatestCompletedMergeID")
	_, err = fx.svc.Undo(ctx, fx.actor, record.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, entity.MergeStatusCompleted, fx.store.merges[record.ID].Status)
	assert.NotNil(t, fx.store.customer(s.ID).MergedIntoID)
}

func TestMergeService_Undo_BlockedWhilePrimaryMergedAway(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	a := fx.customer(&entity.Customer{Name: "Hayashi"})
	b := fx.customer(&entity.Customer{Name: "Hayashi"})
	c := fx.customer(&entity.Customer{Name: "Hayashi"})

	first, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: b.ID, SecondaryID: a.ID})
	require.NoError(t, err)

	// b absorbed a, so b can no longer be a secondary until the first merge is undone.
	_, err = fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: c.ID, SecondaryID: b.ID})
	var target *domainerrors.InvalidMergeTargetError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, domainerrors.ReasonSecondaryAbsorbed, target.Reason)

	// Simulate a primary merged away by older data.
	merged := fx.store.customers[b.ID]
	merged.MergedIntoID = &c.ID

	_, err = fx.svc.Undo(ctx, fx.actor, first.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMergeUndoBlocked)
	assert.Equal(t, entity.MergeStatusCompleted, fx.store.merges[first.ID].Status)
}

func TestMergeService_Undo_NotFound(t *testing.T) {
	fx := createTestMergeService(t)

	_, err := fx.svc.Undo(context.Background(), fx.actor, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMergeNotFound)
}

func TestMergeService_Undo_OtherTenantRecord(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Ueda"})
	s := fx.customer(&entity.Customer{Name: "Ueda"})
	record, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: p.ID, SecondaryID: s.ID})
	require.NoError(t, err)

	_, err = fx.svc.Undo(ctx, newActor(uuid.New()), record.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMergeNotFound)
	assert.Equal(t, entity.MergeStatusCompleted, fx.store.merges[record.ID].Status)
}

func TestMergeService_ListAndGetMerges(t *testing.T) {
	fx := createTestMergeService(t)
	ctx := context.Background()

	p := fx.customer(&entity.Customer{Name: "Tanaka", Notes: "called once"})
	s := fx.customer(&entity.Customer{Name: "Tanaka Taro", Notes: "viewed room 203"})
	other := fx.customer(&entity.Customer{Name: "Ogawa"})
	otherS := fx.customer(&entity.Customer{Name: "Ogawa"})

	first, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{
		PrimaryID:   p.ID,
		SecondaryID: s.ID,
		Resolutions: entity.FieldResolutions{merging.FieldName: entity.SideSecondary},
	})
	require.NoError(t, err)
	fx.store.merges[first.ID].PerformedAt = first.PerformedAt.Add(-time.Hour)

	second, err := fx.svc.Merge(ctx, fx.actor, &usecase.MergeInput{PrimaryID: other.ID, SecondaryID: otherS.ID})
	require.NoError(t, err)

	summaries, err := fx.svc.ListMerges(ctx, fx.actor, repository.MergeRecordFilter{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, second.ID, summaries[0].Record.ID)
	assert.Equal(t, first.ID, summaries[1].Record.ID)
	assert.Equal(t, "Tanaka Taro", summaries[1].PrimaryName)
	assert.Equal(t, "Tanaka Taro", summaries[1].SecondaryName)

	filtered, err := fx.svc.ListMerges(ctx, fx.actor, repository.MergeRecordFilter{CustomerID: &s.ID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID, filtered[0].Record.ID)

	detail, err := fx.svc.GetMerge(ctx, fx.actor, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, detail.Record.ID)
	assert.Contains(t, detail.PrimaryDiff, "--- primary (before)")
	assert.Contains(t, detail.PrimaryDiff, "-name: Tanaka\n")
	assert.Contains(t, detail.PrimaryDiff, "+name: Tanaka Taro\n")
	assert.Contains(t, detail.PrimaryDiff, "viewed room 203")
	assert.NotContains(t, detail.PrimaryDiff, "preferred_areas", "unchanged fields beyond context are omitted")

	_, err = fx.svc.GetMerge(ctx, newActor(uuid.New()), first.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMergeNotFound)
}

func TestMergeService_Merge_PublishFailureIsNotReturned(t *testing.T) {
	store := newMemStore()
	actor := newActor(uuid.New())
	publisher := newFailingPublisher(t)

	svc := NewMergeService(MergeServiceParams{
		TxManager:      store,
		CustomerRepo:   store,
		RelatedRepo:    store,
		MergeRepo:      store,
		EventPublisher: publisher,
		Logger:         newDiscardLogger(),
	})

	p := store.addCustomer(&entity.Customer{TenantID: actor.TenantID, Name: "Fujita"})
	s := store.addCustomer(&entity.Customer{TenantID: actor.TenantID, Name: "Fujita"})

	record, err := svc.Merge(context.Background(), actor, &usecase.MergeInput{PrimaryID: p.ID, SecondaryID: s.ID})
	require.NoError(t, err)
	assert.Contains(t, store.merges, record.ID)
}
