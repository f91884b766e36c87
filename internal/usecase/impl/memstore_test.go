package impl

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"testing"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/matching"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	mockSvc "crm/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

var errInjected = errors.New("injected storage failure")

// memStore is an in-memory implementation of every repository port. Execute
// snapshots the whole store and restores it when the callback fails, so tests
// can assert all-or-nothing behavior without a database.
type memStore struct {
	customers  map[uuid.UUID]*entity.Customer
	related    map[entity.RelatedEntityType]map[uuid.UUID]uuid.UUID // row id -> customer id
	dismissals map[entity.CustomerPair]*entity.MergeDismissal
	merges     map[uuid.UUID]*entity.MergeRecord

	// failures makes the named method return a storage failure.
	failures map[string]error
}

func newMemStore() *memStore {
	related := make(map[entity.RelatedEntityType]map[uuid.UUID]uuid.UUID)
	for _, t := range entity.RelatedEntityTypes() {
		related[t] = make(map[uuid.UUID]uuid.UUID)
	}

	return &memStore{
		customers:  make(map[uuid.UUID]*entity.Customer),
		related:    related,
		dismissals: make(map[entity.CustomerPair]*entity.MergeDismissal),
		merges:     make(map[uuid.UUID]*entity.MergeRecord),
		failures:   make(map[string]error),
	}
}

func (s *memStore) failOn(method string) {
	s.failures[method] = domainerrors.NewStorageFailureError(errInjected, method)
}

func (s *memStore) check(method string) error {
	return s.failures[method]
}

func (s *memStore) addCustomer(c *entity.Customer) *entity.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = entity.CustomerStatusActive
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	s.customers[c.ID] = c.Clone()

	return c
}

func (s *memStore) addRelated(t entity.RelatedEntityType, customerID uuid.UUID) uuid.UUID {
	id := uuid.New()
	s.related[t][id] = customerID

	return id
}

func (s *memStore) customer(id uuid.UUID) *entity.Customer {
	return s.customers[id].Clone()
}

func (s *memStore) relatedOwners() map[entity.RelatedEntityType]map[uuid.UUID]uuid.UUID {
	owners := make(map[entity.RelatedEntityType]map[uuid.UUID]uuid.UUID, len(s.related))
	for t, rows := range s.related {
		owners[t] = maps.Clone(rows)
	}

	return owners
}

// snapshot deep-copies the mutable state of the store.
func (s *memStore) snapshot() *memStore {
	cp := &memStore{
		customers:  make(map[uuid.UUID]*entity.Customer, len(s.customers)),
		related:    s.relatedOwners(),
		dismissals: make(map[entity.CustomerPair]*entity.MergeDismissal, len(s.dismissals)),
		merges:     make(map[uuid.UUID]*entity.MergeRecord, len(s.merges)),
		failures:   s.failures,
	}
	for id, c := range s.customers {
		cp.customers[id] = c.Clone()
	}
	for k, d := range s.dismissals {
		v := *d
		cp.dismissals[k] = &v
	}
	for id, r := range s.merges {
		cp.merges[id] = cloneRecord(r)
	}

	return cp
}

func (s *memStore) restore(from *memStore) {
	s.customers = from.customers
	s.related = from.related
	s.dismissals = from.dismissals
	s.merges = from.merges
}

// Execute implements repository.TransactionManager.
func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	before := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(before)

		return err
	}

	return nil
}

func (s *memStore) NewCustomerRepository() repository.CustomerRepository           { return s }
func (s *memStore) NewRelatedRecordRepository() repository.RelatedRecordRepository { return s }
func (s *memStore) NewDismissalRepository() repository.DismissalRepository         { return s }
func (s *memStore) NewMergeRecordRepository() repository.MergeRecordRepository     { return s }

func (s *memStore) FindCustomerByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	if err := s.check("FindCustomerByID"); err != nil {
		return nil, err
	}
	c, ok := s.customers[id]
	if !ok {
		return nil, domainerrors.ErrCustomerNotFound.WithDetails(map[string]uuid.UUID{"customer_id": id})
	}

	return c.Clone(), nil
}

func (s *memStore) FindCustomersByIDs(_ context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*entity.Customer, error) {
	result := make([]*entity.Customer, 0, len(ids))
	for _, id := range slices.Compact(slices.SortedFunc(slices.Values(ids), compareIDs)) {
		if c, ok := s.customers[id]; ok && c.TenantID == tenantID {
			result = append(result, c.Clone())
		}
	}

	return result, nil
}

func (s *memStore) LockCustomers(_ context.Context, ids ...uuid.UUID) ([]*entity.Customer, error) {
	if err := s.check("LockCustomers"); err != nil {
		return nil, err
	}
	result := make([]*entity.Customer, 0, len(ids))
	for _, id := range slices.Compact(slices.SortedFunc(slices.Values(ids), compareIDs)) {
		if c, ok := s.customers[id]; ok {
			result = append(result, c.Clone())
		}
	}

	return result, nil
}

func (s *memStore) FindDuplicateCandidates(_ context.Context, query repository.DuplicateQuery) ([]*entity.Customer, error) {
	strong := make([]*entity.Customer, 0)
	nameOnly := make([]*entity.Customer, 0)
	for _, c := range s.customers {
		if c.TenantID != query.TenantID || c.ID == query.ExcludeID || c.IsMerged() || slices.Contains(query.DismissedIDs, c.ID) {
			continue
		}
		keys := matching.KeysOf(c)
		switch {
		case (query.Email != "" && keys.Email == query.Email) ||
			(query.Phone != "" && keys.Phone == query.Phone) ||
			(query.LineID != "" && keys.LineID == query.LineID):
			strong = append(strong, c.Clone())
		case query.Name != "" && keys.Name == query.Name:
			nameOnly = append(nameOnly, c.Clone())
		}
	}

	slices.SortFunc(nameOnly, func(a, b *entity.Customer) int { return b.UpdatedAt.Compare(a.UpdatedAt) })
	if query.Limit > 0 && len(nameOnly) > query.Limit {
		nameOnly = nameOnly[:query.Limit]
	}

	return append(strong, nameOnly...), nil
}

func (s *memStore) CountMergedInto(_ context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range s.customers {
		if c.MergedIntoID != nil && *c.MergedIntoID == customerID {
			count++
		}
	}

	return count, nil
}

func (s *memStore) UpdateCustomer(_ context.Context, customer *entity.Customer) error {
	if err := s.check("UpdateCustomer"); err != nil {
		return err
	}
	if _, ok := s.customers[customer.ID]; !ok {
		return domainerrors.ErrCustomerNotFound
	}
	s.customers[customer.ID] = customer.Clone()

	return nil
}

func (s *memStore) CountByCustomer(_ context.Context, customerID uuid.UUID) (map[entity.RelatedEntityType]int64, error) {
	counts := make(map[entity.RelatedEntityType]int64, len(s.related))
	for _, t := range entity.RelatedEntityTypes() {
		counts[t] = 0
		for _, owner := range s.related[t] {
			if owner == customerID {
				counts[t]++
			}
		}
	}

	return counts, nil
}

func (s *memStore) MoveAll(_ context.Context, entityType entity.RelatedEntityType, from, to uuid.UUID) ([]uuid.UUID, error) {
	if err := s.check("MoveAll"); err != nil {
		return nil, err
	}
	moved := make([]uuid.UUID, 0)
	for id, owner := range s.related[entityType] {
		if owner == from {
			s.related[entityType][id] = to
			moved = append(moved, id)
		}
	}
	slices.SortFunc(moved, compareIDs)

	return moved, nil
}

func (s *memStore) MoveByIDs(_ context.Context, entityType entity.RelatedEntityType, ids []uuid.UUID, to uuid.UUID) (int64, error) {
	if err := s.check("MoveByIDs"); err != nil {
		return 0, err
	}
	var n int64
	for _, id := range ids {
		if _, ok := s.related[entityType][id]; ok {
			s.related[entityType][id] = to
			n++
		}
	}

	return n, nil
}

func (s *memStore) CreateDismissal(_ context.Context, dismissal *entity.MergeDismissal) error {
	if _, ok := s.dismissals[dismissal.Pair]; ok {
		return domainerrors.ErrAlreadyDismissed.WithDetails(domainerrors.PairDetails{
			CustomerAID: dismissal.Pair.A,
			CustomerBID: dismissal.Pair.B,
		})
	}
	v := *dismissal
	s.dismissals[dismissal.Pair] = &v

	return nil
}

func (s *memStore) DeleteDismissal(_ context.Context, tenantID uuid.UUID, pair entity.CustomerPair) error {
	d, ok := s.dismissals[pair]
	if !ok || d.TenantID != tenantID {
		return domainerrors.ErrDismissalNotFound.WithDetails(domainerrors.PairDetails{CustomerAID: pair.A, CustomerBID: pair.B})
	}
	delete(s.dismissals, pair)

	return nil
}

func (s *memStore) IsDismissed(_ context.Context, tenantID uuid.UUID, pair entity.CustomerPair) (bool, error) {
	d, ok := s.dismissals[pair]

	return ok && d.TenantID == tenantID, nil
}

func (s *memStore) FindDismissedPartnerIDs(_ context.Context, tenantID, customerID uuid.UUID) ([]uuid.UUID, error) {
	partners := make([]uuid.UUID, 0)
	for pair, d := range s.dismissals {
		if d.TenantID == tenantID && pair.Contains(customerID) {
			partners = append(partners, pair.Other(customerID))
		}
	}

	return partners, nil
}

func (s *memStore) ListDismissals(_ context.Context, tenantID uuid.UUID, customerID *uuid.UUID) ([]*entity.MergeDismissal, error) {
	result := make([]*entity.MergeDismissal, 0)
	for _, d := range s.dismissals {
		if d.TenantID != tenantID || (customerID != nil && !d.Pair.Contains(*customerID)) {
			continue
		}
		v := *d
		result = append(result, &v)
	}
	slices.SortFunc(result, func(a, b *entity.MergeDismissal) int {
		if c := b.DismissedAt.Compare(a.DismissedAt); c != 0 {
			return c
		}

		return compareIDs(a.ID, b.ID)
	})

	return result, nil
}

func (s *memStore) CreateMergeRecord(_ context.Context, record *entity.MergeRecord) error {
	if err := s.check("CreateMergeRecord"); err != nil {
		return err
	}
	s.merges[record.ID] = cloneRecord(record)

	return nil
}

func (s *memStore) FindMergeRecordByID(_ context.Context, tenantID, id uuid.UUID) (*entity.MergeRecord, error) {
	r, ok := s.merges[id]
	if !ok || r.TenantID != tenantID {
		return nil, domainerrors.ErrMergeNotFound.WithDetails(map[string]uuid.UUID{"merge_id": id})
	}

	return cloneRecord(r), nil
}

func (s *memStore) LockMergeRecord(ctx context.Context, tenantID, id uuid.UUID) (*entity.MergeRecord, error) {
	return s.FindMergeRecordByID(ctx, tenantID, id)
}

func (s *memStore) FindLatestCompletedMergeID(_ context.Context, tenantID, primaryID uuid.UUID) (uuid.UUID, error) {
	if err := s.check("FindLatestCompletedMergeID"); err != nil {
		return uuid.Nil, err
	}
	var latest *entity.MergeRecord
	for _, r := range s.merges {
		if r.TenantID != tenantID || r.PrimaryID != primaryID || r.Status != entity.MergeStatusCompleted {
			continue
		}
		if latest == nil || r.PerformedAt.After(latest.PerformedAt) ||
			(r.PerformedAt.Equal(latest.PerformedAt) && compareIDs(r.ID, latest.ID) < 0) {
			latest = r
		}
	}
	if latest == nil {
		return uuid.Nil, nil
	}

	return latest.ID, nil
}

func (s *memStore) MarkMergeUndone(_ context.Context, id, undoneBy uuid.UUID, undoneAt time.Time) error {
	if err := s.check("MarkMergeUndone"); err != nil {
		return err
	}
	r, ok := s.merges[id]
	if !ok || r.Status != entity.MergeStatusCompleted {
		return domainerrors.ErrAlreadyUndone
	}
	r.Status = entity.MergeStatusUndone
	r.UndoneBy = &undoneBy
	r.UndoneAt = &undoneAt

	return nil
}

func (s *memStore) ListMergeRecords(_ context.Context, tenantID uuid.UUID, filter repository.MergeRecordFilter) ([]*entity.MergeRecord, error) {
	result := make([]*entity.MergeRecord, 0)
	for _, r := range s.merges {
		if r.TenantID != tenantID {
			continue
		}
		if filter.CustomerID != nil && r.PrimaryID != *filter.CustomerID && r.SecondaryID != *filter.CustomerID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		result = append(result, cloneRecord(r))
	}
	slices.SortFunc(result, func(a, b *entity.MergeRecord) int {
		if c := b.PerformedAt.Compare(a.PerformedAt); c != 0 {
			return c
		}

		return compareIDs(a.ID, b.ID)
	})
	if filter.Offset > 0 {
		result = result[min(filter.Offset, len(result)):]
	}
	if filter.Limit > 0 {
		result = result[:min(filter.Limit, len(result))]
	}

	return result, nil
}

func cloneRecord(r *entity.MergeRecord) *entity.MergeRecord {
	v := *r
	v.TouchedFields = slices.Clone(r.TouchedFields)
	v.MovedRecords = r.MovedRecords.Clone()

	return &v
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// recordingPublisher returns a publisher mock that records every event it receives.
func recordingPublisher(t *testing.T) (*mockSvc.MockEventPublisher, *[]*service.MergeEvent) {
	events := make([]*service.MergeEvent, 0)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishMergeEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.MergeEvent) error {
			events = append(events, event)
			return nil
		}).
		Maybe()

	return publisher, &events
}

func newFailingPublisher(t *testing.T) *mockSvc.MockEventPublisher {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishMergeEvent(mock.Anything, mock.Anything).
		Return(errors.New("topic unavailable"))

	return publisher
}
