package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dismissalService struct {
	customerRepo  repository.CustomerRepository
	dismissalRepo repository.DismissalRepository
	logger        *slog.Logger
	now           func() time.Time
}

// DismissalServiceParams holds dependencies for DismissalService, injected by Fx.
type DismissalServiceParams struct {
	fx.In

	CustomerRepo  repository.CustomerRepository
	DismissalRepo repository.DismissalRepository
	Logger        *slog.Logger
}

// NewDismissalService creates a new dismissal ledger service instance
func NewDismissalService(params DismissalServiceParams) usecase.DismissalUsecase {
	return &dismissalService{
		customerRepo:  params.CustomerRepo,
		dismissalRepo: params.DismissalRepo,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (s *dismissalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Dismiss records that the pair is not a duplicate
func (s *dismissalService) Dismiss(ctx context.Context, actor entity.Actor, input *usecase.DismissInput) (*entity.MergeDismissal, error) {
	if err := s.checkPair(ctx, actor, input.CustomerAID, input.CustomerBID); err != nil {
		return nil, err
	}

	dismissal := &entity.MergeDismissal{
		ID:          uuid.New(),
		TenantID:    actor.TenantID,
		Pair:        entity.NewCustomerPair(input.CustomerAID, input.CustomerBID),
		Reason:      strings.TrimSpace(input.Reason),
		DismissedBy: actor.ID,
		DismissedAt: s.now().UTC(),
	}
	if err := s.dismissalRepo.CreateDismissal(ctx, dismissal); err != nil {
		return nil, errors.Wrap(err, "failed to create dismissal")
	}

	s.log(ctx).Info("Duplicate pair dismissed",
		slog.String("tenant_id", actor.TenantID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("customer_a_id", dismissal.Pair.A.String()),
		slog.String("customer_b_id", dismissal.Pair.B.String()),
	)

	return dismissal, nil
}

// Undismiss removes the dismissal of the pair
func (s *dismissalService) Undismiss(ctx context.Context, actor entity.Actor, customerAID, customerBID uuid.UUID) error {
	pair := entity.NewCustomerPair(customerAID, customerBID)
	if err := s.dismissalRepo.DeleteDismissal(ctx, actor.TenantID, pair); err != nil {
		return errors.Wrap(err, "failed to delete dismissal")
	}

	s.log(ctx).Info("Duplicate pair undismissed",
		slog.String("tenant_id", actor.TenantID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("customer_a_id", pair.A.String()),
		slog.String("customer_b_id", pair.B.String()),
	)

	return nil
}

// IsDismissed reports whether the pair is dismissed
func (s *dismissalService) IsDismissed(ctx context.Context, actor entity.Actor, customerAID, customerBID uuid.UUID) (bool, error) {
	dismissed, err := s.dismissalRepo.IsDismissed(ctx, actor.TenantID, entity.NewCustomerPair(customerAID, customerBID))
	if err != nil {
		return false, errors.Wrap(err, "failed to check dismissal")
	}

	return dismissed, nil
}

// ListDismissed lists the dismissals of the actor's tenant
func (s *dismissalService) ListDismissed(ctx context.Context, actor entity.Actor, customerID *uuid.UUID) ([]*entity.DismissalEntry, error) {
	dismissals, err := s.dismissalRepo.ListDismissals(ctx, actor.TenantID, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dismissals")
	}

	ids := make([]uuid.UUID, 0, len(dismissals)*2)
	for _, d := range dismissals {
		ids = append(ids, d.Pair.A, d.Pair.B)
	}
	customers, err := s.customerRepo.FindCustomersByIDs(ctx, actor.TenantID, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find dismissed customers")
	}
	summaries := summariesByID(customers)

	entries := make([]*entity.DismissalEntry, 0, len(dismissals))
	for _, d := range dismissals {
		entry := &entity.DismissalEntry{
			Dismissal: d,
			CustomerA: summaryOrID(summaries, d.Pair.A),
			CustomerB: summaryOrID(summaries, d.Pair.B),
		}
		if customerID != nil && d.Pair.Contains(*customerID) {
			other := summaryOrID(summaries, d.Pair.Other(*customerID))
			entry.Other = &other
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// checkPair verifies that both customers exist in the actor's tenant and differ.
func (s *dismissalService) checkPair(ctx context.Context, actor entity.Actor, customerAID, customerBID uuid.UUID) error {
	loaded := make([]*entity.Customer, 0, 2)
	if customerAID != customerBID {
		for _, id := range []uuid.UUID{customerAID, customerBID} {
			c, err := s.customerRepo.FindCustomerByID(ctx, id)
			if err != nil {
				if errors.Is(err, domainerrors.ErrCustomerNotFound) {
					continue
				}

				return errors.Wrap(err, "failed to find customer")
			}
			loaded = append(loaded, c)
		}
	}

	_, _, err := pairTargets(actor, customerAID, customerBID, loaded)

	return err
}

func summariesByID(customers []*entity.Customer) map[uuid.UUID]entity.CustomerSummary {
	summaries := make(map[uuid.UUID]entity.CustomerSummary, len(customers))
	for _, c := range customers {
		summaries[c.ID] = c.Summary()
	}

	return summaries
}

// summaryOrID falls back to a bare id when the customer row is no longer visible.
func summaryOrID(summaries map[uuid.UUID]entity.CustomerSummary, id uuid.UUID) entity.CustomerSummary {
	if summary, ok := summaries[id]; ok {
		return summary
	}

	return entity.CustomerSummary{ID: id}
}
