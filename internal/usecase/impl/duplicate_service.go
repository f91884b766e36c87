package impl

import (
	"context"
	"log/slog"
	"slices"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/matching"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type duplicateService struct {
	customerRepo    repository.CustomerRepository
	dismissalRepo   repository.DismissalRepository
	reviewThreshold int
	scanLimit       int
	logger          *slog.Logger
}

// DuplicateServiceParams holds dependencies for DuplicateService, injected by Fx.
type DuplicateServiceParams struct {
	fx.In

	CustomerRepo  repository.CustomerRepository
	DismissalRepo repository.DismissalRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDuplicateService creates a new duplicate detection service instance
func NewDuplicateService(params DuplicateServiceParams) usecase.DuplicateUsecase {
	reviewThreshold := matching.DefaultReviewThreshold
	scanLimit := 0
	if params.Config != nil && params.Config.Merge != nil {
		reviewThreshold = params.Config.Merge.ReviewThreshold
		scanLimit = params.Config.Merge.CandidateScanLimit
	}

	return &duplicateService{
		customerRepo:    params.CustomerRepo,
		dismissalRepo:   params.DismissalRepo,
		reviewThreshold: reviewThreshold,
		scanLimit:       scanLimit,
		logger:          params.Logger,
	}
}

func (s *duplicateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FindDuplicates returns the likely duplicates of a customer
func (s *duplicateService) FindDuplicates(ctx context.Context, actor entity.Actor, customerID uuid.UUID) ([]*usecase.DuplicateMatch, error) {
	reference, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reference customer")
	}
	if reference.TenantID != actor.TenantID {
		return nil, domainerrors.ErrCustomerNotFound.WithDetails(map[string]uuid.UUID{"customer_id": customerID})
	}

	matches := make([]*usecase.DuplicateMatch, 0)
	keys := matching.KeysOf(reference)
	if reference.IsMerged() || keys.IsEmpty() {
		return matches, nil
	}

	dismissed, err := s.dismissalRepo.FindDismissedPartnerIDs(ctx, reference.TenantID, reference.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find dismissed partners")
	}

	candidates, err := s.customerRepo.FindDuplicateCandidates(ctx, repository.DuplicateQuery{
		TenantID:     reference.TenantID,
		ExcludeID:    reference.ID,
		DismissedIDs: dismissed,
		Email:        keys.Email,
		Phone:        keys.Phone,
		LineID:       keys.LineID,
		Name:         keys.Name,
		Limit:        s.scanLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find duplicate candidates")
	}
	candidates = slices.DeleteFunc(candidates, func(c *entity.Customer) bool {
		return c.TenantID != reference.TenantID
	})

	for _, candidate := range matching.Rank(reference, candidates) {
		matches = append(matches, &usecase.DuplicateMatch{
			DuplicateCandidate: candidate,
			Likelihood:         matching.Classify(candidate.Confidence, s.reviewThreshold),
		})
	}

	s.log(ctx).Debug("Duplicate scan completed",
		slog.String("customer_id", reference.ID.String()),
		slog.Int("scanned", len(candidates)),
		slog.Int("dismissed", len(dismissed)),
		slog.Int("matches", len(matches)),
	)

	return matches, nil
}
