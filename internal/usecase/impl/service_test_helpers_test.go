package impl

import (
	"io"
	"log/slog"

	"crm/config"
	"crm/internal/domain/entity"
	"crm/internal/domain/matching"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Merge: &config.MergeConfig{
			ReviewThreshold:    matching.DefaultReviewThreshold,
			NoteSeparator:      "\n--- %s ---\n",
			CandidateScanLimit: 100,
		},
	}
}

func newActor(tenantID uuid.UUID) entity.Actor {
	return entity.Actor{ID: uuid.New(), TenantID: tenantID, Name: "operator"}
}
