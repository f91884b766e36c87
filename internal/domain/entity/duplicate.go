package entity

import (
	"time"

	"github.com/google/uuid"
)

// DuplicateCandidate is a customer that likely represents the same person as the reference customer.
// Candidates are transient: they are recomputed on every detection request and never stored.
type DuplicateCandidate struct {
	ReferenceID    uuid.UUID       `json:"reference_id"`
	Candidate      CustomerSummary `json:"candidate"`
	Confidence     int             `json:"confidence"` // 0-100
	Signals        []string        `json:"signals"`    // Labels of the matched signals, in detection order.
	LastActivityAt time.Time       `json:"last_activity_at"`
}
