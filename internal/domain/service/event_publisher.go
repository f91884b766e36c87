package service

import (
	"context"
	"time"
)

// MergeEventType names a customer merge lifecycle event.
type MergeEventType string

const (
	EventCustomerMerged           MergeEventType = "customer.merged"
	EventCustomerMergeUndone      MergeEventType = "customer.merge_undone"
	EventCustomerLineDisconnected MergeEventType = "customer.line_disconnected"
)

// MergeEvent is published after a merge or undo has committed, so downstream
// consumers such as the messaging sender can react to merged or severed customers.
type MergeEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	Type        MergeEventType `json:"type"`
	TenantID    string         `json:"tenant_id"`
	MergeID     string         `json:"merge_id"`
	PrimaryID   string         `json:"primary_id"`
	SecondaryID string         `json:"secondary_id"`
	ActorID     string         `json:"actor_id"`
	LineID      string         `json:"line_id,omitempty"` // Severed LINE id, line_disconnected only
	LineSide    string         `json:"line_side,omitempty"`
	MovedCount  int            `json:"moved_count"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMergeEvent publishes a merge lifecycle event
	PublishMergeEvent(ctx context.Context, event *MergeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
