package service

import (
	"context"
	"time"
)

// ModerationEvent announces an admin decision to downstream consumers
type ModerationEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Subject    string    `json:"subject"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	Reason     string    `json:"reason,omitempty"`
	AdminID    string    `json:"admin_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishModerationEvent publishes a decision event
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
