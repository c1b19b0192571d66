package service

import (
	"context"
	"time"
)

// Game event types.
const (
	EventPlayerRegistered = "player.registered"
	EventSaveCreated      = "save.created"
	EventSaveDeleted      = "save.deleted"
)

// GameEvent is emitted after a successful account or save write.
type GameEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	PlayerID   string    `json:"player_id"`
	SaveID     string    `json:"save_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends the event to the configured topic
	Publish(ctx context.Context, event *GameEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
