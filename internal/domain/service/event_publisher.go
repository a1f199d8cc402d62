package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IdentityEventType names a committed change in an identity's lifecycle.
type IdentityEventType string

const (
	EventIdentityRegistered IdentityEventType = "identity.registered"
	EventIdentityFederated  IdentityEventType = "identity.federated"
	EventProfileCompleted   IdentityEventType = "identity.profile_completed"
	EventPasswordChanged    IdentityEventType = "identity.password_changed"
	EventSessionRevoked     IdentityEventType = "identity.session_revoked"
)

// IdentityEvent is published after the change it describes has been committed.
// It never carries credentials or tokens.
type IdentityEvent struct {
	ID         string            `json:"id"`
	Type       IdentityEventType `json:"type"`
	IdentityID string            `json:"identity_id"`
	Provider   string            `json:"provider,omitempty"`
	Outcome    string            `json:"outcome,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewIdentityEvent stamps an event with a fresh id and the current time.
func NewIdentityEvent(eventType IdentityEventType, identityID uuid.UUID) *IdentityEvent {
	return &IdentityEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		IdentityID: identityID.String(),
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisher delivers identity events to downstream consumers.
type EventPublisher interface {
	// Publish sends one event and waits for the broker to accept it.
	Publish(ctx context.Context, event *IdentityEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
