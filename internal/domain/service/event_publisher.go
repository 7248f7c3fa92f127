package service

import (
	"context"
	"time"
)

// Auth event types published after a successful flow.
const (
	AuthEventUserRegistered = "user.registered"
	AuthEventUserLoggedIn   = "user.logged_in"
)

// AuthEvent describes a completed authentication step for downstream consumers.
type AuthEvent struct {
	Type       string    `json:"type"`
	Subject    string    `json:"subject"`
	UserID     string    `json:"user_id"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing auth events
type EventPublisher interface {
	// PublishAuthEvent publishes an event to the message queue
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
