package usecase

import (
	"context"

	"credgate/internal/domain/service"
)

// RecordAuthEventInput is one delivered auth event.
type RecordAuthEventInput struct {
	MessageID string
	RequestID string
	Event     *service.AuthEvent
}

// AuditUsecase keeps the audit trail of auth events consumed by the worker.
type AuditUsecase interface {
	// RecordAuthEvent stores the event once per MessageID. A malformed event
	// yields ErrAuthEventInvalid and will never succeed on retry.
	RecordAuthEvent(ctx context.Context, input *RecordAuthEventInput) error
}
