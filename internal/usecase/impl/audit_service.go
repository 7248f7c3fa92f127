package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "credgate/internal/delivery/context"
	"credgate/internal/domain/entity"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/repository"
	"credgate/internal/domain/service"
	"credgate/internal/errors"
	"credgate/internal/usecase"

	"go.uber.org/fx"
)

type auditService struct {
	events repository.AuthEventRepository
	logger *slog.Logger
	now    func() time.Time
}

type AuditServiceParams struct {
	fx.In

	EventRepo repository.AuthEventRepository
	Logger    *slog.Logger
}

func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		events: params.EventRepo,
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *auditService) RecordAuthEvent(ctx context.Context, input *usecase.RecordAuthEventInput) error {
	if err := checkAuthEvent(input); err != nil {
		return err
	}

	event := input.Event
	requestID := input.RequestID
	if requestID == "" {
		requestID = event.RequestID
	}

	audit := &entity.AuthAudit{
		MessageID:  input.MessageID,
		Type:       event.Type,
		Subject:    event.Subject,
		UserID:     event.UserID,
		RequestID:  requestID,
		OccurredAt: event.OccurredAt,
		ReceivedAt: srv.now(),
	}

	recorded, err := srv.events.Record(ctx, audit)
	if err != nil {
		return errors.WithStack(err)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if !recorded {
		logger.Debug("Auth event already recorded", slog.String("message_id", input.MessageID))

		return nil
	}

	logger.Info("Auth event recorded",
		slog.String("message_id", input.MessageID),
		slog.String("event_type", event.Type),
		slog.String("subject", event.Subject),
	)

	return nil
}

func checkAuthEvent(input *usecase.RecordAuthEventInput) error {
	switch {
	case input == nil || input.Event == nil:
		return domainerrors.ErrAuthEventInvalid.WithDetails("event is missing")
	case input.MessageID == "":
		return domainerrors.ErrAuthEventInvalid.WithDetails("message id is missing")
	case input.Event.Subject == "":
		return domainerrors.ErrAuthEventInvalid.WithDetails("subject is missing")
	case input.Event.OccurredAt.IsZero():
		return domainerrors.ErrAuthEventInvalid.WithDetails("occurred_at is missing")
	}

	switch input.Event.Type {
	case service.AuthEventUserRegistered, service.AuthEventUserLoggedIn:
		return nil
	default:
		return domainerrors.ErrAuthEventInvalid.WithDetails("unknown event type " + input.Event.Type)
	}
}
