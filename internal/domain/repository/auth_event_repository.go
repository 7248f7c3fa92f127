package repository

import (
	"context"

	"credgate/internal/domain/entity"
)

// AuthEventRepository stores the audit trail fed by published auth events.
type AuthEventRepository interface {
	// Record inserts the entry unless its MessageID was already recorded, in
	// which case it returns false and no error.
	Record(ctx context.Context, audit *entity.AuthAudit) (bool, error)

	// CountBySubject returns how many events were recorded for subject.
	CountBySubject(ctx context.Context, subject string) (int64, error)
}
