package postgres

import (
	"context"

	"credgate/internal/domain/entity"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/repository"
	"credgate/internal/errors"
	"credgate/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type authEventRepository struct {
	db *gorm.DB
}

func NewAuthEventRepository(db *gorm.DB) repository.AuthEventRepository {
	return &authEventRepository{db: db}
}

// Record relies on the unique message_id index; Pub/Sub redelivers on any
// non-2xx answer, so a replay must be a quiet no-op.
func (repo *authEventRepository) Record(ctx context.Context, audit *entity.AuthAudit) (bool, error) {
	eventM := fromAuthAuditDomain(audit)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}},
			DoNothing: true,
		}).
		Create(eventM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record auth event")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	audit.ID = eventM.ID

	return true, nil
}

func (repo *authEventRepository) CountBySubject(ctx context.Context, subject string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.AuthEventModel{}).Where("subject = ?", subject).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count auth events")
	}

	return count, nil
}

func fromAuthAuditDomain(a *entity.AuthAudit) *model.AuthEventModel {
	return &model.AuthEventModel{
		ID:         a.ID,
		MessageID:  a.MessageID,
		Type:       a.Type,
		Subject:    a.Subject,
		UserID:     a.UserID,
		RequestID:  a.RequestID,
		OccurredAt: a.OccurredAt,
		ReceivedAt: a.ReceivedAt,
	}
}
