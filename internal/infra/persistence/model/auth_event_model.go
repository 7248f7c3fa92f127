package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthEventModel mirrors the 'auth_events' table.
type AuthEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MessageID  string    `gorm:"type:varchar(128);uniqueIndex:idx_auth_events_message_id;not null"`
	Type       string    `gorm:"type:varchar(32);not null"`
	Subject    string    `gorm:"type:varchar(32);index:idx_auth_events_subject;not null"`
	UserID     string    `gorm:"type:varchar(36)"`
	RequestID  string    `gorm:"type:varchar(128)"`
	OccurredAt time.Time `gorm:"not null"`
	ReceivedAt time.Time `gorm:"not null"`
}

func (AuthEventModel) TableName() string {
	return "auth_events"
}

func (m *AuthEventModel) BeforeCreate(*gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}
