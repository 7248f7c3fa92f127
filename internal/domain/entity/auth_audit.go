package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthAudit is one delivered auth event as kept by the audit worker.
// MessageID is the broker's ID and identifies a delivery across retries.
type AuthAudit struct {
	ID         uuid.UUID
	MessageID  string
	Type       string
	Subject    string
	UserID     string
	RequestID  string
	OccurredAt time.Time
	ReceivedAt time.Time
}
