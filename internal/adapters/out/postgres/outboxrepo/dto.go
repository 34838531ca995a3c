// Package outboxrepo persists status events awaiting publication.
// Rows are written in the same transaction as the state change that produced
// them; a relay job reads pending rows and hands them to the broker.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"
)

// MessageDTO represents one outbox row. The auto-incremented ID preserves
// commit order, which is the order the relay publishes in.
type MessageDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	EventID   uuid.UUID `gorm:"type:uuid"`
	Key       string
	Payload   []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time
	SentAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox rows.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}
