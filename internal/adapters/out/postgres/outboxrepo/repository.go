package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"orderservice/internal/contracts"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add serializes the status event and stores it as a pending outbox row.
// Must run inside the same transaction as the mutation that produced the
// event, which is what the unit of work arranges.
func (r *GormOutboxRepository) Add(ctx context.Context, event order.StatusEvent) error {
	payload, err := json.Marshal(contracts.FromStatusEvent(event))
	if err != nil {
		return err
	}

	dto := MessageDTO{
		EventID:   kernel.NewUUID().Bytes(),
		Key:       event.OrderID.String(),
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending returns up to limit unsent messages in commit order.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		eventID, idErr := kernel.UUIDFromBytes(dto.EventID[:])
		if idErr != nil {
			return nil, idErr
		}

		messages = append(messages, ports.OutboxMessage{
			ID:        dto.ID,
			EventID:   eventID,
			Key:       dto.Key,
			Payload:   dto.Payload,
			CreatedAt: dto.CreatedAt,
			SentAt:    dto.SentAt,
		})
	}

	return messages, nil
}

// MarkSent records that the message was handed to the broker.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id).
		Update("sent_at", now).Error
}
