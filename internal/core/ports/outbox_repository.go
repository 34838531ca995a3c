package ports

import (
	"context"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
)

// OutboxMessage is a serialized status event awaiting publication. Rows are
// written in the same transaction as the order/partner mutation and relayed
// to the broker afterwards, so a crash between commit and publish cannot
// lose an event.
type OutboxMessage struct {
	// ID is a monotonically increasing sequence preserving commit order.
	ID int64

	// EventID identifies the event itself, used as a deduplication handle
	// by consumers under at-least-once delivery.
	EventID kernel.UUID

	// Key is the partition key, the order's identifier. Events of one
	// order always land in one partition and stay ordered.
	Key string

	// Payload is the JSON-encoded status event.
	Payload []byte

	// CreatedAt is when the row was written.
	CreatedAt time.Time

	// SentAt is when the message was published, nil while pending.
	SentAt *time.Time
}

// OutboxRepository defines the persistence contract for the event outbox.
type OutboxRepository interface {
	// Add serializes the status event and stores it as a pending outbox
	// row. Must be called inside the same unit-of-work transaction as the
	// mutation that produced the event.
	Add(ctx context.Context, event order.StatusEvent) error

	// GetPending returns up to limit unsent messages in commit order.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent records that the message was handed to the broker.
	MarkSent(ctx context.Context, id int64) error
}
