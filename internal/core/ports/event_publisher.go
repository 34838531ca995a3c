package ports

import "context"

// EventPublisher hands a committed status event to the durable notification
// channel for at-least-once delivery to subscribers. Implementations publish
// the message's payload as-is; it was serialized when the outbox row was
// written.
//
// Publish is invoked strictly after the originating transaction committed:
// the outbox dispatcher only ever sees committed rows.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
