package ports

import (
	"context"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their line items; loading an order always
// yields the complete aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Items are
	// immutable after creation, so only the order row itself is rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier. When
	// called inside a unit-of-work transaction the order row is locked for
	// update, which serializes concurrent transitions of the same order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByStatus retrieves all orders currently in the given status.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetByCreatedBetween retrieves all orders created in [start, end].
	GetByCreatedBetween(ctx context.Context, start, end time.Time) ([]*order.Order, error)
}
