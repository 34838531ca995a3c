package queries

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves all orders currently in a given lifecycle
// status, newest first.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter by.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// OrderSummaryResponse represents an order in list read models.
// Items are not loaded for lists; fetch a single order for the full view.
type OrderSummaryResponse struct {
	ID          kernel.UUID
	PartnerID   kernel.UUID
	TotalAmount kernel.Money
	Status      order.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
