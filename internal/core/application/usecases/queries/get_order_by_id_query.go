// Package queries contains read-only operations against the database.
// Query handlers bypass the domain model and repositories, reading rows
// directly into response structs for the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order with its items.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for the given order.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse represents one order line in a read model.
type OrderItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
}

// GetOrderByIDQueryResponse represents a complete order read model,
// including its line items.
type GetOrderByIDQueryResponse struct {
	ID               kernel.UUID
	PartnerID        kernel.UUID
	TotalAmount      kernel.Money
	Status           order.Status
	CreditReservedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Items            []OrderItemResponse
}
