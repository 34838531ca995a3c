package commands

import (
	"errors"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
	ErrItemQuantityIsInvalid = errors.New("item quantity must be greater than 0")
	ErrItemPriceIsNegative   = errors.New("item unit price must not be negative")
)

// OrderItemInput carries a single order line as received from the caller.
// Validated by NewCreateOrderCommand before any domain object is built.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
}

// CreateOrderCommand represents a request to place a new order for a partner.
// Encapsulates the order identity, the owning partner and the order lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, partnerID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	partnerID kernel.UUID
	items     []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both identifiers are valid and every item has a valid
// product ID, a positive quantity and a non-negative unit price.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	partnerID kernel.UUID,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setPartnerID(partnerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the identifier of the partner placing the order.
func (c CreateOrderCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
		if item.UnitPrice.IsNegative() {
			return ErrItemPriceIsNegative
		}
	}

	c.items = items
	return nil
}
