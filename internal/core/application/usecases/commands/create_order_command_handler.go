package commands

import (
	"context"
	"fmt"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/model/partner"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Verifies the partner exists and has enough available credit for the order
// total, then persists the order in PENDING status. Credit is not debited
// here; the reservation happens on the first approval.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), partnerID, items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The credit check is a gate, not a reservation: a partner with insufficient
// available credit cannot place the order at all, but passing the gate does
// not move any money.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	orderPartner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, itemErr := order.NewItem(kernel.NewUUID(), input.ProductID, input.Quantity, input.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.PartnerID(), items)
	if err != nil {
		return nil, err
	}

	if !orderPartner.HasCreditFor(newOrder.TotalAmount()) {
		return nil, fmt.Errorf("%w: partner %s has %s available, order requires %s",
			partner.ErrInsufficientCredit,
			orderPartner.ID(), orderPartner.CreditLimit(), newOrder.TotalAmount())
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
