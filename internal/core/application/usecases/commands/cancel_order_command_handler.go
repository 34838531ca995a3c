package commands

import (
	"context"

	"orderservice/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order and returns reserved credit.
//
// Cancellation is idempotent: an already cancelled order is returned as-is
// with no credit movement and no event. For any other non-terminal status the
// order moves to CANCELLED, and the partner is re-credited with the order
// total if and only if the credit was actually reserved. Orders cancelled
// while still PENDING never debited anything, so nothing is returned for
// them either.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a UoWFactory spanning orders, partners and the outbox.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Returns the order in its final state.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if orderAggregate.Status() == order.Cancelled {
		return orderAggregate, nil
	}

	if err = orderAggregate.TransitionTo(order.Cancelled); err != nil {
		return nil, err
	}

	if orderAggregate.IsCreditReserved() {
		partnerRepo := uow.PartnerRepository()
		orderPartner, partnerErr := partnerRepo.Get(ctx, orderAggregate.PartnerID())
		if partnerErr != nil {
			return nil, partnerErr
		}

		if err = orderPartner.Credit(orderAggregate.TotalAmount()); err != nil {
			return nil, err
		}

		if err = partnerRepo.Update(ctx, orderPartner); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return nil, err
	}

	outboxRepo := uow.OutboxRepository()
	if err = outboxRepo.Add(ctx, order.NewStatusEvent(orderAggregate)); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderAggregate, nil
}
