package commands

import (
	"context"
	"time"

	"orderservice/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler moves an order through its lifecycle.
//
// The first PENDING -> APPROVED crossing is the credit reservation point:
// the partner is debited by the order total and the order records the
// reservation timestamp, all in one transaction with the status change.
// A debit failure aborts the whole transition. Every committed transition
// also stores a status event in the outbox.
//
// Concurrent transitions of the same order serialize on the order row lock
// taken by OrderRepository.Get, so the reservation can happen at most once
// even under races: the loser of the race reloads an already APPROVED order
// and its transition is rejected as an invalid edge.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory spanning orders, partners and the outbox.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the status transition command.
// Returns the updated order on success.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	reservesCredit := orderAggregate.Status() == order.Pending &&
		cmd.NewStatus() == order.Approved &&
		!orderAggregate.IsCreditReserved()

	if err = orderAggregate.TransitionTo(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if reservesCredit {
		partnerRepo := uow.PartnerRepository()
		orderPartner, partnerErr := partnerRepo.Get(ctx, orderAggregate.PartnerID())
		if partnerErr != nil {
			return nil, partnerErr
		}

		if err = orderPartner.Debit(orderAggregate.TotalAmount()); err != nil {
			return nil, err
		}

		if err = orderAggregate.MarkCreditReserved(h.clock()); err != nil {
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
