package order

import (
	"time"

	"orderservice/internal/core/domain/model/kernel"
)

// StatusEvent is a snapshot of an order at the moment a status change was
// committed. It is a value, not an entity: produced once per committed
// transition and never mutated. Downstream consumers receive exactly this
// shape, so additions here are wire-visible.
type StatusEvent struct {
	OrderID     kernel.UUID
	PartnerID   kernel.UUID
	TotalAmount kernel.Money
	Status      Status
	UpdatedAt   time.Time
}

// NewStatusEvent captures the order's current state as an event snapshot.
// Call it after the transition has been applied to the aggregate.
func NewStatusEvent(o *Order) StatusEvent {
	return StatusEvent{
		OrderID:     o.ID(),
		PartnerID:   o.PartnerID(),
		TotalAmount: o.TotalAmount(),
		Status:      o.Status(),
		UpdatedAt:   o.UpdatedAt(),
	}
}
