// Package contracts defines the wire schema of messages crossing the
// notification channel. Both the outbox writer and the consumer depend on
// this package, so the producer and consumer sides cannot drift apart.
package contracts

import (
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
)

// OrderStatusEvent is the JSON shape of a status-change notification. The
// same schema is used on the primary topic and the dead-letter topic.
type OrderStatusEvent struct {
	OrderID     string    `json:"orderId"`
	PartnerID   string    `json:"partnerId"`
	TotalAmount string    `json:"totalAmount"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromStatusEvent maps a domain status event to its wire representation.
func FromStatusEvent(event order.StatusEvent) OrderStatusEvent {
	return OrderStatusEvent{
		OrderID:     event.OrderID.String(),
		PartnerID:   event.PartnerID.String(),
		TotalAmount: event.TotalAmount.String(),
		Status:      event.Status.String(),
		UpdatedAt:   event.UpdatedAt,
	}
}

// ToStatusEvent maps a wire event back to the domain value, validating every
// field. A failure here is deterministic: the payload will never parse on a
// retry, so consumers dead-letter it immediately.
func (e OrderStatusEvent) ToStatusEvent() (order.StatusEvent, error) {
	orderID, err := kernel.UUIDFromString(e.OrderID)
	if err != nil {
		return order.StatusEvent{}, err
	}

	partnerID, err := kernel.UUIDFromString(e.PartnerID)
	if err != nil {
		return order.StatusEvent{}, err
	}

	totalAmount, err := kernel.NewMoneyFromString(e.TotalAmount)
	if err != nil {
		return order.StatusEvent{}, err
	}

	status, err := order.StatusFromString(e.Status)
	if err != nil {
		return order.StatusEvent{}, err
	}

	return order.StatusEvent{
		OrderID:     orderID,
		PartnerID:   partnerID,
		TotalAmount: totalAmount,
		Status:      status,
		UpdatedAt:   e.UpdatedAt,
	}, nil
}
