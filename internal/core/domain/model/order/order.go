package order

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCreditAlreadyReserved is returned when MarkCreditReserved is called
	// on an order whose credit reservation marker is already set. The marker
	// is written exactly once, at the moment of the successful debit.
	ErrCreditAlreadyReserved = errors.New("credit has already been reserved for this order")
)

// Order is the aggregate root for a partner's order. It owns its line items,
// carries the total computed once at creation, and moves through the status
// lifecycle enforced by Status.
//
// Order maintains these invariants:
//   - totalAmount equals the sum of quantity × unitPrice over its items,
//     computed at creation and never recomputed (items are immutable)
//   - status only changes along the allowed lifecycle edges
//   - the credit reservation marker is set at most once
//
// The struct uses private fields so all mutation goes through validated
// methods; persistence reconstructs instances via RestoreOrder.
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// partnerID references the partner the order was placed for
	partnerID kernel.UUID

	// items are the order's line items, immutable after creation
	items []Item

	// totalAmount is the order total, fixed at creation time
	totalAmount kernel.Money

	// status is the current lifecycle state
	status Status

	// creditReservedAt records when the partner's credit was debited for
	// this order. Nil until the first Pending -> Approved crossing. Cancel
	// re-credits the partner only when this marker is set, regardless of
	// how far the status advanced afterwards.
	creditReservedAt *time.Time

	// createdAt/updatedAt are the aggregate timestamps
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new order in Pending status for the given partner.
// The total is computed from the items here and fixed for the order's
// lifetime. At least one item is required.
//
// No credit is reserved at creation; the caller checks availability and the
// debit happens on approval.
func NewOrder(id kernel.UUID, partnerID kernel.UUID, items []Item) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPartnerID(partnerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	total := kernel.Zero()
	for _, item := range order.items {
		total = total.Add(item.Subtotal())
	}
	order.totalAmount = total

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. All fields, including
// the stored total and the credit reservation marker, are taken as-is after
// validation; the total is deliberately not recomputed from items.
func RestoreOrder(
	id kernel.UUID,
	partnerID kernel.UUID,
	items []Item,
	totalAmount kernel.Money,
	status Status,
	creditReservedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPartnerID(partnerID),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if creditReservedAt != nil {
		at := *creditReservedAt
		order.creditReservedAt = &at
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PartnerID returns the identifier of the partner the order belongs to.
func (o *Order) PartnerID() kernel.UUID {
	return o.partnerID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total fixed at creation.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CreditReservedAt returns when the partner's credit was debited for this
// order, or nil if it never was.
func (o *Order) CreditReservedAt() *time.Time {
	if o.creditReservedAt == nil {
		return nil
	}
	at := *o.creditReservedAt
	return &at
}

// IsCreditReserved reports whether the partner's credit has been debited for
// this order at some point in its life. Unlike checking the current status,
// this stays true after the status advances past Approved.
func (o *Order) IsCreditReserved() bool {
	return o.creditReservedAt != nil
}

// TransitionTo moves the order to newStatus along an allowed lifecycle edge
// and refreshes the update timestamp.
//
// The move is rejected with ErrInvalidStatusTransition when the order is in
// a terminal status or newStatus is not a successor of the current status.
// Crediting side effects of the Pending -> Approved edge belong to the
// caller; this method only mutates status and updatedAt.
func (o *Order) TransitionTo(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = time.Now().UTC()
	return nil
}

// MarkCreditReserved records that the partner's credit was debited by the
// order total. Called exactly once, at the moment of the successful debit on
// the first Pending -> Approved crossing; subsequent calls fail with
// ErrCreditAlreadyReserved.
func (o *Order) MarkCreditReserved(at time.Time) error {
	if o.creditReservedAt != nil {
		return ErrCreditAlreadyReserved
	}
	reserved := at.UTC()
	o.creditReservedAt = &reserved
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	o.partnerID = partnerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
