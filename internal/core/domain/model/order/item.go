package order

import (
	"errors"
	"fmt"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of an order: a product reference with a quantity and
// the unit price it was ordered at. Items are owned exclusively by their
// order, created with it and deleted with it, and immutable once the order
// exists.
type Item struct {
	// id is the unique identifier of the line item
	id kernel.UUID

	// productID references the ordered product
	productID kernel.UUID

	// quantity is the number of units ordered (at least 1)
	quantity int

	// unitPrice is the non-negative price of a single unit
	unitPrice kernel.Money

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a validated line item. Quantity must be at least 1 and the
// unit price must not be negative.
func NewItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the ordered product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns quantity × unit price for this line.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
