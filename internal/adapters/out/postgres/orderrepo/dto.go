// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are stored in their own table and loaded with the order; the stored
// total is authoritative and is not recomputed from items on load.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PartnerID        uuid.UUID       `gorm:"type:uuid;index"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(19,2)"`
	Status           int             `gorm:"index"`
	CreditReservedAt *time.Time
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
	Items            []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Lines are immutable after the order
// is created.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(19,2)"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	var creditReservedAt *time.Time
	if at := aggregate.CreditReservedAt(); at != nil {
		copied := *at
		creditReservedAt = &copied
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		PartnerID:        aggregate.PartnerID().Bytes(),
		TotalAmount:      aggregate.TotalAmount().Decimal(),
		Status:           int(aggregate.Status()),
		CreditReservedAt: creditReservedAt,
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Items:            items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the credit reservation
// marker using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		partnerID,
		items,
		kernel.NewMoney(dto.TotalAmount),
		order.Status(dto.Status),
		dto.CreditReservedAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(id, productID, dto.Quantity, kernel.NewMoney(dto.UnitPrice))
}
