package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads a single order with its items.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// order with the given ID exists.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var (
		id, partnerID    uuid.UUID
		totalAmount      decimal.Decimal
		status           int
		creditReservedAt sql.NullTime
		createdAt        time.Time
		updatedAt        time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			partner_id,
			total_amount,
			status,
			credit_reserved_at,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &partnerID, &totalAmount, &status, &creditReservedAt, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp, err := buildOrderResponse(id, partnerID, totalAmount, status, creditReservedAt, createdAt, updatedAt)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderByIDQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, productID uuid.UUID
			quantity      int
			unitPrice     decimal.Decimal
		)

		if err = rows.Scan(&id, &productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, OrderItemResponse{
			ID:        itemID,
			ProductID: itemProductID,
			Quantity:  quantity,
			UnitPrice: kernel.NewMoney(unitPrice),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func buildOrderResponse(
	id, partnerID uuid.UUID,
	totalAmount decimal.Decimal,
	status int,
	creditReservedAt sql.NullTime,
	createdAt, updatedAt time.Time,
) (GetOrderByIDQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	orderPartnerID, err := kernel.UUIDFromBytes(partnerID[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	orderStatus := order.Status(status)
	if err = orderStatus.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp := GetOrderByIDQueryResponse{
		ID:          orderID,
		PartnerID:   orderPartnerID,
		TotalAmount: kernel.NewMoney(totalAmount),
		Status:      orderStatus,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}

	if creditReservedAt.Valid {
		at := creditReservedAt.Time
		resp.CreditReservedAt = &at
	}

	return resp, nil
}
