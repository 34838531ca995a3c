package queries

import (
	"context"
	"database/sql"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler lists orders filtered by lifecycle status.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// order lists. Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when nothing matches.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			partner_id,
			total_amount,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at DESC
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var (
			id, partnerID uuid.UUID
			totalAmount   decimal.Decimal
			status        int
			createdAt     time.Time
			updatedAt     time.Time
		)

		if err := rows.Scan(&id, &partnerID, &totalAmount, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		orderPartnerID, err := kernel.UUIDFromBytes(partnerID[:])
		if err != nil {
			return nil, err
		}

		orderStatus := order.Status(status)
		if err = orderStatus.Validate(); err != nil {
			return nil, err
		}

		orders = append(orders, OrderSummaryResponse{
			ID:          orderID,
			PartnerID:   orderPartnerID,
			TotalAmount: kernel.NewMoney(totalAmount),
			Status:      orderStatus,
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
