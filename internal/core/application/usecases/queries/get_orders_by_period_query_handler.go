package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByPeriodQueryHandler lists orders created within a time range.
type GetOrdersByPeriodQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByPeriodQueryHandler creates a handler for period-filtered
// order lists. Requires a GORM database connection for query execution.
func NewGetOrdersByPeriodQueryHandler(db *gorm.DB) GetOrdersByPeriodQueryHandler {
	return GetOrdersByPeriodQueryHandler{db: db}
}

// Handle executes the query. Both bounds are inclusive; results come back
// newest first. Returns an empty slice when nothing matches.
func (h GetOrdersByPeriodQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByPeriodQuery,
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
		WHERE created_at BETWEEN ? AND ?
		ORDER BY created_at DESC
	`, query.Start(), query.End()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
