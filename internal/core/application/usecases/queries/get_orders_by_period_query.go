package queries

import (
	"errors"
	"time"

	"orderservice/internal/pkg/guard"
)

var (
	ErrGetOrdersByPeriodQueryIsNotConstructed = errors.New(
		"GetOrdersByPeriodQuery must be created via NewGetOrdersByPeriodQuery constructor",
	)
	ErrPeriodIsInvalid = errors.New("period start must not be after period end")
)

// GetOrdersByPeriodQuery retrieves all orders created within a time range,
// bounds inclusive.
type GetOrdersByPeriodQuery struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersByPeriodQuery creates a query for orders created in [start, end].
// Returns ErrPeriodIsInvalid when start is after end.
func NewGetOrdersByPeriodQuery(start, end time.Time) (GetOrdersByPeriodQuery, error) {
	if start.After(end) {
		return GetOrdersByPeriodQuery{}, ErrPeriodIsInvalid
	}

	return GetOrdersByPeriodQuery{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByPeriodQueryIsNotConstructed if validation fails.
func (q GetOrdersByPeriodQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByPeriodQueryIsNotConstructed)
}

// Start returns the inclusive lower bound of the period.
func (q GetOrdersByPeriodQuery) Start() time.Time {
	return q.start
}

// End returns the inclusive upper bound of the period.
func (q GetOrdersByPeriodQuery) End() time.Time {
	return q.end
}
