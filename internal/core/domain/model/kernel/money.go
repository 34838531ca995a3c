package kernel

import (
	"fmt"

	"orderservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyExponent is the number of fraction digits every monetary amount
// carries. All amounts in the system are fixed-point with two decimals.
const moneyExponent = 2

// Money is a value object representing a fixed-point monetary amount with
// two fraction digits. It wraps github.com/shopspring/decimal so that order
// totals and partner credit are computed exactly, never through binary
// floating point.
//
// Money is immutable: every arithmetic method returns a new value. The zero
// value is a valid amount of 0.00, which keeps Money convenient to embed in
// aggregates and DTOs.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("19.90")
//	if err != nil {
//	    // handle error
//	}
//	total := price.MulInt(3) // 59.70
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal, rounding half-up to two fraction
// digits. Negative amounts are allowed here; aggregates that forbid them
// (unit prices, credit limits) validate on their own boundaries.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(moneyExponent)}
}

// NewMoneyFromString parses a decimal string such as "1500.00" into Money.
// This is the entry point for amounts arriving from the HTTP layer and from
// event payloads.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%q is not a valid decimal: %w", s, err))
	}
	return NewMoney(d), nil
}

// Zero returns the 0.00 amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts. The result may be negative;
// callers guard against that where it matters.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by an integer quantity. Used when
// computing a line item subtotal from quantity and unit price.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))).Round(moneyExponent)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value, for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two fraction digits, e.g. "500.00".
// Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.StringFixed(moneyExponent)
}
