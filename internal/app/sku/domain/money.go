package domain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits a stored price may carry.
const MoneyScale = 2

// Money represents a monetary amount using arbitrary-precision decimal arithmetic.
// It carries no currency; the owning record or quote does.
type Money struct {
	d decimal.Decimal
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{d: decimal.Zero}
}

// NewMoneyFromString parses a decimal string such as "99.90".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{d: d}, nil
}

// MustMoney parses s and panics on failure. Intended for fixtures and constants.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMoneyFromCents builds an amount from minor units, e.g. 9990 -> 99.90.
func NewMoneyFromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -MoneyScale)}
}

// NewMoneyFromRat converts a rational (as read from a NUMERIC column).
func NewMoneyFromRat(r *big.Rat) (Money, error) {
	if r == nil {
		return Zero(), nil
	}
	// NUMERIC holds at most 9 fractional digits, so this string is exact.
	return NewMoneyFromString(r.FloatString(9))
}

// NewMoneyFromDecimal wraps an existing decimal value.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

// Decimal exposes the underlying decimal value.
func (m Money) Decimal() decimal.Decimal { return m.d }

// Rat returns the amount as a big.Rat for NUMERIC storage.
func (m Money) Rat() *big.Rat { return m.d.Rat() }

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{d: m.d.Sub(other.d)}
}

// MulPercent returns m * percent / 100 without rounding.
func (m Money) MulPercent(percent float64) Money {
	rate := decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100))
	return Money{d: m.d.Mul(rate)}
}

// RoundHalfUp rounds to the given number of fractional digits, halves away from zero.
// For the non-negative amounts used in pricing this is conventional half-up.
func (m Money) RoundHalfUp(places int32) Money {
	return Money{d: m.d.Round(places)}
}

// HasAtMostScale reports whether the amount needs no more than places fractional digits.
func (m Money) HasAtMostScale(places int32) bool {
	return m.d.Equal(m.d.Truncate(places))
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int { return m.d.Cmp(other.d) }

// LessThan returns true if m < other.
func (m Money) LessThan(other Money) bool { return m.d.LessThan(other.d) }

// Equal returns true if both amounts are numerically equal (1.0 == 1.00).
func (m Money) Equal(other Money) bool { return m.d.Equal(other.d) }

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool { return m.d.IsZero() }

// IsNegative returns true if the amount is below zero.
func (m Money) IsNegative() bool { return m.d.IsNegative() }

// String renders the amount with exactly two fractional digits.
func (m Money) String() string { return m.d.StringFixed(MoneyScale) }

// MarshalJSON renders the amount as a fixed-scale string to avoid float drift in clients.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare numeric amounts.
func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	m.d = d
	return nil
}
