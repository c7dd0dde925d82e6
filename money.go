package finbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an exact decimal amount with a currency code, for display.
// Calculations stay on decimal.Decimal; Money only exists at the rendering
// boundary.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a decimal value and a currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns a never-nil currency descriptor for the code.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String renders the amount with the currency's symbol and fraction rules.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal { return m.value }

// Currency returns the currency code.
func (m Money) Currency() string { return m.cur }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// SignedString renders with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
