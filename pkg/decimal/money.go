package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a rupee amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromFloat creates a Money instance from a chart coordinate
func NewMoneyFromFloat(f float64) Money {
	return Money{decimal.NewFromFloat(f)}
}

// Scale divides the amount by a display divisor (e.g. 100000 for lakhs).
// A non-positive divisor leaves the amount unchanged.
func (m Money) Scale(divisor decimal.Decimal) Money {
	if !divisor.IsPositive() {
		return m
	}
	return Money{m.Decimal.Div(divisor)}
}

// Float returns the amount as a float64 for plotting
func (m Money) Float() float64 {
	f, _ := m.Decimal.Float64()
	return f
}

// Compact returns the shortest exact representation with at least one
// decimal place: 12.0, 12.5, 12.01.
func (m Money) Compact() string {
	if m.Decimal.Equal(m.Decimal.Truncate(0)) {
		return m.Decimal.StringFixed(1)
	}
	return m.Decimal.String()
}

// OneDecimal returns the amount with a single decimal place, as used on chart ticks
func (m Money) OneDecimal() string {
	return m.Decimal.StringFixed(1)
}
