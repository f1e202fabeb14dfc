package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DiscountCalculator maps a subtotal to the amount actually charged.
type DiscountCalculator interface {
	ApplyDiscount(total decimal.Decimal) decimal.Decimal
}

// NoDiscount charges the subtotal unchanged.
type NoDiscount struct{}

func (NoDiscount) ApplyDiscount(total decimal.Decimal) decimal.Decimal {
	return total
}

// PercentageDiscount takes Percentage percent off the subtotal.
//
// The percentage is not range checked: above 100 the result is negative and
// below 0 it acts as a surcharge.
type PercentageDiscount struct {
	Percentage decimal.Decimal
}

func NewPercentageDiscount(percentage decimal.Decimal) PercentageDiscount {
	return PercentageDiscount{Percentage: percentage}
}

func (d PercentageDiscount) ApplyDiscount(total decimal.Decimal) decimal.Decimal {
	return total.Sub(total.Mul(d.Percentage).Div(hundred))
}
