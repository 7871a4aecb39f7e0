package finance

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent returns 100*part/whole. An empty or zero-valued whole is a normal
// state, so the result is 0 instead of an error.
func Percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Mul(hundred).Div(whole).InexactFloat64()
}

// Ratio returns part/whole, or 0 when whole is zero.
func Ratio(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).InexactFloat64()
}
