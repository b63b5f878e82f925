package models

import (
	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

// RoundMoney normalizes a money value to 2 fractional digits using
// half-down rounding: a tie (exactly .xx5) is rounded towards zero.
// Applied once at every point a balance or amount enters the system,
// never as a hidden side effect of assignment
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	scaled := d.Abs().Shift(2)
	floor := scaled.Floor()
	if scaled.Sub(floor).GreaterThan(half) {
		floor = floor.Add(decimal.New(1, 0))
	}

	rounded := floor.Shift(-2)
	if d.IsNegative() {
		rounded = rounded.Neg()
	}
	return rounded
}
