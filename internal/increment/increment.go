// Package increment defines the standard bid increment schedule.
package increment

import "github.com/shopspring/decimal"

// tiers maps price bands to their minimum bid step. Lower bounds are
// inclusive: a current price of exactly 25 falls into the 25-100 band.
var tiers = []struct {
	below decimal.Decimal
	step  decimal.Decimal
}{
	{decimal.NewFromInt(25), decimal.NewFromInt(1)},
	{decimal.NewFromInt(100), decimal.NewFromInt(5)},
	{decimal.NewFromInt(250), decimal.NewFromInt(10)},
	{decimal.NewFromInt(500), decimal.NewFromInt(25)},
	{decimal.NewFromInt(1000), decimal.NewFromInt(50)},
}

// topStep applies once the current price reaches the highest band.
var topStep = decimal.NewFromInt(100)

// Standard returns the minimum increment over the given current price.
// A zero-value (or negative) current price is treated as 0.
func Standard(current decimal.Decimal) decimal.Decimal {
	for _, t := range tiers {
		if current.LessThan(t.below) {
			return t.step
		}
	}
	return topStep
}
