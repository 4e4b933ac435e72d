package ledger

import (
	"testing"

	"pawn/pkg/number"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCollateralRatio(t *testing.T) {
	price := number.Decimal("0.5")

	// no collateral: zero ratio regardless of debt
	r := CollateralRatio(price, decimal.Zero, number.Decimal("10"))
	assert.False(t, r.Infinite)
	assert.True(t, r.Value.IsZero())

	// collateral and no debt: unbounded
	r = CollateralRatio(price, number.Decimal("100"), decimal.Zero)
	assert.True(t, r.Infinite)

	// 100 collateral at price 0.5 against 25 debt: 50/25 = 200.00%
	r = CollateralRatio(price, number.Decimal("100"), number.Decimal("25"))
	assert.True(t, r.Value.Equal(number.Decimal("20000")), "got %s", r)

	// floored
	r = CollateralRatio(price, number.Decimal("100"), number.Decimal("3"))
	assert.True(t, r.Value.Equal(number.Decimal("166666")), "got %s", r)
}

func TestCollateralRatioFloorNotRoundedUp(t *testing.T) {
	// the exact ratio sits a hair below 20000; the division's rounding
	// must not lift it across the floor boundary
	r := CollateralRatio(number.Decimal("0.9999999999999999995"), number.Decimal("2"), number.Decimal("1"))
	assert.True(t, r.Value.Equal(number.Decimal("19999")), "got %s", r)
}

func TestCollateralRatioMonotonic(t *testing.T) {
	price := number.Decimal("0.5")
	collateral := number.Decimal("100")

	prev := CollateralRatio(price, collateral, number.Decimal("1"))
	for _, debt := range []string{"2", "5", "10", "33.33", "50"} {
		r := CollateralRatio(price, collateral, number.Decimal(debt))
		assert.True(t, r.Value.LessThan(prev.Value), "debt %s", debt)
		prev = r
	}
}

func TestMaxBorrowable(t *testing.T) {
	price := number.Decimal("0.5")

	// 103 collateral at price 0.5, no debt: up to 103*0.5/1.5
	max := MaxBorrowable(price, number.Decimal("103"), decimal.Zero, MinCollateralRatio)
	assert.True(t, max.GreaterThan(number.Decimal("34.33")), "got %s", max)
	assert.True(t, max.LessThan(number.Decimal("34.34")), "got %s", max)

	// borrowing exactly the maximum keeps the ratio at the minimum
	r := CollateralRatio(price, number.Decimal("103"), max)
	assert.False(t, r.LessThan(MinCollateralRatio), "got %s", r)

	// existing debt reduces headroom
	max2 := MaxBorrowable(price, number.Decimal("103"), number.Decimal("10"), MinCollateralRatio)
	assert.True(t, max2.Equal(max.Sub(number.Decimal("10"))), "got %s", max2)

	// over-indebted positions have none
	max3 := MaxBorrowable(price, number.Decimal("103"), number.Decimal("100"), MinCollateralRatio)
	assert.True(t, max3.IsZero())
}

func TestMaxBorrowableRepeatingQuotient(t *testing.T) {
	price := number.Decimal("0.52")
	collateral := number.Decimal("100")

	// 520000 / 15000 repeats; rounding the maximum up would make
	// borrowing it fail its own ratio check
	max := MaxBorrowable(price, collateral, decimal.Zero, MinCollateralRatio)
	assert.True(t, max.Equal(number.Decimal("34.666666666666666666")), "got %s", max)

	r := CollateralRatio(price, collateral, max)
	assert.False(t, r.LessThan(MinCollateralRatio), "got %s", r)
}
