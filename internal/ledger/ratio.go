package ledger

import (
	"pawn/core"

	"github.com/shopspring/decimal"
)

// CollateralRatio collateral value over debt in 2-decimal percent units,
// floored:
//
//	ratio = floor(price * collateral * 10000 / debt)
//
// Zero collateral yields ratio 0 regardless of debt; zero debt with
// collateral yields the unbounded ratio.
func CollateralRatio(price, collateral, debt decimal.Decimal) core.Ratio {
	if !collateral.IsPositive() {
		return core.RatioValue(decimal.Zero)
	}

	if !debt.IsPositive() {
		return core.InfiniteRatio()
	}

	// guard digits past the ledger precision keep the division's rounding
	// from crossing the floor boundary
	v := price.Mul(collateral).Mul(percentScale).
		DivRound(debt, MaxPrecision+2).
		Floor()
	return core.RatioValue(v)
}

// MaxBorrowable the largest extra debt that keeps the ratio at or above
// minRatio, given the snapshotted price, the collateral balance and the
// current debt. Zero when the position cannot take on more debt.
func MaxBorrowable(price, collateral, debt, minRatio decimal.Decimal) decimal.Decimal {
	if !collateral.IsPositive() || !minRatio.IsPositive() {
		return decimal.Zero
	}

	// rounded toward zero at the ledger precision; rounding up here would
	// hand out a maximum that the ratio guard immediately rejects
	maxDebt := price.Mul(collateral).Mul(percentScale).
		DivRound(minRatio, MaxPrecision+2).
		Truncate(MaxPrecision)

	borrowable := maxDebt.Sub(debt)
	if borrowable.IsNegative() {
		return decimal.Zero
	}

	return borrowable
}
