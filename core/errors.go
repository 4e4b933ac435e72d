package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001

	// ErrUnsupportedAsset asset is neither native nor the collateral token
	ErrUnsupportedAsset ErrorCode = 100100
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100101
	// ErrInsufficientBalance withdraw amount exceeds what is available
	ErrInsufficientBalance ErrorCode = 100102
	// ErrNoCollateral borrow attempted with zero deposited collateral
	ErrNoCollateral ErrorCode = 100103
	// ErrCollateralRatioTooLow borrow would breach the minimum ratio, or
	// liquidation attempted on a healthy position
	ErrCollateralRatioTooLow ErrorCode = 100104
	// ErrSelfLiquidation liquidator equals the liquidated account
	ErrSelfLiquidation ErrorCode = 100105
	// ErrNothingToRepay no outstanding debt to repay
	ErrNothingToRepay ErrorCode = 100106
	// ErrNothingToLiquidate no outstanding debt to liquidate
	ErrNothingToLiquidate ErrorCode = 100107
	// ErrInvalidPrice oracle returned a non-positive price
	ErrInvalidPrice ErrorCode = 100108
	// ErrAmountOverflow a balance or debt would exceed the ledger bound
	ErrAmountOverflow ErrorCode = 100109
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
