package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Liquidation settlement record of one liquidate call
type Liquidation struct {
	Liquidator string `json:"liquidator"`
	UserID     string `json:"user_id"`
	// PaymentAccepted native amount matched against the debt
	PaymentAccepted decimal.Decimal `json:"payment_accepted"`
	// CollateralSeized collateral units transferred to the liquidator
	CollateralSeized decimal.Decimal `json:"collateral_seized"`
	// Refund excess payment returned to the liquidator
	Refund decimal.Decimal `json:"refund"`
	// RemainingDebt debt left on the position after settlement
	RemainingDebt decimal.Decimal `json:"remaining_debt"`
}

// ILiquidationService liquidation engine interface
type ILiquidationService interface {
	Liquidate(ctx context.Context, liquidator, userID string, payment decimal.Decimal, height int64, price decimal.Decimal) (*Liquidation, error)
}

// IBankService the public operation surface. Every method validates the
// asset, serializes on the touched accounts, accrues interest and applies
// the mutation all or nothing.
type IBankService interface {
	Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	Withdraw(ctx context.Context, userID, assetID string, amount decimal.Decimal) (decimal.Decimal, error)
	Borrow(ctx context.Context, userID, assetID string, amount decimal.Decimal) (Ratio, error)
	Repay(ctx context.Context, userID, assetID string, amount decimal.Decimal) (decimal.Decimal, error)
	Liquidate(ctx context.Context, liquidator, assetID, userID string, payment decimal.Decimal) (*Liquidation, error)
	GetCollateralRatio(ctx context.Context, assetID, userID string) (Ratio, error)
	GetBalance(ctx context.Context, userID, assetID string) (decimal.Decimal, error)
}
