package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Account deposit balance of one user in one asset. Interest folded at
// AccrualHeight; interest accrued after that height is pending until the
// next accrual.
type Account struct {
	UserID        string          `json:"user_id"`
	AssetID       string          `json:"asset_id"`
	Deposit       decimal.Decimal `json:"deposit"`
	Interest      decimal.Decimal `json:"interest"`
	AccrualHeight int64           `json:"accrual_height"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IAccountStore account store interface
type IAccountStore interface {
	// Find returns the account for (userID, assetID), zero initialized if
	// it has never been touched.
	Find(ctx context.Context, userID, assetID string) (*Account, error)
	// Save persists the account. version is the version the caller read;
	// a mismatch fails the whole operation.
	Save(ctx context.Context, account *Account, version int64) error
	All(ctx context.Context) ([]*Account, error)
}

// IAccountService account ledger interface
type IAccountService interface {
	Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal, height int64) error
	// Withdraw returns the amount actually paid out. A zero amount means
	// withdraw everything available.
	Withdraw(ctx context.Context, userID, assetID string, amount decimal.Decimal, height int64) (decimal.Decimal, error)
	// Balance is a read only projection: deposit + interest + pending
	// interest at height. It does not persist the accrual.
	Balance(ctx context.Context, userID, assetID string, height int64) (decimal.Decimal, error)
	// CollateralRatio combines the collateral balance, the loan book debt
	// and the snapshotted price.
	CollateralRatio(ctx context.Context, userID string, height int64, price decimal.Decimal) (Ratio, error)
}
