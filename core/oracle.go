package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PriceTicker price of one asset denominated in the native asset
type PriceTicker struct {
	AssetID   string          `json:"asset_id"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IPriceOracleService price oracle interface. Prices are exogenous and may
// change between calls; callers snapshot one price per operation and must
// not cache it beyond that.
type IPriceOracleService interface {
	GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error)
}
