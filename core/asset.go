package core

import "github.com/shopspring/decimal"

// NativeAssetID is the sentinel asset id of the chain's base value unit.
// Every other asset id must match the configured collateral token.
const NativeAssetID = "native"

// System holds the two-asset configuration shared by all services.
type System struct {
	Genesis            int64
	SecondsPerBlock    int64
	CollateralAssetID  string
	MinCollateralRatio decimal.Decimal
}

// SupportedAsset reports whether the asset can be used on any operation.
func (s *System) SupportedAsset(assetID string) bool {
	return assetID == NativeAssetID || assetID == s.CollateralAssetID
}
