package core

import (
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Config pawn config
type Config struct {
	App         App         `json:"app"`
	DB          db.Config   `json:"db"`
	PriceOracle PriceOracle `json:"price_oracle"`
	Bank        Bank        `json:"bank"`
}

// App app config
type App struct {
	Genesis         int64  `json:"genesis"`
	SecondsPerBlock int64  `json:"seconds_per_block"`
	Location        string `json:"location"`
}

// PriceOracle price oracle config
type PriceOracle struct {
	EndPoint string `json:"end_point"`
}

// Bank bank config
type Bank struct {
	CollateralAssetID  string          `json:"collateral_asset_id"`
	MinCollateralRatio decimal.Decimal `json:"min_collateral_ratio"`
}
