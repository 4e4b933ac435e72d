package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transfer outbound value movement handed to the custody layer: withdraw
// payouts, borrow disbursements, repay and liquidation refunds, seized
// collateral. The ledger itself never moves value.
type Transfer struct {
	TraceID   string          `json:"trace_id"`
	Opponent  string          `json:"opponent"`
	AssetID   string          `json:"asset_id"`
	Amount    decimal.Decimal `json:"amount"`
	Memo      string          `json:"memo"`
	CreatedAt time.Time       `json:"created_at"`
}

// IWalletService wallet service interface
type IWalletService interface {
	Transfer(ctx context.Context, transfer *Transfer) error
}
