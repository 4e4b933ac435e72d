package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// TransactionTypeDeposit deposit
	TransactionTypeDeposit = "deposit"
	// TransactionTypeWithdraw withdraw
	TransactionTypeWithdraw = "withdraw"
	// TransactionTypeBorrow borrow
	TransactionTypeBorrow = "borrow"
	// TransactionTypeRepay repay
	TransactionTypeRepay = "repay"
	// TransactionTypeLiquidate liquidate
	TransactionTypeLiquidate = "liquidate"
)

const (
	// TransactionKeyBlock block height :int64
	TransactionKeyBlock = "block"
	// TransactionKeyPrice price :decimal
	TransactionKeyPrice = "price"
	// TransactionKeyInterest interest :decimal
	TransactionKeyInterest = "interest"
	// TransactionKeyPrincipal principal :decimal
	TransactionKeyPrincipal = "principal"
	// TransactionKeyRefund refund :decimal
	TransactionKeyRefund = "refund"
	// TransactionKeyRatio collateral ratio :ratio
	TransactionKeyRatio = "ratio"
	// TransactionKeyCollateral seized collateral :decimal
	TransactionKeyCollateral = "collateral"
	// TransactionKeyLiquidator liquidator :string
	TransactionKeyLiquidator = "liquidator"
)

// Transaction journal record written on every state change
type Transaction struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID   string          `sql:"size:36;unique_index:idx_transactions_trace_id" json:"trace_id"`
	Type      string          `sql:"size:24;index:idx_transactions_type" json:"type"`
	UserID    string          `sql:"size:36;index:idx_transactions_user_id" json:"user_id"`
	AssetID   string          `sql:"size:36" json:"asset_id"`
	Amount    decimal.Decimal `sql:"type:decimal(64,18)" json:"amount"`
	Data      string          `sql:"type:text" json:"data"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP;index:idx_transactions_created_at" json:"created_at"`
}

// SetData marshals the extra payload into the data column.
func (t *Transaction) SetData(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	t.Data = string(b)
	return nil
}

// TransactionStore transaction store interface
type TransactionStore interface {
	Create(ctx context.Context, transaction *Transaction) error
	List(ctx context.Context, offset time.Time, limit int) ([]*Transaction, error)
}
