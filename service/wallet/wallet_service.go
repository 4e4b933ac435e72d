package wallet

import (
	"context"
	"time"

	"pawn/core"

	"github.com/fox-one/pkg/logger"
)

type walletService struct{}

// New new wallet service. Custody is external; this implementation only
// journals the outbound transfer so the deployment's transfer mechanism
// can pick it up.
func New() core.IWalletService {
	return &walletService{}
}

func (s *walletService) Transfer(ctx context.Context, transfer *core.Transfer) error {
	if transfer.CreatedAt.IsZero() {
		transfer.CreatedAt = time.Now()
	}

	logger.FromContext(ctx).WithFields(map[string]interface{}{
		"trace":    transfer.TraceID,
		"opponent": transfer.Opponent,
		"asset":    transfer.AssetID,
		"amount":   transfer.Amount,
	}).Infoln("transfer out:", transfer.Memo)

	return nil
}
