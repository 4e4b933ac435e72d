package core

import "context"

// IBlockService block clock driving interest accrual
type IBlockService interface {
	CurrentBlock(ctx context.Context) (int64, error)
}
