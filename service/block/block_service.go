package block

import (
	"context"

	"pawn/core"
	"pawn/internal/ledger"
)

type service struct {
	system *core.System
}

// New new block service
func New(system *core.System) core.IBlockService {
	return &service{
		system: system,
	}
}

// CurrentBlock current block
func (s *service) CurrentBlock(ctx context.Context) (int64, error) {
	secondsPerBlock := s.system.SecondsPerBlock
	if secondsPerBlock <= 0 {
		secondsPerBlock = ledger.SecondsPerBlock
	}

	return ledger.CurrentBlock(ctx, secondsPerBlock, s.system.Genesis)
}
