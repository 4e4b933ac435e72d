package liquidator

import (
	"context"
	"time"

	"pawn/core"
	"pawn/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker scans the loan book for undercollateralized positions. Settlement
// stays third-party-triggered through the bank api; the scan only surfaces
// candidates.
type Worker struct {
	worker.BaseJob
	System         *core.System
	LoanStore      core.ILoanStore
	AccountService core.IAccountService
	BlockService   core.IBlockService
	PriceService   core.IPriceOracleService
}

// New new liquidator worker
func New(
	system *core.System,
	location string,
	loanStore core.ILoanStore,
	accountService core.IAccountService,
	blockService core.IBlockService,
	priceService core.IPriceOracleService,
) *Worker {
	job := Worker{
		System:         system,
		LoanStore:      loanStore,
		AccountService: accountService,
		BlockService:   blockService,
		PriceService:   priceService,
	}

	l, _ := time.LoadLocation(location)
	job.Cron = cron.New(cron.WithLocation(l))
	spec := "@every 30s"
	job.Cron.AddFunc(spec, job.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "liquidator")

	height, e := w.BlockService.CurrentBlock(ctx)
	if e != nil {
		log.WithError(e).Errorln("current block")
		return e
	}

	price, e := w.PriceService.GetPrice(ctx, w.System.CollateralAssetID)
	if e != nil {
		log.WithError(e).Errorln("pull price")
		return e
	}

	users, e := w.LoanStore.Users(ctx)
	if e != nil {
		return e
	}

	for _, userID := range users {
		ratio, e := w.AccountService.CollateralRatio(ctx, userID, height, price)
		if e != nil {
			log.WithError(e).Errorln("collateral ratio:", userID)
			continue
		}

		if ratio.LessThan(w.System.MinCollateralRatio) {
			log.WithFields(map[string]interface{}{
				"user":  userID,
				"ratio": ratio.String(),
				"block": height,
			}).Infoln("liquidation candidate")
		}
	}

	return nil
}
