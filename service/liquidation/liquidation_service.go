package liquidation

import (
	"context"

	"pawn/core"
	"pawn/internal/ledger"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type liquidationService struct {
	system         *core.System
	accountService core.IAccountService
	loanService    core.ILoanService
}

// New new liquidation service
func New(
	system *core.System,
	accountService core.IAccountService,
	loanService core.ILoanService,
) core.ILiquidationService {
	return &liquidationService{
		system:         system,
		accountService: accountService,
		loanService:    loanService,
	}
}

// Liquidate settles an undercollateralized position. The ratio is
// recomputed here, at call time, under the caller's locks; a stale ratio
// is never trusted.
func (s *liquidationService) Liquidate(ctx context.Context, liquidator, userID string, payment decimal.Decimal, height int64, price decimal.Decimal) (*core.Liquidation, error) {
	if liquidator == userID {
		return nil, core.ErrSelfLiquidation
	}

	if !payment.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	debt, err := s.loanService.TotalDebt(ctx, userID, height)
	if err != nil {
		return nil, err
	}

	if !debt.IsPositive() {
		return nil, core.ErrNothingToLiquidate
	}

	ratio, err := s.accountService.CollateralRatio(ctx, userID, height, price)
	if err != nil {
		return nil, err
	}

	if !ratio.LessThan(s.system.MinCollateralRatio) {
		return nil, core.ErrCollateralRatioTooLow
	}

	accepted := decimal.Min(payment, debt)

	if _, err := s.loanService.Repay(ctx, userID, accepted, height); err != nil {
		return nil, err
	}

	// collateral equal in value to the accepted payment, capped at the
	// account's balance; when collateral runs out the matched debt stays
	// cleared and the shortfall is the liquidator's risk
	seize := accepted.DivRound(price, ledger.MaxPrecision+2).Truncate(ledger.MaxPrecision)
	available, err := s.accountService.Balance(ctx, userID, s.system.CollateralAssetID, height)
	if err != nil {
		return nil, err
	}
	if seize.GreaterThan(available) {
		seize = available
	}

	if seize.IsPositive() {
		if _, err := s.accountService.Withdraw(ctx, userID, s.system.CollateralAssetID, seize, height); err != nil {
			return nil, err
		}
	}

	liquidation := &core.Liquidation{
		Liquidator:       liquidator,
		UserID:           userID,
		PaymentAccepted:  accepted,
		CollateralSeized: seize,
		Refund:           payment.Sub(accepted),
		RemainingDebt:    debt.Sub(accepted),
	}

	logger.FromContext(ctx).WithFields(map[string]interface{}{
		"liquidator": liquidator,
		"user":       userID,
		"accepted":   accepted,
		"seized":     seize,
		"refund":     liquidation.Refund,
	}).Infoln("position liquidated")

	return liquidation, nil
}
