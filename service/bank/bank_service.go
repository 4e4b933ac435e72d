package bank

import (
	"context"

	"pawn/core"
	"pawn/pkg/id"
	"pawn/pkg/locker"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type bankService struct {
	system             *core.System
	locker             *locker.Locker
	blockService       core.IBlockService
	oracleService      core.IPriceOracleService
	accountService     core.IAccountService
	loanService        core.ILoanService
	liquidationService core.ILiquidationService
	walletService      core.IWalletService
	transactions       core.TransactionStore
}

// New new bank service, the public operation surface. One lock per user
// serializes every mutation of that user's accounts and loans; the
// cross-account liquidate takes both users' locks in sorted order.
func New(
	system *core.System,
	blockService core.IBlockService,
	oracleService core.IPriceOracleService,
	accountService core.IAccountService,
	loanService core.ILoanService,
	liquidationService core.ILiquidationService,
	walletService core.IWalletService,
	transactions core.TransactionStore,
) core.IBankService {
	return &bankService{
		system:             system,
		locker:             locker.New(),
		blockService:       blockService,
		oracleService:      oracleService,
		accountService:     accountService,
		loanService:        loanService,
		liquidationService: liquidationService,
		walletService:      walletService,
		transactions:       transactions,
	}
}

func (s *bankService) validateAsset(assetID string) error {
	if !s.system.SupportedAsset(assetID) {
		return core.ErrUnsupportedAsset
	}

	return nil
}

func (s *bankService) journal(ctx context.Context, typ, userID, assetID string, amount decimal.Decimal, data map[string]interface{}) {
	transaction := &core.Transaction{
		TraceID: id.GenTraceID(),
		Type:    typ,
		UserID:  userID,
		AssetID: assetID,
		Amount:  amount,
	}
	if err := transaction.SetData(data); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("encode transaction data")
	}

	if err := s.transactions.Create(ctx, transaction); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("journal transaction")
	}
}

func (s *bankService) Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	if err := s.validateAsset(assetID); err != nil {
		return err
	}

	unlock := s.locker.Lock(userID)
	defer unlock()

	height, err := s.blockService.CurrentBlock(ctx)
	if err != nil {
		return err
	}

	if err := s.accountService.Deposit(ctx, userID, assetID, amount, height); err != nil {
		return err
	}

	s.journal(ctx, core.TransactionTypeDeposit, userID, assetID, amount, map[string]interface{}{
		core.TransactionKeyBlock: height,
	})

	return nil
}

func (s *bankService) Withdraw(ctx context.Context, userID, assetID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := s.validateAsset(assetID); err != nil {
		return decimal.Zero, err
	}

	unlock := s.locker.Lock(userID)
	defer unlock()

	height, err := s.blockService.CurrentBlock(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	paid, err := s.accountService.Withdraw(ctx, userID, assetID, amount, height)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.walletService.Transfer(ctx, &core.Transfer{
		TraceID:  id.GenTraceID(),
		Opponent: userID,
		AssetID:  assetID,
		Amount:   paid,
		Memo:     "withdraw",
	}); err != nil {
		return decimal.Zero, err
	}

	s.journal(ctx, core.TransactionTypeWithdraw, userID, assetID, paid, map[string]interface{}{
		core.TransactionKeyBlock: height,
	})

	return paid, nil
}

func (s *bankService) Borrow(ctx context.Context, userID, assetID string, amount decimal.Decimal) (core.Ratio, error) {
	// only the native asset is borrowable
	if assetID != core.NativeAssetID {
		return core.Ratio{}, core.ErrUnsupportedAsset
	}

	unlock := s.locker.Lock(userID)
	defer unlock()

	height, err := s.blockService.CurrentBlock(ctx)
	if err != nil {
		return core.Ratio{}, err
	}

	// one price snapshot per operation; the mutation below stays
	// consistent with the price observed here
	price, err := s.oracleService.GetPrice(ctx, s.system.CollateralAssetID)
	if err != nil {
		return core.Ratio{}, err
	}

	borrowed, ratio, err := s.loanService.Borrow(ctx, userID, amount, height, price)
	if err != nil {
		return core.Ratio{}, err
	}

	if err := s.walletService.Transfer(ctx, &core.Transfer{
		TraceID:  id.GenTraceID(),
		Opponent: userID,
		AssetID:  core.NativeAssetID,
		Amount:   borrowed,
		Memo:     "borrow",
	}); err != nil {
		return core.Ratio{}, err
	}

	s.journal(ctx, core.TransactionTypeBorrow, userID, assetID, borrowed, map[string]interface{}{
		core.TransactionKeyBlock: height,
		core.TransactionKeyPrice: price,
		core.TransactionKeyRatio: ratio,
	})

	return ratio, nil
}

func (s *bankService) Repay(ctx context.Context, userID, assetID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if assetID != core.NativeAssetID {
		return decimal.Zero, core.ErrUnsupportedAsset
	}

	unlock := s.locker.Lock(userID)
	defer unlock()

	height, err := s.blockService.CurrentBlock(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	repayment, err := s.loanService.Repay(ctx, userID, amount, height)
	if err != nil {
		return decimal.Zero, err
	}

	if repayment.Refund.IsPositive() {
		if err := s.walletService.Transfer(ctx, &core.Transfer{
			TraceID:  id.GenTraceID(),
			Opponent: userID,
			AssetID:  core.NativeAssetID,
			Amount:   repayment.Refund,
			Memo:     "repay refund",
		}); err != nil {
			return decimal.Zero, err
		}
	}

	s.journal(ctx, core.TransactionTypeRepay, userID, assetID, amount, map[string]interface{}{
		core.TransactionKeyBlock:     height,
		core.TransactionKeyInterest:  repayment.InterestPaid,
		core.TransactionKeyPrincipal: repayment.Principal,
		core.TransactionKeyRefund:    repayment.Refund,
	})

	return repayment.Principal, nil
}

func (s *bankService) Liquidate(ctx context.Context, liquidator, assetID, userID string, payment decimal.Decimal) (*core.Liquidation, error) {
	// liquidation claims the collateral token
	if assetID != s.system.CollateralAssetID {
		return nil, core.ErrUnsupportedAsset
	}

	// both parties locked in sorted order, deadlock free
	unlock := s.locker.Lock(liquidator, userID)
	defer unlock()

	height, err := s.blockService.CurrentBlock(ctx)
	if err != nil {
		return nil, err
	}

	price, err := s.oracleService.GetPrice(ctx, s.system.CollateralAssetID)
	if err != nil {
		return nil, err
	}

	liquidation, err := s.liquidationService.Liquidate(ctx, liquidator, userID, payment, height, price)
	if err != nil {
		return nil, err
	}

	if liquidation.CollateralSeized.IsPositive() {
		if err := s.walletService.Transfer(ctx, &core.Transfer{
			TraceID:  id.GenTraceID(),
			Opponent: liquidator,
			AssetID:  s.system.CollateralAssetID,
			Amount:   liquidation.CollateralSeized,
			Memo:     "liquidation collateral",
		}); err != nil {
			return nil, err
		}
	}

	if liquidation.Refund.IsPositive() {
		if err := s.walletService.Transfer(ctx, &core.Transfer{
			TraceID:  id.GenTraceID(),
			Opponent: liquidator,
			AssetID:  core.NativeAssetID,
			Amount:   liquidation.Refund,
			Memo:     "liquidation refund",
		}); err != nil {
			return nil, err
		}
	}

	s.journal(ctx, core.TransactionTypeLiquidate, userID, assetID, liquidation.PaymentAccepted, map[string]interface{}{
		core.TransactionKeyBlock:      height,
		core.TransactionKeyPrice:      price,
		core.TransactionKeyLiquidator: liquidator,
		core.TransactionKeyCollateral: liquidation.CollateralSeized,
		core.TransactionKeyRefund:     liquidation.Refund,
	})

	return liquidation, nil
}

func (s *bankService) GetCollateralRatio(ctx context.Context, assetID, userID string) (core.Ratio, error) {
	if err := s.validateAsset(assetID); err != nil {
		return core.Ratio{}, err
	}

	unlock := s.locker.Lock(userID)
	defer unlock()

	height, err := s.blockService.CurrentBlock(ctx)
	if err != nil {
		return core.Ratio{}, err
	}

	price, err := s.oracleService.GetPrice(ctx, s.system.CollateralAssetID)
	if err != nil {
		return core.Ratio{}, err
	}

	return s.accountService.CollateralRatio(ctx, userID, height, price)
}

func (s *bankService) GetBalance(ctx context.Context, userID, assetID string) (decimal.Decimal, error) {
	if err := s.validateAsset(assetID); err != nil {
		return decimal.Zero, err
	}

	unlock := s.locker.Lock(userID)
	defer unlock()

	height, err := s.blockService.CurrentBlock(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return s.accountService.Balance(ctx, userID, assetID, height)
}
