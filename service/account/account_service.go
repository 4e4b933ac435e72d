package account

import (
	"context"

	"pawn/core"
	"pawn/internal/ledger"
	"pawn/pkg/number"

	"github.com/shopspring/decimal"
)

type accountService struct {
	system       *core.System
	accountStore core.IAccountStore
	loanStore    core.ILoanStore
}

// New new account service
func New(
	system *core.System,
	accountStore core.IAccountStore,
	loanStore core.ILoanStore,
) core.IAccountService {
	return &accountService{
		system:       system,
		accountStore: accountStore,
		loanStore:    loanStore,
	}
}

func (s *accountService) Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal, height int64) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	account, err := s.accountStore.Find(ctx, userID, assetID)
	if err != nil {
		return err
	}

	version := account.Version
	ledger.AccrueDeposit(account, height)
	account.Deposit = account.Deposit.Add(amount)

	if !number.WithinBound(account.Deposit.Add(account.Interest)) {
		return core.ErrAmountOverflow
	}

	return s.accountStore.Save(ctx, account, version)
}

func (s *accountService) Withdraw(ctx context.Context, userID, assetID string, amount decimal.Decimal, height int64) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	account, err := s.accountStore.Find(ctx, userID, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	version := account.Version
	ledger.AccrueDeposit(account, height)

	available := account.Deposit.Add(account.Interest)
	if !available.IsPositive() {
		return decimal.Zero, core.ErrInsufficientBalance
	}

	// zero means withdraw everything available
	if amount.IsZero() {
		amount = available
	}

	if amount.GreaterThan(available) {
		return decimal.Zero, core.ErrInsufficientBalance
	}

	// interest is consumed first, deposit covers the remainder
	fromInterest := decimal.Min(account.Interest, amount)
	account.Interest = account.Interest.Sub(fromInterest)
	account.Deposit = account.Deposit.Sub(amount.Sub(fromInterest))

	if err := s.accountStore.Save(ctx, account, version); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

func (s *accountService) Balance(ctx context.Context, userID, assetID string, height int64) (decimal.Decimal, error) {
	account, err := s.accountStore.Find(ctx, userID, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	return ledger.AccountBalance(account, height), nil
}

func (s *accountService) CollateralRatio(ctx context.Context, userID string, height int64, price decimal.Decimal) (core.Ratio, error) {
	collateral, err := s.Balance(ctx, userID, s.system.CollateralAssetID, height)
	if err != nil {
		return core.Ratio{}, err
	}

	loans, err := s.loanStore.FindByUser(ctx, userID)
	if err != nil {
		return core.Ratio{}, err
	}

	debt := decimal.Zero
	for _, loan := range loans {
		debt = debt.Add(ledger.LoanDebt(loan, height))
	}

	return ledger.CollateralRatio(price, collateral, debt), nil
}
