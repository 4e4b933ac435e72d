package loan

import (
	"context"

	"pawn/core"
	"pawn/internal/ledger"
	"pawn/pkg/number"

	"github.com/shopspring/decimal"
)

type loanService struct {
	system       *core.System
	accountStore core.IAccountStore
	loanStore    core.ILoanStore
}

// New new loan service
func New(
	system *core.System,
	accountStore core.IAccountStore,
	loanStore core.ILoanStore,
) core.ILoanService {
	return &loanService{
		system:       system,
		accountStore: accountStore,
		loanStore:    loanStore,
	}
}

func (s *loanService) Borrow(ctx context.Context, userID string, amount decimal.Decimal, height int64, price decimal.Decimal) (decimal.Decimal, core.Ratio, error) {
	if amount.IsNegative() {
		return decimal.Zero, core.Ratio{}, core.ErrInvalidAmount
	}

	collateralAccount, err := s.accountStore.Find(ctx, userID, s.system.CollateralAssetID)
	if err != nil {
		return decimal.Zero, core.Ratio{}, err
	}

	collateral := ledger.AccountBalance(collateralAccount, height)
	if !collateral.IsPositive() {
		return decimal.Zero, core.Ratio{}, core.ErrNoCollateral
	}

	debt, err := s.TotalDebt(ctx, userID, height)
	if err != nil {
		return decimal.Zero, core.Ratio{}, err
	}

	// zero means borrow the maximum that keeps the ratio at the minimum
	if amount.IsZero() {
		amount = ledger.MaxBorrowable(price, collateral, debt, s.system.MinCollateralRatio)
		if !amount.IsPositive() {
			return decimal.Zero, core.Ratio{}, core.ErrCollateralRatioTooLow
		}
	}

	newDebt := debt.Add(amount)
	if !number.WithinBound(newDebt) {
		return decimal.Zero, core.Ratio{}, core.ErrAmountOverflow
	}

	ratio := ledger.CollateralRatio(price, collateral, newDebt)
	if ratio.LessThan(s.system.MinCollateralRatio) {
		return decimal.Zero, core.Ratio{}, core.ErrCollateralRatioTooLow
	}

	loan := &core.Loan{
		UserID:        userID,
		Principal:     amount,
		Interest:      decimal.Zero,
		AccrualHeight: height,
	}
	if err := s.loanStore.Create(ctx, loan); err != nil {
		return decimal.Zero, core.Ratio{}, err
	}

	return amount, ratio, nil
}

func (s *loanService) Repay(ctx context.Context, userID string, amount decimal.Decimal, height int64) (*core.Repayment, error) {
	if !amount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	loans, err := s.loanStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalDebt := decimal.Zero
	for _, loan := range loans {
		ledger.AccrueLoan(loan, height)
		totalDebt = totalDebt.Add(loan.Principal).Add(loan.Interest)
	}

	if !totalDebt.IsPositive() {
		return nil, core.ErrNothingToRepay
	}

	repayment := &core.Repayment{
		Principal:     decimal.Zero,
		InterestPaid:  decimal.Zero,
		PrincipalPaid: decimal.Zero,
		Refund:        decimal.Zero,
	}

	// overpayment is refunded, never retained
	left := amount
	if left.GreaterThan(totalDebt) {
		repayment.Refund = left.Sub(totalDebt)
		left = totalDebt
	}

	// oldest entry first, interest before principal
	remaining := make([]*core.Loan, 0, len(loans))
	for _, loan := range loans {
		fromInterest := decimal.Min(loan.Interest, left)
		loan.Interest = loan.Interest.Sub(fromInterest)
		left = left.Sub(fromInterest)
		repayment.InterestPaid = repayment.InterestPaid.Add(fromInterest)

		fromPrincipal := decimal.Min(loan.Principal, left)
		loan.Principal = loan.Principal.Sub(fromPrincipal)
		left = left.Sub(fromPrincipal)
		repayment.PrincipalPaid = repayment.PrincipalPaid.Add(fromPrincipal)

		if loan.Principal.IsPositive() || loan.Interest.IsPositive() {
			remaining = append(remaining, loan)
			repayment.Principal = repayment.Principal.Add(loan.Principal)
		}
	}

	if err := s.loanStore.Save(ctx, userID, remaining); err != nil {
		return nil, err
	}

	return repayment, nil
}

func (s *loanService) TotalDebt(ctx context.Context, userID string, height int64) (decimal.Decimal, error) {
	loans, err := s.loanStore.FindByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	debt := decimal.Zero
	for _, loan := range loans {
		debt = debt.Add(ledger.LoanDebt(loan, height))
	}

	return debt, nil
}
