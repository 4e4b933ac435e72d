package loan

import (
	"context"
	"testing"

	"pawn/core"
	"pawn/pkg/number"
	accountstore "pawn/store/account"
	loanstore "pawn/store/loan"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collateralAssetID = "collateral-token"

func newTestService() (core.ILoanService, core.IAccountStore, core.ILoanStore) {
	system := &core.System{
		CollateralAssetID:  collateralAssetID,
		MinCollateralRatio: number.Decimal("15000"),
	}
	accounts := accountstore.New()
	loans := loanstore.New()
	return New(system, accounts, loans), accounts, loans
}

func deposit(t *testing.T, accounts core.IAccountStore, userID string, amount string) {
	t.Helper()

	account, err := accounts.Find(context.Background(), userID, collateralAssetID)
	require.Nil(t, err)
	account.Deposit = number.Decimal(amount)
	require.Nil(t, accounts.Save(context.Background(), account, account.Version))
}

func TestBorrowRequiresCollateral(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestService()

	_, _, err := s.Borrow(ctx, "u1", number.Decimal("10"), 0, number.Decimal("0.5"))
	assert.Equal(t, core.ErrNoCollateral, err)
}

func TestBorrowRatioGuard(t *testing.T) {
	ctx := context.Background()
	s, accounts, _ := newTestService()
	price := number.Decimal("0.5")

	deposit(t, accounts, "u1", "100")

	// 100 collateral at 0.5 is worth 50; max debt at 150% is 33.33
	_, _, err := s.Borrow(ctx, "u1", number.Decimal("34"), 0, price)
	assert.Equal(t, core.ErrCollateralRatioTooLow, err)

	borrowed, ratio, err := s.Borrow(ctx, "u1", number.Decimal("20"), 0, price)
	require.Nil(t, err)
	assert.True(t, borrowed.Equal(number.Decimal("20")))
	assert.False(t, ratio.LessThan(number.Decimal("15000")))

	// every successful borrow leaves the ratio at or above the minimum
	debt, _ := s.TotalDebt(ctx, "u1", 0)
	assert.True(t, debt.Equal(number.Decimal("20")))
}

func TestBorrowMax(t *testing.T) {
	ctx := context.Background()
	s, accounts, _ := newTestService()
	price := number.Decimal("0.5")

	deposit(t, accounts, "u1", "103")

	// zero amount borrows right up to the minimum ratio: 103*0.5/1.5
	borrowed, ratio, err := s.Borrow(ctx, "u1", decimal.Zero, 0, price)
	require.Nil(t, err)
	assert.True(t, borrowed.GreaterThan(number.Decimal("34.33")), "got %s", borrowed)
	assert.True(t, borrowed.LessThan(number.Decimal("34.34")), "got %s", borrowed)
	assert.False(t, ratio.LessThan(number.Decimal("15000")))

	// no headroom left
	_, _, err = s.Borrow(ctx, "u1", decimal.Zero, 0, price)
	assert.Equal(t, core.ErrCollateralRatioTooLow, err)
}

func TestBorrowMaxRepeatingQuotient(t *testing.T) {
	ctx := context.Background()
	s, accounts, _ := newTestService()

	deposit(t, accounts, "u1", "100")

	// 100 collateral at 0.52: the maximum 520000/15000 has a repeating
	// fraction and must still pass the ratio guard
	borrowed, ratio, err := s.Borrow(ctx, "u1", decimal.Zero, 0, number.Decimal("0.52"))
	require.Nil(t, err)
	assert.True(t, borrowed.Equal(number.Decimal("34.666666666666666666")), "got %s", borrowed)
	assert.False(t, ratio.LessThan(number.Decimal("15000")))
}

func TestRepayClearsDebt(t *testing.T) {
	ctx := context.Background()
	s, accounts, loans := newTestService()
	price := number.Decimal("0.5")

	deposit(t, accounts, "u1", "100")

	_, _, err := s.Borrow(ctx, "u1", number.Decimal("10"), 0, price)
	require.Nil(t, err)

	// at height 100 the debt is 10 + 10*5% = 10.5
	debt, err := s.TotalDebt(ctx, "u1", 100)
	require.Nil(t, err)
	assert.True(t, debt.Equal(number.Decimal("10.5")), "got %s", debt)

	repayment, err := s.Repay(ctx, "u1", number.Decimal("10.5"), 100)
	require.Nil(t, err)
	assert.True(t, repayment.Principal.IsZero())
	assert.True(t, repayment.InterestPaid.Equal(number.Decimal("0.5")))
	assert.True(t, repayment.PrincipalPaid.Equal(number.Decimal("10")))
	assert.True(t, repayment.Refund.IsZero())

	left, _ := loans.FindByUser(ctx, "u1")
	assert.Len(t, left, 0)

	_, err = s.Repay(ctx, "u1", number.Decimal("1"), 100)
	assert.Equal(t, core.ErrNothingToRepay, err)
}

func TestRepayInterestFirst(t *testing.T) {
	ctx := context.Background()
	s, accounts, _ := newTestService()
	price := number.Decimal("0.5")

	deposit(t, accounts, "u1", "100")

	_, _, err := s.Borrow(ctx, "u1", number.Decimal("10"), 0, price)
	require.Nil(t, err)

	// paying less than the accrued interest leaves principal untouched
	repayment, err := s.Repay(ctx, "u1", number.Decimal("0.2"), 100)
	require.Nil(t, err)
	assert.True(t, repayment.Principal.Equal(number.Decimal("10")), "got %s", repayment.Principal)
	assert.True(t, repayment.InterestPaid.Equal(number.Decimal("0.2")))
	assert.True(t, repayment.PrincipalPaid.IsZero())

	debt, _ := s.TotalDebt(ctx, "u1", 100)
	assert.True(t, debt.Equal(number.Decimal("10.3")), "got %s", debt)
}

func TestRepayOldestFirst(t *testing.T) {
	ctx := context.Background()
	s, accounts, loans := newTestService()
	price := number.Decimal("0.5")

	deposit(t, accounts, "u1", "100")

	_, _, err := s.Borrow(ctx, "u1", number.Decimal("10"), 0, price)
	require.Nil(t, err)
	_, _, err = s.Borrow(ctx, "u1", number.Decimal("5"), 0, price)
	require.Nil(t, err)

	// 12 covers the first entry in full and part of the second
	repayment, err := s.Repay(ctx, "u1", number.Decimal("12"), 0)
	require.Nil(t, err)
	assert.True(t, repayment.Principal.Equal(number.Decimal("3")), "got %s", repayment.Principal)

	left, _ := loans.FindByUser(ctx, "u1")
	require.Len(t, left, 1)
	assert.True(t, left[0].Principal.Equal(number.Decimal("3")))
}

func TestRepayRefundsOverpayment(t *testing.T) {
	ctx := context.Background()
	s, accounts, _ := newTestService()
	price := number.Decimal("0.5")

	deposit(t, accounts, "u1", "100")

	_, _, err := s.Borrow(ctx, "u1", number.Decimal("10"), 0, price)
	require.Nil(t, err)

	repayment, err := s.Repay(ctx, "u1", number.Decimal("20"), 100)
	require.Nil(t, err)
	assert.True(t, repayment.Refund.Equal(number.Decimal("9.5")), "got %s", repayment.Refund)
	assert.True(t, repayment.Principal.IsZero())
}
