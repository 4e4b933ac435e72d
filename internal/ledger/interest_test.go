package ledger

import (
	"testing"

	"pawn/core"
	"pawn/pkg/number"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccrue(t *testing.T) {
	// 100 units at 3% per 100 blocks over 100 blocks
	delta := Accrue(number.Decimal("100"), DepositRate, 100)
	assert.True(t, delta.Equal(number.Decimal("3")), "got %s", delta)

	// 10 units at 5% per 100 blocks over 100 blocks
	delta = Accrue(number.Decimal("10"), LoanRate, 100)
	assert.True(t, delta.Equal(number.Decimal("0.5")), "got %s", delta)

	// nothing accrues backwards or on empty principal
	assert.True(t, Accrue(number.Decimal("100"), DepositRate, 0).IsZero())
	assert.True(t, Accrue(number.Decimal("100"), DepositRate, -5).IsZero())
	assert.True(t, Accrue(decimal.Zero, DepositRate, 100).IsZero())
}

func TestAccrueDepositIdempotent(t *testing.T) {
	account := &core.Account{
		UserID:  "u1",
		AssetID: core.NativeAssetID,
		Deposit: number.Decimal("100"),
	}

	AccrueDeposit(account, 100)
	require.True(t, account.Interest.Equal(number.Decimal("3")))
	require.Equal(t, int64(100), account.AccrualHeight)

	// second accrual at the same height adds nothing
	AccrueDeposit(account, 100)
	assert.True(t, account.Interest.Equal(number.Decimal("3")))

	// the height never moves backwards
	AccrueDeposit(account, 50)
	assert.Equal(t, int64(100), account.AccrualHeight)
	assert.True(t, account.Interest.Equal(number.Decimal("3")))
}

func TestAccountBalanceProjection(t *testing.T) {
	account := &core.Account{
		Deposit:       number.Decimal("100"),
		Interest:      number.Decimal("1"),
		AccrualHeight: 50,
	}

	// 50 pending blocks: 100 * 3% * 0.5 = 1.5
	balance := AccountBalance(account, 100)
	assert.True(t, balance.Equal(number.Decimal("102.5")), "got %s", balance)

	// projection must not persist the accrual
	assert.True(t, account.Interest.Equal(number.Decimal("1")))
	assert.Equal(t, int64(50), account.AccrualHeight)
}

func TestLoanDebt(t *testing.T) {
	loan := &core.Loan{
		Principal: number.Decimal("10"),
	}

	debt := LoanDebt(loan, 100)
	assert.True(t, debt.Equal(number.Decimal("10.5")), "got %s", debt)

	AccrueLoan(loan, 100)
	assert.True(t, loan.Interest.Equal(number.Decimal("0.5")))
	assert.True(t, LoanDebt(loan, 100).Equal(number.Decimal("10.5")))
}

func TestAccrueTruncates(t *testing.T) {
	// tiny principals truncate down at the ledger precision
	delta := Accrue(number.Decimal("0.000000000000000001"), DepositRate, 1)
	assert.True(t, delta.IsZero(), "got %s", delta)

	delta = Accrue(number.Decimal("0.0000000000000001"), DepositRate, 100)
	assert.True(t, delta.Equal(number.Decimal("0.000000000000000003")), "got %s", delta)

	// the divide must not round half-up short of the ledger precision
	delta = Accrue(number.Decimal("0.33333333333333333"), DepositRate, 100)
	assert.True(t, delta.Equal(number.Decimal("0.009999999999999999")), "got %s", delta)
}
