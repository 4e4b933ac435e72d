package ledger

import (
	"pawn/core"

	"github.com/shopspring/decimal"
)

var (
	// SecondsPerBlock seconds per block
	SecondsPerBlock int64 = 15
	// DepositRate deposit interest, percent per 100 blocks, simple
	DepositRate = decimal.NewFromInt(3)
	// LoanRate loan interest, percent per 100 blocks, simple
	LoanRate = decimal.NewFromInt(5)
	// MinCollateralRatio minimum collateral ratio in 2-decimal percent
	// units (150.00%)
	MinCollateralRatio = decimal.NewFromInt(15000)
	// MaxPrecision ledger precision
	MaxPrecision int32 = 18

	percentScale = decimal.NewFromInt(10000)
)

// Accrue simple interest of principal over elapsed blocks at rate percent
// per 100 blocks:
//
//	delta = principal * rate * blocks / 10000
//
// Multiply before divide, truncating once at the end. The divide carries
// two guard digits past the ledger precision so the final truncate, not
// the division's rounding, decides the last digit.
func Accrue(principal, rate decimal.Decimal, elapsedBlocks int64) decimal.Decimal {
	if elapsedBlocks <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}

	blocks := decimal.NewFromInt(elapsedBlocks)
	return principal.Mul(rate).Mul(blocks).
		DivRound(percentScale, MaxPrecision+2).
		Truncate(MaxPrecision)
}

// AccrueDeposit folds pending deposit interest into the account and
// advances the accrual height. Accruing twice at one height is a no-op the
// second time.
func AccrueDeposit(account *core.Account, height int64) {
	if height <= account.AccrualHeight {
		return
	}

	delta := Accrue(account.Deposit, DepositRate, height-account.AccrualHeight)
	account.Interest = account.Interest.Add(delta)
	account.AccrualHeight = height
}

// AccountBalance deposit + interest + pending interest at height, without
// mutating the account.
func AccountBalance(account *core.Account, height int64) decimal.Decimal {
	pending := Accrue(account.Deposit, DepositRate, height-account.AccrualHeight)
	return account.Deposit.Add(account.Interest).Add(pending)
}

// AccrueLoan folds pending loan interest into the entry and advances the
// accrual height.
func AccrueLoan(loan *core.Loan, height int64) {
	if height <= loan.AccrualHeight {
		return
	}

	delta := Accrue(loan.Principal, LoanRate, height-loan.AccrualHeight)
	loan.Interest = loan.Interest.Add(delta)
	loan.AccrualHeight = height
}

// LoanDebt principal + interest + pending interest at height, without
// mutating the entry.
func LoanDebt(loan *core.Loan, height int64) decimal.Decimal {
	pending := Accrue(loan.Principal, LoanRate, height-loan.AccrualHeight)
	return loan.Principal.Add(loan.Interest).Add(pending)
}
