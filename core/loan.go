package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Loan one borrow entry. A borrower may hold several entries at once;
// repayments settle the oldest entry first, interest before principal.
type Loan struct {
	ID            uint64          `json:"id"`
	UserID        string          `json:"user_id"`
	Principal     decimal.Decimal `json:"principal"`
	Interest      decimal.Decimal `json:"interest"`
	AccrualHeight int64           `json:"accrual_height"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Repayment settlement result of one repay call
type Repayment struct {
	// Principal remaining unpaid principal across all entries
	Principal decimal.Decimal `json:"principal"`
	// InterestPaid portion of the payment applied to accrued interest
	InterestPaid decimal.Decimal `json:"interest_paid"`
	// PrincipalPaid portion of the payment applied to principal
	PrincipalPaid decimal.Decimal `json:"principal_paid"`
	// Refund overpayment returned to the sender
	Refund decimal.Decimal `json:"refund"`
}

// ILoanStore loan store interface
type ILoanStore interface {
	Create(ctx context.Context, loan *Loan) error
	// FindByUser returns the borrower's entries, oldest first.
	FindByUser(ctx context.Context, userID string) ([]*Loan, error)
	// Save replaces the borrower's entries in one step, keeping repayments
	// all or nothing.
	Save(ctx context.Context, userID string, loans []*Loan) error
	Users(ctx context.Context) ([]string, error)
}

// ILoanService loan book interface
type ILoanService interface {
	// Borrow appends a loan entry and returns the amount actually
	// borrowed and the resulting collateral ratio. A zero amount borrows
	// the maximum that keeps the ratio at the minimum.
	Borrow(ctx context.Context, userID string, amount decimal.Decimal, height int64, price decimal.Decimal) (decimal.Decimal, Ratio, error)
	Repay(ctx context.Context, userID string, amount decimal.Decimal, height int64) (*Repayment, error)
	// TotalDebt sums principal + interest + pending interest at height.
	TotalDebt(ctx context.Context, userID string, height int64) (decimal.Decimal, error)
}
