package number

import (
	"github.com/shopspring/decimal"
)

// MaxAmount ledger bound. Any balance or debt beyond it fails the
// operation instead of wrapping.
var MaxAmount = decimal.New(1, 32)

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func Ceil(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Ceil().Shift(-precision)
}

// WithinBound reports whether the amount fits the ledger bound.
func WithinBound(d decimal.Decimal) bool {
	return d.LessThanOrEqual(MaxAmount)
}
