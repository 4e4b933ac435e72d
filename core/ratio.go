package core

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Ratio is a collateral ratio expressed in 2-decimal percent units
// (150% is 15000), floored. A position with collateral and no debt has an
// unbounded ratio, tagged Infinite instead of a magic maximum value.
type Ratio struct {
	Infinite bool            `json:"infinite,omitempty"`
	Value    decimal.Decimal `json:"value"`
}

// RatioValue bounded ratio
func RatioValue(v decimal.Decimal) Ratio {
	return Ratio{Value: v}
}

// InfiniteRatio unbounded ratio, debt free with collateral
func InfiniteRatio() Ratio {
	return Ratio{Infinite: true}
}

// LessThan reports whether the ratio is below min. An infinite ratio is
// below nothing.
func (r Ratio) LessThan(min decimal.Decimal) bool {
	if r.Infinite {
		return false
	}

	return r.Value.LessThan(min)
}

func (r Ratio) String() string {
	if r.Infinite {
		return "+Inf"
	}

	return r.Value.String()
}

// MarshalJSON renders the floored percent number, or "+Inf" for a
// debt-free position.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.Infinite {
		return json.Marshal("+Inf")
	}

	return json.Marshal(r.Value)
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil && s == "+Inf" {
		*r = InfiniteRatio()
		return nil
	}

	var v decimal.Decimal
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*r = RatioValue(v)
	return nil
}
