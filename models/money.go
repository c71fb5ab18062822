package models

import "github.com/shopspring/decimal"

// Money is a decimal(10,2) amount that keeps its two-digit scale on the
// wire: "3.50" stays "3.50", not "3.5". Arithmetic comes from the embedded
// decimal; JSON input may be a quoted string or a bare number.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MustMoney parses a literal amount and panics on malformed input. For
// constants and tests only.
func MustMoney(s string) Money {
	return Money{Decimal: decimal.RequireFromString(s)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
