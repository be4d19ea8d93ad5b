package report

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter prints amounts in one currency.
type Formatter struct {
	currency string
	factor   decimal.Decimal
}

// NewFormatter returns a Formatter for the ISO 4217 code. Unknown codes
// fall back to plain two-place decimals.
func NewFormatter(currency string) Formatter {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return Formatter{}
	}
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	return Formatter{currency: cur.Code, factor: factor}
}

// Format renders amount with the currency symbol and grouping, rounded to
// the currency's minor unit.
func (f Formatter) Format(amount decimal.Decimal) string {
	if f.currency == "" {
		return amount.StringFixed(2)
	}
	minor := amount.Mul(f.factor).Round(0)
	return money.New(minor.IntPart(), f.currency).Display()
}
