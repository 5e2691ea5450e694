package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats a decimal amount in the given ISO currency, with the
// currency's own grapheme and fraction rules (e.g. "€12.50").
func Amount(d decimal.Decimal, currency string) string {
	cur := money.New(0, currency).Currency()
	return cur.Formatter().Format(d.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// SignedAmount is Amount with an explicit '+' on positive values. Zero is
// rendered as a dash.
func SignedAmount(d decimal.Decimal, currency string) string {
	if d.IsZero() {
		return "-"
	}
	if d.IsPositive() {
		return "+" + Amount(d, currency)
	}
	return Amount(d, currency)
}
