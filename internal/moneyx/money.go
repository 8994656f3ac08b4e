// Package moneyx renders decimal amounts in their account currency.
package moneyx

import (
	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders amount with the symbol and fraction digits of the given ISO
// currency code ("EUR" -> "€1,234.00"). Unknown codes fall back to a plain
// two-decimal figure so a bad seed file still renders something readable.
func Format(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}
