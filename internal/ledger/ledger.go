// Package ledger derives display-ready figures from one account's transaction
// history. Every function is pure: inputs are never mutated.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/bankist/internal/bank"
)

var one = decimal.NewFromInt(1)

// Balance is the sum of all movements.
func Balance(acc *bank.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range acc.Movements {
		sum = sum.Add(m.Amount)
	}
	return sum
}

// Inflow is the sum of all deposits. Zero when the account has none.
func Inflow(acc *bank.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range acc.Movements {
		if m.Amount.Sign() > 0 {
			sum = sum.Add(m.Amount)
		}
	}
	return sum
}

// Outflow is the magnitude of all withdrawals, as a non-negative figure.
// Zero when the account has none.
func Outflow(acc *bank.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range acc.Movements {
		if m.Amount.Sign() < 0 {
			sum = sum.Add(m.Amount)
		}
	}
	return sum.Abs()
}

// Interest sums the per-deposit interest contributions, skipping any
// contribution below 1.0. The rate is applied as a literal multiplier
// (amount × rate, no division by 100); the original product behaves this
// way and correcting it would silently change every displayed figure.
func Interest(acc *bank.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range acc.Movements {
		if m.Amount.Sign() <= 0 {
			continue
		}
		c := m.Amount.Mul(acc.InterestRate)
		if c.GreaterThanOrEqual(one) {
			sum = sum.Add(c)
		}
	}
	return sum
}
