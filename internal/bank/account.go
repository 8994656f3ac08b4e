// Package bank defines the account model and the in-memory account store.
// Monetary amounts use shopspring/decimal throughout; floats never touch money.
package bank

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a single signed ledger entry. A positive amount is a deposit,
// a negative one a withdrawal.
type Movement struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// Account is one bank account. Handle is derived from Owner, never stored in
// seed files. Balance is intentionally absent: it is always derived from
// Movements by the ledger package, so it can never go stale.
type Account struct {
	Owner        string          `json:"owner"`
	Handle       string          `json:"-"`
	Movements    []Movement      `json:"movements"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	PIN          string          `json:"pin"`
	Currency     string          `json:"currency"`
	Locale       string          `json:"locale"`
}

// DeriveHandle builds the short login identifier for an owner name: the
// lowercase first letter of every word, concatenated in order
// ("Steven Thomas Williams" -> "stw"). Uniqueness across the account set is a
// precondition on the seed data; the store does not enforce it.
func DeriveHandle(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		b.WriteString(word[:1])
	}
	return b.String()
}

// FirstName returns the first word of the owner's display name.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Append records a new movement at the end of the ledger.
func (a *Account) Append(amount decimal.Decimal, date time.Time) {
	a.Movements = append(a.Movements, Movement{Amount: amount, Date: date})
}
