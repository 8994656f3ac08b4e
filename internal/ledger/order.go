package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/bankist/internal/bank"
)

// Entry pairs a movement with its original insertion index, keeping the
// amount-to-date alignment intact across reordering.
type Entry struct {
	Amount decimal.Decimal
	Date   time.Time
	Index  int
}

// Ordered returns the account's movements in display order: insertion order
// when ascending is false, stable ascending-by-amount order when true. It
// always sorts a copy, never the account's own slice.
func Ordered(acc *bank.Account, ascending bool) []Entry {
	entries := make([]Entry, len(acc.Movements))
	for i, m := range acc.Movements {
		entries[i] = Entry{Amount: m.Amount, Date: m.Date, Index: i}
	}
	if ascending {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Amount.LessThan(entries[j].Amount)
		})
	}
	return entries
}
