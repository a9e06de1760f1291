package ledger

import (
	"iter"
	"sort"

	"github.com/Snowbotx9/ledger-obsidian-traveller/date"
)

// Journal is the list of transactions the engine computes from.
//
// In a Journal transactions are always in chronological order.
type Journal struct {
	transactions []Transaction
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{transactions: make([]Transaction, 0)}
}

// Append appends transactions and maintains the chronological order.
func (j *Journal) Append(txs ...Transaction) {
	j.transactions = append(j.transactions, txs...)
	j.stableSort()
}

// stableSort sorts the journal by transaction date. The sort is stable,
// meaning transactions on the same day maintain their original relative order.
func (j *Journal) stableSort() {
	sort.SliceStable(j.transactions, func(a, b int) bool {
		return j.transactions[a].Date.Before(j.transactions[b].Date)
	})
}

// Len returns the number of transactions in the journal.
func (j *Journal) Len() int { return len(j.transactions) }

// Transactions returns an iterator over transactions in chronological order.
func (j *Journal) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range j.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// AccountNames returns every account path posted to in the journal, in order
// of first appearance. This is the account universe the daily roller tracks,
// including on days an account had no activity.
func (j *Journal) AccountNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, tx := range j.transactions {
		for _, line := range tx.Lines {
			p, ok := line.(Posting)
			if !ok {
				continue
			}
			if _, dup := seen[p.Account]; dup {
				continue
			}
			seen[p.Account] = struct{}{}
			names = append(names, p.Account)
		}
	}
	return names
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// zero Date for an empty journal.
func (j *Journal) OldestTransactionDate() date.Date {
	if len(j.transactions) == 0 {
		return date.Date{}
	}
	return j.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction, or the
// zero Date for an empty journal.
func (j *Journal) NewestTransactionDate() date.Date {
	if len(j.transactions) == 0 {
		return date.Date{}
	}
	return j.transactions[len(j.transactions)-1].Date
}

// BalanceChanges folds the journal into a sparse day-to-account change map.
func (j *Journal) BalanceChanges() ChangeMap {
	return BalanceChanges(j.transactions)
}

// DailyBalances rolls the journal's balance changes into a dense balance map
// covering every day in [first, last].
func (j *Journal) DailyBalances(first, last date.Date) BalanceMap {
	return DailyBalances(j.AccountNames(), j.BalanceChanges(), first, last)
}
