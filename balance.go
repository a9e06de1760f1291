package ledger

import (
	"github.com/Snowbotx9/ledger-obsidian-traveller/date"
)

// ChangeMap is a sparse table of net balance deltas: bucket key to account
// path to the signed net change recorded that day. A missing day means no
// activity; a missing account within a day means zero net change. Zero and
// absent are equivalent.
type ChangeMap map[string]map[string]Amount

// BalanceMap is a dense table of cumulative balances: one entry per calendar
// day in range, every tracked account present on every day.
type BalanceMap map[string]map[string]Amount

// getOrInsert returns m[k], first inserting the value produced by mk when the
// key is absent.
func getOrInsert[K comparable, V any](m map[K]V, k K, mk func() V) V {
	v, ok := m[k]
	if !ok {
		v = mk()
		m[k] = v
	}
	return v
}

// BalanceChanges folds every posting of every transaction into a ChangeMap.
// Multiple postings touching the same account on the same day are summed.
// Comment lines are skipped.
func BalanceChanges(txs []Transaction) ChangeMap {
	changes := make(ChangeMap)
	for _, tx := range txs {
		key := Key(tx.Date)
		for _, line := range tx.Lines {
			p, ok := line.(Posting)
			if !ok {
				continue
			}
			day := getOrInsert(changes, key, func() map[string]Amount { return make(map[string]Amount) })
			day[p.Account] = day[p.Account].Add(p.Amount)
		}
	}
	return changes
}

// DailyBalances rolls the sparse change map forward into cumulative balances
// for every calendar day in [first, last], visiting each day even when no
// transaction occurred so that later chart lookups always find an entry.
//
// Every account starts at 0 on the day before first: deltas dated earlier
// than first are not reflected, so callers wanting true running balances
// must pass the journal's actual first date.
//
// Days without changes share the previous day's per-account map instead of
// copying it. Callers must treat the returned maps as read-only; mutating
// one day would corrupt every aliased neighbor.
func DailyBalances(accounts []string, changes ChangeMap, first, last date.Date) BalanceMap {
	dense := make(BalanceMap)
	prev := make(map[string]Amount, len(accounts))
	for _, account := range accounts {
		prev[account] = Amount{}
	}
	for d := first; !d.After(last); d = d.Add(1) {
		key := Key(d)
		delta, ok := changes[key]
		if !ok {
			dense[key] = prev
			continue
		}
		day := make(map[string]Amount, len(accounts))
		for _, account := range accounts {
			day[account] = prev[account].Add(delta[account])
		}
		dense[key] = day
		prev = day
	}
	return dense
}
