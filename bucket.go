package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Snowbotx9/ledger-obsidian-traveller/date"
)

// Key returns the bucket key for a calendar day, "{year}.{day-of-year}" with
// the day zero-padded to three digits (e.g. "2023.042"). Within a year,
// lexicographic order of keys equals chronological order; across years use
// CompareKeys, which compares numerically and stays correct when year digit
// widths differ.
func Key(d date.Date) string {
	return fmt.Sprintf("%d.%03d", d.Year(), d.YearDay())
}

// parseKey splits a bucket key into its numeric year and day-of-year.
// Malformed components read as 0, which sorts them before any real key.
func parseKey(key string) (year, day int) {
	y, d, _ := strings.Cut(key, ".")
	year, _ = strconv.Atoi(y)
	day, _ = strconv.Atoi(d)
	return year, day
}

// CompareKeys orders two bucket keys chronologically: year first, then
// day-of-year, both numeric.
func CompareKeys(a, b string) int {
	ay, ad := parseKey(a)
	by, bd := parseKey(b)
	if ay != by {
		if ay < by {
			return -1
		}
		return 1
	}
	if ad != bd {
		if ad < bd {
			return -1
		}
		return 1
	}
	return 0
}

// BucketNames returns the ordered bucket keys for every day from start to end
// inclusive. Only Daily stepping is implemented; the interval argument fixes
// the call signature for future bucket sizes. A start after end yields an
// empty sequence, not an error.
func BucketNames(interval date.Interval, start, end date.Date) []string {
	_ = interval // one calendar day per bucket for every supported interval
	names := []string{}
	for d := start; !d.After(end); d = d.Add(1) {
		names = append(names, Key(d))
	}
	return names
}

// BucketTransactions assigns each transaction to the last bucket whose key
// does not exceed the transaction's own calendar key. Transactions dated
// before every bucket fall into the first bucket; callers clamping the
// visible range to the journal's extent never hit that case. Every bucket is
// present in the result, empty or not. The bucket list must already be in
// chronological order.
func BucketTransactions(buckets []string, txs []Transaction) map[string][]Transaction {
	out := make(map[string][]Transaction, len(buckets))
	for _, b := range buckets {
		out[b] = []Transaction{}
	}
	if len(buckets) == 0 {
		return out
	}
	for _, tx := range txs {
		key := Key(tx.Date)
		assigned := buckets[0]
		for _, b := range buckets {
			if CompareKeys(b, key) <= 0 {
				assigned = b
			}
		}
		out[assigned] = append(out[assigned], tx)
	}
	return out
}
