package ledger

import "strings"

// ChartPoint is one sample of a chart series: a bucket label and a value.
type ChartPoint struct {
	X string `json:"x"`
	Y Amount `json:"y"`
}

// ChartData is a chart series in the same order as the bucket sequence it
// was sampled from.
type ChartData []ChartPoint

// NetWorthSeries samples net worth at each bucket: the sum of every account
// whose path starts with the configured asset or liability prefix. The match
// is an ordinary string prefix, not segment-aware, mirroring how asset and
// liability trees are configured. Buckets missing from the dense map read 0.
func NetWorthSeries(dense BalanceMap, buckets []string, settings *Settings) ChartData {
	series := make(ChartData, 0, len(buckets))
	for _, bucket := range buckets {
		var total Amount
		for account, balance := range dense[bucket] {
			if strings.HasPrefix(account, settings.AssetAccountsPrefix) ||
				strings.HasPrefix(account, settings.LiabilityAccountsPrefix) {
				total = total.Add(balance)
			}
		}
		series = append(series, ChartPoint{X: bucket, Y: total})
	}
	return series
}

// Descendants returns the accounts in universe that live strictly below
// parent, preserving universe order. The boundary is an exact segment match:
// "Assets:Bank" owns "Assets:Bank:Checking" but not "Assets:Banking".
func Descendants(universe []string, parent string) []string {
	prefix := parent + ":"
	var out []string
	for _, account := range universe {
		if strings.HasPrefix(account, prefix) {
			out = append(out, account)
		}
	}
	return out
}

// AccountBalanceSeries samples the combined balance of an account and all of
// its descendants at each bucket.
func AccountBalanceSeries(dense BalanceMap, buckets []string, account string, universe []string) ChartData {
	members := append([]string{account}, Descendants(universe, account)...)
	series := make(ChartData, 0, len(buckets))
	for _, bucket := range buckets {
		var total Amount
		for _, member := range members {
			total = total.Add(dense[bucket][member])
		}
		series = append(series, ChartPoint{X: bucket, Y: total})
	}
	return series
}

// AccountDeltaSeries samples the day-over-day change of an account and its
// descendants at each bucket. The first point diffs against bucketBefore, a
// caller-supplied key for the day preceding the range. Each member's delta
// is computed independently and then summed.
func AccountDeltaSeries(dense BalanceMap, buckets []string, account string, universe []string, bucketBefore string) ChartData {
	members := append([]string{account}, Descendants(universe, account)...)
	series := make(ChartData, 0, len(buckets))
	for i, bucket := range buckets {
		previous := bucketBefore
		if i > 0 {
			previous = buckets[i-1]
		}
		var total Amount
		for _, member := range members {
			total = total.Add(dense[bucket][member].Sub(dense[previous][member]))
		}
		series = append(series, ChartPoint{X: bucket, Y: total})
	}
	return series
}
