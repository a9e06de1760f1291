// Package ledger turns a journal of dated, multi-line transactions into
// time-series balance data for charting.
//
// The pipeline is: transactions and a date range produce an ordered list of
// daily bucket keys; transactions fold into a sparse per-day, per-account
// change map; the change map rolls forward into a dense cumulative balance
// table covering every day in range; chart series (net worth, account
// balance, account delta) sample that table at bucket granularity. A
// separate trie-based compressor reduces the flat account list to the
// minimal set of paths worth displaying.
//
// Everything recomputes in full from the current transaction list; nothing
// here persists state or talks to the network.
package ledger
