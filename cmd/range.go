package cmd

import (
	"flag"
	"fmt"

	ledger "github.com/Snowbotx9/ledger-obsidian-traveller"
	"github.com/Snowbotx9/ledger-obsidian-traveller/date"
)

// rangeFlags holds the date-range flags shared by the chart subcommands.
type rangeFlags struct {
	from string
	to   string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.from, "from", "", "First day of the range (defaults to the journal's first transaction)")
	f.StringVar(&r.to, "to", "", "Last day of the range (defaults to the journal's last transaction)")
}

// resolve returns the chart range, defaulting each bound to the journal's
// own extent so running balances are complete.
func (r *rangeFlags) resolve(journal *ledger.Journal) (first, last date.Date, err error) {
	first = journal.OldestTransactionDate()
	last = journal.NewestTransactionDate()
	if r.from != "" {
		if first, err = date.Parse(r.from); err != nil {
			return first, last, fmt.Errorf("invalid -from: %w", err)
		}
	}
	if r.to != "" {
		if last, err = date.Parse(r.to); err != nil {
			return first, last, fmt.Errorf("invalid -to: %w", err)
		}
	}
	return first, last, nil
}
