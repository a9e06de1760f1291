package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	ledger "github.com/Snowbotx9/ledger-obsidian-traveller"
	"github.com/Snowbotx9/ledger-obsidian-traveller/date"
	"github.com/Snowbotx9/ledger-obsidian-traveller/renderer"
)

type deltaCmd struct {
	rangeFlags
	account string
}

func (*deltaCmd) Name() string     { return "delta" }
func (*deltaCmd) Synopsis() string { return "display an account's day-over-day changes" }
func (*deltaCmd) Usage() string {
	return `lot delta -a <account> [-from <date>] [-to <date>]

  Displays the day-over-day balance change of an account and its
  descendants. The first point diffs against the day before the range.
`
}

func (c *deltaCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.account, "a", "", "account path to report on")
}

func (c *deltaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "-a <account> must be provided")
		return subcommands.ExitUsageError
	}

	journal, settings, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	first, last, err := c.resolve(journal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	buckets := ledger.BucketNames(date.Daily, first, last)
	// Roll one day early so the first delta has a predecessor to diff against.
	dense := journal.DailyBalances(first.Add(-1), last)
	series := ledger.AccountDeltaSeries(dense, buckets, c.account, journal.AccountNames(), ledger.Key(first.Add(-1)))

	printMarkdown(renderer.ChartMarkdown(c.account+" (daily change)", series, settings.Currency, true))
	return subcommands.ExitSuccess
}
