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

type networthCmd struct {
	rangeFlags
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "display net worth over time" }
func (*networthCmd) Usage() string {
	return `lot networth [-from <date>] [-to <date>]

  Displays daily net worth: the sum of all asset and liability account
  balances, per the configured account prefixes.
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	dense := journal.DailyBalances(first, last)
	series := ledger.NetWorthSeries(dense, buckets, settings)

	printMarkdown(renderer.ChartMarkdown("Net Worth", series, settings.Currency, false))
	return subcommands.ExitSuccess
}
