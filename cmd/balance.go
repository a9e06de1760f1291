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

type balanceCmd struct {
	rangeFlags
	account string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display an account balance over time" }
func (*balanceCmd) Usage() string {
	return `lot balance -a <account> [-from <date>] [-to <date>]

  Displays the daily balance of an account, including all of its
  descendant accounts (e.g. "Assets:Bank" includes "Assets:Bank:Checking").
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.account, "a", "", "account path to report on")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	dense := journal.DailyBalances(first, last)
	series := ledger.AccountBalanceSeries(dense, buckets, c.account, journal.AccountNames())

	printMarkdown(renderer.ChartMarkdown(c.account, series, settings.Currency, false))
	return subcommands.ExitSuccess
}
