package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	ledger "github.com/Snowbotx9/ledger-obsidian-traveller"
	"github.com/Snowbotx9/ledger-obsidian-traveller/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "display the compressed account list" }
func (*accountsCmd) Usage() string {
	return `lot accounts

  Displays the minimal list of account paths: ancestors with a single
  child are elided so deep hierarchies stay readable.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	journal, _, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	paths := ledger.CompressAccountPaths(journal.AccountNames())
	printMarkdown(renderer.AccountsMarkdown(paths))
	return subcommands.ExitSuccess
}
