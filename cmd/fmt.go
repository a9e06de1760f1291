package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	ledger "github.com/Snowbotx9/ledger-obsidian-traveller"
)

type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "format the journal file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `lot fmt [-w]

  Reads all transactions, sorts them by date, and writes them back in a
  canonical JSONL format. Prints to stdout by default; -w rewrites the
  journal file in place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "write the result back to the journal file")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	journal, settings, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.write {
		if err := ledger.EncodeJournal(os.Stdout, journal); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	path := journalPath(settings)
	out, err := os.CreateTemp("", "journal-fmt-*.jsonl")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer os.Remove(out.Name())

	if err := ledger.EncodeJournal(out, journal); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.Rename(out.Name(), path); err != nil {
		fmt.Fprintf(os.Stderr, "Error replacing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
