package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/Snowbotx9/ledger-obsidian-traveller/server"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve charts over an HTTP API" }
func (*serveCmd) Usage() string {
	return `lot serve [-addr <host:port>]

  Starts an HTTP server exposing the journal's charts as JSON:
  net worth, per-account balances and deltas, and the account list.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "address to listen on")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	svc := server.NewService(journalPath(settings), settings)
	if err := svc.RebuildCache(); err != nil {
		log.Printf("initial cache build failed: %v", err)
	}

	log.Printf("listening on %s", c.addr)
	if err := svc.Router().Run(c.addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
