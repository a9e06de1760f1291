package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/Snowbotx9/ledger-obsidian-traveller/cmd"
)

func main() {
	// Shell completion: returns immediately unless invoked by the shell.
	completion().Complete("lot")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	rangeFlags := map[string]complete.Predictor{
		"from": predict.Nothing,
		"to":   predict.Nothing,
	}
	accountFlags := map[string]complete.Predictor{
		"from": predict.Nothing,
		"to":   predict.Nothing,
		"a":    predict.Nothing,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"networth": {Flags: rangeFlags},
			"balance":  {Flags: accountFlags},
			"delta":    {Flags: accountFlags},
			"accounts": {},
			"fmt":      {Flags: map[string]complete.Predictor{"w": predict.Nothing}},
			"serve":    {Flags: map[string]complete.Predictor{"addr": predict.Nothing}},
		},
		Flags: map[string]complete.Predictor{
			"settings-file": predict.Files("*.json"),
			"journal-file":  predict.Files("*.jsonl"),
		},
	}
}
