// Package cmd implements the CLI application to chart balances from a journal.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	ledger "github.com/Snowbotx9/ledger-obsidian-traveller"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&networthCmd{}, "charts")
	c.Register(&balanceCmd{}, "charts")
	c.Register(&deltaCmd{}, "charts")

	c.Register(&accountsCmd{}, "journal")
	c.Register(&fmtCmd{}, "journal")

	c.Register(&serveCmd{}, "server")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var settingsFile = flag.String("settings-file", "ledger-settings.json", "Path to the settings file (JSON)")
var journalFile = flag.String("journal-file", "", "Path to the journal file (JSONL); overrides the settings")

// LoadSettings reads the application settings, honoring a .env file and the
// LEDGER_SETTINGS environment variable.
func LoadSettings() (*ledger.Settings, error) {
	_ = godotenv.Load() // best effort; absence of .env is the common case

	path := *settingsFile
	if env := os.Getenv("LEDGER_SETTINGS"); env != "" {
		path = env
	}
	return ledger.LoadSettings(path)
}

// journalPath resolves the journal file from flag, environment, then settings.
func journalPath(settings *ledger.Settings) string {
	if *journalFile != "" {
		return *journalFile
	}
	if env := os.Getenv("LEDGER_FILE"); env != "" {
		return env
	}
	return settings.JournalFile
}

// LoadApp decodes the settings and the journal they point at.
func LoadApp() (*ledger.Journal, *ledger.Settings, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load settings: %w", err)
	}

	path := journalPath(settings)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open journal %q: %w", path, err)
	}
	defer f.Close()

	journal, err := ledger.DecodeJournal(f)
	if err != nil {
		return nil, nil, fmt.Errorf("could not decode journal %q: %w", path, err)
	}
	return journal, settings, nil
}
