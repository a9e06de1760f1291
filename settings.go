package ledger

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings classifies accounts for net-worth computation and locates the
// journal. The prefixes name the asset and liability account trees and are
// matched as plain string prefixes against account paths.
type Settings struct {
	AssetAccountsPrefix     string `json:"assetAccountsPrefix"`
	LiabilityAccountsPrefix string `json:"liabilityAccountsPrefix"`
	Currency                string `json:"currency"`
	JournalFile             string `json:"journalFile"`
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		AssetAccountsPrefix:     "Assets",
		LiabilityAccountsPrefix: "Liabilities",
		Currency:                "USD",
		JournalFile:             "journal.jsonl",
	}
}

// LoadSettings reads settings from a JSON file. A missing file yields the
// defaults, not an error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %q: %w", path, err)
	}
	return settings, nil
}

// SaveSettings writes settings to a JSON file.
func SaveSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
