// Package config resolves process-level settings from the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/abhisek/critiq/internal/llm"
)

// DefaultBank is the question bank used when none is specified.
const DefaultBank = "Watson Glaser"

// Config holds the resolved application settings.
type Config struct {
	// DataDir is the root directory for question banks, answer
	// histories and statistics files.
	DataDir string

	// Bank is the active question bank name.
	Bank string

	// LLM is the text-generation provider configuration.
	LLM llm.Config
}

// FromEnv resolves configuration from environment variables, falling
// back to defaults for unset values.
func FromEnv() (Config, error) {
	cfg := Config{
		Bank: DefaultBank,
		LLM:  llm.ConfigFromEnv(),
	}

	if b := os.Getenv("CRITIQ_BANK"); b != "" {
		cfg.Bank = b
	}

	if d := os.Getenv("CRITIQ_DATA_DIR"); d != "" {
		cfg.DataDir = d
		return cfg, nil
	}

	dir, err := defaultDataDir()
	if err != nil {
		return Config{}, err
	}
	cfg.DataDir = dir
	return cfg, nil
}

// defaultDataDir resolves the data directory in priority order:
// $XDG_DATA_HOME/critiq, then ~/.local/share/critiq.
func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "critiq"), nil
}

// BankFile returns the question source file path for the configured
// bank.
func (c Config) BankFile() string {
	return filepath.Join(c.DataDir, c.Bank, "simulation_data.json")
}
