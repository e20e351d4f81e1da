package config

import (
	"path/filepath"
	"testing"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("CRITIQ_DATA_DIR", "/tmp/critiq-test")
	t.Setenv("CRITIQ_BANK", "SHL")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.DataDir != "/tmp/critiq-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Bank != "SHL" {
		t.Errorf("Bank = %q", cfg.Bank)
	}
	want := filepath.Join("/tmp/critiq-test", "SHL", "simulation_data.json")
	if cfg.BankFile() != want {
		t.Errorf("BankFile() = %q, want %q", cfg.BankFile(), want)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("CRITIQ_DATA_DIR", "")
	t.Setenv("CRITIQ_BANK", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Bank != DefaultBank {
		t.Errorf("Bank = %q, want %q", cfg.Bank, DefaultBank)
	}
	if cfg.DataDir != filepath.Join("/tmp/xdg", "critiq") {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
}
