package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/critiq/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "critiq",
	Short: "Adaptive critical-thinking assessment tutor",
	Long: "Critiq — adaptive assessment tutor that serves Watson-Glaser style questions,\n" +
		"builds personalized study-time plans, and tracks per-question performance.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory (overrides CRITIQ_DATA_DIR)")
	rootCmd.PersistentFlags().String("bank", "", "Question bank name (overrides CRITIQ_BANK)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(askCmd)
}

// resolveConfig builds the app config from env, applying flag
// overrides.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve config: %w", err)
	}
	if d, _ := cmd.Flags().GetString("data-dir"); d != "" {
		cfg.DataDir = d
	}
	if b, _ := cmd.Flags().GetString("bank"); b != "" {
		cfg.Bank = b
	}
	return cfg, nil
}

// printJSON writes v to stdout as indented JSON, the outward interface
// for plans, selections and stats snapshots.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
