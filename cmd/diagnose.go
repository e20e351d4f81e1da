package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/critiq/internal/allocation"
	"github.com/abhisek/critiq/internal/diagnostic"
	"github.com/abhisek/critiq/internal/history"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Show per-domain diagnostic scores for a user",
	Long: "Compute per-domain accuracy from the user's answer history. Users with\n" +
		"no history get neutral scores for every domain of the current bank.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		weights := allocation.DefaultCategoryWeights(cfg.Bank)
		categories := make([]string, len(weights))
		for i, w := range weights {
			categories[i] = w.Category
		}

		store := history.NewStore(cfg.DataDir, cfg.Bank)
		return printJSON(diagnostic.ScoresForUser(store, userID, categories))
	},
}

func init() {
	diagnoseCmd.Flags().String("user", "anonymous", "User id")
}
