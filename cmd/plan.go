package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/critiq/internal/allocation"
	"github.com/abhisek/critiq/internal/diagnostic"
	"github.com/abhisek/critiq/internal/history"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build an adaptive study-time plan for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		minutes, _ := cmd.Flags().GetInt("minutes")
		remaining, _ := cmd.Flags().GetInt("remaining")
		planVersion, _ := cmd.Flags().GetString("plan-version")

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
		scores := diagnostic.ScoresForUser(store, userID, categories)

		engine := allocation.NewEngine()
		plan, err := engine.BuildPlan(allocation.PlanInput{
			AssessmentName:            cfg.Bank,
			UserID:                    userID,
			PlanVersion:               planVersion,
			TotalAvailableTimeMinutes: minutes,
			Timestamp:                 time.Now().UTC().Format(time.RFC3339),
			CategoryWeights:           weights,
			InitialDiagnosticScores:   scores,
		}, remaining)
		if err != nil {
			return err
		}

		return printJSON(plan)
	},
}

func init() {
	planCmd.Flags().String("user", "anonymous", "User id")
	planCmd.Flags().Int("minutes", 480, "Total available study time in minutes")
	planCmd.Flags().Int("remaining", 0, "Remaining minutes override (0 = use total)")
	planCmd.Flags().String("plan-version", "v1", "Plan version label")
}
