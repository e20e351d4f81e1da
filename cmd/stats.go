package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/critiq/internal/qstats"
)

var statsCmd = &cobra.Command{
	Use:   "stats [qid]",
	Short: "Show observed question statistics",
	Long: "Show aggregated attempt statistics for the current bank. With a question\n" +
		"id argument, show that question only; otherwise dump the full snapshot.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		agg := qstats.NewAggregator(cfg.DataDir, cfg.Bank)
		if len(args) == 1 {
			stat, err := agg.Get(args[0])
			if err != nil {
				return err
			}
			if stat == nil {
				return fmt.Errorf("no recorded attempts for question %q", args[0])
			}
			return printJSON(stat)
		}

		snapshot, err := agg.Snapshot()
		if err != nil {
			return err
		}
		return printJSON(snapshot)
	},
}
