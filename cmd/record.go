package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/critiq/internal/history"
	"github.com/abhisek/critiq/internal/qstats"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record an answer attempt",
	Long: "Record an answer attempt for a user. First attempts are appended to the\n" +
		"user's answer history and move the per-question statistics; retries only\n" +
		"refresh descriptive fields.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		qid, _ := cmd.Flags().GetString("qid")
		correct, _ := cmd.Flags().GetBool("correct")
		attemptIndex, _ := cmd.Flags().GetInt("attempt")
		latency, _ := cmd.Flags().GetInt("latency-ms")
		hintUsed, _ := cmd.Flags().GetBool("hint-used")

		if qid == "" {
			return fmt.Errorf("--qid is required")
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		repo, err := loadRepo(cmd)
		if err != nil {
			return err
		}
		q, err := repo.Get(qid)
		if err != nil {
			return err
		}

		// History and stats persistence failures are logged and
		// swallowed inside the stores; the correctness result below
		// is emitted regardless.
		if attemptIndex == 0 {
			history.NewStore(cfg.DataDir, cfg.Bank).Append(userID, history.AnswerRecord{
				QID:        q.ID,
				IsCorrect:  correct,
				Domain:     string(q.Domain),
				Difficulty: q.Difficulty,
			})
		}

		att := qstats.Attempt{
			QID:          q.ID,
			Domain:       string(q.Domain),
			Difficulty:   q.Difficulty,
			IsCorrect:    correct,
			AttemptIndex: attemptIndex,
			HintUsed:     hintUsed,
			Stem:         q.Stem,
		}
		if cmd.Flags().Changed("latency-ms") {
			att.LatencyMs = &latency
		}
		qstats.NewAggregator(cfg.DataDir, cfg.Bank).RecordAttempt(att)

		return printJSON(map[string]any{
			"qid":           q.ID,
			"is_correct":    correct,
			"attempt_index": attemptIndex,
		})
	},
}

func init() {
	recordCmd.Flags().String("user", "anonymous", "User id")
	recordCmd.Flags().String("qid", "", "Question id")
	recordCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	recordCmd.Flags().Int("attempt", 0, "Attempt index (0 = first attempt)")
	recordCmd.Flags().Int("latency-ms", 0, "Answer latency in milliseconds")
	recordCmd.Flags().Bool("hint-used", false, "Whether a hint was used")
}
