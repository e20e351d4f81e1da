package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/critiq/internal/bank"
	"github.com/abhisek/critiq/internal/llm"
	"github.com/abhisek/critiq/internal/qstats"
	"github.com/abhisek/critiq/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask the tutor for hints, explanations and commentary",
}

var askHintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Get a hint for a question without revealing the answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		qid, _ := cmd.Flags().GetString("qid")
		chosen, _ := cmd.Flags().GetString("chosen")
		if qid == "" {
			return fmt.Errorf("--qid is required")
		}

		svc, repo, err := tutorService(cmd)
		if err != nil {
			return err
		}
		q, err := repo.Get(qid)
		if err != nil {
			return err
		}

		hint, err := svc.Hint(cmd.Context(), q.Stem, q.Options, chosen, []string{string(q.Domain)})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hint)
		return nil
	},
}

var askExplainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain why the correct answer is correct",
	RunE: func(cmd *cobra.Command, args []string) error {
		qid, _ := cmd.Flags().GetString("qid")
		first, _ := cmd.Flags().GetInt("first")
		second, _ := cmd.Flags().GetInt("second")
		if qid == "" {
			return fmt.Errorf("--qid is required")
		}

		svc, repo, err := tutorService(cmd)
		if err != nil {
			return err
		}
		q, err := repo.Get(qid)
		if err != nil {
			return err
		}

		explanation, misconception, err := svc.Explanation(cmd.Context(), q.Stem, q.Options, q.Correct, first, second, []string{string(q.Domain)})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), explanation)
		if misconception != "" {
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), misconception)
		}
		return nil
	},
}

var askWelcomeCmd = &cobra.Command{
	Use:   "welcome",
	Short: "Generate a session welcome message",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		svc, _, err := tutorService(cmd)
		if err != nil {
			return err
		}

		msg, err := svc.Welcome(cmd.Context(), map[string]any{
			"user_id":       userID,
			"question_bank": cfg.Bank,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var askStatsCmd = &cobra.Command{
	Use:   "stats [message]",
	Short: "Discuss a question's observed statistics",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		qid, _ := cmd.Flags().GetString("qid")
		if qid == "" {
			return fmt.Errorf("--qid is required")
		}
		message := strings.Join(args, " ")
		if message == "" {
			message = "How is this question performing?"
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		svc, _, err := tutorService(cmd)
		if err != nil {
			return err
		}

		stat, err := qstats.NewAggregator(cfg.DataDir, cfg.Bank).Get(qid)
		if err != nil {
			return err
		}
		if stat == nil {
			return fmt.Errorf("no recorded attempts for question %q", qid)
		}

		reply, err := svc.StatsCommentary(cmd.Context(), message, qid, stat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	},
}

func tutorService(cmd *cobra.Command) (*tutor.Service, *bank.Repository, error) {
	repo, err := loadRepo(cmd)
	if err != nil {
		return nil, nil, err
	}

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		return nil, nil, err
	}
	provider, err := llm.NewProvider(cmd.Context(), llmCfg)
	if err != nil {
		return nil, nil, err
	}

	return tutor.NewService(repo, provider, tutor.DefaultConfig()), repo, nil
}

func init() {
	askHintCmd.Flags().String("qid", "", "Question id")
	askHintCmd.Flags().String("chosen", "", "The option the user picked")
	askExplainCmd.Flags().String("qid", "", "Question id")
	askExplainCmd.Flags().Int("first", -1, "First attempt option index")
	askExplainCmd.Flags().Int("second", -1, "Second attempt option index")
	askWelcomeCmd.Flags().String("user", "anonymous", "User id")
	askStatsCmd.Flags().String("qid", "", "Question id")

	askCmd.AddCommand(askHintCmd, askExplainCmd, askWelcomeCmd, askStatsCmd)
}
