package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/critiq/internal/bank"
	"github.com/abhisek/critiq/internal/llm"
	"github.com/abhisek/critiq/internal/taxonomy"
	"github.com/abhisek/critiq/internal/tutor"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question banks",
}

var bankShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Load the question bank and print a per-domain summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepo(cmd)
		if err != nil {
			return err
		}

		counts := make(map[string]int)
		for _, q := range repo.All() {
			counts[string(q.Domain)]++
		}
		return printJSON(map[string]any{
			"total":      repo.Len(),
			"per_domain": counts,
		})
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a question-bank file against the bank schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			path = cfg.BankFile()
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read bank file: %w", err)
		}
		if err := bank.ValidateBank(data); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

var bankSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest questions for a domain near a target difficulty",
	Long: "Suggest questions from the bank. By default, pick up to --count questions\n" +
		"for one domain near --difficulty. With --phase intro or --phase deepen,\n" +
		"select across all domains: one easy warm-up question per domain, or three\n" +
		"per domain near each domain's target.",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		target, _ := cmd.Flags().GetInt("difficulty")
		count, _ := cmd.Flags().GetInt("count")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")
		phase, _ := cmd.Flags().GetString("phase")

		repo, err := loadRepo(cmd)
		if err != nil {
			return err
		}

		switch phase {
		case "intro", "deepen":
			// Selection never generates text; a mock provider keeps
			// the service constructible without LLM credentials.
			svc := tutor.NewService(repo, llm.NewMockProvider(), tutor.DefaultConfig())
			if phase == "intro" {
				return printJSON(svc.SelectForIntro(exclude))
			}
			var targets map[string]int
			if cmd.Flags().Changed("difficulty") {
				targets = make(map[string]int)
				for _, d := range taxonomy.AllDomains() {
					targets[string(d)] = target
				}
			}
			return printJSON(svc.SelectForDeepen(targets, exclude))
		case "":
		default:
			return fmt.Errorf("unknown phase %q (want intro or deepen)", phase)
		}

		excludeSet := make(map[string]bool, len(exclude))
		for _, id := range exclude {
			excludeSet[id] = true
		}

		qs := repo.SuggestNext(taxonomy.ParseDomain(domain), target, count, excludeSet)
		payloads := make([]bank.Payload, len(qs))
		for i, q := range qs {
			payloads[i] = q.ToPayload()
		}
		return printJSON(payloads)
	},
}

func loadRepo(cmd *cobra.Command) (*bank.Repository, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	repo, err := bank.Load(cfg.BankFile())
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return repo, nil
}

func init() {
	bankSuggestCmd.Flags().String("domain", "Deduction", "Question domain")
	bankSuggestCmd.Flags().Int("difficulty", 5, "Target difficulty (1-10)")
	bankSuggestCmd.Flags().Int("count", 3, "Maximum number of questions")
	bankSuggestCmd.Flags().StringSlice("exclude", nil, "Question ids to exclude")
	bankSuggestCmd.Flags().String("phase", "", "Selection phase: intro or deepen (empty = single-domain band)")

	bankCmd.AddCommand(bankShowCmd)
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankSuggestCmd)
}
