// Package tutor generates learner-facing text (hints, explanations,
// summaries, welcome messages, stats commentary) by building prompts
// over the text-generation collaborator. Selection helpers for the
// intro and deepen phases live here too, delegating to the question
// repository.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/critiq/internal/bank"
	"github.com/abhisek/critiq/internal/llm"
	"github.com/abhisek/critiq/internal/qstats"
	"github.com/abhisek/critiq/internal/taxonomy"
)

// Config holds generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// Service is the tutoring front over the question repository and the
// text-generation provider. The repository is injected, never global.
type Service struct {
	repo     *bank.Repository
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service.
func NewService(repo *bank.Repository, provider llm.Provider, cfg Config) *Service {
	return &Service{repo: repo, provider: provider, cfg: cfg}
}

// SectionResult is one section's score for the summary prompt.
type SectionResult struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// SelectForIntro picks one warm-up question per domain at an easy
// target difficulty.
func (s *Service) SelectForIntro(excludeIDs []string) map[string][]bank.Payload {
	return s.selectPerDomain(func(taxonomy.Domain) int { return 4 }, 1, excludeIDs)
}

// SelectForDeepen picks three questions per domain near its target
// difficulty, clamped to [1, 10].
func (s *Service) SelectForDeepen(targetDifficulty map[string]int, excludeIDs []string) map[string][]bank.Payload {
	return s.selectPerDomain(func(d taxonomy.Domain) int {
		t, ok := targetDifficulty[string(d)]
		if !ok {
			t = 5
		}
		if t < 1 {
			t = 1
		}
		if t > 10 {
			t = 10
		}
		return t
	}, 3, excludeIDs)
}

func (s *Service) selectPerDomain(target func(taxonomy.Domain) int, count int, excludeIDs []string) map[string][]bank.Payload {
	exclude := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		exclude[id] = true
	}

	out := make(map[string][]bank.Payload, len(taxonomy.AllDomains()))
	for _, d := range taxonomy.AllDomains() {
		qs := s.repo.SuggestNext(d, target(d), count, exclude)
		payloads := make([]bank.Payload, len(qs))
		for i, q := range qs {
			payloads[i] = q.ToPayload()
		}
		out[string(d)] = payloads
	}
	return out
}

// Hint generates a short actionable hint after a wrong first attempt.
// The prompt never contains the correct answer.
func (s *Service) Hint(ctx context.Context, stem string, choices []string, chosen string, tags []string) (string, error) {
	resp, err := s.generate(ctx, systemPrompt, buildHintMessage(stem, choices, chosen, tags))
	if err != nil {
		return "", fmt.Errorf("generate hint: %w", err)
	}
	return resp, nil
}

// Explanation returns (explanation, misconception) after a second
// failure. When the model does not separate the two parts, a generic
// misconception line is substituted.
func (s *Service) Explanation(ctx context.Context, stem string, choices []string, correct string, firstAttempt, secondAttempt int, tags []string) (string, string, error) {
	resp, err := s.generate(ctx, systemPrompt,
		buildExplanationMessage(stem, choices, correct, firstAttempt, secondAttempt, tags))
	if err != nil {
		return "", "", fmt.Errorf("generate explanation: %w", err)
	}

	if explanation, misconception, ok := strings.Cut(resp, "\n\n"); ok {
		return strings.TrimSpace(explanation), strings.TrimSpace(misconception), nil
	}
	return resp, "Common trap: focusing on surface cues instead of the governing rule.", nil
}

// Summary generates the end-of-assessment summary in the requested
// language.
func (s *Service) Summary(ctx context.Context, perSection map[string]SectionResult, overallPercentile int, lang string) (string, error) {
	if lang == "" {
		lang = "en"
	}
	resp, err := s.generate(ctx, systemPrompt, buildSummaryMessage(perSection, overallPercentile, lang))
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return resp, nil
}

// Welcome generates a personalized welcome message from arbitrary
// user settings.
func (s *Service) Welcome(ctx context.Context, userSettings map[string]any) (string, error) {
	settings, err := json.Marshal(userSettings)
	if err != nil {
		return "", fmt.Errorf("encode user settings: %w", err)
	}
	resp, err := s.generate(ctx, welcomeSystemPrompt, "User settings: "+string(settings))
	if err != nil {
		return "", fmt.Errorf("generate welcome message: %w", err)
	}
	return resp, nil
}

// StatsCommentary answers an operator question about one question's
// aggregate statistics.
func (s *Service) StatsCommentary(ctx context.Context, message, qid string, stat *qstats.QuestionStat) (string, error) {
	payload, err := json.MarshalIndent(map[string]any{
		"qid":      qid,
		"question": message,
		"stats":    stat,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode stats payload: %w", err)
	}
	resp, err := s.generate(ctx, statsSystemPrompt, string(payload))
	if err != nil {
		return "", fmt.Errorf("generate stats commentary: %w", err)
	}
	return resp, nil
}

// FeedbackClass is a coarse sentiment classification of free-text
// learner feedback.
type FeedbackClass struct {
	Sentiment string `json:"sentiment"` // "positive", "negative", "neutral"
}

// ClassifyFeedback classifies raw feedback with a keyword heuristic.
// Deliberately not an LLM call: feedback classification runs on every
// submission and must not cost a request.
func ClassifyFeedback(raw string) FeedbackClass {
	text := strings.ToLower(raw)

	sentiment := "neutral"
	for _, w := range []string{"love", "great", "helpful", "good", "nice"} {
		if strings.Contains(text, w) {
			sentiment = "positive"
			break
		}
	}
	for _, w := range []string{"frustrated", "hate", "bad", "confusing", "annoying"} {
		if strings.Contains(text, w) {
			sentiment = "negative"
			break
		}
	}
	return FeedbackClass{Sentiment: sentiment}
}

func (s *Service) generate(ctx context.Context, system, user string) (string, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}
