// Package diagnostic derives per-category diagnostic scores from
// persisted answer history. Scores feed the allocation engine.
package diagnostic

import (
	"errors"
	"strings"

	"github.com/abhisek/critiq/internal/allocation"
	"github.com/abhisek/critiq/internal/history"
	"github.com/abhisek/critiq/internal/taxonomy"
)

// ErrNoData signals that the record set yields no usable scores. It is
// a sentinel outcome, not a failure: callers substitute the neutral
// default score.
var ErrNoData = errors.New("no diagnostic data available")

// ExtractScores groups answer records by category and scores each as a
// simple accuracy ratio (no recency weighting, no confidence
// interval). Category names are canonicalized through the shared
// taxonomy table, unifying variant spellings. Returns ErrNoData when
// the record set is empty or no category has a non-zero total.
func ExtractScores(records []history.AnswerRecord) ([]allocation.DiagnosticScore, error) {
	correct := make(map[string]int)
	total := make(map[string]int)
	var order []string

	for _, rec := range records {
		key := strings.ToLower(strings.TrimSpace(rec.Domain))
		if key == "" {
			continue
		}
		if _, seen := total[key]; !seen {
			order = append(order, key)
		}
		total[key]++
		if rec.IsCorrect {
			correct[key]++
		}
	}

	var scores []allocation.DiagnosticScore
	for _, key := range order {
		n := total[key]
		if n == 0 {
			continue
		}
		scores = append(scores, allocation.DiagnosticScore{
			Category: taxonomy.CanonicalCategory(key),
			Score:    float64(correct[key]) / float64(n),
		})
	}

	if len(scores) == 0 {
		return nil, ErrNoData
	}
	return scores, nil
}

// ScoresForUser loads a user's history from the store and extracts
// scores, falling back to the neutral default for the given categories
// when no usable data exists. The store swallows its own I/O failures,
// so a missing, unreadable or corrupt history file all land on the
// neutral fallback rather than failing the caller.
func ScoresForUser(store *history.Store, userID string, defaultCategories []string) []allocation.DiagnosticScore {
	scores, err := ExtractScores(store.Records(userID))
	if errors.Is(err, ErrNoData) {
		return allocation.DefaultDiagnosticScores(defaultCategories)
	}
	return scores
}
