package bank

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/critiq/internal/taxonomy"
)

// DefaultDifficulty is used when a record carries no parseable
// difficulty. Source data quality varies; ingestion never rejects a
// record over a bad difficulty value.
const DefaultDifficulty = 5

// Field-name variants tried in priority order during normalization.
// The first present, non-empty key wins.
var (
	subjectKeys     = []string{"Subject", "subject", "category"}
	idKeys          = []string{"id", "question_id", "Question ID"}
	stemKeys        = []string{"question content", "question_content", "question", "stem"}
	stimuliKeys     = []string{"question stimuli", "question_stimuli", "stimuli"}
	correctKeys     = []string{"correct answer", "correct_answer", "answer", "correct"}
	difficultyKeys  = []string{"Difficulty level", "difficulty_level", "difficulty"}
	optionKeyFamily = [][]string{
		{"answer 1", "answer 2", "answer 3", "answer 4", "answer 5"},
		{"answer_1", "answer_2", "answer_3", "answer_4", "answer_5"},
		{"option_1", "option_2", "option_3", "option_4", "option_5"},
	}
)

// normalize converts one raw heterogeneous record into a Question.
// Missing ids are synthesized; missing fields take documented defaults.
func normalize(raw map[string]any) Question {
	qid := firstString(raw, idKeys)
	if qid == "" {
		qid = uuid.NewString()
	}

	return Question{
		ID:          qid,
		Domain:      taxonomy.ParseDomain(firstString(raw, subjectKeys)),
		Stem:        firstString(raw, stemKeys),
		Stimuli:     firstString(raw, stimuliKeys),
		Options:     extractOptions(raw),
		Correct:     strings.TrimSpace(firstString(raw, correctKeys)),
		Explanation: stringValue(raw["explanation"]),
		Difficulty:  extractDifficulty(raw),
	}
}

// extractOptions resolves the answer set to an ordered sequence. An
// "answers" mapping keyed by ordinal wins; otherwise the flat
// answer_N / option_N key families are tried in order.
func extractOptions(raw map[string]any) []string {
	if m, ok := raw["answers"].(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var opts []string
		for _, k := range keys {
			if v := stringValue(m[k]); v != "" {
				opts = append(opts, v)
			}
		}
		return opts
	}

	for _, family := range optionKeyFamily {
		var opts []string
		for _, k := range family {
			if v := stringValue(raw[k]); v != "" {
				opts = append(opts, v)
			}
		}
		if len(opts) > 0 {
			return opts
		}
	}
	return nil
}

// extractDifficulty parses the difficulty as an integer, accepting
// numbers and numeric strings. Anything else defaults to 5.
func extractDifficulty(raw map[string]any) int {
	for _, k := range difficultyKeys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case string:
			if d, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return d
			}
		}
	}
	return DefaultDifficulty
}

// firstString returns the first non-empty string value among the given
// keys, stringifying numeric ids along the way.
func firstString(raw map[string]any, keys []string) string {
	for _, k := range keys {
		if v := stringValue(raw[k]); v != "" {
			return v
		}
	}
	return ""
}

// stringValue coerces a raw JSON value to a string. Numeric ids like
// 19 come through as float64 and must not pick up a decimal point.
func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", s)
	}
}
