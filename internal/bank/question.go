package bank

import (
	"strings"

	"github.com/abhisek/critiq/internal/taxonomy"
)

// Question is a normalized question from a bank. Immutable after load;
// the repository owns the canonical copy and hands out values.
type Question struct {
	ID          string          `json:"id"`
	Domain      taxonomy.Domain `json:"domain"`
	Stem        string          `json:"stem"`
	Stimuli     string          `json:"stimuli,omitempty"`
	Options     []string        `json:"options"`
	Correct     string          `json:"correct"`
	Explanation string          `json:"explanation"`
	Difficulty  int             `json:"difficulty"` // 1-10
}

// CorrectIndex returns the 0-based index of the correct answer within
// Options, comparing trimmed strings. Returns -1 if no option matches.
func (q Question) CorrectIndex() int {
	want := strings.TrimSpace(q.Correct)
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == want {
			return i
		}
	}
	return -1
}

// Payload is the JSON-serializable view of a question handed to the
// presentation layer. The correct answer itself is omitted; only its
// index is exposed.
type Payload struct {
	ID           string   `json:"id"`
	Domain       string   `json:"domain"`
	Stem         string   `json:"stem"`
	Stimuli      string   `json:"stimuli,omitempty"`
	Choices      []string `json:"choices"`
	Difficulty   int      `json:"difficulty"`
	CorrectIndex int      `json:"correct_index"`
}

// ToPayload converts a question to its outward payload form.
func (q Question) ToPayload() Payload {
	return Payload{
		ID:           q.ID,
		Domain:       string(q.Domain),
		Stem:         q.Stem,
		Stimuli:      q.Stimuli,
		Choices:      q.Options,
		Difficulty:   q.Difficulty,
		CorrectIndex: q.CorrectIndex(),
	}
}
