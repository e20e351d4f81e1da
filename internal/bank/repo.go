// Package bank loads heterogeneous question-bank files, normalizes
// their records into canonical questions, and serves band-limited
// queries for the selection flow.
//
// A bank file is either a flat JSON array of records or an object with
// a "questions" array. Records may spell the same field under several
// key variants; normalize.go resolves them in a fixed priority order.
package bank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/critiq/internal/taxonomy"
)

// ErrNotFound indicates an unknown question id.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("question not found: %q", e.ID)
}

// Repository holds the normalized, indexed question bank. It is
// read-only after Load and safe for concurrent use without locking.
type Repository struct {
	order []string            // ids in load order, the stable query order
	byID  map[string]Question // id index
}

// Load reads and normalizes a question-bank file.
func Load(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(data)
}

// Parse builds a repository from raw bank JSON.
func Parse(data []byte) (*Repository, error) {
	records, err := extractRecords(data)
	if err != nil {
		return nil, err
	}

	r := &Repository{byID: make(map[string]Question, len(records))}
	for _, raw := range records {
		q := normalize(raw)
		if _, dup := r.byID[q.ID]; !dup {
			r.order = append(r.order, q.ID)
		}
		// Later duplicates replace the indexed record but keep the
		// original position in load order.
		r.byID[q.ID] = q
	}
	return r, nil
}

// extractRecords accepts both a flat array and a {questions: [...]}
// wrapper object.
func extractRecords(data []byte) ([]map[string]any, error) {
	var flat []map[string]any
	if err := json.Unmarshal(data, &flat); err == nil {
		return flat, nil
	}

	var wrapped struct {
		Questions []map[string]any `json:"questions"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	return wrapped.Questions, nil
}

// Get returns the question with the given id.
func (r *Repository) Get(id string) (Question, error) {
	q, ok := r.byID[id]
	if !ok {
		return Question{}, &ErrNotFound{ID: id}
	}
	return q, nil
}

// Len returns the number of questions in the bank.
func (r *Repository) Len() int {
	return len(r.order)
}

// All returns every question in load order.
func (r *Repository) All() []Question {
	out := make([]Question, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Query returns up to limit non-excluded questions of the given domain
// with difficulty in [diffMin, diffMax], in load order. No
// randomization, no sorting: first fit wins.
func (r *Repository) Query(domain taxonomy.Domain, diffMin, diffMax, limit int, exclude map[string]bool) []Question {
	var out []Question
	for _, id := range r.order {
		if len(out) == limit {
			break
		}
		q := r.byID[id]
		if q.Domain != domain || q.Difficulty < diffMin || q.Difficulty > diffMax {
			continue
		}
		if exclude[q.ID] {
			continue
		}
		out = append(out, q)
	}
	return out
}

// SuggestNext returns up to count questions of the given domain within
// one difficulty step of target, clamped to [1, 10]. When fewer
// candidates exist in-band it returns what is available; the band is
// never widened and a short result is not an error.
func (r *Repository) SuggestNext(domain taxonomy.Domain, targetDifficulty, count int, exclude map[string]bool) []Question {
	lo := targetDifficulty - 1
	if lo < 1 {
		lo = 1
	}
	hi := targetDifficulty + 1
	if hi > 10 {
		hi = 10
	}
	return r.Query(domain, lo, hi, count, exclude)
}
