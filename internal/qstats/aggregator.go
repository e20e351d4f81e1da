// Package qstats accumulates per-question performance statistics
// across attempts, persisted as one JSON file per question bank.
//
// Only first attempts (attempt index 0) move the counters: exposure
// and mastery are measured at first contact, retries are feedback
// only. Writes are synchronous (write-through) but failures never
// propagate to the answer-submission flow.
package qstats

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
)

// file is the on-disk statistics document.
type file struct {
	Metadata metadata                 `json:"metadata"`
	Stats    map[string]*QuestionStat `json:"stats"`
}

type metadata struct {
	QuestionBank string `json:"question_bank"`
}

// Aggregator folds answer attempts into durable per-question
// aggregates for one bank. Writes for an instance are serialized.
type Aggregator struct {
	dataDir string
	bank    string

	mu sync.Mutex
}

// NewAggregator creates a statistics aggregator rooted at dataDir for
// the given question bank.
func NewAggregator(dataDir, bank string) *Aggregator {
	return &Aggregator{dataDir: dataDir, bank: bank}
}

func (a *Aggregator) path() string {
	return filepath.Join(a.dataDir, a.bank, "question_stats.json")
}

// RecordAttempt folds one attempt into the stored aggregate and writes
// it through before returning. Any I/O or parse failure is logged to
// stderr and swallowed, leaving the stat file unchanged for this
// attempt: the answer-submission flow must never block on stats.
func (a *Aggregator) RecordAttempt(att Attempt) {
	a.mu.Lock()
	defer a.mu.Unlock()

	doc, err := a.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load question stats: %v\n", err)
		return
	}

	stat := doc.Stats[att.QID]
	if stat == nil {
		stat = &QuestionStat{QuestionID: att.QID}
		doc.Stats[att.QID] = stat
	}

	apply(stat, att)

	if err := a.save(doc); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write question stats: %v\n", err)
	}
}

// apply updates one stat record in place with the incremental
// formulas. Descriptive fields refresh on every attempt; counters and
// running averages move on first attempts only.
func apply(stat *QuestionStat, att Attempt) {
	stat.Domain = att.Domain
	stat.Difficulty = att.Difficulty
	if att.Stem != "" {
		stat.Stem = att.Stem
	}

	if att.AttemptIndex == 0 {
		stat.TotalAttempts++
		if att.IsCorrect {
			stat.TotalCorrect++
		} else {
			stat.TotalIncorrect++
		}
		if att.HintUsed {
			stat.HintUsageCount++
		}

		n := stat.TotalAttempts

		// Running average latency, weighted by prior exposure count.
		if att.LatencyMs != nil && *att.LatencyMs >= 0 {
			if stat.Observed.AvgLatencyMs == nil || n <= 1 {
				v := *att.LatencyMs
				stat.Observed.AvgLatencyMs = &v
			} else {
				prev := *stat.Observed.AvgLatencyMs
				v := int(math.Round(float64(prev*(n-1)+*att.LatencyMs) / float64(n)))
				stat.Observed.AvgLatencyMs = &v
			}
		}

		// Running hint-usage rate over a 0/1 indicator per first attempt.
		used := 0.0
		if att.HintUsed {
			used = 1.0
		}
		before := n - 1
		if before == 0 {
			stat.Observed.HintUsageRate = round4(used)
		} else {
			stat.Observed.HintUsageRate = round4(
				(stat.Observed.HintUsageRate*float64(before) + used) / float64(n))
		}
	}

	stat.Observed.Exposures = stat.TotalAttempts
	if stat.TotalAttempts > 0 {
		rate := round4(float64(stat.TotalCorrect) / float64(stat.TotalAttempts))
		stat.Observed.OverallCorrectRate = rate
		// Identical by definition: only first attempts are counted.
		stat.Observed.FirstTryCorrectRate = rate
	}
}

// Get returns the stored aggregate for a question id, or nil when the
// question has never been exposed.
func (a *Aggregator) Get(qid string) (*QuestionStat, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	doc, err := a.load()
	if err != nil {
		return nil, err
	}
	return doc.Stats[qid], nil
}

// Snapshot returns the full stats map for the bank.
func (a *Aggregator) Snapshot() (map[string]*QuestionStat, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	doc, err := a.load()
	if err != nil {
		return nil, err
	}
	return doc.Stats, nil
}

func (a *Aggregator) load() (*file, error) {
	doc := &file{
		Metadata: metadata{QuestionBank: a.bank},
		Stats:    make(map[string]*QuestionStat),
	}

	data, err := os.ReadFile(a.path())
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read question stats: %w", err)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse question stats: %w", err)
	}
	if doc.Stats == nil {
		doc.Stats = make(map[string]*QuestionStat)
	}
	doc.Metadata.QuestionBank = a.bank
	return doc, nil
}

func (a *Aggregator) save(doc *file) error {
	path := a.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode question stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write question stats: %w", err)
	}
	return nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
