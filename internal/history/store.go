// Package history persists per-user answer records: one first-attempt
// outcome per (user, question) pair, kept in a flat JSON file per user
// per bank.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// AnswerRecord is one persisted first-attempt outcome.
type AnswerRecord struct {
	QID        string `json:"qid"`
	IsCorrect  bool   `json:"is_correct"`
	Domain     string `json:"domain"`
	Difficulty int    `json:"difficulty"`
}

// file is the on-disk answer-history document.
type file struct {
	Metadata metadata       `json:"metadata"`
	Answers  []AnswerRecord `json:"answers"`
}

type metadata struct {
	QuestionBank string `json:"question_bank"`
}

// Store reads and appends per-user answer histories for one question
// bank. Writes for a store instance are serialized; the underlying
// files are read-modify-write cycles with no cross-process isolation.
type Store struct {
	dataDir string
	bank    string

	mu sync.Mutex
}

// NewStore creates an answer-history store rooted at dataDir for the
// given question bank.
func NewStore(dataDir, bank string) *Store {
	return &Store{dataDir: dataDir, bank: bank}
}

// path returns the history file path for a user, sanitizing the user
// id so it cannot escape the bank directory.
func (s *Store) path(userID string) string {
	return filepath.Join(s.dataDir, s.bank, SafeUserID(userID)+"_answers.json")
}

// SafeUserID replaces path separators and spaces in a user id with
// underscores.
func SafeUserID(userID string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", " ", "_")
	return r.Replace(userID)
}

// Append records a first attempt. The set is keyed by qid and
// append-only: the first attempt for a question wins, and later calls
// for the same qid are dropped. Any I/O or parse failure is logged to
// stderr and swallowed, leaving the history file unchanged for this
// attempt: the answer-submission flow must never block on history.
func (s *Store) Append(userID string, rec AnswerRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load answer history: %v\n", err)
		return
	}

	for _, existing := range doc.Answers {
		if existing.QID == rec.QID {
			return
		}
	}
	doc.Answers = append(doc.Answers, rec)

	if err := s.save(userID, doc); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write answer history: %v\n", err)
	}
}

// Records returns all persisted answer records for a user, in append
// order. A missing file yields an empty slice; an unreadable or
// corrupt file is logged to stderr and also yields an empty slice, so
// callers degrade to their no-history behavior.
func (s *Store) Records(userID string) []AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load answer history: %v\n", err)
		return nil
	}
	return doc.Answers
}

func (s *Store) load(userID string) (*file, error) {
	doc := &file{Metadata: metadata{QuestionBank: s.bank}}

	data, err := os.ReadFile(s.path(userID))
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read answer history: %w", err)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse answer history: %w", err)
	}
	doc.Metadata.QuestionBank = s.bank
	return doc, nil
}

func (s *Store) save(userID string, doc *file) error {
	path := s.path(userID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode answer history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write answer history: %w", err)
	}
	return nil
}
