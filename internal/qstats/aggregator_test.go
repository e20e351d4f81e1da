package qstats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFirstAttemptsOnly(t *testing.T) {
	a := NewAggregator(t.TempDir(), "Watson Glaser")

	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: true, AttemptIndex: 0})
	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: false, AttemptIndex: 0})
	// Retry: must not move the counters.
	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: true, AttemptIndex: 1})

	stat, err := a.Get("Q1")
	require.NoError(t, err)
	require.NotNil(t, stat)

	assert.Equal(t, 2, stat.TotalAttempts)
	assert.Equal(t, 1, stat.TotalCorrect)
	assert.Equal(t, 1, stat.TotalIncorrect)
	assert.Equal(t, 0.5, stat.Observed.OverallCorrectRate)
	assert.Equal(t, 0.5, stat.Observed.FirstTryCorrectRate)
	assert.Equal(t, 2, stat.Observed.Exposures)
}

func TestCounterInvariant(t *testing.T) {
	a := NewAggregator(t.TempDir(), "Watson Glaser")

	outcomes := []bool{true, false, true, true, false}
	for _, correct := range outcomes {
		a.RecordAttempt(Attempt{QID: "Q1", Domain: "Inference", Difficulty: 5, IsCorrect: correct, AttemptIndex: 0})
	}

	stat, err := a.Get("Q1")
	require.NoError(t, err)
	assert.Equal(t, stat.TotalAttempts, stat.TotalCorrect+stat.TotalIncorrect)
	assert.Equal(t, stat.TotalAttempts, stat.Observed.Exposures)
	assert.Equal(t, 0.6, stat.Observed.OverallCorrectRate)
}

func TestRunningLatencyAverage(t *testing.T) {
	a := NewAggregator(t.TempDir(), "Watson Glaser")

	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: true, AttemptIndex: 0, LatencyMs: intPtr(1000)})
	stat, err := a.Get("Q1")
	require.NoError(t, err)
	require.NotNil(t, stat.Observed.AvgLatencyMs)
	assert.Equal(t, 1000, *stat.Observed.AvgLatencyMs)

	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: false, AttemptIndex: 0, LatencyMs: intPtr(2000)})
	stat, err = a.Get("Q1")
	require.NoError(t, err)
	// (1000*1 + 2000) / 2
	assert.Equal(t, 1500, *stat.Observed.AvgLatencyMs)

	// Attempt without a latency sample leaves the average untouched.
	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: true, AttemptIndex: 0})
	stat, err = a.Get("Q1")
	require.NoError(t, err)
	assert.Equal(t, 1500, *stat.Observed.AvgLatencyMs)
}

func TestHintUsageRate(t *testing.T) {
	a := NewAggregator(t.TempDir(), "Watson Glaser")

	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: false, AttemptIndex: 0, HintUsed: true})
	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: true, AttemptIndex: 0})
	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: true, AttemptIndex: 0, HintUsed: true})

	stat, err := a.Get("Q1")
	require.NoError(t, err)
	assert.Equal(t, 2, stat.HintUsageCount)
	assert.Equal(t, 0.6667, stat.Observed.HintUsageRate)
}

func TestRetryRefreshesDescriptiveFields(t *testing.T) {
	a := NewAggregator(t.TempDir(), "Watson Glaser")

	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: true, AttemptIndex: 0})
	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Inference", Difficulty: 7, IsCorrect: false, AttemptIndex: 1, Stem: "updated stem"})

	stat, err := a.Get("Q1")
	require.NoError(t, err)
	assert.Equal(t, "Inference", stat.Domain)
	assert.Equal(t, 7, stat.Difficulty)
	assert.Equal(t, "updated stem", stat.Stem)
	assert.Equal(t, 1, stat.TotalAttempts)
}

func TestWriteThroughFormat(t *testing.T) {
	dir := t.TempDir()
	a := NewAggregator(dir, "Watson Glaser")

	a.RecordAttempt(Attempt{QID: "19", Domain: "Deduction", Difficulty: 4, IsCorrect: true, AttemptIndex: 0})

	data, err := os.ReadFile(filepath.Join(dir, "Watson Glaser", "question_stats.json"))
	require.NoError(t, err, "stat file must be durable before RecordAttempt returns")

	var doc struct {
		Metadata struct {
			QuestionBank string `json:"question_bank"`
		} `json:"metadata"`
		Stats map[string]*QuestionStat `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Watson Glaser", doc.Metadata.QuestionBank)
	require.Contains(t, doc.Stats, "19")
	assert.Equal(t, "19", doc.Stats["19"].QuestionID)
}

func TestPersistenceFailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	a := NewAggregator(dir, "Watson Glaser")

	// Corrupt the stat file; the attempt must not panic or error, and
	// the file must stay unchanged for this attempt.
	bankDir := filepath.Join(dir, "Watson Glaser")
	require.NoError(t, os.MkdirAll(bankDir, 0o755))
	statPath := filepath.Join(bankDir, "question_stats.json")
	require.NoError(t, os.WriteFile(statPath, []byte("{not json"), 0o644))

	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: true, AttemptIndex: 0})

	data, err := os.ReadFile(statPath)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestSnapshot(t *testing.T) {
	a := NewAggregator(t.TempDir(), "Watson Glaser")

	a.RecordAttempt(Attempt{QID: "Q1", Domain: "Deduction", Difficulty: 4, IsCorrect: true, AttemptIndex: 0})
	a.RecordAttempt(Attempt{QID: "Q2", Domain: "Inference", Difficulty: 6, IsCorrect: false, AttemptIndex: 0})

	snap, err := a.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap, 2)

	// Unknown questions have no record.
	stat, err := a.Get("Q3")
	require.NoError(t, err)
	assert.Nil(t, stat)
}
