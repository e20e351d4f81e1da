package qstats

// ObservedStats holds the derived per-question rates. Rates are
// rounded to 4 decimal places, latency to the nearest millisecond.
type ObservedStats struct {
	Exposures           int     `json:"exposures"`
	OverallCorrectRate  float64 `json:"overall_correct_rate"`
	FirstTryCorrectRate float64 `json:"first_try_correct_rate"`
	AvgLatencyMs        *int    `json:"avg_latency_ms"`
	HintUsageRate       float64 `json:"hint_usage_rate"`
}

// QuestionStat is the running aggregate for one question. Created on
// first exposure, updated on every later first attempt, never deleted.
//
// Invariant: TotalAttempts == TotalCorrect + TotalIncorrect and
// Exposures == TotalAttempts, because only first attempts count.
type QuestionStat struct {
	QuestionID     string        `json:"question_id"`
	Stem           string        `json:"stem,omitempty"`
	Domain         string        `json:"domain"`
	Difficulty     int           `json:"difficulty"`
	TotalAttempts  int           `json:"total_attempts"`
	TotalCorrect   int           `json:"total_correct"`
	TotalIncorrect int           `json:"total_incorrect"`
	HintUsageCount int           `json:"hint_usage_count"`
	Observed       ObservedStats `json:"observed_stats"`
}

// Attempt describes one answer submission.
type Attempt struct {
	QID          string
	Domain       string
	Difficulty   int
	IsCorrect    bool
	AttemptIndex int  // 0 = first attempt; only those move counters
	LatencyMs    *int // nil when not measured
	HintUsed     bool
	Stem         string
}
