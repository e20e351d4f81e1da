package allocation

// CategoryWeight is the relative importance of a skill category within
// an assessment. Weights for one plan must sum to 1.0 (±0.01).
type CategoryWeight struct {
	Category string  `json:"category"`
	Weight   float64 `json:"weight"` // 0.0 - 1.0
}

// DiagnosticScore is a learner's measured mastery of a category.
// 0 = weakest, 1 = strongest.
type DiagnosticScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"` // 0.0 - 1.0
}

// TimeAllocation is one category's share of the study-time budget.
// Created fresh per allocation run, never mutated.
type TimeAllocation struct {
	Category           string  `json:"category"`
	Weight             float64 `json:"weight"`
	DiagnosticScore    float64 `json:"diagnostic_score"`
	Gap                float64 `json:"gap"`
	Priority           float64 `json:"priority"`
	NormalizedPriority float64 `json:"normalized_priority"`
	AllocatedMinutes   int     `json:"allocated_minutes"`
	AllocatedHours     float64 `json:"allocated_hours"`
}

// Plan is a complete adaptive learning plan: the per-category time
// allocations plus plan metadata. Produced per request, not stored.
type Plan struct {
	AssessmentName       string           `json:"assessment_name"`
	UserID               string           `json:"user_id"`
	PlanVersion          string           `json:"plan_version"`
	RemainingTimeMinutes int              `json:"remaining_time_minutes"`
	TotalTimeAllocated   int              `json:"total_time_allocated"`
	Timestamp            string           `json:"timestamp"`
	Allocations          []TimeAllocation `json:"plan"`
}

// PlanInput carries everything needed to build a plan.
type PlanInput struct {
	AssessmentName            string
	UserID                    string
	PlanVersion               string
	TotalAvailableTimeMinutes int
	Timestamp                 string
	CategoryWeights           []CategoryWeight
	InitialDiagnosticScores   []DiagnosticScore
}
