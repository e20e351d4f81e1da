// Package allocation implements the adaptive time-allocation
// algorithm: it maps category weights, diagnostic scores and a time
// budget to a per-category study-time plan.
//
// Per category i with weight w_i and score s_i:
//
//	gap       d_i = 1 - s_i
//	priority  p_i = w_i * (1 + d_i)
//	normalize P_i = p_i / sum(p_j)
//	minutes   t_i = floor(T * P_i)
package allocation

import (
	"fmt"
	"math"
)

// NeutralScore is assumed for categories without a diagnostic score.
const NeutralScore = 0.5

// weightSumTolerance is the accepted deviation of the weight sum
// from 1.0.
const weightSumTolerance = 0.01

// InvalidInputError reports the first violated allocation precondition.
// No partial computation happens after a violation.
type InvalidInputError struct {
	Constraint string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid allocation input: %s", e.Constraint)
}

// Engine computes adaptive time allocations. It is stateless and safe
// for concurrent use.
type Engine struct{}

// NewEngine creates an allocation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Allocate computes per-category time allocations for the given budget.
// Output order matches the input weight order. The allocated minutes
// may sum to less than totalMinutes due to floor truncation; the
// remainder is not redistributed.
func (e *Engine) Allocate(weights []CategoryWeight, scores []DiagnosticScore, totalMinutes int) ([]TimeAllocation, error) {
	if err := validate(weights, scores, totalMinutes); err != nil {
		return nil, err
	}

	scoreByCategory := make(map[string]float64, len(scores))
	for _, s := range scores {
		scoreByCategory[s.Category] = s.Score
	}

	allocations := make([]TimeAllocation, 0, len(weights))
	totalPriority := 0.0
	for _, w := range weights {
		score, ok := scoreByCategory[w.Category]
		if !ok {
			score = NeutralScore
		}
		gap := 1.0 - score
		priority := w.Weight * (1.0 + gap)
		totalPriority += priority

		allocations = append(allocations, TimeAllocation{
			Category:        w.Category,
			Weight:          w.Weight,
			DiagnosticScore: score,
			Gap:             gap,
			Priority:        priority,
		})
	}

	for i := range allocations {
		if totalPriority == 0 {
			// Degenerate: all priorities zero. Equal split instead of
			// dividing by zero.
			allocations[i].NormalizedPriority = 1.0 / float64(len(allocations))
		} else {
			allocations[i].NormalizedPriority = allocations[i].Priority / totalPriority
		}

		minutes := int(math.Floor(float64(totalMinutes) * allocations[i].NormalizedPriority))
		allocations[i].AllocatedMinutes = minutes
		allocations[i].AllocatedHours = math.Round(float64(minutes)/60.0*100) / 100
	}

	return allocations, nil
}

// BuildPlan computes allocations and assembles the full plan record.
// remainingMinutes overrides the input's total budget when positive.
func (e *Engine) BuildPlan(input PlanInput, remainingMinutes int) (*Plan, error) {
	budget := input.TotalAvailableTimeMinutes
	if remainingMinutes > 0 {
		budget = remainingMinutes
	}

	allocations, err := e.Allocate(input.CategoryWeights, input.InitialDiagnosticScores, budget)
	if err != nil {
		return nil, err
	}

	return &Plan{
		AssessmentName:       input.AssessmentName,
		UserID:               input.UserID,
		PlanVersion:          input.PlanVersion,
		RemainingTimeMinutes: budget,
		TotalTimeAllocated:   input.TotalAvailableTimeMinutes,
		Timestamp:            input.Timestamp,
		Allocations:          allocations,
	}, nil
}

// validate checks every allocation precondition, reporting the first
// violation.
func validate(weights []CategoryWeight, scores []DiagnosticScore, totalMinutes int) error {
	if len(weights) == 0 {
		return &InvalidInputError{Constraint: "category weights cannot be empty"}
	}
	if len(scores) == 0 {
		return &InvalidInputError{Constraint: "diagnostic scores cannot be empty"}
	}
	if totalMinutes <= 0 {
		return &InvalidInputError{Constraint: "total time must be positive"}
	}

	sum := 0.0
	for _, w := range weights {
		sum += w.Weight
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return &InvalidInputError{
			Constraint: fmt.Sprintf("category weights must sum to 1.0, got %g", sum),
		}
	}

	for _, w := range weights {
		if w.Weight < 0 || w.Weight > 1 {
			return &InvalidInputError{
				Constraint: fmt.Sprintf("weight for %s must be between 0 and 1, got %g", w.Category, w.Weight),
			}
		}
	}
	for _, s := range scores {
		if s.Score < 0 || s.Score > 1 {
			return &InvalidInputError{
				Constraint: fmt.Sprintf("diagnostic score for %s must be between 0 and 1, got %g", s.Category, s.Score),
			}
		}
	}
	return nil
}
