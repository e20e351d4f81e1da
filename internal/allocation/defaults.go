package allocation

import "strings"

// DefaultCategoryWeights returns the standard weight set for a known
// assessment type, or a generic equal split.
func DefaultCategoryWeights(assessmentType string) []CategoryWeight {
	upper := strings.ToUpper(assessmentType)

	switch {
	case strings.Contains(upper, "SHL"):
		return []CategoryWeight{
			{Category: "Numerical", Weight: 0.4},
			{Category: "Verbal", Weight: 0.3},
			{Category: "Abstract", Weight: 0.3},
		}
	case strings.Contains(upper, "WATSON"), strings.Contains(upper, "GLASER"):
		return []CategoryWeight{
			{Category: "Inference", Weight: 0.2},
			{Category: "Recognition of Assumptions", Weight: 0.2},
			{Category: "Deduction", Weight: 0.2},
			{Category: "Interpretation", Weight: 0.2},
			{Category: "Evaluation of Arguments", Weight: 0.2},
		}
	default:
		return []CategoryWeight{
			{Category: "Category 1", Weight: 0.33},
			{Category: "Category 2", Weight: 0.33},
			{Category: "Category 3", Weight: 0.34},
		}
	}
}

// DefaultDiagnosticScores returns the neutral score for each category.
func DefaultDiagnosticScores(categories []string) []DiagnosticScore {
	scores := make([]DiagnosticScore, len(categories))
	for i, c := range categories {
		scores[i] = DiagnosticScore{Category: c, Score: NeutralScore}
	}
	return scores
}
