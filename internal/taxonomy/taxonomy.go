// Package taxonomy defines the assessment skill taxonomy: the five
// Watson-Glaser domains and the canonicalization tables that fold noisy
// subject and category labels from heterogeneous data sources onto them.
package taxonomy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Domain is a skill area in the assessment taxonomy.
type Domain string

const (
	Inference             Domain = "Inference"
	Interpretation        Domain = "Interpretation"
	Assumptions           Domain = "Assumptions"
	EvaluationOfArguments Domain = "Evaluation of Arguments"
	Deduction             Domain = "Deduction"
)

// AllDomains returns every domain in canonical order.
func AllDomains() []Domain {
	return []Domain{
		Inference,
		Interpretation,
		Assumptions,
		EvaluationOfArguments,
		Deduction,
	}
}

// domainAliases maps subject labels seen in question banks to canonical
// domains. Noisy labels map to the closest canonical subject.
var domainAliases = map[string]Domain{
	"Inference":               Inference,
	"Interpretation":          Interpretation,
	"Assumptions":             Assumptions,
	"Evaluation of Arguments": EvaluationOfArguments,
	"Deduction":               Deduction,
	"Logic":                   Deduction,
	"Logical":                 Deduction,
}

// ParseDomain maps a raw subject string to a Domain. Unrecognized
// subjects fall back to Deduction; ingestion is lossy-tolerant and
// never rejects a record over its subject label.
func ParseDomain(subject string) Domain {
	if d, ok := domainAliases[subject]; ok {
		return d
	}
	return Deduction
}

// categoryNames maps lowercased category labels from answer history to
// the display names used in learning plans.
var categoryNames = map[string]string{
	"inference":               "Inference",
	"interpretation":          "Interpretation",
	"assumptions":             "Recognition of Assumptions",
	"evaluation of arguments": "Evaluation of Arguments",
	"deduction":               "Deduction",
	"numerical":               "Numerical",
	"verbal":                  "Verbal",
	"abstract":                "Abstract",
}

// CanonicalCategory maps a category label from user data to its standard
// display name. Unknown categories pass through title-cased rather than
// erroring, so plans can still be built over unseen taxonomies.
func CanonicalCategory(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if name, ok := categoryNames[key]; ok {
		return name
	}
	return titleCase(category)
}

// titleCase upper-cases the first letter of each space- or
// underscore-separated word.
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_'
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
