package tutor

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are the adaptive assessment tutor for a critical-thinking question bank.
You guide learners through Watson-Glaser style questions across five domains:
Inference, Interpretation, Assumptions, Evaluation of Arguments, and Deduction.

Rules:
- Keep hints short, actionable, and free of spoilers. Never reveal the correct option in a hint.
- Explanations focus on why the correct option works and what trap the learner likely fell into.
- Keep the tone supportive. Never be demotivating.
- Respond in the learner's language when one is specified.`

const statsSystemPrompt = `You are an analyst for per-question performance statistics.
Given a question's aggregate stats (exposures, correct rates, average latency, hint usage),
answer the operator's question concisely. Rely only on the provided numbers; do not invent data.`

const welcomeSystemPrompt = `You generate a short, personalized welcome message for a learner
starting an assessment preparation session. Mention their assessment and goals when provided.
Two or three sentences, warm and specific. No markdown headers.`

// buildHintMessage asks for one actionable hint after a wrong first
// attempt. The correct answer is deliberately not included.
func buildHintMessage(stem string, choices []string, chosen string, tags []string) string {
	var b strings.Builder
	b.WriteString("User chose a wrong option on the first attempt. ")
	b.WriteString("Provide ONE actionable hint (<=160 chars), no spoilers.\n")
	fmt.Fprintf(&b, "Stem: %s\n", stem)
	fmt.Fprintf(&b, "Choices: %s\n", strings.Join(choices, " | "))
	fmt.Fprintf(&b, "Chosen: %s\n", chosen)
	fmt.Fprintf(&b, "Tags: %s", strings.Join(tags, ", "))
	return b.String()
}

// buildExplanationMessage asks for an explanation plus the likely
// misconception after a second failure.
func buildExplanationMessage(stem string, choices []string, correct string, firstAttempt, secondAttempt int, tags []string) string {
	var b strings.Builder
	b.WriteString("The user failed twice. Provide: (1) <=120-word explanation of why the ")
	b.WriteString("correct option works, (2) <=200-char misconception describing the likely trap, ")
	b.WriteString("separated by a blank line.\n")
	fmt.Fprintf(&b, "Stem: %s\n", stem)
	fmt.Fprintf(&b, "Choices: %s\n", strings.Join(choices, " | "))
	fmt.Fprintf(&b, "Correct: %s\n", correct)
	fmt.Fprintf(&b, "Attempts: first=%d, second=%d\n", firstAttempt, secondAttempt)
	fmt.Fprintf(&b, "Tags: %s", strings.Join(tags, ", "))
	return b.String()
}

// buildSummaryMessage asks for the end-of-assessment summary: a warm
// reflective part plus an analytical breakdown of per-section results.
func buildSummaryMessage(perSection map[string]SectionResult, overallPercentile int, lang string) string {
	var b strings.Builder
	b.WriteString("Generate the assessment summary.\n")
	b.WriteString("Structure: one celebratory opening line; one or two reflective paragraphs ")
	b.WriteString("covering strengths, weak areas, and the overall percentile; a markdown block ")
	b.WriteString("titled '### Assessment Summary' with one '- Section: X correct out of Y' line ")
	b.WriteString("per section (legend: ✅ >=80%, ⚠️ 50-79%, ❌ <50%); then a short ")
	b.WriteString("statistical breakdown with accuracy per domain and any notable quirks.\n")
	b.WriteString("Do not invent details; rely only on the provided variables.\n")
	fmt.Fprintf(&b, "Language: %s\n", lang)
	fmt.Fprintf(&b, "Overall percentile: %d\n", overallPercentile)
	b.WriteString("Sections:\n")
	for name, r := range perSection {
		fmt.Fprintf(&b, "- %s: %d correct out of %d\n", name, r.Correct, r.Total)
	}
	return b.String()
}
