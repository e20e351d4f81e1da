package bank

import (
	"errors"
	"testing"

	"github.com/abhisek/critiq/internal/taxonomy"
)

const fixtureBank = `{
  "questions": [
    {
      "id": "Q1",
      "Subject": "Deduction",
      "question content": "All managers attend the Monday sync. Dana attends the Monday sync.",
      "answers": {"answer_1": "Conclusion follows", "answer_2": "Conclusion does not follow"},
      "correct answer": "Conclusion does not follow",
      "Difficulty level": 4
    },
    {
      "id": "Q2",
      "subject": "Deduction",
      "question": "No interns have badge access. Some visitors have badge access.",
      "answer_1": "Conclusion follows",
      "answer_2": "Conclusion does not follow",
      "answer": "Conclusion follows",
      "difficulty": 6
    },
    {
      "id": "Q3",
      "category": "Inference",
      "stem": "Quarterly revenue rose while headcount stayed flat.",
      "option_1": "True",
      "option_2": "Probably true",
      "option_3": "Insufficient data",
      "correct": "Probably true",
      "difficulty_level": "7"
    },
    {
      "Subject": "Logic",
      "question": "If the survey is valid, response bias is low.",
      "answer_1": "Conclusion follows",
      "answer_2": "Conclusion does not follow",
      "correct_answer": "Conclusion follows"
    }
  ]
}`

func loadFixture(t *testing.T) *Repository {
	t.Helper()
	r, err := Parse([]byte(fixtureBank))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return r
}

func TestParseNormalization(t *testing.T) {
	r := loadFixture(t)

	if r.Len() != 4 {
		t.Fatalf("expected 4 questions, got %d", r.Len())
	}

	q1, err := r.Get("Q1")
	if err != nil {
		t.Fatalf("Get(Q1): %v", err)
	}
	if q1.Domain != taxonomy.Deduction {
		t.Errorf("Q1 domain = %q, want Deduction", q1.Domain)
	}
	if len(q1.Options) != 2 || q1.Options[0] != "Conclusion follows" {
		t.Errorf("Q1 options = %v", q1.Options)
	}
	if q1.Difficulty != 4 {
		t.Errorf("Q1 difficulty = %d, want 4", q1.Difficulty)
	}
	if q1.CorrectIndex() != 1 {
		t.Errorf("Q1 correct index = %d, want 1", q1.CorrectIndex())
	}

	// String difficulty parses.
	q3, err := r.Get("Q3")
	if err != nil {
		t.Fatalf("Get(Q3): %v", err)
	}
	if q3.Difficulty != 7 {
		t.Errorf("Q3 difficulty = %d, want 7", q3.Difficulty)
	}
	if q3.Domain != taxonomy.Inference {
		t.Errorf("Q3 domain = %q, want Inference", q3.Domain)
	}
}

func TestParseDefaults(t *testing.T) {
	r := loadFixture(t)

	// The fourth record has no id: one was synthesized.
	all := r.All()
	q4 := all[3]
	if q4.ID == "" {
		t.Fatal("expected synthesized id for record without one")
	}
	// "Logic" is an alias for Deduction.
	if q4.Domain != taxonomy.Deduction {
		t.Errorf("q4 domain = %q, want Deduction", q4.Domain)
	}
	// No difficulty present: documented default.
	if q4.Difficulty != DefaultDifficulty {
		t.Errorf("q4 difficulty = %d, want %d", q4.Difficulty, DefaultDifficulty)
	}
	if q4.Explanation != "" {
		t.Errorf("q4 explanation = %q, want empty", q4.Explanation)
	}
}

func TestParseFlatArray(t *testing.T) {
	r, err := Parse([]byte(`[{"id": "A", "question": "x", "answer_1": "yes", "answer": "yes"}]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 question, got %d", r.Len())
	}
}

func TestGetNotFound(t *testing.T) {
	r := loadFixture(t)
	_, err := r.Get("missing")
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if nf.ID != "missing" {
		t.Errorf("ErrNotFound.ID = %q", nf.ID)
	}
}

func TestSuggestNextBand(t *testing.T) {
	r := loadFixture(t)

	// Bank has exactly two Deduction questions with difficulty set (4
	// and 6) plus one defaulted to 5; target 5 covers band [4,6].
	got := r.SuggestNext(taxonomy.Deduction, 5, 3, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 in-band questions, got %d", len(got))
	}
	// Load order is preserved.
	if got[0].ID != "Q1" || got[1].ID != "Q2" {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}

	// Target 3 gives band [2,4]: only Q1 qualifies.
	got = r.SuggestNext(taxonomy.Deduction, 3, 3, nil)
	if len(got) != 1 || got[0].ID != "Q1" {
		t.Errorf("band [2,4]: got %d results", len(got))
	}
}

func TestSuggestNextShortResult(t *testing.T) {
	// Exactly two Deduction questions at difficulty 4 and 6; asking
	// for three at target 5 returns exactly those two, no widening.
	data := `[
	  {"id": "D1", "Subject": "Deduction", "question": "a", "answer_1": "x", "answer": "x", "difficulty": 4},
	  {"id": "D2", "Subject": "Deduction", "question": "b", "answer_1": "x", "answer": "x", "difficulty": 6},
	  {"id": "D3", "Subject": "Deduction", "question": "c", "answer_1": "x", "answer": "x", "difficulty": 9}
	]`
	r, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := r.SuggestNext(taxonomy.Deduction, 5, 3, map[string]bool{})
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	if got[0].ID != "D1" || got[1].ID != "D2" {
		t.Errorf("unexpected ids: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestSuggestNextExcludes(t *testing.T) {
	r := loadFixture(t)
	got := r.SuggestNext(taxonomy.Deduction, 5, 3, map[string]bool{"Q1": true})
	for _, q := range got {
		if q.ID == "Q1" {
			t.Fatal("excluded question returned")
		}
	}
}

func TestSuggestNextClampsBand(t *testing.T) {
	r := loadFixture(t)
	// Target 1 must clamp the lower bound to 1, target 10 the upper
	// bound to 10; neither should panic or return out-of-range bands.
	_ = r.SuggestNext(taxonomy.Deduction, 1, 5, nil)
	_ = r.SuggestNext(taxonomy.Deduction, 10, 5, nil)
}

func TestRoundTripIdempotent(t *testing.T) {
	r := loadFixture(t)

	selected := r.SuggestNext(taxonomy.Inference, 7, 1, nil)
	if len(selected) != 1 {
		t.Fatalf("expected 1 inference question, got %d", len(selected))
	}
	fetched, err := r.Get(selected[0].ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fetched.Stem != selected[0].Stem || fetched.Difficulty != selected[0].Difficulty {
		t.Error("selected and fetched questions differ")
	}
	if fetched.Correct != selected[0].Correct {
		t.Error("correct answer differs between selection and lookup")
	}
}
