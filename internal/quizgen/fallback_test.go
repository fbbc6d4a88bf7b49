package quizgen

import "testing"

func TestFallback(t *testing.T) {
	questions := Fallback("Science", 2)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Text != "What is the chemical symbol for gold?" {
		t.Errorf("unexpected first question: %q", questions[0].Text)
	}
}

func TestFallback_UnknownCategoryUsesDefault(t *testing.T) {
	got := Fallback("Quantum Basket Weaving", 3)
	want := Fallback(fallbackDefault, 3)
	if len(got) != len(want) {
		t.Fatalf("expected default bank, got %d questions", len(got))
	}
	for i := range got {
		if got[i].ID != want[i].ID {
			t.Errorf("question %d: got %q, want %q", i, got[i].ID, want[i].ID)
		}
	}
}

func TestFallback_ShortBankReturnsWhatExists(t *testing.T) {
	// The bank is never padded; asking for more than exists returns all.
	got := Fallback("History", 10)
	if len(got) != 3 {
		t.Errorf("expected the full 3-question bank, got %d", len(got))
	}
}

func TestFallback_AnswerInvariant(t *testing.T) {
	for _, category := range FallbackCategories() {
		for _, q := range FallbackAll(category) {
			if !containsOption(q.Options, q.CorrectAnswer) {
				t.Errorf("%s: correctAnswer %q not in options %v", q.ID, q.CorrectAnswer, q.Options)
			}
			if q.Difficulty < 1 || q.Difficulty > 10 {
				t.Errorf("%s: difficulty %d out of range", q.ID, q.Difficulty)
			}
		}
	}
}
