package quizgen

import (
	"fmt"
	"sort"
	"strings"
	"testing"
)

func questionJSON(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{
			"question": "Question %d?",
			"options": ["A%d", "B%d", "C%d", "D%d"],
			"correctAnswer": "B%d",
			"explanation": "Because.",
			"difficulty": 5
		}`, i, i, i, i, i, i)
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestParseQuestions(t *testing.T) {
	questions, err := ParseQuestions(questionJSON(3), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID == "" {
			t.Errorf("question %d has no id", i)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if q.CorrectAnswer != fmt.Sprintf("B%d", i) {
			t.Errorf("question %d correctAnswer = %q", i, q.CorrectAnswer)
		}
	}
}

func TestParseQuestions_ProseWrappedArray(t *testing.T) {
	raw := "Sure! Here are your questions:\n" + questionJSON(2) + "\nEnjoy the quiz."
	questions, err := ParseQuestions(raw, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}

func TestParseQuestions_TruncatesOverCount(t *testing.T) {
	questions, err := ParseQuestions(questionJSON(5), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Errorf("expected truncation to 3, got %d", len(questions))
	}
}

func TestParseQuestions_ShortCountIsNotAnError(t *testing.T) {
	questions, err := ParseQuestions(questionJSON(2), 5)
	if err != nil {
		t.Fatalf("short count should not fail: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(questions))
	}
}

func TestParseQuestions_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no array", "I could not generate any questions."},
		{"malformed JSON", `[{"question": "broken`},
		{"not objects", `[1, 2, 3]`},
		{"missing fields", `[{"question": "Q?", "options": ["a", "b"]}]`},
		{"single option", `[{"question": "Q?", "options": ["a"], "correctAnswer": "a", "explanation": "", "difficulty": 1}]`},
		{"answer not in options", `[{"question": "Q?", "options": ["a", "b", "c", "d"], "correctAnswer": "e", "explanation": "", "difficulty": 1}]`},
		{"difficulty out of range", `[{"question": "Q?", "options": ["a", "b"], "correctAnswer": "a", "explanation": "", "difficulty": 11}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseQuestions(tt.raw, 1); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}

func TestShuffleOptions_IsPermutation(t *testing.T) {
	options := []string{"Paris", "London", "Berlin", "Madrid"}

	for range 50 {
		shuffled := shuffleOptions(options)

		before := append([]string(nil), options...)
		after := append([]string(nil), shuffled...)
		sort.Strings(before)
		sort.Strings(after)

		if len(after) != len(before) {
			t.Fatalf("shuffle changed length: %d -> %d", len(before), len(after))
		}
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("shuffle is not a permutation: %v vs %v", options, shuffled)
			}
		}
	}
}

func TestParseQuestions_ShufflePreservesCorrectAnswer(t *testing.T) {
	// Across many parses the correct answer must always remain a member
	// of the shuffled options, identified by text rather than position.
	for range 25 {
		questions, err := ParseQuestions(questionJSON(4), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, q := range questions {
			if q.CorrectAnswer != fmt.Sprintf("B%d", i) {
				t.Fatalf("question %d: correctAnswer text changed to %q", i, q.CorrectAnswer)
			}
			if !containsOption(q.Options, q.CorrectAnswer) {
				t.Fatalf("question %d: correctAnswer %q missing from options %v", i, q.CorrectAnswer, q.Options)
			}
		}
	}
}
