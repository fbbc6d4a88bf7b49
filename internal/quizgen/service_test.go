package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/llm"
)

func validRequest(count int) Request {
	return Request{
		Category:   "Science",
		Profile:    testProfile(),
		Difficulty: 5,
		Count:      count,
	}
}

func TestGenerateQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionJSON(3)})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.GenerateQuestions(context.Background(), validRequest(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if !containsOption(q.Options, q.CorrectAnswer) {
			t.Errorf("correctAnswer %q not in options %v", q.CorrectAnswer, q.Options)
		}
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != systemPrompt {
		t.Errorf("unexpected system prompt: %q", req.System)
	}
	if req.Temperature != 0.7 || req.MaxTokens != 2000 {
		t.Errorf("unexpected sampling config: temp=%v maxTokens=%d", req.Temperature, req.MaxTokens)
	}
}

func TestGenerateQuestions_TransportFailureServesFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.GenerateQuestions(context.Background(), validRequest(3))
	if err != nil {
		t.Fatalf("transport failure must not propagate: %v", err)
	}

	want := Fallback("Science", 3)
	if len(questions) != len(want) {
		t.Fatalf("expected %d fallback questions, got %d", len(want), len(questions))
	}
	for i := range want {
		if questions[i].ID != want[i].ID {
			t.Errorf("question %d: got %q, want fallback %q", i, questions[i].ID, want[i].ID)
		}
	}
}

func TestGenerateQuestions_AuthFailureServesFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrAuth{Err: errors.New("401 unauthorized")},
	})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.GenerateQuestions(context.Background(), validRequest(2))
	if err != nil {
		t.Fatalf("auth failure must not propagate: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("expected 2 fallback questions, got %d", len(questions))
	}
}

func TestGenerateQuestions_ParseFailureServesFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "I refuse to answer in JSON."})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.GenerateQuestions(context.Background(), validRequest(3))
	if err != nil {
		t.Fatalf("parse failure must not propagate: %v", err)
	}
	if len(questions) != 3 {
		t.Errorf("expected 3 fallback questions, got %d", len(questions))
	}
}

func TestGenerateQuestions_ValidationRejectsBeforeGeneration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"count zero", func(r *Request) { r.Count = 0 }},
		{"count too high", func(r *Request) { r.Count = 21 }},
		{"difficulty negative", func(r *Request) { r.Difficulty = -1 }},
		{"difficulty too high", func(r *Request) { r.Difficulty = 11 }},
		{"empty category", func(r *Request) { r.Category = "" }},
		{"empty interests", func(r *Request) { r.Profile.Interests = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider()
			svc := NewService(mock, DefaultConfig())

			req := validRequest(3)
			tt.mutate(&req)

			_, err := svc.GenerateQuestions(context.Background(), req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
			if mock.CallCount() != 0 {
				t.Errorf("validation failure must not reach the provider, got %d calls", mock.CallCount())
			}
		})
	}
}

func TestGenerateQuestions_ZeroDifficultyResolvedFromProfile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionJSON(2)})
	svc := NewService(mock, DefaultConfig())

	req := validRequest(2)
	req.Difficulty = 0

	if _, err := svc.GenerateQuestions(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}

	// testProfile is Intermediate + Moderate, which derives to 9.
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, `"difficulty": 9`) {
		t.Errorf("prompt not built at profile-derived difficulty:\n%s", prompt)
	}
}

func TestGenerateQuestions_ZeroDifficultyResolvedFromLabel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionJSON(2)})
	svc := NewService(mock, DefaultConfig())

	req := validRequest(2)
	req.Difficulty = 0
	req.DifficultyLabel = "easy"

	if _, err := svc.GenerateQuestions(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, `"difficulty": 3`) {
		t.Errorf("prompt not built at label difficulty:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Beginner") {
		t.Errorf("expected Beginner band in prompt:\n%s", prompt)
	}
}

func TestResolvedDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		label      string
		want       int
	}{
		{"explicit numeric wins", 7, "easy", 7},
		{"label when zero", 0, "hard", 9},
		{"unknown label defaults", 0, "brutal", 6},
		{"profile when nothing set", 0, "", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(3)
			req.Difficulty = tt.difficulty
			req.DifficultyLabel = tt.label
			if got := req.ResolvedDifficulty(); got != tt.want {
				t.Errorf("ResolvedDifficulty() = %d, want %d", got, tt.want)
			}
		})
	}
}
