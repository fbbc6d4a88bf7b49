package quizgen

import (
	"context"
	"log"

	"github.com/quizforge/quizforge/internal/llm"
)

// Service orchestrates question generation: prompt → model → parse,
// with the static fallback bank covering every pipeline failure. The
// provider is injected at construction so callers can substitute a mock.
type Service struct {
	provider llm.Provider
	config   Config
}

// NewService creates a generation Service with the given provider and config.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// GenerateQuestions produces a batch of questions for the request.
//
// A zero difficulty is resolved from the label or the player profile
// before validation. Validation errors are returned to the caller. Every downstream
// failure (transport, empty completion, parse) is absorbed: the method
// answers with the fallback bank for the same category and count, so a
// valid request always yields a playable quiz. Availability over
// freshness.
func (s *Service) GenerateQuestions(ctx context.Context, req Request) ([]Question, error) {
	req.Difficulty = req.ResolvedDifficulty()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	prompt := BuildPrompt(req.Category, req.Profile, req.Difficulty, req.Count)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		log.Printf("question generation failed, serving fallback bank: %v", err)
		return Fallback(req.Category, req.Count), nil
	}

	questions, err := ParseQuestions(resp.Content, req.Count)
	if err != nil {
		log.Printf("question parse failed, serving fallback bank: %v", err)
		return Fallback(req.Category, req.Count), nil
	}

	return questions, nil
}
