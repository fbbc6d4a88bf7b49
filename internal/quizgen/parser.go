package quizgen

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// rawQuestion is the untrusted model output before validation.
type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    int      `json:"difficulty"`
}

// ParseQuestions extracts, validates, and normalizes a question batch
// from raw model output. The model is instructed to return only a JSON
// array but may wrap it in prose; the parser locates the array itself.
//
// Fewer questions than expected is a short-count condition, not a
// failure. More are truncated to expectedCount. Any deserialization or
// shape failure aborts the whole parse; no partial results.
func ParseQuestions(raw string, expectedCount int) ([]Question, error) {
	arr, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal([]byte(arr), &parsed); err != nil {
		return nil, fmt.Errorf("malformed JSON in response: %w", err)
	}
	if err := validateBatch(parsed); err != nil {
		return nil, err
	}

	var rawQuestions []rawQuestion
	if err := json.Unmarshal([]byte(arr), &rawQuestions); err != nil {
		return nil, fmt.Errorf("decode question array: %w", err)
	}

	for i, rq := range rawQuestions {
		if !containsOption(rq.Options, rq.CorrectAnswer) {
			return nil, fmt.Errorf("question %d: correctAnswer %q is not one of the options", i, rq.CorrectAnswer)
		}
	}

	if len(rawQuestions) < expectedCount {
		log.Printf("expected %d questions, got %d", expectedCount, len(rawQuestions))
	}
	if len(rawQuestions) > expectedCount {
		rawQuestions = rawQuestions[:expectedCount]
	}

	questions := make([]Question, 0, len(rawQuestions))
	for _, rq := range rawQuestions {
		q := Question{
			ID:            uuid.New().String(),
			Text:          rq.Question,
			Options:       shuffleOptions(rq.Options),
			CorrectAnswer: rq.CorrectAnswer,
			Explanation:   rq.Explanation,
			Difficulty:    rq.Difficulty,
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// extractJSONArray returns the first-'['-to-last-']' substring of raw.
func extractJSONArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON array found in response")
	}
	return raw[start : end+1], nil
}

// shuffleOptions returns a uniform random permutation of options using
// Fisher-Yates. The correct answer is re-identified by text, never by
// index, so shuffling can't break the answer invariant.
func shuffleOptions(options []string) []string {
	shuffled := make([]string, len(options))
	copy(shuffled, options)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
