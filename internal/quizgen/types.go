package quizgen

import (
	"errors"
	"fmt"

	"github.com/quizforge/quizforge/internal/profile"
)

// ErrInvalidRequest marks request validation failures so transport
// layers can map them to a 400 without string matching.
var ErrInvalidRequest = errors.New("invalid generation request")

// Question is a generated multiple-choice question ready for play.
type Question struct {
	// ID is a fresh UUID assigned when the question enters the system.
	ID string `json:"id"`

	// Text is the question prompt shown to the player.
	Text string `json:"question"`

	// Options are the answer choices in display order. Convention is
	// four, but any N >= 2 is valid.
	Options []string `json:"options"`

	// CorrectAnswer is the text of the correct option. It always equals
	// exactly one element of Options, by value.
	CorrectAnswer string `json:"correctAnswer"`

	// Explanation is a short justification shown after answering.
	Explanation string `json:"explanation,omitempty"`

	// Difficulty is the question's difficulty on the 1-10 scale.
	Difficulty int `json:"difficulty"`
}

// Request asks for a batch of generated questions.
type Request struct {
	Category string          `json:"category"`
	Profile  profile.Profile `json:"playerProfile"`

	// Difficulty is the target 1-10 difficulty. Zero means "resolve
	// for me": from DifficultyLabel when set, otherwise from the
	// profile. Explicit out-of-range values are rejected.
	Difficulty int `json:"difficulty,omitempty"`

	// DifficultyLabel is an optional coarse difficulty (easy, medium,
	// hard). Only consulted when Difficulty is zero.
	DifficultyLabel string `json:"difficultyLabel,omitempty"`

	Count int `json:"count"`
}

// ResolvedDifficulty returns the request's effective difficulty: the
// explicit numeric value if given, else the label mapping, else the
// value derived from the player profile.
func (r Request) ResolvedDifficulty() int {
	if r.Difficulty != 0 {
		return r.Difficulty
	}
	if r.DifficultyLabel != "" {
		return profile.FromLabel(r.DifficultyLabel)
	}
	return profile.FromProfile(r.Profile)
}

// Count bounds for a single generation request.
const (
	MinCount = 1
	MaxCount = 20
)

// Validate range-checks the request before any generation attempt.
// Out-of-range values are a rejected request, not a generation failure.
func (r Request) Validate() error {
	if r.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidRequest)
	}
	if len(r.Profile.Interests) == 0 {
		return fmt.Errorf("%w: playerProfile.interests must not be empty", ErrInvalidRequest)
	}
	if r.Difficulty < profile.MinDifficulty || r.Difficulty > profile.MaxDifficulty {
		return fmt.Errorf("%w: difficulty must be between %d and %d", ErrInvalidRequest, profile.MinDifficulty, profile.MaxDifficulty)
	}
	if r.Count < MinCount || r.Count > MaxCount {
		return fmt.Errorf("%w: question count must be between %d and %d", ErrInvalidRequest, MinCount, MaxCount)
	}
	return nil
}
