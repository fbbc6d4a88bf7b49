package quizgen

import (
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/profile"
)

func testProfile() profile.Profile {
	return profile.Profile{
		AgeRange:            "13-17",
		EducationLevel:      "High School",
		SkillLevel:          profile.SkillIntermediate,
		Interests:           []string{"Science", "Technology"},
		LearningGoals:       "Exam preparation",
		PreferredComplexity: profile.ComplexityModerate,
	}
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("Science", testProfile(), 5, 10)

	wantFragments := []string{
		`Generate 10 multiple choice questions for the category: "Science"`,
		"Intermediate - Moderate knowledge, some complex concepts",
		"Teenagers (13-17 years)",
		"High school level - Standard academic concepts",
		"Science, Technology",
		"Learning goal: Exam preparation",
		"Preferred complexity: Moderate",
		`"difficulty": 5`,
		"Return only the JSON array of questions, no additional text.",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(got, frag) {
			t.Errorf("prompt missing %q\nprompt:\n%s", frag, got)
		}
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	p := testProfile()
	if BuildPrompt("History", p, 7, 5) != BuildPrompt("History", p, 7, 5) {
		t.Error("BuildPrompt is not deterministic")
	}
}

func TestBuildPrompt_UnknownKeysFallBack(t *testing.T) {
	p := testProfile()
	p.AgeRange = "unknown-band"
	p.EducationLevel = "Autodidact"

	got := BuildPrompt("Science", p, 5, 3)
	if !strings.Contains(got, "General audience") {
		t.Error("unknown age range should fall back to generic description")
	}
	if !strings.Contains(got, "General knowledge") {
		t.Error("unknown education level should fall back to generic description")
	}
}

func TestDifficultyBand(t *testing.T) {
	tests := []struct {
		difficulty int
		want       string
	}{
		{1, "Beginner"},
		{3, "Beginner"},
		{4, "Intermediate"},
		{6, "Intermediate"},
		{7, "Advanced"},
		{10, "Advanced"},
	}
	for _, tt := range tests {
		if got := difficultyBand(tt.difficulty); !strings.HasPrefix(got, tt.want) {
			t.Errorf("difficultyBand(%d) = %q, want %q prefix", tt.difficulty, got, tt.want)
		}
	}
}
