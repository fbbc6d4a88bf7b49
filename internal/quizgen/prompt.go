package quizgen

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/profile"
)

const systemPrompt = `You are an expert quiz question generator. Create engaging, accurate, and age-appropriate multiple choice questions.`

// ageBands describes each supported age bucket for the prompt.
var ageBands = map[string]string{
	"5-8":   "Young children (5-8 years) - Simple language, basic concepts, fun facts",
	"9-12":  "Pre-teens (9-12 years) - Clear language, educational content, engaging topics",
	"13-17": "Teenagers (13-17 years) - Standard language, academic content, current topics",
	"18-25": "Young adults (18-25 years) - Sophisticated language, detailed content",
	"26-35": "Adults (26-35 years) - Professional language, comprehensive content",
	"36-50": "Adults (36-50 years) - Mature language, in-depth content",
	"50+":   "Seniors (50+ years) - Clear language, relevant content for mature learners",
}

// educationLevels describes each supported education level for the prompt.
var educationLevels = map[string]string{
	"Elementary":    "Elementary school level - Basic concepts, simple explanations",
	"Middle School": "Middle school level - Intermediate concepts, clear explanations",
	"High School":   "High school level - Standard academic concepts",
	"College":       "College level - Advanced concepts, detailed explanations",
	"Graduate":      "Graduate level - Expert concepts, comprehensive explanations",
	"Professional":  "Professional level - Industry-specific knowledge, practical applications",
}

// BuildPrompt composes the user-role generation instruction. Pure and
// total: unknown age or education keys fall back to a generic string.
func BuildPrompt(category string, p profile.Profile, difficulty, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d multiple choice questions for the category: %q\n\n", count, category)

	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Difficulty level: %s\n", difficultyBand(difficulty))
	fmt.Fprintf(&b, "- Age appropriate for: %s\n", ageBand(p.AgeRange))
	fmt.Fprintf(&b, "- Education level: %s\n", educationBand(p.EducationLevel))
	fmt.Fprintf(&b, "- Player interests: %s\n", strings.Join(p.Interests, ", "))
	fmt.Fprintf(&b, "- Learning goal: %s\n", p.LearningGoals)
	fmt.Fprintf(&b, "- Preferred complexity: %s\n", p.PreferredComplexity)

	b.WriteString("\nFormat each question as JSON:\n")
	b.WriteString("{\n")
	b.WriteString("  \"question\": \"Question text here?\",\n")
	b.WriteString("  \"options\": [\"Option A\", \"Option B\", \"Option C\", \"Option D\"],\n")
	b.WriteString("  \"correctAnswer\": \"Option A\",\n")
	b.WriteString("  \"explanation\": \"Brief explanation of why this is correct\",\n")
	fmt.Fprintf(&b, "  \"difficulty\": %d\n", difficulty)
	b.WriteString("}\n")
	b.WriteString("\nReturn only the JSON array of questions, no additional text.\n")

	return b.String()
}

// difficultyBand maps a 1-10 difficulty to one of three band descriptions.
func difficultyBand(difficulty int) string {
	switch {
	case difficulty <= 3:
		return "Beginner - Basic knowledge, simple concepts"
	case difficulty <= 6:
		return "Intermediate - Moderate knowledge, some complex concepts"
	default:
		return "Advanced - Deep knowledge, complex concepts"
	}
}

func ageBand(ageRange string) string {
	if d, ok := ageBands[ageRange]; ok {
		return d
	}
	return "General audience"
}

func educationBand(level string) string {
	if d, ok := educationLevels[level]; ok {
		return d
	}
	return "General knowledge"
}
