package profile

// SkillLevel is the player's self-declared proficiency.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

// Complexity is the player's preferred question complexity.
type Complexity string

const (
	ComplexitySimple      Complexity = "Simple"
	ComplexityModerate    Complexity = "Moderate"
	ComplexityChallenging Complexity = "Challenging"
)

// Profile is the static set of user-declared preferences that
// parameterizes question generation. It carries no behavior and is
// immutable once a quiz session starts.
type Profile struct {
	// AgeRange is an age bucket, e.g. "9-12" or "50+".
	AgeRange string `json:"ageRange"`

	// EducationLevel is one of: Elementary, Middle School, High School,
	// College, Graduate, Professional.
	EducationLevel string `json:"educationLevel"`

	// SkillLevel is one of the SkillLevel constants.
	SkillLevel SkillLevel `json:"skillLevel"`

	// Interests is the set of category names the player cares about.
	// Must be non-empty before a session may start.
	Interests []string `json:"interests"`

	// LearningGoals describes what the player wants out of the quiz.
	LearningGoals string `json:"learningGoals"`

	// PreferredComplexity is one of the Complexity constants.
	PreferredComplexity Complexity `json:"preferredComplexity"`
}
