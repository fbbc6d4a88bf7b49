package profile

// Difficulty bounds for generated questions.
const (
	MinDifficulty = 1
	MaxDifficulty = 10
)

// skillBase maps skill level to a base difficulty.
var skillBase = map[SkillLevel]int{
	SkillBeginner:     2,
	SkillIntermediate: 5,
	SkillAdvanced:     7,
	SkillExpert:       9,
}

// complexityBonus maps preferred complexity to a difficulty bonus.
var complexityBonus = map[Complexity]int{
	ComplexitySimple:      1,
	ComplexityModerate:    4,
	ComplexityChallenging: 7,
}

// labelDifficulty maps a coarse difficulty label to the 1-10 scale.
var labelDifficulty = map[string]int{
	"easy":   3,
	"medium": 6,
	"hard":   9,
}

// FromProfile resolves a profile to a difficulty score on [1,10].
// Unknown skill levels default to the mid-point (5) and unknown
// complexity preferences add no bonus, so the function is total.
func FromProfile(p Profile) int {
	base, ok := skillBase[p.SkillLevel]
	if !ok {
		base = 5
	}
	return clamp(base + complexityBonus[p.PreferredComplexity])
}

// FromLabel resolves a coarse label (easy, medium, hard) to the same
// scale. Unknown labels resolve to medium.
func FromLabel(label string) int {
	if d, ok := labelDifficulty[label]; ok {
		return d
	}
	return labelDifficulty["medium"]
}

func clamp(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}
