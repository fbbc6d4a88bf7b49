package quizgen

// fallbackDefault is served when a category has no pre-authored questions.
const fallbackDefault = "Sports"

// fallbackBank maps category name to pre-authored, pre-validated
// questions. Options are already in their final order; the bank is
// never reshuffled or padded.
var fallbackBank = map[string][]Question{
	"Sports": {
		{
			ID:            "sports-1",
			Text:          "Which country has won the most FIFA World Cup titles?",
			Options:       []string{"Brazil", "Germany", "Argentina", "Italy"},
			CorrectAnswer: "Brazil",
			Explanation:   "Brazil has won the FIFA World Cup 5 times (1958, 1962, 1970, 1994, 2002).",
			Difficulty:    3,
		},
		{
			ID:            "sports-2",
			Text:          "In basketball, how many points is a three-pointer worth?",
			Options:       []string{"2 points", "3 points", "4 points", "1 point"},
			CorrectAnswer: "3 points",
			Explanation:   "A three-pointer is worth 3 points when scored from beyond the three-point line.",
			Difficulty:    1,
		},
		{
			ID:            "sports-3",
			Text:          "Which sport is known as \"The Beautiful Game\"?",
			Options:       []string{"Basketball", "Soccer", "Tennis", "Baseball"},
			CorrectAnswer: "Soccer",
			Explanation:   "Soccer is often called \"The Beautiful Game\" due to its fluid, artistic nature.",
			Difficulty:    2,
		},
	},
	"Science": {
		{
			ID:            "science-1",
			Text:          "What is the chemical symbol for gold?",
			Options:       []string{"Ag", "Au", "Fe", "Cu"},
			CorrectAnswer: "Au",
			Explanation:   "Au comes from the Latin word \"aurum\" which means gold.",
			Difficulty:    2,
		},
		{
			ID:            "science-2",
			Text:          "Which planet is known as the Red Planet?",
			Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
			CorrectAnswer: "Mars",
			Explanation:   "Mars appears red due to iron oxide (rust) on its surface.",
			Difficulty:    1,
		},
		{
			ID:            "science-3",
			Text:          "What is the hardest natural substance on Earth?",
			Options:       []string{"Steel", "Diamond", "Granite", "Iron"},
			CorrectAnswer: "Diamond",
			Explanation:   "Diamond is the hardest known natural material on Earth.",
			Difficulty:    2,
		},
	},
	"History": {
		{
			ID:            "history-1",
			Text:          "In which year did World War II end?",
			Options:       []string{"1943", "1944", "1945", "1946"},
			CorrectAnswer: "1945",
			Explanation:   "World War II ended in 1945 with the surrender of Germany in May and Japan in September.",
			Difficulty:    2,
		},
		{
			ID:            "history-2",
			Text:          "Who was the first President of the United States?",
			Options:       []string{"John Adams", "Thomas Jefferson", "George Washington", "Benjamin Franklin"},
			CorrectAnswer: "George Washington",
			Explanation:   "George Washington served as the first President from 1789 to 1797.",
			Difficulty:    1,
		},
		{
			ID:            "history-3",
			Text:          "Which ancient wonder was located in Alexandria?",
			Options:       []string{"Colossus of Rhodes", "Lighthouse of Alexandria", "Hanging Gardens", "Temple of Artemis"},
			CorrectAnswer: "Lighthouse of Alexandria",
			Explanation:   "The Lighthouse of Alexandria was one of the Seven Wonders of the Ancient World.",
			Difficulty:    3,
		},
	},
	"Geography": {
		{
			ID:            "geography-1",
			Text:          "What is the capital of Australia?",
			Options:       []string{"Sydney", "Melbourne", "Canberra", "Brisbane"},
			CorrectAnswer: "Canberra",
			Explanation:   "Canberra is the capital city of Australia, not Sydney or Melbourne.",
			Difficulty:    2,
		},
		{
			ID:            "geography-2",
			Text:          "Which is the largest ocean on Earth?",
			Options:       []string{"Atlantic Ocean", "Indian Ocean", "Arctic Ocean", "Pacific Ocean"},
			CorrectAnswer: "Pacific Ocean",
			Explanation:   "The Pacific Ocean is the largest and deepest ocean on Earth.",
			Difficulty:    1,
		},
		{
			ID:            "geography-3",
			Text:          "What is the longest river in the world?",
			Options:       []string{"Amazon", "Nile", "Yangtze", "Mississippi"},
			CorrectAnswer: "Nile",
			Explanation:   "The Nile River is the longest river in the world at approximately 6,650 km.",
			Difficulty:    2,
		},
	},
	"Technology": {
		{
			ID:            "technology-1",
			Text:          "What does CPU stand for?",
			Options:       []string{"Central Processing Unit", "Computer Personal Unit", "Central Personal Unit", "Computer Processing Unit"},
			CorrectAnswer: "Central Processing Unit",
			Explanation:   "CPU stands for Central Processing Unit, the main processor of a computer.",
			Difficulty:    1,
		},
		{
			ID:            "technology-2",
			Text:          "Which company created the iPhone?",
			Options:       []string{"Samsung", "Apple", "Google", "Microsoft"},
			CorrectAnswer: "Apple",
			Explanation:   "Apple Inc. created and released the first iPhone in 2007.",
			Difficulty:    1,
		},
		{
			ID:            "technology-3",
			Text:          "What does HTML stand for?",
			Options:       []string{"HyperText Markup Language", "High Tech Modern Language", "Hyper Transfer Markup Language", "Home Tool Markup Language"},
			CorrectAnswer: "HyperText Markup Language",
			Explanation:   "HTML stands for HyperText Markup Language, the standard markup language for web pages.",
			Difficulty:    2,
		},
	},
	"Entertainment": {
		{
			ID:            "entertainment-1",
			Text:          "Who played Iron Man in the Marvel Cinematic Universe?",
			Options:       []string{"Chris Evans", "Robert Downey Jr.", "Chris Hemsworth", "Mark Ruffalo"},
			CorrectAnswer: "Robert Downey Jr.",
			Explanation:   "Robert Downey Jr. played Tony Stark/Iron Man in the Marvel Cinematic Universe.",
			Difficulty:    1,
		},
		{
			ID:            "entertainment-2",
			Text:          "Which band released the album \"Abbey Road\"?",
			Options:       []string{"The Rolling Stones", "The Beatles", "Led Zeppelin", "Pink Floyd"},
			CorrectAnswer: "The Beatles",
			Explanation:   "The Beatles released \"Abbey Road\" in 1969, their final recorded album.",
			Difficulty:    2,
		},
		{
			ID:            "entertainment-3",
			Text:          "What year did the first Star Wars movie release?",
			Options:       []string{"1975", "1977", "1979", "1981"},
			CorrectAnswer: "1977",
			Explanation:   "Star Wars: Episode IV - A New Hope was released in 1977.",
			Difficulty:    2,
		},
	},
}

// Fallback returns up to count pre-authored questions for the category.
// Unknown categories get the default category's list. When the bank is
// shorter than count, it returns what exists rather than fabricating
// questions.
func Fallback(category string, count int) []Question {
	bank, ok := fallbackBank[category]
	if !ok {
		bank = fallbackBank[fallbackDefault]
	}
	if count > len(bank) {
		count = len(bank)
	}
	out := make([]Question, count)
	copy(out, bank[:count])
	return out
}

// FallbackCategories lists the categories with pre-authored questions.
func FallbackCategories() []string {
	names := make([]string, 0, len(fallbackBank))
	for name := range fallbackBank {
		names = append(names, name)
	}
	return names
}

// FallbackAll returns the full pre-authored list for a category, without
// the unknown-category default. Used by the catalog seeder.
func FallbackAll(category string) []Question {
	bank := fallbackBank[category]
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}
