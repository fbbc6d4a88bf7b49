package catalog

// Category is a quiz category presented for selection.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// categories is the fixed category set. Matches the fallback bank keys.
var categories = []Category{
	{ID: "1", Name: "Sports", Description: "Test your knowledge about various sports and athletes", Icon: "⚽", Color: "#3B82F6"},
	{ID: "2", Name: "Science", Description: "Explore the wonders of science and discovery", Icon: "🔬", Color: "#10B981"},
	{ID: "3", Name: "History", Description: "Journey through time with historical facts and events", Icon: "📚", Color: "#F59E0B"},
	{ID: "4", Name: "Geography", Description: "Discover the world through geography and culture", Icon: "🌍", Color: "#8B5CF6"},
	{ID: "5", Name: "Technology", Description: "Stay updated with the latest in technology", Icon: "💻", Color: "#EF4444"},
	{ID: "6", Name: "Entertainment", Description: "Test your knowledge of movies, music, and pop culture", Icon: "🎬", Color: "#EC4899"},
}

// Categories returns the fixed category list.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
