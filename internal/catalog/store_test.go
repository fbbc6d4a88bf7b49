package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleEntry(category string, difficulty int) Entry {
	return Entry{
		Category:      category,
		Question:      "What is the chemical symbol for gold?",
		Options:       []string{"Ag", "Au", "Fe", "Cu"},
		CorrectAnswer: "Au",
		Explanation:   "Au comes from the Latin aurum.",
		Difficulty:    difficulty,
		AgeRange:      "13-17",
	}
}

func TestCreateAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, sampleEntry("Science", 2))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)

	entries, err := store.List(ctx, Filter{Category: "Science"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ID)
	assert.Equal(t, []string{"Ag", "Au", "Fe", "Cu"}, entries[0].Options)
	assert.Equal(t, "Au", entries[0].CorrectAnswer)
}

func TestList_Filters(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, sampleEntry("Science", 2))
	require.NoError(t, err)
	_, err = store.Create(ctx, sampleEntry("Science", 5))
	require.NoError(t, err)
	_, err = store.Create(ctx, sampleEntry("History", 2))
	require.NoError(t, err)

	entries, err := store.List(ctx, Filter{Category: "Science", Difficulty: 5})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	entries, err = store.List(ctx, Filter{Difficulty: 2})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = store.List(ctx, Filter{AgeRange: "50+"})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_Pagination(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Create(ctx, sampleEntry("Science", 1+i))
		require.NoError(t, err)
	}

	page, err := store.List(ctx, Filter{Category: "Science", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := store.List(ctx, Filter{Category: "Science", Limit: 10, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 3)

	total, err := store.Count(ctx, Filter{Category: "Science"})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestAppendLLMRequest(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendLLMRequest(ctx, llm.RequestEvent{
		Model:        "gpt-4o-mini",
		Purpose:      "question-gen",
		InputTokens:  120,
		OutputTokens: 800,
		LatencyMs:    950,
		Success:      true,
	}))
	require.NoError(t, store.AppendLLMRequest(ctx, llm.RequestEvent{
		Model:        "gpt-4o-mini",
		Purpose:      "question-gen",
		Success:      false,
		ErrorMessage: "rate limited",
	}))

	stats, err := store.LLMRequestStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRequests)
	assert.Equal(t, 1, stats.Failures)
	assert.Equal(t, 120, stats.InputTokens)
	assert.Equal(t, 800, stats.OutputTokens)
}
