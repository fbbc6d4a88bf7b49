package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/quizforge/quizforge/internal/catalog"
	"github.com/quizforge/quizforge/internal/quizgen"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the pre-authored question bank into the catalog",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := catalog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	categories := quizgen.FallbackCategories()
	sort.Strings(categories)

	total := 0
	for _, category := range categories {
		for _, q := range quizgen.FallbackAll(category) {
			_, err := store.Create(ctx, catalog.Entry{
				ID:            q.ID,
				Category:      category,
				Question:      q.Text,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
				Difficulty:    q.Difficulty,
			})
			if err != nil {
				return fmt.Errorf("seed %s: %w", q.ID, err)
			}
			total++
		}
	}

	fmt.Printf("Seeded %d questions across %d categories into %s\n", total, len(categories), dbPath)
	return nil
}
