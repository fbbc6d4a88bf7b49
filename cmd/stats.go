package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizforge/quizforge/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show model usage statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := catalog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	st, err := store.LLMRequestStats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Model requests: %d (%d failed)\n", st.TotalRequests, st.Failures)
	fmt.Printf("Tokens: %d in / %d out\n", st.InputTokens, st.OutputTokens)
	return nil
}
