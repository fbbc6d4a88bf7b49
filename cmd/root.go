package cmd

import (
	"github.com/quizforge/quizforge/internal/catalog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "Personalized quiz service",
	Long:  "Quizforge is an HTTP service that generates personalized multiple-choice quizzes with a static fallback bank.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZFORGE_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, catalog.EnsureDir(p)
	}
	return catalog.DefaultDBPath()
}
