package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quizforge/quizforge/internal/catalog"
	"github.com/quizforge/quizforge/internal/httpapi"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quizgen"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("origins", "http://localhost:3000", "Comma-separated allowed CORS origins")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := catalog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("model provider config: %w", err)
	}
	provider, err := llm.NewProvider(cfg, store)
	if err != nil {
		return fmt.Errorf("build model provider: %w", err)
	}

	gen := quizgen.NewService(provider, quizgen.DefaultConfig())
	server := httpapi.NewServer(gen, store)

	addr, _ := cmd.Flags().GetString("addr")
	origins, _ := cmd.Flags().GetString("origins")

	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Handler(strings.Split(origins, ",")),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s (model %s)", addr, provider.ModelID())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("Server shutdown gracefully")
	return nil
}
