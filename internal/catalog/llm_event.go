package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/quizforge/quizforge/internal/llm"
)

// AppendLLMRequest records one model call. Implements llm.EventSink.
func (s *Store) AppendLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_events
			(model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Model, ev.Purpose, ev.InputTokens, ev.OutputTokens, ev.LatencyMs,
		boolToInt(ev.Success), ev.ErrorMessage, ev.RequestBody, ev.ResponseBody,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

// LLMStats summarizes the model request log.
type LLMStats struct {
	TotalRequests int
	Failures      int
	InputTokens   int
	OutputTokens  int
}

// LLMRequestStats aggregates the request log for the stats command.
func (s *Store) LLMRequestStats(ctx context.Context) (LLMStats, error) {
	var st LLMStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0)
		FROM llm_events`,
	).Scan(&st.TotalRequests, &st.Failures, &st.InputTokens, &st.OutputTokens)
	if err != nil {
		return LLMStats{}, fmt.Errorf("aggregate llm events: %w", err)
	}
	return st, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
