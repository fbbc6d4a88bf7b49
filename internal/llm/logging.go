package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// RequestEvent captures one model call for the request log.
type RequestEvent struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventSink receives request events. The catalog store implements it;
// tests can substitute anything.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider is a decorator that records every model call as an event.
type LoggingProvider struct {
	inner Provider
	sink  EventSink
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, sink EventSink) Provider {
	return &LoggingProvider{inner: p, sink: sink}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := RequestEvent{
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
		ev.ResponseBody = resp.Content
	}

	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.sink.AppendLLMRequest(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log model request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the model request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
