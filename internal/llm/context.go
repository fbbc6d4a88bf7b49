package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm-purpose"

// WithPurpose tags the context with the reason for an LLM request,
// e.g. "question-gen". The logging decorator records it with the event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the request purpose from the context, or "".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok {
		return p
	}
	return ""
}
