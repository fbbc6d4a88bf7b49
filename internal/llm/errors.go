package llm

import (
	"fmt"
	"time"
)

// ErrAuth indicates the provider rejected the configured credential (401).
type ErrAuth struct {
	Err error
}

func (e *ErrAuth) Error() string {
	return fmt.Sprintf("invalid API credential: %v", e.Err)
}

func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit or quota
// exhaustion error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrEmptyCompletion indicates the provider answered but the completion
// carried no content.
type ErrEmptyCompletion struct {
	Model string
}

func (e *ErrEmptyCompletion) Error() string {
	return fmt.Sprintf("empty completion from model %s", e.Model)
}
