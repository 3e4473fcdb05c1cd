package llm

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when a provider call is attempted without
// credentials. Surfaced at call time, not at startup.
var ErrNotConfigured = errors.New("provider not configured")

// ProviderError marks a distinguishable upstream failure: non-success status
// or timeout from the chat/embedding service. Never retried at the caller.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s provider error (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
