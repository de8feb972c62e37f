package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means no provider credentials are configured.
	ErrConfiguration = errors.New("llm: provider is not configured")
	// ErrProviderUnavailable matches every *ProviderError.
	ErrProviderUnavailable = errors.New("llm: provider unavailable")
)

// ProviderError is returned when retries are exhausted or the failure is not retryable.
type ProviderError struct {
	Attempts int
	// LastStatus is the HTTP status of the last attempt, 0 for transport errors and timeouts.
	LastStatus int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.LastStatus != 0 {
		return fmt.Sprintf("llm: provider unavailable after %d attempt(s), last status %d: %v", e.Attempts, e.LastStatus, e.Err)
	}
	return fmt.Sprintf("llm: provider unavailable after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderUnavailable
}
