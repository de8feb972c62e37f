package gemini

import (
	"errors"
	"fmt"
)

var (
	ErrAPIKeyRequired = errors.New("gemini: API key is required")
	ErrEmptyResponse  = errors.New("gemini: no content generated")
)

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API returned status %d: %s", e.StatusCode, e.Body)
}

// HTTPStatusCode exposes the status for retry classification.
func (e *APIError) HTTPStatusCode() int {
	return e.StatusCode
}
