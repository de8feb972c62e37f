package gemini

import "time"

const (
	// BaseURL is the Generative Language API models endpoint.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel handles both audio transcription and JSON scoring.
	DefaultModel = "gemini-2.0-flash"
	// DefaultTimeout is the transport timeout for a single call.
	DefaultTimeout = 120 * time.Second

	apiKeyHeader = "x-goog-api-key"
)
