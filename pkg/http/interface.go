package http

import (
	"context"
	"net/http"
	"time"
)

// IClient posts JSON and returns the raw response. It never retries; callers
// own their backoff policy.
// Implementations are safe for concurrent use.
type IClient interface {
	// PostJSON returns the body and status for any completed exchange, 4xx and 5xx included.
	PostJSON(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error)
}

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	// Timeout bounds one exchange, 30s when zero.
	Timeout time.Duration
	// MaxResponseBytes caps the body read, 32MiB when zero.
	MaxResponseBytes int64
}

// NewClient creates a new HTTP client.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return NewClientWithTransport(cfg, &http.Client{Timeout: cfg.Timeout})
}

// NewClientWithTransport is NewClient with a caller supplied http.Client, used by tests.
func NewClientWithTransport(cfg ClientConfig, hc *http.Client) IClient {
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = defaultMaxResponseBytes
	}
	return &clientImpl{client: hc, maxBytes: cfg.MaxResponseBytes}
}
