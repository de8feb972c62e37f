package gemini

import (
	"context"

	pkghttp "callaudit-srv/pkg/http"
)

// IGemini defines the interface for Google Gemini content generation.
// Implementations are safe for concurrent use.
type IGemini interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateContent(ctx context.Context, opts GenerateOptions) (string, error)
	Model() string
}

// NewGemini creates a new Gemini client. Model defaults to DefaultModel if empty.
// An empty APIKey is rejected with ErrAPIKeyRequired.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &geminiImpl{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: cfg.Timeout,
		}),
	}, nil
}
