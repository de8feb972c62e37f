package llm

import (
	"context"
	"time"

	"callaudit-srv/pkg/gemini"
	"callaudit-srv/pkg/log"
)

// Gateway sends prompts to the language model with bounded retries.
// Implementations are safe for concurrent use.
type Gateway interface {
	Complete(ctx context.Context, req Request) (Response, error)
	// Model names the model behind the gateway, empty when unconfigured.
	Model() string
}

// New creates a Gateway over provider. A nil provider yields a gateway that
// fails every call with ErrConfiguration, which is how a missing API key surfaces.
func New(l log.Logger, provider gemini.IGemini, cfg Config) Gateway {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseDelay < 0 {
		cfg.BaseDelay = 0
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}
	return &implGateway{
		l:        l,
		provider: provider,
		cfg:      cfg,
		sleep:    sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
