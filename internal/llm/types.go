package llm

import (
	"context"
	"time"

	"callaudit-srv/pkg/gemini"
	"callaudit-srv/pkg/log"
)

const (
	DefaultMaxAttempts = 3
	DefaultMaxDelay    = 10 * time.Second
	DefaultCallTimeout = 120 * time.Second
)

// Config is the retry policy.
type Config struct {
	MaxAttempts int
	// BaseDelay is the wait after the first failure; it doubles per attempt up to MaxDelay.
	BaseDelay time.Duration
	MaxDelay  time.Duration
	// CallTimeout bounds each attempt separately.
	CallTimeout time.Duration
}

// Request is one model call. Audio is optional and sent inline.
type Request struct {
	Prompt    string
	Audio     []byte
	AudioMIME string
	// JSON asks the model for a JSON document.
	JSON bool
}

type Response struct {
	Text     string
	Model    string
	Attempts int
}

type implGateway struct {
	l        log.Logger
	provider gemini.IGemini
	cfg      Config
	sleep    func(ctx context.Context, d time.Duration) error
}
