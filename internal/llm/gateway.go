package llm

import (
	"context"
	"errors"

	"callaudit-srv/pkg/gemini"
)

func (g *implGateway) Model() string {
	if g.provider == nil {
		return ""
	}
	return g.provider.Model()
}

// Complete calls the provider until it succeeds, a non-retryable error occurs,
// the attempts run out or ctx is done.
func (g *implGateway) Complete(ctx context.Context, req Request) (Response, error) {
	if g.provider == nil {
		return Response{}, ErrConfiguration
	}

	delay := g.cfg.BaseDelay
	attempts := 0
	var lastErr error
	for attempts < g.cfg.MaxAttempts {
		attempts++
		text, err := g.attempt(ctx, req)
		if err == nil {
			return Response{Text: text, Model: g.provider.Model(), Attempts: attempts}, nil
		}
		if errors.Is(err, gemini.ErrAPIKeyRequired) {
			return Response{}, ErrConfiguration
		}
		lastErr = err

		if ctx.Err() != nil || !IsRetryableError(err) || attempts == g.cfg.MaxAttempts {
			break
		}

		g.l.Warnf(ctx, "llm.Complete: attempt %d/%d failed, retrying in %s: %v", attempts, g.cfg.MaxAttempts, delay, err)
		if err := g.sleep(ctx, delay); err != nil {
			break
		}
		delay *= 2
		if delay > g.cfg.MaxDelay {
			delay = g.cfg.MaxDelay
		}
	}

	g.l.Errorf(ctx, "llm.Complete: giving up after %d attempt(s): %v", attempts, lastErr)
	return Response{}, &ProviderError{Attempts: attempts, LastStatus: statusOf(lastErr), Err: lastErr}
}

func (g *implGateway) attempt(ctx context.Context, req Request) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	text, err := g.provider.GenerateContent(callCtx, gemini.GenerateOptions{
		Prompt:    req.Prompt,
		Audio:     req.Audio,
		AudioMIME: req.AudioMIME,
		JSON:      req.JSON,
	})
	if errors.Is(err, gemini.ErrEmptyResponse) {
		// No candidates is a valid answer; callers decide whether empty text is an error.
		return "", nil
	}
	if err != nil && callCtx.Err() != nil && ctx.Err() == nil {
		return "", context.DeadlineExceeded
	}
	return text, err
}
