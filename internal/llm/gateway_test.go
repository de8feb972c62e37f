package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"callaudit-srv/pkg/gemini"
	"callaudit-srv/pkg/log"
)

type fakeProvider struct {
	results []error
	calls   int
	block   bool
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return f.GenerateContent(ctx, gemini.GenerateOptions{Prompt: prompt})
}

func (f *fakeProvider) GenerateContent(ctx context.Context, opts gemini.GenerateOptions) (string, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	var err error
	if f.calls <= len(f.results) {
		err = f.results[f.calls-1]
	}
	if err != nil {
		return "", err
	}
	return "ok", nil
}

func (f *fakeProvider) Model() string { return "fake-model" }

func newTestGateway(p gemini.IGemini, cfg Config) (*implGateway, *[]time.Duration) {
	g := New(log.NewNop(), p, cfg).(*implGateway)
	var waits []time.Duration
	g.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return g, &waits
}

func status(code int) error {
	return &gemini.APIError{StatusCode: code}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name         string
		results      []error
		wantErr      error
		wantAttempts int
		wantCalls    int
		wantStatus   int
		wantWaits    []time.Duration
	}{
		{
			name:         "succeeds after two 503",
			results:      []error{status(503), status(503), nil},
			wantAttempts: 3,
			wantCalls:    3,
			wantWaits:    []time.Duration{time.Second, 2 * time.Second},
		},
		{
			name:         "400 is not retried",
			results:      []error{status(400)},
			wantErr:      ErrProviderUnavailable,
			wantAttempts: 1,
			wantCalls:    1,
			wantStatus:   400,
		},
		{
			name:         "429 exhausts attempts",
			results:      []error{status(429), status(429), status(429)},
			wantErr:      ErrProviderUnavailable,
			wantAttempts: 3,
			wantCalls:    3,
			wantStatus:   429,
			wantWaits:    []time.Duration{time.Second, 2 * time.Second},
		},
		{
			name:      "missing key is a configuration error",
			results:   []error{gemini.ErrAPIKeyRequired},
			wantErr:   ErrConfiguration,
			wantCalls: 1,
		},
		{
			name:         "empty candidates is an empty answer",
			results:      []error{gemini.ErrEmptyResponse},
			wantAttempts: 1,
			wantCalls:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{results: tt.results}
			g, waits := newTestGateway(p, Config{MaxAttempts: 3, BaseDelay: time.Second})

			resp, err := g.Complete(context.Background(), Request{Prompt: "p"})
			if p.calls != tt.wantCalls {
				t.Errorf("provider calls = %d, want %d", p.calls, tt.wantCalls)
			}
			if len(*waits) != len(tt.wantWaits) {
				t.Fatalf("waits = %v, want %v", *waits, tt.wantWaits)
			}
			for i := range tt.wantWaits {
				if (*waits)[i] != tt.wantWaits[i] {
					t.Errorf("wait[%d] = %s, want %s", i, (*waits)[i], tt.wantWaits[i])
				}
			}

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.Attempts != tt.wantAttempts {
					t.Errorf("attempts = %d, want %d", resp.Attempts, tt.wantAttempts)
				}
				if resp.Model != "fake-model" {
					t.Errorf("model = %q", resp.Model)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var pe *ProviderError
			if errors.As(err, &pe) {
				if pe.Attempts != tt.wantAttempts {
					t.Errorf("attempts = %d, want %d", pe.Attempts, tt.wantAttempts)
				}
				if pe.LastStatus != tt.wantStatus {
					t.Errorf("last status = %d, want %d", pe.LastStatus, tt.wantStatus)
				}
			}
		})
	}
}

func TestCompleteBackoffIsCapped(t *testing.T) {
	p := &fakeProvider{results: []error{status(500), status(500), status(500), status(500), status(500)}}
	g, waits := newTestGateway(p, Config{MaxAttempts: 5, BaseDelay: time.Second, MaxDelay: 3 * time.Second})

	if _, err := g.Complete(context.Background(), Request{}); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("error = %v", err)
	}
	want := []time.Duration{time.Second, 2 * time.Second, 3 * time.Second, 3 * time.Second}
	if len(*waits) != len(want) {
		t.Fatalf("waits = %v, want %v", *waits, want)
	}
	for i := range want {
		if (*waits)[i] != want[i] {
			t.Errorf("wait[%d] = %s, want %s", i, (*waits)[i], want[i])
		}
	}
}

func TestCompletePerAttemptTimeoutIsRetried(t *testing.T) {
	p := &fakeProvider{block: true}
	g, _ := newTestGateway(p, Config{MaxAttempts: 2, CallTimeout: 10 * time.Millisecond})

	_, err := g.Complete(context.Background(), Request{})
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ProviderError", err)
	}
	if pe.Attempts != 2 || p.calls != 2 {
		t.Errorf("attempts = %d, calls = %d, want 2", pe.Attempts, p.calls)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error should wrap the deadline: %v", err)
	}
}

func TestCompleteStopsOnCallerCancel(t *testing.T) {
	p := &fakeProvider{results: []error{status(503), status(503), status(503)}}
	g, _ := newTestGateway(p, Config{MaxAttempts: 3, BaseDelay: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Complete(ctx, Request{})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("error = %v", err)
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1", p.calls)
	}
}

func TestCompleteWithoutProvider(t *testing.T) {
	g := New(log.NewNop(), nil, Config{})
	if _, err := g.Complete(context.Background(), Request{}); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("error = %v, want ErrConfiguration", err)
	}
	if g.Model() != "" {
		t.Errorf("model = %q", g.Model())
	}
}
