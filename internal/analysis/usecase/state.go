package usecase

import (
	"context"

	"callaudit-srv/internal/analysis"
	"callaudit-srv/pkg/log"
)

// run tracks the state of one Analyze call for logging.
type run struct {
	l     log.Logger
	id    string
	state analysis.State
}

func newRun(l log.Logger, id string) *run {
	return &run{l: l, id: id, state: analysis.StatePending}
}

func (r *run) to(ctx context.Context, next analysis.State) {
	if !r.state.CanTransition(next) {
		r.l.Warnf(ctx, "analysis.usecase.Analyze: run=%s unexpected transition %s -> %s", r.id, r.state, next)
	}
	r.l.Debugf(ctx, "analysis.usecase.Analyze: run=%s %s -> %s", r.id, r.state, next)
	r.state = next
}

// fail moves the run to StateFailed and returns err unchanged.
func (r *run) fail(ctx context.Context, err error) error {
	if r.state != analysis.StateFailed {
		r.to(ctx, analysis.StateFailed)
	}
	r.l.Warnf(ctx, "analysis.usecase.Analyze: run=%s failed: %v", r.id, err)
	return err
}
