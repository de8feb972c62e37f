package usecase

import (
	"time"

	"callaudit-srv/internal/analysis"
	"callaudit-srv/internal/llm"
	"callaudit-srv/internal/report"
	"callaudit-srv/internal/store"
	"callaudit-srv/internal/transcript"
	"callaudit-srv/pkg/log"

	"github.com/google/uuid"
)

type implUseCase struct {
	l           log.Logger
	gateway     llm.Gateway
	store       store.Store
	transcripts transcript.UseCase
	renderer    report.Renderer
	producer    analysis.Producer
	now         func() time.Time
	newID       func() string
}

// New creates the analysis UseCase. producer is optional.
func New(
	l log.Logger,
	gateway llm.Gateway,
	st store.Store,
	transcripts transcript.UseCase,
	renderer report.Renderer,
	producer analysis.Producer,
) analysis.UseCase {
	return &implUseCase{
		l:           l,
		gateway:     gateway,
		store:       st,
		transcripts: transcripts,
		renderer:    renderer,
		producer:    producer,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}
