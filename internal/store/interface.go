package store

import (
	"context"

	"callaudit-srv/internal/model"
)

// Store persists checklists, managers, transcripts and analyses.
// Missing ids yield ErrNotFound. Implementations are safe for concurrent use.
//
//go:generate mockery --name Store
type Store interface {
	// Kind names the backend, e.g. "postgres" or "memory".
	Kind() string
	Ping(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)

	CreateChecklist(ctx context.Context, opts CreateChecklistOptions) (model.Checklist, error)
	GetChecklist(ctx context.Context, id string) (model.Checklist, error)
	ListChecklists(ctx context.Context) ([]model.Checklist, error)
	UpdateChecklist(ctx context.Context, opts UpdateChecklistOptions) (model.Checklist, error)
	DeleteChecklist(ctx context.Context, id string) error

	CreateManager(ctx context.Context, opts CreateManagerOptions) (model.Manager, error)
	GetManager(ctx context.Context, id string) (model.Manager, error)
	ListManagers(ctx context.Context) ([]model.Manager, error)
	UpdateManager(ctx context.Context, opts UpdateManagerOptions) (model.Manager, error)
	DeleteManager(ctx context.Context, id string) error

	// CreateTranscript is idempotent on ContentHash: an existing row with the same
	// hash is returned instead of inserting a duplicate.
	CreateTranscript(ctx context.Context, opts CreateTranscriptOptions) (model.Transcript, error)
	GetTranscript(ctx context.Context, id string) (model.Transcript, error)
	FindTranscriptByHash(ctx context.Context, hash string) (model.Transcript, error)
	SetTranscriptAudioKey(ctx context.Context, id, key string) error

	// CreateAnalysis writes the optional new transcript and checklist together with
	// the analysis, all or nothing. Unknown references yield ErrReferenceNotFound.
	CreateAnalysis(ctx context.Context, opts CreateAnalysisOptions) (model.Analysis, error)
	GetAnalysis(ctx context.Context, id string) (model.Analysis, error)
	ListAnalyses(ctx context.Context, opts ListAnalysesOptions) ([]model.Analysis, int64, error)
	DeleteAnalysis(ctx context.Context, id string) error
}
