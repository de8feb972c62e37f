package analysis

import (
	"context"

	"callaudit-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze evaluates a transcript against a checklist and stores the result.
	// Nothing is stored when any step fails.
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (model.Analysis, error)
	Get(ctx context.Context, sc model.Scope, id string) (model.Analysis, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	// Export renders a stored analysis as Markdown or PDF.
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}

// Producer announces finished analyses to other services.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishAnalysisCompleted(ctx context.Context, a model.Analysis) error
}
