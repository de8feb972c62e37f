package checklist

import (
	"context"

	"callaudit-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input Input) (model.Checklist, error)
	Get(ctx context.Context, sc model.Scope, id string) (model.Checklist, error)
	List(ctx context.Context, sc model.Scope) ([]model.Checklist, error)
	Update(ctx context.Context, sc model.Scope, id string, input Input) (model.Checklist, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	// Upload parses a checklist file, normalises it and stores it.
	Upload(ctx context.Context, sc model.Scope, input UploadInput) (model.Checklist, error)
}
