package manager

import (
	"context"

	"callaudit-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input Input) (model.Manager, error)
	Get(ctx context.Context, sc model.Scope, id string) (model.Manager, error)
	List(ctx context.Context, sc model.Scope) ([]model.Manager, error)
	Update(ctx context.Context, sc model.Scope, id string, input Input) (model.Manager, error)
	// Delete keeps the manager's analyses; they lose the attribution.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
