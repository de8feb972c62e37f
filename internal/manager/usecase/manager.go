package usecase

import (
	"context"
	"errors"

	"callaudit-srv/internal/manager"
	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input manager.Input) (model.Manager, error) {
	m, err := manager.Validate(input)
	if err != nil {
		return model.Manager{}, err
	}
	m.ID = uc.newID()
	now := uc.now()
	m.CreatedAt, m.UpdatedAt = now, now

	out, err := uc.store.CreateManager(ctx, store.CreateManagerOptions{Manager: m})
	if err != nil {
		uc.l.Errorf(ctx, "manager.usecase.Create: %v", err)
		return model.Manager{}, err
	}
	uc.l.Infof(ctx, "manager.usecase.Create: id=%s", out.ID)
	return out, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Manager, error) {
	m, err := uc.store.GetManager(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Manager{}, manager.ErrManagerNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "manager.usecase.Get: %v", err)
		return model.Manager{}, err
	}
	return m, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Manager, error) {
	list, err := uc.store.ListManagers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "manager.usecase.List: %v", err)
		return nil, err
	}
	return list, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, id string, input manager.Input) (model.Manager, error) {
	existing, err := uc.Get(ctx, sc, id)
	if err != nil {
		return model.Manager{}, err
	}

	m, err := manager.Validate(input)
	if err != nil {
		return model.Manager{}, err
	}
	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = uc.now()

	out, err := uc.store.UpdateManager(ctx, store.UpdateManagerOptions{Manager: m})
	if errors.Is(err, store.ErrNotFound) {
		return model.Manager{}, manager.ErrManagerNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "manager.usecase.Update: %v", err)
		return model.Manager{}, err
	}
	return out, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.store.DeleteManager(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return manager.ErrManagerNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "manager.usecase.Delete: %v", err)
		return err
	}
	uc.l.Infof(ctx, "manager.usecase.Delete: id=%s", id)
	return nil
}
