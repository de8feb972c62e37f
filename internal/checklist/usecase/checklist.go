package usecase

import (
	"context"
	"errors"
	"strings"

	"callaudit-srv/internal/checklist"
	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input checklist.Input) (model.Checklist, error) {
	c, err := uc.prepare(input)
	if err != nil {
		return model.Checklist{}, err
	}

	if c.ID == "" {
		c.ID = uc.newID()
	} else if _, err := uc.store.GetChecklist(ctx, c.ID); err == nil {
		// Client supplied ids must not silently overwrite another checklist.
		c.ID = uc.newID()
	}
	now := uc.now()
	c.CreatedAt, c.UpdatedAt = now, now

	out, err := uc.store.CreateChecklist(ctx, store.CreateChecklistOptions{Checklist: c})
	if err != nil {
		uc.l.Errorf(ctx, "checklist.usecase.Create: %v", err)
		return model.Checklist{}, err
	}
	uc.l.Infof(ctx, "checklist.usecase.Create: id=%s items=%d", out.ID, out.ItemCount())
	return out, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Checklist, error) {
	c, err := uc.store.GetChecklist(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Checklist{}, checklist.ErrChecklistNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "checklist.usecase.Get: %v", err)
		return model.Checklist{}, err
	}
	return c, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Checklist, error) {
	list, err := uc.store.ListChecklists(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "checklist.usecase.List: %v", err)
		return nil, err
	}
	return list, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, id string, input checklist.Input) (model.Checklist, error) {
	existing, err := uc.Get(ctx, sc, id)
	if err != nil {
		return model.Checklist{}, err
	}

	c, err := uc.prepare(input)
	if err != nil {
		return model.Checklist{}, err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = uc.now()

	out, err := uc.store.UpdateChecklist(ctx, store.UpdateChecklistOptions{Checklist: c})
	if errors.Is(err, store.ErrNotFound) {
		return model.Checklist{}, checklist.ErrChecklistNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "checklist.usecase.Update: %v", err)
		return model.Checklist{}, err
	}
	return out, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.store.DeleteChecklist(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return checklist.ErrChecklistNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "checklist.usecase.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Upload(ctx context.Context, sc model.Scope, input checklist.UploadInput) (model.Checklist, error) {
	in, err := checklist.Parse(input.FileName, input.Data)
	if err != nil {
		uc.l.Warnf(ctx, "checklist.usecase.Upload: parse %s: %v", input.FileName, err)
		return model.Checklist{}, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		in.Name = name
	}
	if v := strings.TrimSpace(input.Version); v != "" {
		in.Version = v
	}
	return uc.Create(ctx, sc, in)
}

func (uc *implUseCase) prepare(input checklist.Input) (model.Checklist, error) {
	c, err := checklist.Normalize(input)
	if err != nil {
		return model.Checklist{}, err
	}
	return checklist.WithDefaults(c), nil
}
