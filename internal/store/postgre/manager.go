package postgre

import (
	"context"
	"database/sql"
	"errors"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
)

func (s *implStore) CreateManager(ctx context.Context, opts store.CreateManagerOptions) (model.Manager, error) {
	if _, err := s.db.NamedExecContext(ctx, insertManagerQuery, newManagerRow(opts.Manager)); err != nil {
		s.l.Errorf(ctx, "store.postgre.CreateManager: %v", err)
		return model.Manager{}, err
	}
	return opts.Manager, nil
}

func (s *implStore) GetManager(ctx context.Context, id string) (model.Manager, error) {
	var row managerRow
	err := s.db.GetContext(ctx, &row, `SELECT `+managerColumns+` FROM managers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Manager{}, store.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.GetManager: %v", err)
		return model.Manager{}, err
	}
	return row.toModel(), nil
}

func (s *implStore) ListManagers(ctx context.Context) ([]model.Manager, error) {
	var rows []managerRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+managerColumns+` FROM managers ORDER BY name, id`); err != nil {
		s.l.Errorf(ctx, "store.postgre.ListManagers: %v", err)
		return nil, err
	}
	out := make([]model.Manager, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (s *implStore) UpdateManager(ctx context.Context, opts store.UpdateManagerOptions) (model.Manager, error) {
	m := opts.Manager
	var row managerRow
	err := s.db.GetContext(ctx, &row, updateManagerQuery,
		m.ID, m.Name, m.Phone, m.Email, m.TeamLead, m.Department, m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Manager{}, store.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.UpdateManager: %v", err)
		return model.Manager{}, err
	}
	return row.toModel(), nil
}

// DeleteManager relies on ON DELETE SET NULL to detach analyses.
func (s *implStore) DeleteManager(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "managers", id)
}
