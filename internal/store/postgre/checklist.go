package postgre

import (
	"context"
	"database/sql"
	"errors"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
)

func (s *implStore) CreateChecklist(ctx context.Context, opts store.CreateChecklistOptions) (model.Checklist, error) {
	if err := insertChecklist(ctx, s.db, opts.Checklist); err != nil {
		s.l.Errorf(ctx, "store.postgre.CreateChecklist: %v", err)
		return model.Checklist{}, err
	}
	return opts.Checklist, nil
}

func insertChecklist(ctx context.Context, q queryer, c model.Checklist) error {
	def, err := encodeDefinition(c)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx, insertChecklistQuery,
		c.ID, c.Name, c.Version, c.Description, def, c.CreatedAt, c.UpdatedAt)
	return err
}

func (s *implStore) GetChecklist(ctx context.Context, id string) (model.Checklist, error) {
	var row checklistRow
	err := s.db.GetContext(ctx, &row, `SELECT `+checklistColumns+` FROM checklists WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Checklist{}, store.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.GetChecklist: %v", err)
		return model.Checklist{}, err
	}
	return row.toModel()
}

func (s *implStore) ListChecklists(ctx context.Context) ([]model.Checklist, error) {
	var rows []checklistRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+checklistColumns+` FROM checklists ORDER BY created_at DESC, id`); err != nil {
		s.l.Errorf(ctx, "store.postgre.ListChecklists: %v", err)
		return nil, err
	}
	out := make([]model.Checklist, 0, len(rows))
	for _, r := range rows {
		c, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *implStore) UpdateChecklist(ctx context.Context, opts store.UpdateChecklistOptions) (model.Checklist, error) {
	c := opts.Checklist
	def, err := encodeDefinition(c)
	if err != nil {
		return model.Checklist{}, err
	}
	var row checklistRow
	err = s.db.GetContext(ctx, &row, updateChecklistQuery, c.ID, c.Name, c.Version, c.Description, def, c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Checklist{}, store.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.UpdateChecklist: %v", err)
		return model.Checklist{}, err
	}
	return row.toModel()
}

func (s *implStore) DeleteChecklist(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "checklists", id)
}

func (s *implStore) deleteByID(ctx context.Context, table, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.delete %s: %v", table, err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
