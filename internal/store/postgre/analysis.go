package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"

	"github.com/jmoiron/sqlx"
)

func (s *implStore) CreateAnalysis(ctx context.Context, opts store.CreateAnalysisOptions) (model.Analysis, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.CreateAnalysis.BeginTxx: %v", err)
		return model.Analysis{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	a, err := s.createAnalysisTx(ctx, tx, opts)
	if err != nil {
		return model.Analysis{}, err
	}
	if err := tx.Commit(); err != nil {
		s.l.Errorf(ctx, "store.postgre.CreateAnalysis.Commit: %v", err)
		return model.Analysis{}, err
	}
	return a, nil
}

func (s *implStore) createAnalysisTx(ctx context.Context, tx *sqlx.Tx, opts store.CreateAnalysisOptions) (model.Analysis, error) {
	a := opts.Analysis

	if opts.Transcript == nil {
		if err := ensureExists(ctx, tx, "transcripts", "transcript", a.TranscriptID); err != nil {
			return model.Analysis{}, err
		}
	}
	if opts.Checklist == nil {
		if err := ensureExists(ctx, tx, "checklists", "checklist", a.ChecklistID); err != nil {
			return model.Analysis{}, err
		}
	}
	if a.ManagerID != "" {
		if err := ensureExists(ctx, tx, "managers", "manager", a.ManagerID); err != nil {
			return model.Analysis{}, err
		}
	}

	if opts.Transcript != nil {
		t, err := insertTranscript(ctx, tx, *opts.Transcript)
		if err != nil {
			s.l.Errorf(ctx, "store.postgre.CreateAnalysis.insertTranscript: %v", err)
			return model.Analysis{}, err
		}
		a.TranscriptID = t.ID
	}
	if opts.Checklist != nil {
		if err := insertChecklist(ctx, tx, *opts.Checklist); err != nil {
			s.l.Errorf(ctx, "store.postgre.CreateAnalysis.insertChecklist: %v", err)
			return model.Analysis{}, err
		}
		a.ChecklistID = opts.Checklist.ID
	}

	row, err := newAnalysisRow(a)
	if err != nil {
		return model.Analysis{}, err
	}
	_, err = tx.ExecContext(ctx, insertAnalysisQuery,
		row.ID, row.TranscriptID, row.ChecklistID, row.ChecklistName, row.ChecklistVersion, row.ManagerID,
		row.Source, row.Language, row.Model, string(row.ChecklistReport), string(row.ObjectionsReport),
		row.TotalScore, row.Percentage, row.CreatedAt)
	if isForeignKeyViolation(err) {
		// A referenced row vanished between the existence check and the insert.
		return model.Analysis{}, fmt.Errorf("%w: %v", store.ErrReferenceNotFound, err)
	}
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.CreateAnalysis.insert: %v", err)
		return model.Analysis{}, err
	}
	return a, nil
}

func ensureExists(ctx context.Context, q queryer, table, entity, id string) error {
	var exists bool
	if err := q.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id); err != nil {
		return err
	}
	if !exists {
		return &store.ReferenceError{Entity: entity, ID: id}
	}
	return nil
}

func (s *implStore) GetAnalysis(ctx context.Context, id string) (model.Analysis, error) {
	var row analysisRow
	err := s.db.GetContext(ctx, &row, analysisSelect+` WHERE a.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Analysis{}, store.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.GetAnalysis: %v", err)
		return model.Analysis{}, err
	}
	return row.toModel()
}

func (s *implStore) ListAnalyses(ctx context.Context, opts store.ListAnalysesOptions) ([]model.Analysis, int64, error) {
	where, args := buildAnalysisFilter(opts)

	var total int64
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM analyses a`+where, args...); err != nil {
		s.l.Errorf(ctx, "store.postgre.ListAnalyses.count: %v", err)
		return nil, 0, err
	}

	query := analysisSelect + where + ` ORDER BY a.created_at DESC, a.id DESC`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	var rows []analysisRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		s.l.Errorf(ctx, "store.postgre.ListAnalyses.select: %v", err)
		return nil, 0, err
	}
	out := make([]model.Analysis, 0, len(rows))
	for _, r := range rows {
		a, err := r.toModel()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, nil
}

func buildAnalysisFilter(opts store.ListAnalysesOptions) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	if opts.ManagerID != "" {
		args = append(args, opts.ManagerID)
		conds = append(conds, fmt.Sprintf("a.manager_id = $%d", len(args)))
	}
	if opts.ChecklistID != "" {
		args = append(args, opts.ChecklistID)
		conds = append(conds, fmt.Sprintf("a.checklist_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (s *implStore) DeleteAnalysis(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "analyses", id)
}
