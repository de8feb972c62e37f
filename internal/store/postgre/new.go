package postgre

import (
	"context"
	"errors"

	"callaudit-srv/internal/store"
	"callaudit-srv/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

type implStore struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a Store backed by PostgreSQL. The schema must already be migrated.
func New(db *sqlx.DB, l log.Logger) store.Store {
	return &implStore{db: db, l: l}
}

func (s *implStore) Kind() string {
	return store.KindPostgres
}

func (s *implStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *implStore) Stats(ctx context.Context) (store.Stats, error) {
	var row struct {
		Checklists  int64 `db:"checklists"`
		Managers    int64 `db:"managers"`
		Transcripts int64 `db:"transcripts"`
		Analyses    int64 `db:"analyses"`
	}
	if err := s.db.GetContext(ctx, &row, statsQuery); err != nil {
		s.l.Errorf(ctx, "store.postgre.Stats: %v", err)
		return store.Stats{}, err
	}
	return store.Stats{
		Backend:     store.KindPostgres,
		Durable:     true,
		Checklists:  row.Checklists,
		Managers:    row.Managers,
		Transcripts: row.Transcripts,
		Analyses:    row.Analyses,
	}, nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}
