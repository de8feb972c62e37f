package postgre

import (
	"context"
	"database/sql"
	"errors"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
)

func (s *implStore) CreateTranscript(ctx context.Context, opts store.CreateTranscriptOptions) (model.Transcript, error) {
	t, err := insertTranscript(ctx, s.db, opts.Transcript)
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.CreateTranscript: %v", err)
		return model.Transcript{}, err
	}
	return t, nil
}

// insertTranscript inserts t unless a row with the same content hash exists,
// and returns whichever row is stored.
func insertTranscript(ctx context.Context, q queryer, t model.Transcript) (model.Transcript, error) {
	row, err := newTranscriptRow(t)
	if err != nil {
		return model.Transcript{}, err
	}
	res, err := q.ExecContext(ctx, insertTranscriptQuery,
		row.ID, row.Source, row.Language, row.Text, row.ContentHash,
		row.AudioFileName, row.AudioObjectKey, row.Duration, string(row.Segments), row.CreatedAt)
	if err != nil {
		return model.Transcript{}, err
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return t, nil
	}

	var existing transcriptRow
	if err := q.GetContext(ctx, &existing, `SELECT `+transcriptColumns+` FROM transcripts WHERE content_hash = $1`, t.ContentHash); err != nil {
		return model.Transcript{}, err
	}
	return existing.toModel()
}

func (s *implStore) GetTranscript(ctx context.Context, id string) (model.Transcript, error) {
	return s.getTranscript(ctx, "id", id)
}

func (s *implStore) FindTranscriptByHash(ctx context.Context, hash string) (model.Transcript, error) {
	return s.getTranscript(ctx, "content_hash", hash)
}

func (s *implStore) SetTranscriptAudioKey(ctx context.Context, id, key string) error {
	res, err := s.db.ExecContext(ctx, setTranscriptAudioKeyQuery, id, key)
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.SetTranscriptAudioKey: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *implStore) getTranscript(ctx context.Context, column, value string) (model.Transcript, error) {
	var row transcriptRow
	err := s.db.GetContext(ctx, &row, `SELECT `+transcriptColumns+` FROM transcripts WHERE `+column+` = $1`, value)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transcript{}, store.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "store.postgre.getTranscript: %v", err)
		return model.Transcript{}, err
	}
	return row.toModel()
}
