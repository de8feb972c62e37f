package postgre

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"callaudit-srv/internal/model"
)

type transcriptRow struct {
	ID             string          `db:"id"`
	Source         string          `db:"source"`
	Language       string          `db:"language"`
	Text           string          `db:"text"`
	ContentHash    string          `db:"content_hash"`
	AudioFileName  string          `db:"audio_file_name"`
	AudioObjectKey string          `db:"audio_object_key"`
	Duration       sql.NullFloat64 `db:"duration"`
	Segments       []byte          `db:"segments"`
	CreatedAt      time.Time       `db:"created_at"`
}

func newTranscriptRow(t model.Transcript) (transcriptRow, error) {
	segments := t.Segments
	if segments == nil {
		segments = []model.Segment{}
	}
	b, err := json.Marshal(segments)
	if err != nil {
		return transcriptRow{}, fmt.Errorf("encode segments: %w", err)
	}
	row := transcriptRow{
		ID:             t.ID,
		Source:         string(t.Source),
		Language:       t.Language,
		Text:           t.Text,
		ContentHash:    t.ContentHash,
		AudioFileName:  t.AudioFileName,
		AudioObjectKey: t.AudioObjectKey,
		Segments:       b,
		CreatedAt:      t.CreatedAt,
	}
	if t.Duration != nil {
		row.Duration = sql.NullFloat64{Float64: *t.Duration, Valid: true}
	}
	return row, nil
}

func (r transcriptRow) toModel() (model.Transcript, error) {
	t := model.Transcript{
		ID:             r.ID,
		Source:         model.Source(r.Source),
		Language:       r.Language,
		Text:           r.Text,
		ContentHash:    r.ContentHash,
		AudioFileName:  r.AudioFileName,
		AudioObjectKey: r.AudioObjectKey,
		CreatedAt:      r.CreatedAt,
	}
	if r.Duration.Valid {
		d := r.Duration.Float64
		t.Duration = &d
	}
	if err := json.Unmarshal(r.Segments, &t.Segments); err != nil {
		return model.Transcript{}, fmt.Errorf("decode transcript %s: %w", r.ID, err)
	}
	return t, nil
}
