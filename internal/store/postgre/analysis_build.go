package postgre

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"callaudit-srv/internal/model"
)

type analysisRow struct {
	ID               string         `db:"id"`
	TranscriptID     string         `db:"transcript_id"`
	ChecklistID      sql.NullString `db:"checklist_id"`
	ChecklistName    string         `db:"checklist_name"`
	ChecklistVersion string         `db:"checklist_version"`
	ManagerID        sql.NullString `db:"manager_id"`
	ManagerName      string         `db:"manager_name"`
	Source           string         `db:"source"`
	Language         string         `db:"language"`
	Model            string         `db:"model"`
	ChecklistReport  []byte         `db:"checklist_report"`
	ObjectionsReport []byte         `db:"objections_report"`
	TotalScore       float64        `db:"total_score"`
	Percentage       float64        `db:"percentage"`
	CreatedAt        time.Time      `db:"created_at"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func newAnalysisRow(a model.Analysis) (analysisRow, error) {
	checklistReport, err := json.Marshal(a.ChecklistReport)
	if err != nil {
		return analysisRow{}, fmt.Errorf("encode checklist report: %w", err)
	}
	objectionsReport, err := json.Marshal(a.ObjectionsReport)
	if err != nil {
		return analysisRow{}, fmt.Errorf("encode objections report: %w", err)
	}
	return analysisRow{
		ID:               a.ID,
		TranscriptID:     a.TranscriptID,
		ChecklistID:      nullString(a.ChecklistID),
		ChecklistName:    a.ChecklistName,
		ChecklistVersion: a.ChecklistVersion,
		ManagerID:        nullString(a.ManagerID),
		Source:           string(a.Source),
		Language:         a.Language,
		Model:            a.Model,
		ChecklistReport:  checklistReport,
		ObjectionsReport: objectionsReport,
		TotalScore:       a.ChecklistReport.TotalScore,
		Percentage:       a.ChecklistReport.Percentage,
		CreatedAt:        a.CreatedAt,
	}, nil
}

func (r analysisRow) toModel() (model.Analysis, error) {
	a := model.Analysis{
		ID:               r.ID,
		TranscriptID:     r.TranscriptID,
		ChecklistID:      r.ChecklistID.String,
		ChecklistName:    r.ChecklistName,
		ChecklistVersion: r.ChecklistVersion,
		ManagerID:        r.ManagerID.String,
		ManagerName:      r.ManagerName,
		Source:           model.Source(r.Source),
		Language:         r.Language,
		Model:            r.Model,
		CreatedAt:        r.CreatedAt,
	}
	if err := json.Unmarshal(r.ChecklistReport, &a.ChecklistReport); err != nil {
		return model.Analysis{}, fmt.Errorf("decode checklist report %s: %w", r.ID, err)
	}
	if err := json.Unmarshal(r.ObjectionsReport, &a.ObjectionsReport); err != nil {
		return model.Analysis{}, fmt.Errorf("decode objections report %s: %w", r.ID, err)
	}
	return a, nil
}
