package postgre

import (
	"testing"
	"time"

	"callaudit-srv/internal/model"
)

func TestAnalysisRowReferences(t *testing.T) {
	tests := []struct {
		name          string
		checklistID   string
		managerID     string
		wantChecklist bool
		wantManager   bool
	}{
		{name: "all references", checklistID: "c1", managerID: "m1", wantChecklist: true, wantManager: true},
		{name: "detached manager", checklistID: "c1", wantChecklist: true},
		{name: "detached checklist and manager"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := newAnalysisRow(model.Analysis{
				ID:              "a1",
				TranscriptID:    "t1",
				ChecklistID:     tt.checklistID,
				ManagerID:       tt.managerID,
				ChecklistReport: model.ChecklistReport{TotalScore: 1.5, Percentage: 75},
				CreatedAt:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			})
			if err != nil {
				t.Fatal(err)
			}
			if row.ChecklistID.Valid != tt.wantChecklist || row.ManagerID.Valid != tt.wantManager {
				t.Errorf("checklist valid = %t, manager valid = %t", row.ChecklistID.Valid, row.ManagerID.Valid)
			}
			if row.TotalScore != 1.5 || row.Percentage != 75 {
				t.Errorf("score columns = %v / %v", row.TotalScore, row.Percentage)
			}

			a, err := row.toModel()
			if err != nil {
				t.Fatal(err)
			}
			if a.ChecklistID != tt.checklistID || a.ManagerID != tt.managerID {
				t.Errorf("refs = %q/%q", a.ChecklistID, a.ManagerID)
			}
		})
	}
}

func TestAnalysisRowCorruptReport(t *testing.T) {
	row := analysisRow{ID: "a1", ChecklistReport: []byte("{"), ObjectionsReport: []byte("{}")}
	if _, err := row.toModel(); err == nil {
		t.Error("toModel() with a corrupt report returned no error")
	}
}

func TestTranscriptRow(t *testing.T) {
	row, err := newTranscriptRow(model.Transcript{ID: "t1", ContentHash: "h"})
	if err != nil {
		t.Fatal(err)
	}
	if string(row.Segments) != "[]" {
		t.Errorf("segments = %s, want []", row.Segments)
	}
	if row.Duration.Valid {
		t.Error("duration should be NULL when unknown")
	}

	d := 42.5
	row, err = newTranscriptRow(model.Transcript{ID: "t2", Duration: &d, Segments: []model.Segment{{Speaker: "Manager", Text: "Hi"}}})
	if err != nil {
		t.Fatal(err)
	}
	got, err := row.toModel()
	if err != nil {
		t.Fatal(err)
	}
	if got.Duration == nil || *got.Duration != 42.5 || len(got.Segments) != 1 || got.Segments[0].Speaker != "Manager" {
		t.Errorf("transcript = %+v", got)
	}
}
