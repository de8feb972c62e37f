package analysis

import (
	"testing"

	"callaudit-srv/internal/model"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name      string
		checklist model.Checklist
		scores    []float64
		wantTotal float64
		wantMax   float64
		wantPct   float64
	}{
		{name: "simple", checklist: simpleChecklist(), scores: []float64{0.9, 0, 1}, wantTotal: 1.9, wantMax: 3, wantPct: 63.33},
		{name: "advanced", checklist: advancedChecklist(), scores: []float64{3, 4}, wantTotal: 7, wantMax: 10, wantPct: 70},
		{name: "zero total", checklist: model.Checklist{Stages: []model.Stage{{Criteria: []model.Criterion{{Number: 1}}}}}, scores: []float64{0}, wantTotal: 0, wantMax: 0, wantPct: 0},
		{name: "no items", checklist: model.Checklist{}, wantTotal: 0, wantMax: 0, wantPct: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r model.ChecklistReport
			for _, s := range tt.scores {
				r.Items = append(r.Items, model.ChecklistReportItem{Score: s})
			}

			got := Aggregate(tt.checklist, r)
			if got.TotalScore != tt.wantTotal || got.MaxScore != tt.wantMax || got.Percentage != tt.wantPct {
				t.Errorf("got %v/%v/%v, want %v/%v/%v", got.TotalScore, got.MaxScore, got.Percentage, tt.wantTotal, tt.wantMax, tt.wantPct)
			}

			again := Aggregate(tt.checklist, got)
			if again.TotalScore != got.TotalScore || again.MaxScore != got.MaxScore || again.Percentage != got.Percentage {
				t.Errorf("aggregate is not idempotent: %+v then %+v", got, again)
			}
		})
	}
}
