package checklist

import (
	"testing"

	"callaudit-srv/internal/model"
	pkgErrors "callaudit-srv/pkg/errors"
)

func float(v float64) *float64 { return &v }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		wantErr bool
		check   func(t *testing.T, c model.Checklist)
	}{
		{
			name: "defaults type and threshold",
			input: Input{Name: " Sales ", Items: []ItemInput{
				{ID: "greet", Title: "Greeting"},
				{ID: "close", Title: "Closing", Type: "MANDATORY", ConfidenceThreshold: float(0.8)},
				{ID: "odd", Title: "Odd", Type: "sometimes"},
			}},
			check: func(t *testing.T, c model.Checklist) {
				if c.Name != "Sales" {
					t.Errorf("name = %q", c.Name)
				}
				want := []struct {
					typ       model.ItemType
					threshold float64
				}{
					{model.ItemTypeRecommended, 0.6},
					{model.ItemTypeMandatory, 0.8},
					{model.ItemTypeRecommended, 0.6},
				}
				for i, w := range want {
					if c.Items[i].Type != w.typ || c.Items[i].ConfidenceThreshold != w.threshold {
						t.Errorf("item %d = %+v, want type %s threshold %v", i, c.Items[i], w.typ, w.threshold)
					}
				}
			},
		},
		{
			name:  "explicit zero threshold kept",
			input: Input{Items: []ItemInput{{ID: "greet", Title: "Greeting", ConfidenceThreshold: float(0)}}},
			check: func(t *testing.T, c model.Checklist) {
				if c.Items[0].ConfidenceThreshold != 0 {
					t.Errorf("threshold = %v, want 0", c.Items[0].ConfidenceThreshold)
				}
			},
		},
		{
			name:    "empty items",
			input:   Input{Name: "x"},
			wantErr: true,
		},
		{
			name:    "missing title",
			input:   Input{Items: []ItemInput{{ID: "a"}}},
			wantErr: true,
		},
		{
			name:    "missing id",
			input:   Input{Items: []ItemInput{{Title: "A"}}},
			wantErr: true,
		},
		{
			name:    "duplicate ids",
			input:   Input{Items: []ItemInput{{ID: "a", Title: "A"}, {ID: "a", Title: "B"}}},
			wantErr: true,
		},
		{
			name:    "threshold above one",
			input:   Input{Items: []ItemInput{{ID: "a", Title: "A", ConfidenceThreshold: float(1.5)}}},
			wantErr: true,
		},
		{
			name:    "threshold below zero",
			input:   Input{Items: []ItemInput{{ID: "a", Title: "A", ConfidenceThreshold: float(-0.1)}}},
			wantErr: true,
		},
		{
			name: "advanced total computed from weights",
			input: Input{Stages: []StageInput{
				{Title: "Opening", Criteria: []CriterionInput{
					{Number: 1, Title: "Greeting", Weight: 2},
					{Title: "Name", Weight: 3},
				}},
			}},
			check: func(t *testing.T, c model.Checklist) {
				if !c.IsAdvanced() || c.TotalScore != 5 {
					t.Fatalf("total = %v advanced = %v", c.TotalScore, c.IsAdvanced())
				}
				crit := c.AllCriteria()
				if crit[1].Number != 2 {
					t.Errorf("auto number = %d, want 2", crit[1].Number)
				}
				if crit[0].Max.Score != 2 || crit[0].Mid.Score != 1 {
					t.Errorf("default levels = %+v", crit[0])
				}
				if c.Stages[0].ID != "stage-1" {
					t.Errorf("stage id = %q", c.Stages[0].ID)
				}
			},
		},
		{
			name: "declared total mismatch",
			input: Input{TotalScore: float(10), Stages: []StageInput{
				{Title: "S", Criteria: []CriterionInput{{Number: 1, Title: "A", Weight: 4}}},
			}},
			wantErr: true,
		},
		{
			name: "negative weight",
			input: Input{Stages: []StageInput{
				{Title: "S", Criteria: []CriterionInput{{Number: 1, Title: "A", Weight: -1}}},
			}},
			wantErr: true,
		},
		{
			name: "duplicate criterion numbers",
			input: Input{Stages: []StageInput{
				{Title: "S", Criteria: []CriterionInput{{Number: 1, Title: "A", Weight: 1}, {Number: 1, Title: "B", Weight: 1}}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				if !pkgErrors.IsValidation(err) {
					t.Fatalf("error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestFromModelRoundTrip(t *testing.T) {
	in := Input{Name: "A", Stages: []StageInput{
		{ID: "s1", Title: "S", Criteria: []CriterionInput{{Number: 3, Title: "A", Weight: 4, IsBinary: true}}},
	}}
	c, err := Normalize(in)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Normalize(FromModel(c))
	if err != nil {
		t.Fatalf("normalised checklist no longer valid: %v", err)
	}
	if again.TotalScore != c.TotalScore || again.AllCriteria()[0].Number != 3 {
		t.Errorf("round trip changed checklist: %+v", again)
	}
}
