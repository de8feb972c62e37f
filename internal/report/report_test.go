package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"callaudit-srv/internal/model"
	"callaudit-srv/pkg/log"
)

func ptr(v float64) *float64 { return &v }

func sampleAnalysis(lang string) model.Analysis {
	return model.Analysis{
		ID:               "a1",
		ChecklistName:    "Sales call",
		ChecklistVersion: "1.0",
		ManagerName:      "Alex",
		Source:           model.SourceCall,
		Language:         lang,
		Model:            "gemini-2.0-flash",
		ChecklistReport: model.ChecklistReport{
			Items: []model.ChecklistReportItem{
				{
					ID: "greet", Title: "Greeting", Status: model.ItemStatusPassed, Score: 0.9, MaxScore: 1,
					Evidence: []model.Evidence{{Text: "Hello, this is Alex", Start: ptr(1), End: ptr(3.5)}},
				},
				{ID: "price", Title: "Price | terms", Status: model.ItemStatusFailed, MaxScore: 1, Comment: "Not discussed", Evidence: []model.Evidence{}},
			},
			Summary:    "Greeting present.",
			TotalScore: 0.9,
			MaxScore:   2,
			Percentage: 45,
		},
		ObjectionsReport: model.ObjectionsReport{
			Topics: []string{"pricing"},
			Objections: []model.Objection{
				{Category: "price", ClientPhrase: "Too expensive", Handling: model.HandlingPartial, Advice: "Offer a plan"},
			},
			ConversationEssence: "Intro call",
			Outcome:             "Follow-up booked",
		},
		CreatedAt: time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
	}
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument(sampleAnalysis("en"))

	want := []SectionKind{SectionHeader, SectionSummary, SectionItems, SectionEvidence, SectionObjections, SectionFooter}
	if len(doc.Sections) != len(want) {
		t.Fatalf("sections = %d, want %d", len(doc.Sections), len(want))
	}
	for i, k := range want {
		if doc.Sections[i].Kind != k {
			t.Errorf("section %d = %s, want %s", i, doc.Sections[i].Kind, k)
		}
	}

	items := doc.Sections[2].Table
	if len(items.Rows) != 2 || items.Rows[0][3] != "0.9/1" || items.Rows[1][2] != "failed" {
		t.Errorf("items table = %+v", items.Rows)
	}
	q := doc.Sections[3].Quotes
	if len(q) != 1 || q[0].Span != "00:01-00:03" {
		t.Errorf("quotes = %+v", q)
	}
}

func TestBuildDocumentWithoutOptionalSections(t *testing.T) {
	a := sampleAnalysis("en")
	a.ChecklistReport.Summary = ""
	for i := range a.ChecklistReport.Items {
		a.ChecklistReport.Items[i].Evidence = nil
	}
	a.ObjectionsReport = model.ObjectionsReport{}

	doc := BuildDocument(a)
	for _, s := range doc.Sections {
		if s.Kind == SectionSummary || s.Kind == SectionEvidence {
			t.Errorf("unexpected %s section", s.Kind)
		}
		if s.Kind == SectionObjections && s.Table != nil {
			t.Error("objections table without objections")
		}
	}
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want []string
	}{
		{
			name: "english",
			lang: "en",
			want: []string{
				"# Call analysis report",
				"- **Score:** 0.9 / 2 (45%)",
				"| 2 | Price \\| terms | failed | 0/1 | Not discussed |",
				"> Hello, this is Alex",
				"## Objections",
				"partially handled",
			},
		},
		{
			name: "russian",
			lang: "ru",
			want: []string{
				"# Отчёт по анализу звонка",
				"## Пункты чек-листа",
				"выполнено",
				"## Возражения",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := string(Markdown(BuildDocument(sampleAnalysis(tt.lang))))
			for _, w := range tt.want {
				if !strings.Contains(md, w) {
					t.Errorf("markdown missing %q\n%s", w, md)
				}
			}
		})
	}
}

func TestMarkdownDeterministic(t *testing.T) {
	a := sampleAnalysis("en")
	first := Markdown(BuildDocument(a))
	for i := 0; i < 5; i++ {
		if !bytes.Equal(first, Markdown(BuildDocument(a))) {
			t.Fatal("markdown output differs between runs")
		}
	}
}

func TestPDFDeterministic(t *testing.T) {
	a := sampleAnalysis("en")
	first, err := PDF(BuildDocument(a), nil)
	if err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	if !bytes.HasPrefix(first, []byte("%PDF-")) {
		t.Fatalf("not a pdf: %q", first[:8])
	}

	second, err := PDF(BuildDocument(a), nil)
	if err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("pdf output differs between runs")
	}
}

func TestPDFLongTable(t *testing.T) {
	a := sampleAnalysis("ru")
	for i := 0; i < 80; i++ {
		a.ChecklistReport.Items = append(a.ChecklistReport.Items, model.ChecklistReportItem{
			ID: "x", Title: strings.Repeat("long title ", 8), Status: model.ItemStatusUncertain, MaxScore: 1,
		})
	}
	if _, err := PDF(BuildDocument(a), nil); err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
}

func TestNewMissingFont(t *testing.T) {
	r := New(log.NewNop(), Config{FontPath: "/nonexistent/font.ttf"})
	if _, err := r.PDF(sampleAnalysis("en")); err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	if len(r.Markdown(sampleAnalysis("en"))) == 0 {
		t.Error("empty markdown")
	}
}
