package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"callaudit-srv/internal/analysis"
	"callaudit-srv/internal/checklist"
	"callaudit-srv/internal/llm"
	"callaudit-srv/internal/model"
	"callaudit-srv/internal/report"
	"callaudit-srv/internal/store"
	"callaudit-srv/internal/store/memory"
	transcriptUC "callaudit-srv/internal/transcript/usecase"
	pkgErrors "callaudit-srv/pkg/errors"
	"callaudit-srv/pkg/log"
	"callaudit-srv/pkg/paginator"
)

type fakeGateway struct {
	text  string
	err   error
	calls int
	last  llm.Request
}

func (f *fakeGateway) Complete(ctx context.Context, req llm.Request) (llm.Response, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return llm.Response{}, f.err
	}
	return llm.Response{Text: f.text, Model: "fake-model", Attempts: 1}, nil
}

func (f *fakeGateway) Model() string { return "fake-model" }

type fakeProducer struct {
	err       error
	published []model.Analysis
}

func (f *fakeProducer) PublishAnalysisCompleted(ctx context.Context, a model.Analysis) error {
	f.published = append(f.published, a)
	return f.err
}

const greetResponse = `{"items":[{"id":"greet","status":"passed","score":0.9,"evidence":[{"text":"Hello, this is Alex"}]}],"summary":"Greeting present."}`

func greetChecklist() *checklist.Input {
	threshold := 0.6
	return &checklist.Input{
		ID:   "c1",
		Name: "Greeting check",
		Items: []checklist.ItemInput{{
			ID:                  "greet",
			Title:               "Greeting",
			Type:                "mandatory",
			Criteria:            model.ChecklistCriteria{LLMHint: "check greeting"},
			ConfidenceThreshold: &threshold,
		}},
	}
}

func newTestUseCase(gw llm.Gateway, st store.Store, p analysis.Producer) *implUseCase {
	l := log.NewNop()
	tr := transcriptUC.New(l, gw, st, nil, nil, transcriptUC.Config{})
	uc := New(l, gw, st, tr, report.New(l, report.Config{}), p).(*implUseCase)
	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	uc.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestAnalyzeGreetScenario(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{text: greetResponse}
	st := memory.New()
	prod := &fakeProducer{}
	uc := newTestUseCase(gw, st, prod)

	got, err := uc.Analyze(ctx, model.Scope{}, analysis.AnalyzeInput{
		Transcript: analysis.TranscriptInput{Text: "Hello, this is Alex from SalesCo."},
		Checklist:  greetChecklist(),
		Language:   "en",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	items := got.ChecklistReport.Items
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].ID != "greet" || items[0].Status != model.ItemStatusPassed || items[0].Score != 0.9 {
		t.Errorf("item = %+v", items[0])
	}
	if len(items[0].Evidence) != 1 || items[0].Evidence[0].Text != "Hello, this is Alex" {
		t.Errorf("evidence = %+v", items[0].Evidence)
	}
	if got.ChecklistReport.Summary != "Greeting present." || got.ChecklistReport.Percentage != 90 {
		t.Errorf("report = %+v", got.ChecklistReport)
	}
	if got.ChecklistID != "c1" || got.Source != model.SourceCall || got.Model != "fake-model" {
		t.Errorf("analysis = %+v", got)
	}
	if !gw.last.JSON || !strings.Contains(gw.last.Prompt, "Hello, this is Alex from SalesCo.") {
		t.Errorf("request = %+v", gw.last)
	}

	stored, err := st.GetAnalysis(ctx, got.ID)
	if err != nil {
		t.Fatalf("GetAnalysis() error = %v", err)
	}
	if stored.ChecklistReport.Items[0].Score != 0.9 {
		t.Errorf("stored = %+v", stored.ChecklistReport)
	}
	if _, err := st.GetChecklist(ctx, "c1"); err != nil {
		t.Errorf("inline checklist not stored: %v", err)
	}
	if _, err := st.GetTranscript(ctx, got.TranscriptID); err != nil {
		t.Errorf("transcript not stored: %v", err)
	}
	if len(prod.published) != 1 || prod.published[0].ID != got.ID {
		t.Errorf("published = %+v", prod.published)
	}
}

func TestAnalyzeRejectsEmptyTranscript(t *testing.T) {
	gw := &fakeGateway{text: greetResponse}
	st := memory.New()
	uc := newTestUseCase(gw, st, nil)

	for _, text := range []string{"", "   \n\t "} {
		_, err := uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{
			Transcript: analysis.TranscriptInput{Text: text},
			Checklist:  greetChecklist(),
		})
		if !pkgErrors.IsValidation(err) {
			t.Errorf("Analyze(%q) error = %v, want ValidationError", text, err)
		}
	}
	if gw.calls != 0 {
		t.Errorf("provider called %d times", gw.calls)
	}
	stats, _ := st.Stats(context.Background())
	if stats.Analyses != 0 || stats.Transcripts != 0 || stats.Checklists != 0 {
		t.Errorf("stats = %+v, want nothing stored", stats)
	}
}

func TestAnalyzeFailuresStoreNothing(t *testing.T) {
	tests := []struct {
		name    string
		gw      *fakeGateway
		wantErr error
	}{
		{name: "invalid json", gw: &fakeGateway{text: "I am not JSON"}, wantErr: analysis.ErrResponseFormat},
		{name: "provider down", gw: &fakeGateway{err: &llm.ProviderError{Attempts: 3, LastStatus: 503, Err: errors.New("unavailable")}}, wantErr: llm.ErrProviderUnavailable},
		{name: "not configured", gw: &fakeGateway{err: llm.ErrConfiguration}, wantErr: llm.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := memory.New()
			prod := &fakeProducer{}
			uc := newTestUseCase(tt.gw, st, prod)

			_, err := uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{
				Transcript: analysis.TranscriptInput{Text: "Hello"},
				Checklist:  greetChecklist(),
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			stats, _ := st.Stats(context.Background())
			if stats.Analyses != 0 || stats.Transcripts != 0 || stats.Checklists != 0 {
				t.Errorf("stats = %+v, want nothing stored", stats)
			}
			if len(prod.published) != 0 {
				t.Error("failed analysis was published")
			}
		})
	}
}

func TestAnalyzeIncompleteResponse(t *testing.T) {
	in := greetChecklist()
	in.Items = append(in.Items, checklist.ItemInput{ID: "close", Title: "Closing"})
	uc := newTestUseCase(&fakeGateway{text: "```json\n{\"items\":[]}\n```"}, memory.New(), nil)

	got, err := uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{
		Transcript: analysis.TranscriptInput{Text: "Hi"},
		Checklist:  in,
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got.ChecklistReport.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(got.ChecklistReport.Items))
	}
	for _, it := range got.ChecklistReport.Items {
		if it.Status != model.ItemStatusUncertain || it.Score != 0 || len(it.Evidence) != 0 {
			t.Errorf("item = %+v, want uncertain default", it)
		}
	}
	if got.ChecklistReport.Percentage != 0 {
		t.Errorf("percentage = %v, want 0", got.ChecklistReport.Percentage)
	}
}

func TestAnalyzeReferences(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	uc := newTestUseCase(&fakeGateway{text: greetResponse}, st, nil)

	c, err := checklist.Normalize(*greetChecklist())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.CreateChecklist(ctx, store.CreateChecklistOptions{Checklist: checklist.WithDefaults(c)}); err != nil {
		t.Fatal(err)
	}
	m, err := st.CreateManager(ctx, store.CreateManagerOptions{Manager: model.Manager{ID: "m1", Name: "Alex"}})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   analysis.AnalyzeInput
		wantErr error
	}{
		{
			name:  "stored checklist and manager",
			input: analysis.AnalyzeInput{Transcript: analysis.TranscriptInput{Text: "Hello"}, ChecklistID: "c1", ManagerID: m.ID},
		},
		{
			name:    "unknown checklist",
			input:   analysis.AnalyzeInput{Transcript: analysis.TranscriptInput{Text: "Hello"}, ChecklistID: "nope"},
			wantErr: analysis.ErrChecklistNotFound,
		},
		{
			name:    "unknown manager",
			input:   analysis.AnalyzeInput{Transcript: analysis.TranscriptInput{Text: "Hello"}, ChecklistID: "c1", ManagerID: "nope"},
			wantErr: analysis.ErrManagerNotFound,
		},
		{
			name:    "unknown transcript",
			input:   analysis.AnalyzeInput{Transcript: analysis.TranscriptInput{ID: "nope"}, ChecklistID: "c1"},
			wantErr: analysis.ErrTranscriptNotFound,
		},
		{
			name:    "missing checklist",
			input:   analysis.AnalyzeInput{Transcript: analysis.TranscriptInput{Text: "Hello"}},
			wantErr: &pkgErrors.ValidationError{},
		},
		{
			name:    "bad source",
			input:   analysis.AnalyzeInput{Transcript: analysis.TranscriptInput{Text: "Hello"}, ChecklistID: "c1", Source: "fax"},
			wantErr: &pkgErrors.ValidationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Analyze(ctx, model.Scope{}, tt.input)
			switch want := tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Fatalf("Analyze() error = %v", err)
				}
				if got.ManagerName != "Alex" || got.ChecklistID != "c1" {
					t.Errorf("analysis = %+v", got)
				}
			case *pkgErrors.ValidationError:
				if !pkgErrors.IsValidation(err) {
					t.Errorf("error = %v, want ValidationError", err)
				}
			default:
				if !errors.Is(err, want) {
					t.Errorf("error = %v, want %v", err, want)
				}
			}
		})
	}
}

func TestAnalyzeReusesTranscript(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	uc := newTestUseCase(&fakeGateway{text: greetResponse}, st, nil)
	input := analysis.AnalyzeInput{
		Transcript: analysis.TranscriptInput{Text: "Hello, this is Alex"},
		Checklist:  greetChecklist(),
	}

	first, err := uc.Analyze(ctx, model.Scope{}, input)
	if err != nil {
		t.Fatalf("first Analyze() error = %v", err)
	}
	second, err := uc.Analyze(ctx, model.Scope{}, input)
	if err != nil {
		t.Fatalf("second Analyze() error = %v", err)
	}
	if first.TranscriptID != second.TranscriptID {
		t.Errorf("transcripts %s and %s, want the same", first.TranscriptID, second.TranscriptID)
	}
	stats, _ := st.Stats(ctx)
	if stats.Transcripts != 1 || stats.Checklists != 1 || stats.Analyses != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestAnalyzeInlineChecklistWithStoredID(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	gw := &fakeGateway{text: greetResponse}
	uc := newTestUseCase(gw, st, nil)

	if _, err := uc.Analyze(ctx, model.Scope{}, analysis.AnalyzeInput{
		Transcript: analysis.TranscriptInput{Text: "Hello, this is Alex"},
		Checklist:  greetChecklist(),
	}); err != nil {
		t.Fatalf("first Analyze() error = %v", err)
	}
	before, err := st.GetChecklist(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}

	extended := greetChecklist()
	extended.Items = append(extended.Items, checklist.ItemInput{ID: "close", Title: "Closing"})
	got, err := uc.Analyze(ctx, model.Scope{}, analysis.AnalyzeInput{
		Transcript: analysis.TranscriptInput{Text: "Hello, this is Alex"},
		Checklist:  extended,
	})
	if err != nil {
		t.Fatalf("second Analyze() error = %v", err)
	}

	var ids []string
	for _, it := range got.ChecklistReport.Items {
		ids = append(ids, it.ID)
	}
	if strings.Join(ids, ",") != "greet,close" {
		t.Errorf("report ids = %v, want [greet close]", ids)
	}
	if got.ChecklistReport.Items[1].Status != model.ItemStatusUncertain {
		t.Errorf("close = %+v, want uncertain", got.ChecklistReport.Items[1])
	}
	if got.ChecklistID != "c1" || !strings.Contains(gw.last.Prompt, "close") {
		t.Errorf("checklist %s, prompt without the added item", got.ChecklistID)
	}

	after, err := st.GetChecklist(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Items) != 2 {
		t.Errorf("stored items = %d, want 2", len(after.Items))
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("createdAt changed from %v to %v", before.CreatedAt, after.CreatedAt)
	}

	bare, err := uc.Analyze(ctx, model.Scope{}, analysis.AnalyzeInput{
		Transcript:  analysis.TranscriptInput{Text: "Hello, this is Alex"},
		ChecklistID: "c1",
	})
	if err != nil {
		t.Fatalf("Analyze() by id error = %v", err)
	}
	if len(bare.ChecklistReport.Items) != 2 {
		t.Errorf("items by id = %d, want the stored 2", len(bare.ChecklistReport.Items))
	}
}

func TestHistoryAndExport(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(&fakeGateway{text: greetResponse}, memory.New(), nil)

	var ids []string
	for i := 0; i < 3; i++ {
		a, err := uc.Analyze(ctx, model.Scope{}, analysis.AnalyzeInput{
			Transcript: analysis.TranscriptInput{Text: fmt.Sprintf("Hello %d", i)},
			Checklist:  greetChecklist(),
		})
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		ids = append(ids, a.ID)
	}

	out, err := uc.List(ctx, model.Scope{}, analysis.ListInput{Paginate: paginator.PaginateQuery{Page: 1, Limit: 2}})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out.Analyses) != 2 || out.Paginator.Total != 3 || out.Paginator.ToResponse().TotalPages != 2 {
		t.Errorf("List() = %d items, paginator %+v", len(out.Analyses), out.Paginator)
	}

	md, err := uc.Export(ctx, model.Scope{}, analysis.ExportInput{ID: ids[0], Format: analysis.FormatMarkdown})
	if err != nil {
		t.Fatalf("Export(markdown) error = %v", err)
	}
	if !strings.HasSuffix(md.FileName, ".md") || !strings.Contains(string(md.Data), "Greeting") {
		t.Errorf("markdown export = %s", md.FileName)
	}

	pdf, err := uc.Export(ctx, model.Scope{}, analysis.ExportInput{ID: ids[0], Format: analysis.FormatPDF})
	if err != nil {
		t.Fatalf("Export(pdf) error = %v", err)
	}
	if pdf.ContentType != "application/pdf" || !strings.HasPrefix(string(pdf.Data), "%PDF-") {
		t.Errorf("pdf export = %s", pdf.ContentType)
	}

	if _, err := uc.Export(ctx, model.Scope{}, analysis.ExportInput{ID: ids[0], Format: "docx"}); !errors.Is(err, analysis.ErrUnsupportedFormat) {
		t.Errorf("Export(docx) error = %v", err)
	}

	if err := uc.Delete(ctx, model.Scope{}, ids[0]); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := uc.Get(ctx, model.Scope{}, ids[0]); !errors.Is(err, analysis.ErrAnalysisNotFound) {
		t.Errorf("Get() after delete error = %v", err)
	}
}
