package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"callaudit-srv/internal/analysis"
	"callaudit-srv/internal/checklist"
	"callaudit-srv/internal/llm"
	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
	"callaudit-srv/internal/transcript"
	pkgErrors "callaudit-srv/pkg/errors"
	"callaudit-srv/pkg/locale"
	"callaudit-srv/pkg/util"
)

func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (model.Analysis, error) {
	r := newRun(uc.l, uc.newID())

	source := model.Source(strings.ToLower(strings.TrimSpace(string(input.Source))))
	if source != "" && !source.IsValid() {
		return model.Analysis{}, r.fail(ctx, pkgErrors.NewValidationError("source must be call or correspondence", "source"))
	}

	tr, newTranscript, err := uc.resolveTranscript(ctx, input.Transcript, source)
	if err != nil {
		return model.Analysis{}, r.fail(ctx, err)
	}
	cl, newChecklist, err := uc.resolveChecklist(ctx, input)
	if err != nil {
		return model.Analysis{}, r.fail(ctx, err)
	}
	mgr, err := uc.resolveManager(ctx, input.ManagerID)
	if err != nil {
		return model.Analysis{}, r.fail(ctx, err)
	}

	if source == "" {
		source = tr.Source
	}
	lang := util.FirstNonEmpty(strings.TrimSpace(input.Language), tr.Language, locale.GetLang(ctx))

	prompt := analysis.BuildPrompt(cl, tr, lang)
	r.to(ctx, analysis.StatePromptBuilt)

	resp, err := uc.gateway.Complete(ctx, llm.Request{Prompt: prompt, JSON: true})
	r.to(ctx, analysis.StateProviderCalled)
	if err != nil {
		return model.Analysis{}, r.fail(ctx, err)
	}
	uc.l.Infof(ctx, "analysis.usecase.Analyze: run=%s model answered after %d attempt(s)", r.id, resp.Attempts)

	raw, err := analysis.ParseResponse(resp.Text)
	if err != nil {
		r.to(ctx, analysis.StateParseFailed)
		var fe *analysis.ResponseFormatError
		if errors.As(err, &fe) {
			uc.l.Warnf(ctx, "analysis.usecase.Analyze: run=%s unparsable answer: %q", r.id, fe.Snippet)
		}
		return model.Analysis{}, r.fail(ctx, err)
	}
	r.to(ctx, analysis.StateResponseParsed)

	report := analysis.Aggregate(cl, model.ChecklistReport{
		Items:   analysis.Reconcile(cl, raw.Items),
		Summary: raw.Summary,
	})
	r.to(ctx, analysis.StateReconciled)

	a := model.Analysis{
		ID:               r.id,
		TranscriptID:     tr.ID,
		ChecklistID:      cl.ID,
		ChecklistName:    cl.Name,
		ChecklistVersion: cl.Version,
		ManagerID:        mgr.ID,
		ManagerName:      mgr.Name,
		Source:           source,
		Language:         lang,
		Model:            util.FirstNonEmpty(resp.Model, uc.gateway.Model()),
		ChecklistReport:  report,
		ObjectionsReport: analysis.ReconcileObjections(raw.Objections),
		CreatedAt:        uc.now(),
	}

	opts := store.CreateAnalysisOptions{Analysis: a}
	if newTranscript {
		opts.Transcript = &tr
	}
	if newChecklist {
		opts.Checklist = &cl
	}
	stored, err := uc.store.CreateAnalysis(ctx, opts)
	if err != nil {
		return model.Analysis{}, r.fail(ctx, mapReferenceError(err))
	}
	r.to(ctx, analysis.StatePersisted)

	uc.l.Infof(ctx, "analysis.usecase.Analyze: id=%s checklist=%s score=%.2f/%.2f (%.2f%%)",
		stored.ID, stored.ChecklistID, report.TotalScore, report.MaxScore, report.Percentage)
	uc.publish(ctx, stored)
	return stored, nil
}

// resolveTranscript returns the transcript to analyse and whether it still has to be stored.
func (uc *implUseCase) resolveTranscript(ctx context.Context, in analysis.TranscriptInput, source model.Source) (model.Transcript, bool, error) {
	if id := strings.TrimSpace(in.ID); id != "" {
		t, err := uc.store.GetTranscript(ctx, id)
		if err == nil {
			return t, false, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			uc.l.Errorf(ctx, "analysis.usecase.resolveTranscript: %v", err)
			return model.Transcript{}, false, err
		}
		if strings.TrimSpace(in.Text) == "" {
			return model.Transcript{}, false, analysis.ErrTranscriptNotFound
		}
	}

	if in.Source != "" {
		source = in.Source
	}
	t, err := uc.transcripts.FromText(ctx, transcript.FromTextInput{
		Text:     in.Text,
		Source:   source,
		Language: strings.TrimSpace(in.Language),
	})
	if err != nil {
		return model.Transcript{}, false, err
	}

	existing, err := uc.store.FindTranscriptByHash(ctx, t.ContentHash)
	switch {
	case err == nil:
		return existing, false, nil
	case errors.Is(err, store.ErrNotFound):
		return t, true, nil
	default:
		uc.l.Errorf(ctx, "analysis.usecase.resolveTranscript: %v", err)
		return model.Transcript{}, false, err
	}
}

// resolveChecklist returns the checklist to evaluate and whether it still has to be stored.
// A bare id evaluates the stored definition. Inline items or stages are always evaluated as
// submitted; when their id is already stored and the definition changed, the stored row is replaced.
func (uc *implUseCase) resolveChecklist(ctx context.Context, input analysis.AnalyzeInput) (model.Checklist, bool, error) {
	id := strings.TrimSpace(input.ChecklistID)
	inline := input.Checklist
	if inline != nil {
		id = util.FirstNonEmpty(id, strings.TrimSpace(inline.ID))
	}

	var stored *model.Checklist
	if id != "" {
		c, err := uc.store.GetChecklist(ctx, id)
		switch {
		case err == nil:
			stored = &c
		case !errors.Is(err, store.ErrNotFound):
			uc.l.Errorf(ctx, "analysis.usecase.resolveChecklist: %v", err)
			return model.Checklist{}, false, err
		}
	}

	if inline == nil || (len(inline.Items) == 0 && len(inline.Stages) == 0) {
		if stored != nil {
			return *stored, false, nil
		}
		if id != "" {
			return model.Checklist{}, false, analysis.ErrChecklistNotFound
		}
		return model.Checklist{}, false, pkgErrors.NewValidationError("checklist is required", "checklist")
	}

	c, err := checklist.Normalize(*inline)
	if err != nil {
		return model.Checklist{}, false, err
	}
	c = checklist.WithDefaults(c)
	c.ID = id
	if c.ID == "" {
		c.ID = uc.newID()
	}

	now := uc.now()
	if stored != nil {
		if sameDefinition(*stored, c) {
			return *stored, false, nil
		}
		c.CreatedAt, c.UpdatedAt = stored.CreatedAt, now
		uc.l.Infof(ctx, "analysis.usecase.resolveChecklist: checklist %s replaced by the submitted definition", c.ID)
		return c, true, nil
	}
	c.CreatedAt, c.UpdatedAt = now, now
	return c, true, nil
}

// sameDefinition compares two checklists ignoring timestamps.
func sameDefinition(a, b model.Checklist) bool {
	a.CreatedAt, a.UpdatedAt = time.Time{}, time.Time{}
	b.CreatedAt, b.UpdatedAt = time.Time{}, time.Time{}
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ja, jb)
}

func (uc *implUseCase) resolveManager(ctx context.Context, id string) (model.Manager, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Manager{}, nil
	}
	m, err := uc.store.GetManager(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Manager{}, analysis.ErrManagerNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.resolveManager: %v", err)
		return model.Manager{}, err
	}
	return m, nil
}

func (uc *implUseCase) publish(ctx context.Context, a model.Analysis) {
	if uc.producer == nil {
		return
	}
	if err := uc.producer.PublishAnalysisCompleted(ctx, a); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.publish: id=%s: %v", a.ID, err)
	}
}

func mapReferenceError(err error) error {
	var ref *store.ReferenceError
	if errors.As(err, &ref) {
		switch ref.Entity {
		case "transcript":
			return analysis.ErrTranscriptNotFound
		case "checklist":
			return analysis.ErrChecklistNotFound
		case "manager":
			return analysis.ErrManagerNotFound
		}
	}
	return err
}
