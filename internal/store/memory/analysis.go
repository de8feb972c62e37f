package memory

import (
	"context"
	"sort"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
)

func (s *implStore) CreateAnalysis(ctx context.Context, opts store.CreateAnalysisOptions) (model.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := opts.Analysis

	// Validate every reference before the first write.
	if opts.Transcript == nil {
		if _, ok := s.transcripts[a.TranscriptID]; !ok {
			return model.Analysis{}, &store.ReferenceError{Entity: "transcript", ID: a.TranscriptID}
		}
	}
	if opts.Checklist == nil {
		if _, ok := s.checklists[a.ChecklistID]; !ok {
			return model.Analysis{}, &store.ReferenceError{Entity: "checklist", ID: a.ChecklistID}
		}
	}
	if a.ManagerID != "" {
		if _, ok := s.managers[a.ManagerID]; !ok {
			return model.Analysis{}, &store.ReferenceError{Entity: "manager", ID: a.ManagerID}
		}
	}

	if opts.Transcript != nil {
		t := s.insertTranscriptLocked(*opts.Transcript)
		a.TranscriptID = t.ID
	}
	if opts.Checklist != nil {
		c := cloneChecklist(*opts.Checklist)
		s.checklists[c.ID] = c
		a.ChecklistID = c.ID
	}

	a = cloneAnalysis(a)
	s.analyses[a.ID] = a
	return cloneAnalysis(a), nil
}

func (s *implStore) GetAnalysis(ctx context.Context, id string) (model.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.analyses[id]
	if !ok {
		return model.Analysis{}, store.ErrNotFound
	}
	return cloneAnalysis(a), nil
}

func (s *implStore) ListAnalyses(ctx context.Context, opts store.ListAnalysesOptions) ([]model.Analysis, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		if opts.ManagerID != "" && a.ManagerID != opts.ManagerID {
			continue
		}
		if opts.ChecklistID != "" && a.ChecklistID != opts.ChecklistID {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := opts.Offset
	if start > total {
		start = total
	}
	end := total
	if opts.Limit > 0 && start+opts.Limit < total {
		end = start + opts.Limit
	}

	out := make([]model.Analysis, 0, end-start)
	for _, a := range matched[start:end] {
		out = append(out, cloneAnalysis(a))
	}
	return out, total, nil
}

func (s *implStore) DeleteAnalysis(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.analyses[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.analyses, id)
	return nil
}

func cloneAnalysis(a model.Analysis) model.Analysis {
	items := make([]model.ChecklistReportItem, len(a.ChecklistReport.Items))
	for i, it := range a.ChecklistReport.Items {
		it.Evidence = cloneSlice(it.Evidence)
		items[i] = it
	}
	a.ChecklistReport.Items = items
	a.ObjectionsReport.Topics = cloneSlice(a.ObjectionsReport.Topics)
	a.ObjectionsReport.Objections = cloneSlice(a.ObjectionsReport.Objections)
	return a
}
