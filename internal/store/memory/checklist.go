package memory

import (
	"context"
	"sort"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
)

func (s *implStore) CreateChecklist(ctx context.Context, opts store.CreateChecklistOptions) (model.Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := cloneChecklist(opts.Checklist)
	s.checklists[c.ID] = c
	return cloneChecklist(c), nil
}

func (s *implStore) GetChecklist(ctx context.Context, id string) (model.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.checklists[id]
	if !ok {
		return model.Checklist{}, store.ErrNotFound
	}
	return cloneChecklist(c), nil
}

func (s *implStore) ListChecklists(ctx context.Context) ([]model.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Checklist, 0, len(s.checklists))
	for _, c := range s.checklists {
		out = append(out, cloneChecklist(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *implStore) UpdateChecklist(ctx context.Context, opts store.UpdateChecklistOptions) (model.Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.checklists[opts.Checklist.ID]
	if !ok {
		return model.Checklist{}, store.ErrNotFound
	}
	c := cloneChecklist(opts.Checklist)
	c.CreatedAt = old.CreatedAt
	s.checklists[c.ID] = c
	return cloneChecklist(c), nil
}

func (s *implStore) DeleteChecklist(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.checklists[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.checklists, id)
	for aid, a := range s.analyses {
		if a.ChecklistID == id {
			a.ChecklistID = ""
			s.analyses[aid] = a
		}
	}
	return nil
}

func cloneChecklist(c model.Checklist) model.Checklist {
	c.Items = cloneSlice(c.Items)
	stages := make([]model.Stage, len(c.Stages))
	for i, st := range c.Stages {
		st.Criteria = cloneSlice(st.Criteria)
		stages[i] = st
	}
	if c.Stages != nil {
		c.Stages = stages
	}
	return c
}
