package memory

import (
	"context"
	"sort"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
)

func (s *implStore) CreateManager(ctx context.Context, opts store.CreateManagerOptions) (model.Manager, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.managers[opts.Manager.ID] = opts.Manager
	return opts.Manager, nil
}

func (s *implStore) GetManager(ctx context.Context, id string) (model.Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.managers[id]
	if !ok {
		return model.Manager{}, store.ErrNotFound
	}
	return m, nil
}

func (s *implStore) ListManagers(ctx context.Context) ([]model.Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Manager, 0, len(s.managers))
	for _, m := range s.managers {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *implStore) UpdateManager(ctx context.Context, opts store.UpdateManagerOptions) (model.Manager, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.managers[opts.Manager.ID]
	if !ok {
		return model.Manager{}, store.ErrNotFound
	}
	m := opts.Manager
	m.CreatedAt = old.CreatedAt
	s.managers[m.ID] = m
	return m, nil
}

// DeleteManager detaches the manager from its analyses instead of deleting them.
func (s *implStore) DeleteManager(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.managers[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.managers, id)
	for aid, a := range s.analyses {
		if a.ManagerID == id {
			a.ManagerID = ""
			s.analyses[aid] = a
		}
	}
	return nil
}
