package memory

import (
	"context"
	"sync"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
)

// implStore keeps everything in process memory. Not durable across restarts.
type implStore struct {
	mu          sync.RWMutex
	checklists  map[string]model.Checklist
	managers    map[string]model.Manager
	transcripts map[string]model.Transcript
	hashes      map[string]string
	analyses    map[string]model.Analysis
}

// New creates an empty in-memory store.
func New() store.Store {
	return &implStore{
		checklists:  make(map[string]model.Checklist),
		managers:    make(map[string]model.Manager),
		transcripts: make(map[string]model.Transcript),
		hashes:      make(map[string]string),
		analyses:    make(map[string]model.Analysis),
	}
}

func (s *implStore) Kind() string {
	return store.KindMemory
}

func (s *implStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *implStore) Stats(ctx context.Context) (store.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return store.Stats{
		Backend:     store.KindMemory,
		Durable:     false,
		Checklists:  int64(len(s.checklists)),
		Managers:    int64(len(s.managers)),
		Transcripts: int64(len(s.transcripts)),
		Analyses:    int64(len(s.analyses)),
	}, nil
}
