package memory

import (
	"context"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
)

func (s *implStore) CreateTranscript(ctx context.Context, opts store.CreateTranscriptOptions) (model.Transcript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertTranscriptLocked(opts.Transcript), nil
}

func (s *implStore) insertTranscriptLocked(t model.Transcript) model.Transcript {
	if t.ContentHash != "" {
		if id, ok := s.hashes[t.ContentHash]; ok {
			return cloneTranscript(s.transcripts[id])
		}
		s.hashes[t.ContentHash] = t.ID
	}
	t = cloneTranscript(t)
	s.transcripts[t.ID] = t
	return cloneTranscript(t)
}

func (s *implStore) GetTranscript(ctx context.Context, id string) (model.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transcripts[id]
	if !ok {
		return model.Transcript{}, store.ErrNotFound
	}
	return cloneTranscript(t), nil
}

func (s *implStore) FindTranscriptByHash(ctx context.Context, hash string) (model.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.hashes[hash]
	if !ok {
		return model.Transcript{}, store.ErrNotFound
	}
	return cloneTranscript(s.transcripts[id]), nil
}

func (s *implStore) SetTranscriptAudioKey(ctx context.Context, id, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transcripts[id]
	if !ok {
		return store.ErrNotFound
	}
	t.AudioObjectKey = key
	s.transcripts[id] = t
	return nil
}

func cloneTranscript(t model.Transcript) model.Transcript {
	t.Segments = cloneSlice(t.Segments)
	if t.Duration != nil {
		d := *t.Duration
		t.Duration = &d
	}
	return t
}
