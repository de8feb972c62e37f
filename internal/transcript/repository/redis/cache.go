package redis

import (
	"context"
	"errors"
	"time"

	"callaudit-srv/internal/transcript/repository"
	pkgRedis "callaudit-srv/pkg/redis"
)

const (
	Prefix     = "transcript:hash:"
	DefaultTTL = 24 * time.Hour
)

func (r *implRepository) GetTranscriptID(ctx context.Context, hash string) (string, error) {
	id, err := r.redis.Get(ctx, Prefix+hash)
	if errors.Is(err, pkgRedis.ErrNil) {
		return "", repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Warnf(ctx, "transcript.repository.redis.GetTranscriptID: %v", err)
		return "", err
	}
	return id, nil
}

func (r *implRepository) SaveTranscriptID(ctx context.Context, hash, id string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := r.redis.Set(ctx, Prefix+hash, id, ttl); err != nil {
		r.l.Warnf(ctx, "transcript.repository.redis.SaveTranscriptID: %v", err)
		return err
	}
	return nil
}
