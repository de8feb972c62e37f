package repository

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when no transcript id is cached for a hash.
var ErrCacheMiss = errors.New("transcript cache miss")

// CacheRepository maps content hashes to transcript ids.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetTranscriptID(ctx context.Context, hash string) (string, error)
	SaveTranscriptID(ctx context.Context, hash, id string, ttl time.Duration) error
}
