package usecase

import (
	"time"

	"callaudit-srv/internal/llm"
	"callaudit-srv/internal/store"
	"callaudit-srv/internal/transcript"
	"callaudit-srv/internal/transcript/repository"
	"callaudit-srv/pkg/log"
	"callaudit-srv/pkg/minio"

	"github.com/google/uuid"
)

// Config configures archiving and caching.
type Config struct {
	// Bucket receives archived audio. Unused without an uploader.
	Bucket   string
	CacheTTL time.Duration
}

type implUseCase struct {
	l        log.Logger
	gateway  llm.Gateway
	store    store.Store
	cache    repository.CacheRepository
	uploader minio.FileUploader
	cfg      Config
	now      func() time.Time
	newID    func() string
}

// New creates the transcript UseCase. cache and uploader are optional.
func New(
	l log.Logger,
	gateway llm.Gateway,
	st store.Store,
	cache repository.CacheRepository,
	uploader minio.FileUploader,
	cfg Config,
) transcript.UseCase {
	return &implUseCase{
		l:        l,
		gateway:  gateway,
		store:    st,
		cache:    cache,
		uploader: uploader,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}
