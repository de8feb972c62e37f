package usecase

import (
	"time"

	"callaudit-srv/internal/manager"
	"callaudit-srv/internal/store"
	"callaudit-srv/pkg/log"

	"github.com/google/uuid"
)

type implUseCase struct {
	l     log.Logger
	store store.Store
	now   func() time.Time
	newID func() string
}

// New creates the manager UseCase.
func New(l log.Logger, st store.Store) manager.UseCase {
	return &implUseCase{
		l:     l,
		store: st,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}
