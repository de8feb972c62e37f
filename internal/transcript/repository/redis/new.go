package redis

import (
	"callaudit-srv/internal/transcript/repository"
	"callaudit-srv/pkg/log"
	pkgRedis "callaudit-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
