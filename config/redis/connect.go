package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"callaudit-srv/config"
	"callaudit-srv/pkg/redis"
)

const keyNamespace = "callaudit"

var (
	mu       sync.Mutex
	instance redis.IRedis
)

// Connect returns the shared Redis client, dialing on first use. A failed
// attempt leaves nothing cached so the next call retries.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	dialTimeout := 5 * time.Second
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left > 0 && left < dialTimeout {
			dialTimeout = left
		}
	}

	client, err := redis.NewRedis(redis.Config{
		Host:        cfg.Host,
		Port:        cfg.Port,
		Password:    cfg.Password,
		DB:          cfg.DB,
		Namespace:   keyNamespace,
		DialTimeout: dialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	instance = client
	return instance, nil
}

// Disconnect closes the shared client. It is a no-op when not connected.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
