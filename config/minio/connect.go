package minio

import (
	"context"
	"fmt"
	"sync"

	"callaudit-srv/config"
	"callaudit-srv/pkg/minio"
)

var (
	mu       sync.Mutex
	instance minio.MinIO
)

// Connect returns the shared audio archive client. The first successful call
// also creates the configured bucket when it is missing.
func Connect(ctx context.Context, cfg config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.NewMinIO(minio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if err := client.EnsureBucket(ctx, cfg.Bucket); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ensure bucket %q: %w", cfg.Bucket, err)
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
