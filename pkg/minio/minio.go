package minio

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/minio/minio-go/v7"
)

type implMinIO struct {
	client    *minio.Client
	cfg       Config
	connected atomic.Bool
}

func (m *implMinIO) Connect(ctx context.Context) error {
	if _, err := m.client.BucketExists(ctx, m.cfg.Bucket); err != nil {
		m.connected.Store(false)
		return wrapError(err, "connect")
	}
	m.connected.Store(true)
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	if !m.connected.Load() {
		return &StorageError{Code: ErrCodeConnection, Operation: "health_check", Message: "not connected"}
	}
	if _, err := m.client.BucketExists(ctx, m.cfg.Bucket); err != nil {
		return wrapError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.connected.Store(false)
	return nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucket string) error {
	if len(bucket) < 3 || len(bucket) > 63 {
		return invalidInput("bucket name must be between 3 and 63 characters")
	}
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return wrapError(err, "bucket_exists")
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.cfg.Region}); err != nil {
		return wrapError(err, "make_bucket")
	}
	return nil
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}

	meta := make(map[string]string, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		meta[k] = v
	}
	if req.OriginalName != "" {
		meta["original-name"] = req.OriginalName
	}

	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: meta,
	})
	if err != nil {
		return nil, wrapError(err, "put_object")
	}
	return &FileInfo{
		BucketName: req.BucketName,
		ObjectName: req.ObjectName,
		Size:       info.Size,
		ETag:       info.ETag,
		StoredAt:   time.Now().UTC(),
	}, nil
}

func wrapError(err error, operation string) error {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return &StorageError{Code: ErrCodeConnection, Operation: operation, Message: "request failed", Cause: err}
	}
	code := ErrCodeConnection
	switch resp.Code {
	case "NoSuchBucket":
		code = ErrCodeBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		code = ErrCodePermission
	}
	return &StorageError{Code: code, Operation: operation, Message: resp.Code, Cause: err}
}
