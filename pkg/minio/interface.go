package minio

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO is the object store that archives uploaded audio.
// Implementations are safe for concurrent use.
type MinIO interface {
	FileUploader
	// Connect verifies credentials by probing the configured bucket.
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	// EnsureBucket creates bucket when it does not exist yet.
	EnsureBucket(ctx context.Context, bucket string) error
	Close() error
}

// FileUploader stores one object.
type FileUploader interface {
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
}

// Config holds the connection settings. Endpoint gets ":9000" when it has no port.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// UploadRequest is one object to store. Metadata becomes user metadata.
type UploadRequest struct {
	BucketName   string
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName string    `json:"bucket_name"`
	ObjectName string    `json:"object_name"`
	Size       int64     `json:"size"`
	ETag       string    `json:"etag"`
	StoredAt   time.Time `json:"stored_at"`
}

// NewMinIO builds a client. Call Connect before use.
func NewMinIO(cfg Config) (MinIO, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConns:        16,
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     90 * time.Second,
			// Audio is already compressed.
			DisableCompression: true,
		},
	})
	if err != nil {
		return nil, &StorageError{Code: ErrCodeInvalidInput, Operation: "new", Message: "invalid endpoint", Cause: err}
	}

	return &implMinIO{client: client, cfg: cfg}, nil
}
