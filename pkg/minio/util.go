package minio

import "strings"

const (
	defaultPort = ":9000"
	// maxObjectSize is the largest single PUT accepted.
	maxObjectSize = 5 << 30
)

func validateConfig(cfg *Config) error {
	switch {
	case cfg.Endpoint == "":
		return invalidInput("endpoint is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return invalidInput("access key and secret key are required")
	case cfg.Bucket == "":
		return invalidInput("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint += defaultPort
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	switch {
	case req == nil || req.Reader == nil:
		return invalidInput("reader is required")
	case req.BucketName == "" || req.ObjectName == "":
		return invalidInput("bucket and object name are required")
	case req.Size <= 0:
		return invalidInput("size must be positive")
	case req.Size > maxObjectSize:
		return invalidInput("object exceeds 5GiB")
	case strings.HasPrefix(req.ObjectName, "/") || strings.HasSuffix(req.ObjectName, "/"):
		return invalidInput("object name cannot start or end with '/'")
	}
	return nil
}

// ObjectKey joins path segments into an object name without leading or doubled slashes.
func ObjectKey(parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(p, "/"); p != "" {
			clean = append(clean, p)
		}
	}
	return strings.Join(clean, "/")
}
