package minio

import "fmt"

// Error codes carried by StorageError.
const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeConnection     = "CONNECTION_ERROR"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodePermission     = "PERMISSION_DENIED"
)

// StorageError is returned by every operation.
type StorageError struct {
	Code      string
	Operation string
	Message   string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("minio %s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("minio %s: %s", e.Operation, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func invalidInput(msg string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Operation: "validate", Message: msg}
}
