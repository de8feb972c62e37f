package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrAnalysisNotFound   = errors.New("analysis not found")
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrChecklistNotFound  = errors.New("checklist not found")
	ErrManagerNotFound    = errors.New("manager not found")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	// ErrResponseFormat matches every *ResponseFormatError.
	ErrResponseFormat = errors.New("model response is not valid JSON")
)

// ResponseFormatError is returned when the model answer cannot be decoded.
type ResponseFormatError struct {
	// Snippet is the start of the offending answer, for logs.
	Snippet string
	Err     error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("model response is not valid JSON: %v", e.Err)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Err
}

func (e *ResponseFormatError) Is(target error) bool {
	return target == ErrResponseFormat
}
