package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("store: not found")
	ErrReferenceNotFound = errors.New("store: referenced entity not found")
)

const (
	KindPostgres = "postgres"
	KindMemory   = "memory"
)

// ReferenceError names the missing entity of a failed CreateAnalysis.
type ReferenceError struct {
	Entity string
	ID     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q does not exist", e.Entity, e.ID)
}

func (e *ReferenceError) Unwrap() error {
	return ErrReferenceNotFound
}
