package checklist

import "errors"

var (
	ErrChecklistNotFound = errors.New("checklist not found")
	ErrUnsupportedFile   = errors.New("unsupported checklist file type")
)
