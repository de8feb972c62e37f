package http

import (
	"errors"

	"callaudit-srv/internal/checklist"
	pkgErrors "callaudit-srv/pkg/errors"
	"callaudit-srv/pkg/upload"
)

var (
	errChecklistNotFound = pkgErrors.NewHTTPError(404, "Checklist not found")
	errUnsupportedFile   = pkgErrors.NewHTTPError(400, "Unsupported checklist file type (allowed: .txt, .md, .csv, .xlsx, .xls)")
	errFileRequired      = pkgErrors.NewHTTPError(400, "File is required")
	errFileTooLarge      = pkgErrors.NewHTTPError(413, "File is too large")
	errInvalidBody       = pkgErrors.NewHTTPError(400, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, checklist.ErrChecklistNotFound):
		return errChecklistNotFound
	case errors.Is(err, checklist.ErrUnsupportedFile):
		return errUnsupportedFile
	case upload.IsTooLarge(err):
		return errFileTooLarge
	default:
		// ValidationError renders as 400, anything else as 500.
		return err
	}
}
