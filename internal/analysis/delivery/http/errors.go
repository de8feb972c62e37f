package http

import (
	"errors"

	"callaudit-srv/internal/analysis"
	"callaudit-srv/internal/llm"
	"callaudit-srv/internal/store"
	pkgErrors "callaudit-srv/pkg/errors"
)

var (
	errAnalysisNotFound   = pkgErrors.NewHTTPError(404, "Analysis not found")
	errTranscriptNotFound = pkgErrors.NewHTTPError(404, "Transcript not found")
	errChecklistNotFound  = pkgErrors.NewHTTPError(404, "Checklist not found")
	errManagerNotFound    = pkgErrors.NewHTTPError(404, "Manager not found")
	errReferenceNotFound  = pkgErrors.NewHTTPError(404, "Referenced entity not found")
	errUnsupportedFormat  = pkgErrors.NewHTTPError(400, "Unsupported export format")
	errInvalidBody        = pkgErrors.NewHTTPError(400, "Invalid request body")
	errInvalidQuery       = pkgErrors.NewHTTPError(400, "Invalid query parameters")
	errProviderFailed     = pkgErrors.NewHTTPError(502, "Language model is unavailable")
	errResponseFormat     = pkgErrors.NewHTTPError(502, "Language model returned an invalid response")
	errNotConfigured      = pkgErrors.NewHTTPError(503, "Language model is not configured")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrAnalysisNotFound):
		return errAnalysisNotFound
	case errors.Is(err, analysis.ErrTranscriptNotFound):
		return errTranscriptNotFound
	case errors.Is(err, analysis.ErrChecklistNotFound):
		return errChecklistNotFound
	case errors.Is(err, analysis.ErrManagerNotFound):
		return errManagerNotFound
	case errors.Is(err, store.ErrReferenceNotFound):
		return errReferenceNotFound
	case errors.Is(err, analysis.ErrUnsupportedFormat):
		return errUnsupportedFormat
	case errors.Is(err, llm.ErrConfiguration):
		return errNotConfigured
	case errors.Is(err, llm.ErrProviderUnavailable):
		return errProviderFailed
	case errors.Is(err, analysis.ErrResponseFormat):
		return errResponseFormat
	default:
		return err
	}
}
