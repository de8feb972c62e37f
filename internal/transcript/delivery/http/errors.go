package http

import (
	"errors"

	"callaudit-srv/internal/llm"
	"callaudit-srv/internal/transcript"
	pkgErrors "callaudit-srv/pkg/errors"
	"callaudit-srv/pkg/upload"
)

var (
	errUnsupportedAudio = pkgErrors.NewHTTPError(400, "Unsupported audio format (allowed: mp3, wav, m4a, ogg, webm, flac, aac, mp4)")
	errEmptyAudio       = pkgErrors.NewHTTPError(400, "Audio file is empty")
	errFileRequired     = pkgErrors.NewHTTPError(400, "File is required")
	errInvalidDuration  = pkgErrors.NewHTTPError(400, "Invalid duration")
	errFileTooLarge     = pkgErrors.NewHTTPError(413, "File is too large")
	errTranscription    = pkgErrors.NewHTTPError(500, "Transcription failed")
	errNotConfigured    = pkgErrors.NewHTTPError(503, "Language model is not configured")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, transcript.ErrUnsupportedAudio):
		return errUnsupportedAudio
	case errors.Is(err, transcript.ErrEmptyAudio):
		return errEmptyAudio
	case upload.IsTooLarge(err):
		return errFileTooLarge
	case errors.Is(err, llm.ErrConfiguration):
		return errNotConfigured
	case errors.Is(err, transcript.ErrTranscriptionFailed):
		return errTranscription
	default:
		return err
	}
}
