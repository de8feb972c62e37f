package transcript

import (
	"context"

	"callaudit-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Transcribe returns the stored transcript for identical audio, otherwise asks
	// the model for a transcript and stores it.
	Transcribe(ctx context.Context, sc model.Scope, input TranscribeInput) (TranscribeOutput, error)
	// FromText builds an unsaved transcript from pasted text. No model call is made.
	FromText(ctx context.Context, input FromTextInput) (model.Transcript, error)
}
