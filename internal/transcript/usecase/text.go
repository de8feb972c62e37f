package usecase

import (
	"context"
	"strings"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/transcript"
	pkgErrors "callaudit-srv/pkg/errors"
)

func (uc *implUseCase) FromText(ctx context.Context, input transcript.FromTextInput) (model.Transcript, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Transcript{}, pkgErrors.NewValidationError("transcript text is empty", "transcript")
	}

	source := input.Source
	if source == "" {
		source = model.SourceCall
	}
	if !source.IsValid() {
		return model.Transcript{}, pkgErrors.NewValidationError("source must be call or correspondence", "source")
	}

	return model.Transcript{
		ID:          uc.newID(),
		Source:      source,
		Language:    input.Language,
		Text:        text,
		ContentHash: transcript.HashText(source, text),
		Segments:    transcript.ParseSegments(text),
		CreatedAt:   uc.now(),
	}, nil
}
