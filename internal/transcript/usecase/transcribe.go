package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"callaudit-srv/internal/llm"
	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
	"callaudit-srv/internal/transcript"
	"callaudit-srv/pkg/minio"
)

func (uc *implUseCase) Transcribe(ctx context.Context, sc model.Scope, input transcript.TranscribeInput) (transcript.TranscribeOutput, error) {
	mimeType, ok := transcript.AudioMIME(input.FileName, input.MIME)
	if !ok {
		return transcript.TranscribeOutput{}, transcript.ErrUnsupportedAudio
	}
	if len(input.Audio) == 0 {
		return transcript.TranscribeOutput{}, transcript.ErrEmptyAudio
	}

	hash := transcript.HashAudio(input.Audio)
	if t, ok := uc.lookup(ctx, hash); ok {
		uc.l.Infof(ctx, "transcript.usecase.Transcribe: reusing transcript %s for %s", t.ID, input.FileName)
		return transcript.TranscribeOutput{Transcript: t, Cached: true}, nil
	}

	resp, err := uc.gateway.Complete(ctx, llm.Request{
		Prompt:    buildTranscribePrompt(input.Language),
		Audio:     input.Audio,
		AudioMIME: mimeType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "transcript.usecase.Transcribe: gateway: %v", err)
		if errors.Is(err, llm.ErrConfiguration) {
			return transcript.TranscribeOutput{}, err
		}
		return transcript.TranscribeOutput{}, fmt.Errorf("%w: %w", transcript.ErrTranscriptionFailed, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		uc.l.Warnf(ctx, "transcript.usecase.Transcribe: empty output for %s", input.FileName)
		return transcript.TranscribeOutput{}, fmt.Errorf("%w: model returned an empty transcript", transcript.ErrTranscriptionFailed)
	}

	t := model.Transcript{
		ID:            uc.newID(),
		Source:        model.SourceCall,
		Language:      input.Language,
		Text:          text,
		ContentHash:   hash,
		AudioFileName: input.FileName,
		Duration:      input.Duration,
		Segments:      transcript.ParseSegments(text),
		CreatedAt:     uc.now(),
	}

	stored, err := uc.store.CreateTranscript(ctx, store.CreateTranscriptOptions{Transcript: t})
	if err != nil {
		uc.l.Errorf(ctx, "transcript.usecase.Transcribe: store: %v", err)
		return transcript.TranscribeOutput{}, err
	}
	uc.remember(ctx, hash, stored.ID)

	// A concurrent upload of the same audio won the insert and owns the archive.
	if stored.ID != t.ID {
		return transcript.TranscribeOutput{Transcript: stored, Cached: true}, nil
	}
	if key := uc.archive(ctx, stored, input.Audio, mimeType); key != "" {
		if err := uc.store.SetTranscriptAudioKey(ctx, stored.ID, key); err != nil {
			uc.l.Warnf(ctx, "transcript.usecase.Transcribe: set audio key %s: %v", key, err)
		} else {
			stored.AudioObjectKey = key
		}
	}

	return transcript.TranscribeOutput{Transcript: stored}, nil
}

// lookup finds an earlier transcript of the same content, cache first.
func (uc *implUseCase) lookup(ctx context.Context, hash string) (model.Transcript, bool) {
	if uc.cache != nil {
		if id, err := uc.cache.GetTranscriptID(ctx, hash); err == nil {
			if t, err := uc.store.GetTranscript(ctx, id); err == nil {
				return t, true
			}
		}
	}

	t, err := uc.store.FindTranscriptByHash(ctx, hash)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			uc.l.Warnf(ctx, "transcript.usecase.lookup: %v", err)
		}
		return model.Transcript{}, false
	}
	uc.remember(ctx, hash, t.ID)
	return t, true
}

func (uc *implUseCase) remember(ctx context.Context, hash, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SaveTranscriptID(ctx, hash, id, uc.cfg.CacheTTL); err != nil {
		uc.l.Warnf(ctx, "transcript.usecase.remember: %s: %v", hash, err)
	}
}

// archive stores the audio and returns its object key. Failures only log.
func (uc *implUseCase) archive(ctx context.Context, t model.Transcript, audio []byte, mimeType string) string {
	if uc.uploader == nil || uc.cfg.Bucket == "" {
		return ""
	}
	key := minio.ObjectKey("audio", t.ID, t.AudioFileName)
	_, err := uc.uploader.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.cfg.Bucket,
		ObjectName:   key,
		OriginalName: t.AudioFileName,
		Reader:       bytes.NewReader(audio),
		Size:         int64(len(audio)),
		ContentType:  mimeType,
		Metadata:     map[string]string{"content-hash": t.ContentHash},
	})
	if err != nil {
		uc.l.Warnf(ctx, "transcript.usecase.archive: %s: %v", key, err)
		return ""
	}
	return key
}
