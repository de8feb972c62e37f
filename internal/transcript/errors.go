package transcript

import "errors"

var (
	ErrUnsupportedAudio    = errors.New("unsupported audio format")
	ErrEmptyAudio          = errors.New("audio file is empty")
	ErrTranscriptionFailed = errors.New("transcription failed")
)
