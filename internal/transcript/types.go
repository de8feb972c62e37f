package transcript

import "callaudit-srv/internal/model"

type TranscribeInput struct {
	Audio    []byte
	FileName string
	MIME     string
	// Language is a hint for the model; empty lets it detect the language.
	Language string
	Duration *float64
}

type TranscribeOutput struct {
	Transcript model.Transcript
	// Cached is true when an earlier transcript of the same audio was returned.
	Cached bool
}

type FromTextInput struct {
	Text     string
	Source   model.Source
	Language string
}

// AudioFormats maps accepted extensions to the MIME type sent to the model.
var AudioFormats = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".webm": "audio/webm",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".mp4":  "audio/mp4",
}
