package http

import (
	"callaudit-srv/internal/model"
	"callaudit-srv/internal/transcript"
)

type transcriptResp struct {
	ID       string          `json:"id"`
	Text     string          `json:"text"`
	Segments []model.Segment `json:"segments"`
	Language string          `json:"language"`
	Duration *float64        `json:"duration,omitempty"`
	Cached   bool            `json:"cached"`
}

type transcribeResp struct {
	Transcript transcriptResp `json:"transcript"`
	Language   string         `json:"language"`
}

func (h *handler) newTranscribeResp(out transcript.TranscribeOutput) transcribeResp {
	t := out.Transcript
	segments := t.Segments
	if segments == nil {
		segments = []model.Segment{}
	}
	return transcribeResp{
		Transcript: transcriptResp{
			ID:       t.ID,
			Text:     t.Text,
			Segments: segments,
			Language: t.Language,
			Duration: t.Duration,
			Cached:   out.Cached,
		},
		Language: t.Language,
	}
}
