package model

import "time"

// Source is where a transcript came from.
type Source string

const (
	SourceCall           Source = "call"
	SourceCorrespondence Source = "correspondence"
)

// IsValid reports whether s is a known source.
func (s Source) IsValid() bool {
	return s == SourceCall || s == SourceCorrespondence
}

// Segment is one speaker turn.
type Segment struct {
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text"`
}

// Transcript is immutable once stored.
type Transcript struct {
	ID             string    `json:"id"`
	Source         Source    `json:"source"`
	Language       string    `json:"language"`
	Text           string    `json:"text"`
	ContentHash    string    `json:"contentHash"`
	AudioFileName  string    `json:"audioFileName,omitempty"`
	AudioObjectKey string    `json:"audioObjectKey,omitempty"`
	Duration       *float64  `json:"duration,omitempty"`
	Segments       []Segment `json:"segments"`
	CreatedAt      time.Time `json:"createdAt"`
}
