package kafka

import "time"

// AnalysisCompletedMessage is published once an analysis is stored.
type AnalysisCompletedMessage struct {
	EventType        string    `json:"event_type"`
	AnalysisID       string    `json:"analysis_id"`
	TranscriptID     string    `json:"transcript_id"`
	ChecklistID      string    `json:"checklist_id"`
	ChecklistName    string    `json:"checklist_name"`
	ChecklistVersion string    `json:"checklist_version"`
	ManagerID        string    `json:"manager_id,omitempty"`
	Source           string    `json:"source"`
	Language         string    `json:"language"`
	TotalScore       float64   `json:"total_score"`
	MaxScore         float64   `json:"max_score"`
	Percentage       float64   `json:"percentage"`
	Passed           int       `json:"passed"`
	Failed           int       `json:"failed"`
	Uncertain        int       `json:"uncertain"`
	CompletedAt      time.Time `json:"completed_at"`
}
