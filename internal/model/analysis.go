package model

import "time"

// ItemStatus is the verdict for one checklist entry.
type ItemStatus string

const (
	ItemStatusPassed    ItemStatus = "passed"
	ItemStatusFailed    ItemStatus = "failed"
	ItemStatusUncertain ItemStatus = "uncertain"
)

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPassed, ItemStatusFailed, ItemStatusUncertain:
		return true
	}
	return false
}

// Level is the scoring level reached on an advanced criterion.
type Level string

const (
	LevelMax Level = "MAX"
	LevelMid Level = "MID"
	LevelMin Level = "MIN"
)

// Handling is how a manager dealt with an objection.
type Handling string

const (
	HandlingHandled   Handling = "handled"
	HandlingPartial   Handling = "partial"
	HandlingUnhandled Handling = "unhandled"
)

func (h Handling) IsValid() bool {
	switch h {
	case HandlingHandled, HandlingPartial, HandlingUnhandled:
		return true
	}
	return false
}

// Evidence is a transcript excerpt backing a verdict. Start and End are seconds.
type Evidence struct {
	Text  string   `json:"text"`
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`
}

type ChecklistReportItem struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Status     ItemStatus `json:"status"`
	Score      float64    `json:"score"`
	MaxScore   float64    `json:"maxScore"`
	Level      Level      `json:"level,omitempty"`
	Confidence *float64   `json:"confidence,omitempty"`
	Evidence   []Evidence `json:"evidence"`
	Comment    string     `json:"comment,omitempty"`
}

type ChecklistReport struct {
	Items      []ChecklistReportItem `json:"items"`
	Summary    string                `json:"summary"`
	TotalScore float64               `json:"totalScore"`
	MaxScore   float64               `json:"maxScore"`
	Percentage float64               `json:"percentage"`
}

type Objection struct {
	Category     string   `json:"category"`
	ClientPhrase string   `json:"client_phrase"`
	ManagerReply string   `json:"manager_reply,omitempty"`
	Handling     Handling `json:"handling"`
	Advice       string   `json:"advice,omitempty"`
}

type ObjectionsReport struct {
	Topics              []string    `json:"topics"`
	Objections          []Objection `json:"objections"`
	ConversationEssence string      `json:"conversation_essence"`
	Outcome             string      `json:"outcome"`
}

// Analysis is the stored result of one checklist evaluation. Read-only after creation.
type Analysis struct {
	ID               string           `json:"id"`
	TranscriptID     string           `json:"transcriptId"`
	ChecklistID      string           `json:"checklistId"`
	ChecklistName    string           `json:"checklistName"`
	ChecklistVersion string           `json:"checklistVersion"`
	ManagerID        string           `json:"managerId,omitempty"`
	ManagerName      string           `json:"managerName,omitempty"`
	Source           Source           `json:"source"`
	Language         string           `json:"language"`
	Model            string           `json:"model"`
	ChecklistReport  ChecklistReport  `json:"checklistReport"`
	ObjectionsReport ObjectionsReport `json:"objectionsReport"`
	CreatedAt        time.Time        `json:"createdAt"`
}
