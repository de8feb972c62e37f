package store

import "callaudit-srv/internal/model"

type CreateChecklistOptions struct {
	Checklist model.Checklist
}

type UpdateChecklistOptions struct {
	Checklist model.Checklist
}

type CreateManagerOptions struct {
	Manager model.Manager
}

type UpdateManagerOptions struct {
	Manager model.Manager
}

type CreateTranscriptOptions struct {
	Transcript model.Transcript
}

// CreateAnalysisOptions carries the analysis and the entities that must be inserted with it.
// Transcript and Checklist are nil when they are already stored.
type CreateAnalysisOptions struct {
	Analysis   model.Analysis
	Transcript *model.Transcript
	Checklist  *model.Checklist
}

type ListAnalysesOptions struct {
	ManagerID   string
	ChecklistID string
	Limit       int64
	Offset      int64
}

// Stats describes the active backend.
type Stats struct {
	Backend     string `json:"backend"`
	Durable     bool   `json:"durable"`
	Checklists  int64  `json:"checklists"`
	Managers    int64  `json:"managers"`
	Transcripts int64  `json:"transcripts"`
	Analyses    int64  `json:"analyses"`
}
