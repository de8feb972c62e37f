package analysis

import (
	"callaudit-srv/internal/checklist"
	"callaudit-srv/internal/model"
	"callaudit-srv/pkg/paginator"
)

// TranscriptInput is either a reference to a stored transcript (ID) or pasted text.
// A known ID wins over Text.
type TranscriptInput struct {
	ID       string
	Text     string
	Source   model.Source
	Language string
}

// AnalyzeInput selects the transcript and the checklist to evaluate.
// Checklist is an inline definition; ChecklistID references a stored one.
type AnalyzeInput struct {
	Transcript  TranscriptInput
	ChecklistID string
	Checklist   *checklist.Input
	// Language of the report. Falls back to the transcript language, then the request locale.
	Language  string
	Source    model.Source
	ManagerID string
}

type ListInput struct {
	ManagerID   string
	ChecklistID string
	Paginate    paginator.PaginateQuery
}

type ListOutput struct {
	Analyses  []model.Analysis
	Paginator paginator.Paginator
}

// Format is an export format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

type ExportInput struct {
	ID     string
	Format Format
}

type ExportOutput struct {
	FileName    string
	ContentType string
	Data        []byte
}
