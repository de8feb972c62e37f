package http

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"callaudit-srv/internal/analysis"
	"callaudit-srv/internal/checklist"
	"callaudit-srv/internal/model"
	"callaudit-srv/pkg/paginator"
)

type analyzeReq struct {
	Transcript  transcriptField `json:"transcript"`
	Checklist   checklistField  `json:"checklist"`
	ChecklistID string          `json:"checklist_id"`
	Language    string          `json:"language"`
	Source      string          `json:"source"`
	ManagerID   string          `json:"manager_id"`
}

// transcriptField accepts pasted text or {id, text, source, language}.
type transcriptField struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Source   string `json:"source"`
	Language string `json:"language"`
}

func (f *transcriptField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &f.Text)
	}
	type plain transcriptField
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*f = transcriptField(p)
	return nil
}

// checklistField accepts a stored checklist id or an inline checklist.
type checklistField struct {
	ID     string
	Inline *checklist.Input
}

func (f *checklistField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &f.ID)
	}
	var in checklist.Input
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	f.ID = in.ID
	f.Inline = &in
	return nil
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		Transcript: analysis.TranscriptInput{
			ID:       r.Transcript.ID,
			Text:     r.Transcript.Text,
			Source:   model.Source(strings.ToLower(strings.TrimSpace(r.Transcript.Source))),
			Language: r.Transcript.Language,
		},
		ChecklistID: strings.TrimSpace(r.checklistID()),
		Checklist:   r.Checklist.Inline,
		Language:    r.Language,
		Source:      model.Source(r.Source),
		ManagerID:   r.ManagerID,
	}
}

// checklistID prefers the explicit field over the id embedded in the checklist.
func (r analyzeReq) checklistID() string {
	if r.ChecklistID != "" {
		return r.ChecklistID
	}
	return r.Checklist.ID
}

type listReq struct {
	Page        int    `form:"page"`
	Limit       int64  `form:"limit"`
	ManagerID   string `form:"manager_id"`
	ChecklistID string `form:"checklist_id"`
}

func (r listReq) toInput() analysis.ListInput {
	return analysis.ListInput{
		ManagerID:   r.ManagerID,
		ChecklistID: r.ChecklistID,
		Paginate:    paginator.PaginateQuery{Page: r.Page, Limit: r.Limit},
	}
}

type analysisItemResp struct {
	ID               string       `json:"id"`
	TranscriptID     string       `json:"transcriptId"`
	ChecklistID      string       `json:"checklistId,omitempty"`
	ChecklistName    string       `json:"checklistName"`
	ChecklistVersion string       `json:"checklistVersion"`
	ManagerID        string       `json:"managerId,omitempty"`
	ManagerName      string       `json:"managerName,omitempty"`
	Source           model.Source `json:"source"`
	Language         string       `json:"language"`
	TotalScore       float64      `json:"totalScore"`
	MaxScore         float64      `json:"maxScore"`
	Percentage       float64      `json:"percentage"`
	CreatedAt        time.Time    `json:"createdAt"`
}

type listResp struct {
	Analyses  []analysisItemResp          `json:"analyses"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListResp(out analysis.ListOutput) listResp {
	items := make([]analysisItemResp, 0, len(out.Analyses))
	for _, a := range out.Analyses {
		items = append(items, analysisItemResp{
			ID:               a.ID,
			TranscriptID:     a.TranscriptID,
			ChecklistID:      a.ChecklistID,
			ChecklistName:    a.ChecklistName,
			ChecklistVersion: a.ChecklistVersion,
			ManagerID:        a.ManagerID,
			ManagerName:      a.ManagerName,
			Source:           a.Source,
			Language:         a.Language,
			TotalScore:       a.ChecklistReport.TotalScore,
			MaxScore:         a.ChecklistReport.MaxScore,
			Percentage:       a.ChecklistReport.Percentage,
			CreatedAt:        a.CreatedAt,
		})
	}
	return listResp{Analyses: items, Paginator: out.Paginator.ToResponse()}
}
