package checklist

import "callaudit-srv/internal/model"

// Input is a checklist as submitted by a form, a JSON import or a parsed upload.
// Exactly one of Items or Stages is expected.
type Input struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Version     string       `json:"version,omitempty"`
	Description string       `json:"description,omitempty"`
	Items       []ItemInput  `json:"items,omitempty" validate:"dive"`
	Stages      []StageInput `json:"stages,omitempty" validate:"dive"`
	TotalScore  *float64     `json:"totalScore,omitempty" validate:"omitempty,gte=0"`
}

type ItemInput struct {
	ID                  string                  `json:"id" validate:"required"`
	Title               string                  `json:"title" validate:"required"`
	Description         string                  `json:"description,omitempty"`
	Type                string                  `json:"type,omitempty"`
	Criteria            model.ChecklistCriteria `json:"criteria"`
	ConfidenceThreshold *float64                `json:"confidence_threshold,omitempty" validate:"omitempty,gte=0,lte=1"`
}

type StageInput struct {
	ID       string           `json:"id,omitempty"`
	Title    string           `json:"title" validate:"required"`
	Criteria []CriterionInput `json:"criteria" validate:"required,min=1,dive"`
}

type CriterionInput struct {
	// Number 0 means "next free number".
	Number   int                  `json:"number" validate:"gte=0"`
	Title    string               `json:"title" validate:"required"`
	Weight   float64              `json:"weight" validate:"gte=0"`
	Max      model.CriterionLevel `json:"max"`
	Mid      model.CriterionLevel `json:"mid"`
	Min      model.CriterionLevel `json:"min"`
	IsBinary bool                 `json:"isBinary,omitempty"`
}

// UploadInput is a checklist file. Name overrides the name found in the file.
type UploadInput struct {
	FileName string
	Data     []byte
	Name     string
	Version  string
}

// FromModel turns a stored checklist back into an Input, e.g. to re-validate it.
func FromModel(c model.Checklist) Input {
	in := Input{
		ID:          c.ID,
		Name:        c.Name,
		Version:     c.Version,
		Description: c.Description,
	}
	for _, it := range c.Items {
		threshold := it.ConfidenceThreshold
		in.Items = append(in.Items, ItemInput{
			ID:                  it.ID,
			Title:               it.Title,
			Description:         it.Description,
			Type:                string(it.Type),
			Criteria:            it.Criteria,
			ConfidenceThreshold: &threshold,
		})
	}
	for _, s := range c.Stages {
		stage := StageInput{ID: s.ID, Title: s.Title}
		for _, cr := range s.Criteria {
			stage.Criteria = append(stage.Criteria, CriterionInput{
				Number:   cr.Number,
				Title:    cr.Title,
				Weight:   cr.Weight,
				Max:      cr.Max,
				Mid:      cr.Mid,
				Min:      cr.Min,
				IsBinary: cr.IsBinary,
			})
		}
		in.Stages = append(in.Stages, stage)
	}
	if c.IsAdvanced() {
		total := c.TotalScore
		in.TotalScore = &total
	}
	return in
}
