package postgre

import (
	"encoding/json"
	"fmt"
	"time"

	"callaudit-srv/internal/model"
)

type checklistRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Version     string    `db:"version"`
	Description string    `db:"description"`
	Definition  []byte    `db:"definition"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// checklistDefinition is the JSONB payload of the definition column.
type checklistDefinition struct {
	Items      []model.ChecklistItem `json:"items,omitempty"`
	Stages     []model.Stage         `json:"stages,omitempty"`
	TotalScore float64               `json:"totalScore,omitempty"`
}

func encodeDefinition(c model.Checklist) (string, error) {
	b, err := json.Marshal(checklistDefinition{Items: c.Items, Stages: c.Stages, TotalScore: c.TotalScore})
	if err != nil {
		return "", fmt.Errorf("encode checklist definition: %w", err)
	}
	return string(b), nil
}

func (r checklistRow) toModel() (model.Checklist, error) {
	var def checklistDefinition
	if err := json.Unmarshal(r.Definition, &def); err != nil {
		return model.Checklist{}, fmt.Errorf("decode checklist %s: %w", r.ID, err)
	}
	return model.Checklist{
		ID:          r.ID,
		Name:        r.Name,
		Version:     r.Version,
		Description: r.Description,
		Items:       def.Items,
		Stages:      def.Stages,
		TotalScore:  def.TotalScore,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}
