package model

import (
	"strconv"
	"time"
)

// ItemType classifies a simple checklist item.
type ItemType string

const (
	ItemTypeMandatory   ItemType = "mandatory"
	ItemTypeRecommended ItemType = "recommended"
	ItemTypeProhibited  ItemType = "prohibited"
)

// DefaultConfidenceThreshold applies when an item does not set one.
const DefaultConfidenceThreshold = 0.6

// IsValid reports whether t is one of the known item types.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeMandatory, ItemTypeRecommended, ItemTypeProhibited:
		return true
	}
	return false
}

type ChecklistCriteria struct {
	PositivePatterns []string `json:"positive_patterns,omitempty"`
	NegativePatterns []string `json:"negative_patterns,omitempty"`
	LLMHint          string   `json:"llm_hint,omitempty"`
}

// ChecklistItem is an entry of the simple checklist form.
type ChecklistItem struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description,omitempty"`
	Type                ItemType          `json:"type"`
	Criteria            ChecklistCriteria `json:"criteria"`
	ConfidenceThreshold float64           `json:"confidence_threshold"`
}

// CriterionLevel describes one scoring level of an advanced criterion.
type CriterionLevel struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// Criterion is a weighted entry of the advanced checklist form.
type Criterion struct {
	Number   int            `json:"number"`
	Title    string         `json:"title"`
	Weight   float64        `json:"weight"`
	Max      CriterionLevel `json:"max"`
	Mid      CriterionLevel `json:"mid"`
	Min      CriterionLevel `json:"min"`
	IsBinary bool           `json:"isBinary,omitempty"`
}

// Key is the identifier used for the criterion in prompts and reports.
func (c Criterion) Key() string {
	return strconv.Itoa(c.Number)
}

// LevelScore is the score awarded for reaching l.
func (c Criterion) LevelScore(l Level) (float64, bool) {
	switch l {
	case LevelMax:
		return c.Max.Score, true
	case LevelMid:
		return c.Mid.Score, true
	case LevelMin:
		return c.Min.Score, true
	}
	return 0, false
}

// Stage groups criteria of the advanced form.
type Stage struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Criteria []Criterion `json:"criteria"`
}

// Checklist holds either Items (simple form) or Stages (advanced form).
type Checklist struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description,omitempty"`
	Items       []ChecklistItem `json:"items,omitempty"`
	Stages      []Stage         `json:"stages,omitempty"`
	TotalScore  float64         `json:"totalScore,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// IsAdvanced reports whether the checklist uses weighted stages.
func (c Checklist) IsAdvanced() bool {
	return len(c.Stages) > 0
}

// AllCriteria flattens the stages in order.
func (c Checklist) AllCriteria() []Criterion {
	var out []Criterion
	for _, s := range c.Stages {
		out = append(out, s.Criteria...)
	}
	return out
}

// ItemCount is the number of scorable entries.
func (c Checklist) ItemCount() int {
	if c.IsAdvanced() {
		return len(c.AllCriteria())
	}
	return len(c.Items)
}
