package checklist

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"callaudit-srv/internal/model"
	pkgErrors "callaudit-srv/pkg/errors"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultName    = "Checklist"
	DefaultVersion = "1.0"
)

// weightTolerance absorbs float noise when comparing a declared total with the sum of weights.
const weightTolerance = 1e-6

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Normalize validates in and returns a checklist with defaults applied.
// Ids, timestamps and the version are left to the caller when empty.
func Normalize(in Input) (model.Checklist, error) {
	in.Name = strings.TrimSpace(in.Name)
	for i := range in.Items {
		in.Items[i].ID = strings.TrimSpace(in.Items[i].ID)
		in.Items[i].Title = strings.TrimSpace(in.Items[i].Title)
	}

	if len(in.Items) == 0 && len(in.Stages) == 0 {
		return model.Checklist{}, pkgErrors.NewValidationError("checklist must contain at least one item", "items")
	}
	if len(in.Items) > 0 && len(in.Stages) > 0 {
		return model.Checklist{}, pkgErrors.NewValidationError("checklist must use either items or stages, not both")
	}
	if err := getValidator().Struct(in); err != nil {
		return model.Checklist{}, toValidationError(err)
	}

	out := model.Checklist{
		ID:          strings.TrimSpace(in.ID),
		Name:        in.Name,
		Version:     strings.TrimSpace(in.Version),
		Description: strings.TrimSpace(in.Description),
	}

	if len(in.Stages) > 0 {
		stages, total, err := normalizeStages(in.Stages, in.TotalScore)
		if err != nil {
			return model.Checklist{}, err
		}
		out.Stages = stages
		out.TotalScore = total
		return out, nil
	}

	items, err := normalizeItems(in.Items)
	if err != nil {
		return model.Checklist{}, err
	}
	out.Items = items
	return out, nil
}

// WithDefaults fills the name and version of a normalised checklist.
func WithDefaults(c model.Checklist) model.Checklist {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	return c
}

func normalizeItems(in []ItemInput) ([]model.ChecklistItem, error) {
	seen := make(map[string]struct{}, len(in))
	items := make([]model.ChecklistItem, 0, len(in))
	for _, it := range in {
		if _, dup := seen[it.ID]; dup {
			return nil, pkgErrors.NewValidationError(fmt.Sprintf("duplicate item id %q", it.ID), "items.id")
		}
		seen[it.ID] = struct{}{}

		typ := model.ItemType(strings.ToLower(strings.TrimSpace(it.Type)))
		if !typ.IsValid() {
			typ = model.ItemTypeRecommended
		}
		threshold := model.DefaultConfidenceThreshold
		if it.ConfidenceThreshold != nil {
			threshold = *it.ConfidenceThreshold
		}

		items = append(items, model.ChecklistItem{
			ID:                  it.ID,
			Title:               it.Title,
			Description:         strings.TrimSpace(it.Description),
			Type:                typ,
			Criteria:            cleanCriteria(it.Criteria),
			ConfidenceThreshold: threshold,
		})
	}
	return items, nil
}

func cleanCriteria(c model.ChecklistCriteria) model.ChecklistCriteria {
	return model.ChecklistCriteria{
		PositivePatterns: cleanList(c.PositivePatterns),
		NegativePatterns: cleanList(c.NegativePatterns),
		LLMHint:          strings.TrimSpace(c.LLMHint),
	}
}

func cleanList(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func normalizeStages(in []StageInput, declared *float64) ([]model.Stage, float64, error) {
	used := make(map[int]struct{})
	for _, s := range in {
		for _, c := range s.Criteria {
			if c.Number == 0 {
				continue
			}
			if _, dup := used[c.Number]; dup {
				return nil, 0, pkgErrors.NewValidationError(fmt.Sprintf("duplicate criterion number %d", c.Number), "stages.criteria.number")
			}
			used[c.Number] = struct{}{}
		}
	}

	next := 1
	var sum float64
	stages := make([]model.Stage, 0, len(in))
	for i, s := range in {
		stage := model.Stage{
			ID:    strings.TrimSpace(s.ID),
			Title: strings.TrimSpace(s.Title),
		}
		if stage.ID == "" {
			stage.ID = fmt.Sprintf("stage-%d", i+1)
		}
		for _, c := range s.Criteria {
			number := c.Number
			if number == 0 {
				for {
					if _, taken := used[next]; !taken {
						break
					}
					next++
				}
				number = next
				used[number] = struct{}{}
			}
			crit := model.Criterion{
				Number:   number,
				Title:    strings.TrimSpace(c.Title),
				Weight:   c.Weight,
				Max:      c.Max,
				Mid:      c.Mid,
				Min:      c.Min,
				IsBinary: c.IsBinary,
			}
			if crit.Max.Score == 0 && crit.Min.Score == 0 && crit.Mid.Score == 0 {
				// Levels without scores default to full, half and no weight.
				crit.Max.Score = crit.Weight
				crit.Mid.Score = crit.Weight / 2
			}
			if err := checkLevels(crit); err != nil {
				return nil, 0, err
			}
			sum += crit.Weight
			stage.Criteria = append(stage.Criteria, crit)
		}
		stages = append(stages, stage)
	}

	if declared == nil {
		return stages, sum, nil
	}
	if math.Abs(*declared-sum) > weightTolerance {
		return nil, 0, pkgErrors.NewValidationError(
			fmt.Sprintf("totalScore %.2f does not match the sum of weights %.2f", *declared, sum), "totalScore")
	}
	return stages, *declared, nil
}

func checkLevels(c model.Criterion) error {
	for _, l := range []model.CriterionLevel{c.Max, c.Mid, c.Min} {
		if l.Score < 0 || l.Score > c.Weight+weightTolerance {
			return pkgErrors.NewValidationError(
				fmt.Sprintf("criterion %d: level scores must be within [0, weight]", c.Number), "stages.criteria")
		}
	}
	return nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pkgErrors.NewValidationError(err.Error())
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace()+" "+describeTag(fe))
	}
	return pkgErrors.NewValidationError("invalid checklist", fields...)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " entries"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
