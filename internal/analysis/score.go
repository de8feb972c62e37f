package analysis

import (
	"math"

	"callaudit-srv/internal/model"
)

// Aggregate recomputes the totals of r from its items. Applying it twice gives
// the same report.
func Aggregate(c model.Checklist, r model.ChecklistReport) model.ChecklistReport {
	var total float64
	for _, it := range r.Items {
		total += it.Score
	}

	maxScore := float64(len(r.Items))
	if c.IsAdvanced() {
		maxScore = c.TotalScore
	}

	r.TotalScore = round(total, 4)
	r.MaxScore = maxScore
	r.Percentage = 0
	if maxScore > 0 {
		r.Percentage = round(total/maxScore*100, 2)
	}
	if r.Items == nil {
		r.Items = []model.ChecklistReportItem{}
	}
	return r
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
