package analysis

import (
	"math"
	"strings"

	"callaudit-srv/internal/model"
)

// Reconcile maps the model items onto the checklist. The result holds exactly one
// item per checklist entry, in checklist order; unknown ids are dropped.
func Reconcile(c model.Checklist, raw []RawItem) []model.ChecklistReportItem {
	byID := make(map[string]*RawItem, len(raw))
	for i := range raw {
		id := normalizeID(raw[i].ID)
		if _, dup := byID[id]; id == "" || dup {
			continue
		}
		byID[id] = &raw[i]
	}

	items := make([]model.ChecklistReportItem, 0, c.ItemCount())
	if c.IsAdvanced() {
		for _, cr := range c.AllCriteria() {
			items = append(items, reconcileCriterion(cr, byID[cr.Key()]))
		}
		return items
	}
	for _, it := range c.Items {
		items = append(items, reconcileItem(it, byID[normalizeID(it.ID)]))
	}
	return items
}

func reconcileItem(it model.ChecklistItem, r *RawItem) model.ChecklistReportItem {
	out := missingItem(it.ID, it.Title, 1)
	if r == nil {
		return out
	}

	out.Status = parseStatus(r.Status)
	out.Score = clamp(scoreOr(r.Score, out.Status, 1), 0, 1)
	out.Evidence = cleanEvidence(r.Evidence)
	out.Comment = r.Comment

	applyConfidence(&out, r.Confidence, it.ConfidenceThreshold)
	return out
}

func reconcileCriterion(cr model.Criterion, r *RawItem) model.ChecklistReportItem {
	out := missingItem(cr.Key(), cr.Title, cr.Weight)
	if r == nil {
		return out
	}

	level := parseLevel(r.Level)
	if cr.IsBinary && level == model.LevelMid {
		level = model.LevelMin
	}

	status := parseStatus(r.Status)
	if strings.TrimSpace(r.Status) == "" && level != "" {
		status = statusForLevel(level)
	}

	var score float64
	if s, ok := cr.LevelScore(level); ok {
		score = s
	} else {
		score = scoreOr(r.Score, status, cr.Weight)
	}
	score = clamp(score, 0, cr.Weight)

	if cr.IsBinary && level == "" {
		// Binary criteria are all or nothing; snap to the nearer level.
		level = model.LevelMin
		if score >= (cr.Max.Score+cr.Min.Score)/2 && score > cr.Min.Score {
			level = model.LevelMax
		}
		score, _ = cr.LevelScore(level)
		score = clamp(score, 0, cr.Weight)
	}

	out.Status = status
	out.Score = score
	out.Level = level
	out.Evidence = cleanEvidence(r.Evidence)
	out.Comment = r.Comment
	applyConfidence(&out, r.Confidence, model.DefaultConfidenceThreshold)
	return out
}

func missingItem(id, title string, maxScore float64) model.ChecklistReportItem {
	return model.ChecklistReportItem{
		ID:       id,
		Title:    title,
		Status:   model.ItemStatusUncertain,
		Score:    0,
		MaxScore: maxScore,
		Evidence: []model.Evidence{},
	}
}

// applyConfidence downgrades a verdict the model is not sure about. The score is kept.
func applyConfidence(out *model.ChecklistReportItem, confidence *float64, threshold float64) {
	if confidence == nil {
		return
	}
	c := clamp(*confidence, 0, 1)
	out.Confidence = &c
	if c < threshold {
		out.Status = model.ItemStatusUncertain
	}
}

// ReconcileObjections cleans up the objection block of the model answer.
func ReconcileObjections(raw RawObjections) model.ObjectionsReport {
	out := model.ObjectionsReport{
		Topics:              []string{},
		Objections:          []model.Objection{},
		ConversationEssence: strings.TrimSpace(raw.ConversationEssence),
		Outcome:             strings.TrimSpace(raw.Outcome),
	}
	for _, t := range raw.Topics {
		if t = strings.TrimSpace(t); t != "" {
			out.Topics = append(out.Topics, t)
		}
	}
	for _, o := range raw.Objections {
		obj := model.Objection{
			Category:     strings.TrimSpace(o.Category),
			ClientPhrase: strings.TrimSpace(o.ClientPhrase),
			ManagerReply: strings.TrimSpace(o.ManagerReply),
			Handling:     model.Handling(strings.ToLower(strings.TrimSpace(o.Handling))),
			Advice:       strings.TrimSpace(o.Advice),
		}
		if obj.Category == "" && obj.ClientPhrase == "" {
			continue
		}
		if !obj.Handling.IsValid() {
			obj.Handling = model.HandlingUnhandled
		}
		out.Objections = append(out.Objections, obj)
	}
	return out
}

func cleanEvidence(raw []RawEvidence) []model.Evidence {
	out := make([]model.Evidence, 0, len(raw))
	for _, e := range raw {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}
		out = append(out, model.Evidence{Text: text, Start: nonNegative(e.Start), End: nonNegative(e.End)})
	}
	return out
}

func parseStatus(s string) model.ItemStatus {
	st := model.ItemStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return model.ItemStatusUncertain
	}
	return st
}

func parseLevel(s string) model.Level {
	switch l := model.Level(strings.ToUpper(strings.TrimSpace(s))); l {
	case model.LevelMax, model.LevelMid, model.LevelMin:
		return l
	}
	return ""
}

func statusForLevel(l model.Level) model.ItemStatus {
	if l == model.LevelMin {
		return model.ItemStatusFailed
	}
	return model.ItemStatusPassed
}

// scoreOr returns the reported score, or full marks for a passed item without one.
func scoreOr(score *float64, status model.ItemStatus, full float64) float64 {
	if score != nil && !math.IsNaN(*score) {
		return *score
	}
	if status == model.ItemStatusPassed {
		return full
	}
	return 0
}

func normalizeID(id string) string {
	return strings.TrimSuffix(strings.TrimSpace(id), ".")
}

func nonNegative(v *float64) *float64 {
	if v == nil || *v < 0 || math.IsNaN(*v) {
		return nil
	}
	x := *v
	return &x
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
