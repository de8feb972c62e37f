package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"callaudit-srv/internal/model"
)

const promptTemplate = `You are a quality assurance analyst for a sales team. Evaluate the %s below against the checklist.

Rules:
- Judge only what is present in the transcript. Do not invent quotes.
- Return one entry per checklist %s, using the exact "id" from the checklist.
- status is one of "passed", "failed", "uncertain".
%s
- confidence is your certainty in [0,1].
- evidence quotes the transcript verbatim; start and end are seconds when timestamps are known.
- For "prohibited" items, "passed" means the prohibited behaviour did NOT happen.
- Also extract the client's objections and how the manager handled them ("handled", "partial", "unhandled").
- Write summary, comments, advice, conversation_essence and outcome in %s.
- Answer with a single JSON object only, no Markdown, matching this schema:

%s

Checklist:
%s

Transcript:
%s
`

const simpleScoreRule = `- score is in [0,1].`

const advancedScoreRule = `- level is one of "MAX", "MID", "MIN" as described by the criterion; score is the matching level score.
- Binary criteria accept only "MAX" or "MIN".`

const responseSchema = `{
  "checklist": {
    "items": [
      {
        "id": "string",
        "status": "passed|failed|uncertain",
        "score": 0,
        "level": "MAX|MID|MIN",
        "confidence": 0,
        "evidence": [{"text": "string", "start": 0, "end": 0}],
        "comment": "string"
      }
    ],
    "summary": "string"
  },
  "objections": {
    "topics": ["string"],
    "objections": [
      {
        "category": "string",
        "client_phrase": "string",
        "manager_reply": "string",
        "handling": "handled|partial|unhandled",
        "advice": "string"
      }
    ],
    "conversation_essence": "string",
    "outcome": "string"
  }
}`

type promptItem struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Type             string   `json:"type"`
	Hint             string   `json:"hint,omitempty"`
	PositivePatterns []string `json:"positive_patterns,omitempty"`
	NegativePatterns []string `json:"negative_patterns,omitempty"`
}

type promptLevel struct {
	Description string  `json:"description,omitempty"`
	Score       float64 `json:"score"`
}

type promptCriterion struct {
	ID       string       `json:"id"`
	Stage    string       `json:"stage"`
	Title    string       `json:"title"`
	Weight   float64      `json:"weight"`
	Max      promptLevel  `json:"MAX"`
	Mid      *promptLevel `json:"MID,omitempty"`
	Min      promptLevel  `json:"MIN"`
	IsBinary bool         `json:"binary,omitempty"`
}

// BuildPrompt renders the analysis prompt. The output depends only on its arguments.
func BuildPrompt(c model.Checklist, t model.Transcript, lang string) string {
	kind := "call transcript"
	if t.Source == model.SourceCorrespondence {
		kind = "written correspondence"
	}

	entry, rule := "item", simpleScoreRule
	if c.IsAdvanced() {
		entry, rule = "criterion", advancedScoreRule
	}

	return fmt.Sprintf(promptTemplate,
		kind,
		entry,
		rule,
		LanguageName(lang),
		responseSchema,
		compactChecklist(c),
		strings.TrimSpace(t.Text),
	)
}

func compactChecklist(c model.Checklist) string {
	var v any
	if c.IsAdvanced() {
		criteria := make([]promptCriterion, 0, c.ItemCount())
		for _, s := range c.Stages {
			for _, cr := range s.Criteria {
				pc := promptCriterion{
					ID:       cr.Key(),
					Stage:    s.Title,
					Title:    cr.Title,
					Weight:   cr.Weight,
					Max:      promptLevel(cr.Max),
					Min:      promptLevel(cr.Min),
					IsBinary: cr.IsBinary,
				}
				if !cr.IsBinary {
					mid := promptLevel(cr.Mid)
					pc.Mid = &mid
				}
				criteria = append(criteria, pc)
			}
		}
		v = map[string]any{"criteria": criteria, "totalScore": c.TotalScore}
	} else {
		items := make([]promptItem, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, promptItem{
				ID:               it.ID,
				Title:            it.Title,
				Type:             string(it.Type),
				Hint:             it.Criteria.LLMHint,
				PositivePatterns: it.Criteria.PositivePatterns,
				NegativePatterns: it.Criteria.NegativePatterns,
			})
		}
		v = map[string]any{"items": items}
	}

	// Only plain structs and maps are marshalled here.
	b, _ := json.Marshal(v)
	return string(b)
}

// LanguageName turns a language code into the name used in the prompt.
func LanguageName(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "", "en", "eng", "english":
		return "English"
	case "ru", "rus", "russian":
		return "Russian"
	case "uk", "ukr":
		return "Ukrainian"
	case "de":
		return "German"
	case "es":
		return "Spanish"
	case "fr":
		return "French"
	}
	return lang
}
