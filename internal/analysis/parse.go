package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"callaudit-srv/pkg/util"
)

const snippetLen = 200

// RawResponse is the model answer as decoded, before reconciliation.
type RawResponse struct {
	Items      []RawItem
	Summary    string
	Objections RawObjections
}

type RawItem struct {
	ID         string
	Status     string
	Score      *float64
	Level      string
	Confidence *float64
	Evidence   []RawEvidence
	Comment    string
}

type RawEvidence struct {
	Text  string
	Start *float64
	End   *float64
}

type RawObjections struct {
	Topics              []string
	Objections          []RawObjection
	ConversationEssence string
	Outcome             string
}

type RawObjection struct {
	Category     string `json:"category"`
	ClientPhrase string `json:"client_phrase"`
	ManagerReply string `json:"manager_reply"`
	Handling     string `json:"handling"`
	Advice       string `json:"advice"`
}

// wire types; unknown fields are ignored, types are enforced.
type responseDoc struct {
	Checklist  *checklistDoc   `json:"checklist"`
	Items      []itemDoc       `json:"items"`
	Summary    string          `json:"summary"`
	Objections json.RawMessage `json:"objections"`
	Topics     []string        `json:"topics"`
	Essence    string          `json:"conversation_essence"`
	Outcome    string          `json:"outcome"`
}

type checklistDoc struct {
	Items   []itemDoc `json:"items"`
	Summary string    `json:"summary"`
}

type itemDoc struct {
	ID         flexString    `json:"id"`
	Status     string        `json:"status"`
	Score      *float64      `json:"score"`
	Level      string        `json:"level"`
	Confidence *float64      `json:"confidence"`
	Evidence   []evidenceDoc `json:"evidence"`
	Comment    string        `json:"comment"`
}

type objectionsDoc struct {
	Topics     []string       `json:"topics"`
	Objections []RawObjection `json:"objections"`
	Essence    string         `json:"conversation_essence"`
	Outcome    string         `json:"outcome"`
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*f = flexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexString(n.String())
	return nil
}

// evidenceDoc accepts a bare quote or an object.
type evidenceDoc struct {
	Text  string   `json:"text"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
}

func (e *evidenceDoc) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &e.Text)
	}
	type plain evidenceDoc
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*e = evidenceDoc(p)
	return nil
}

// ParseResponse decodes the model answer. Markdown fences and text around the
// JSON object are tolerated; anything else yields a *ResponseFormatError.
func ParseResponse(text string) (RawResponse, error) {
	body := StripCodeFence(text)
	if body == "" {
		return RawResponse{}, formatError(text, errors.New("empty response"))
	}

	var doc responseDoc
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return RawResponse{}, formatError(text, err)
	}

	out := RawResponse{Summary: strings.TrimSpace(doc.Summary)}
	items := doc.Items
	if doc.Checklist != nil {
		if len(doc.Checklist.Items) > 0 || items == nil {
			items = doc.Checklist.Items
		}
		if s := strings.TrimSpace(doc.Checklist.Summary); s != "" {
			out.Summary = s
		}
	}
	for _, it := range items {
		out.Items = append(out.Items, it.raw())
	}

	obj, err := decodeObjections(doc)
	if err != nil {
		return RawResponse{}, formatError(text, err)
	}
	out.Objections = obj
	return out, nil
}

// objections is either a full object or, in the flat layout, the list itself.
func decodeObjections(doc responseDoc) (RawObjections, error) {
	out := RawObjections{
		Topics:              doc.Topics,
		ConversationEssence: doc.Essence,
		Outcome:             doc.Outcome,
	}
	raw := bytes.TrimSpace(doc.Objections)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return out, nil
	}

	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &out.Objections); err != nil {
			return RawObjections{}, fmt.Errorf("objections: %w", err)
		}
		return out, nil
	}

	var od objectionsDoc
	if err := json.Unmarshal(raw, &od); err != nil {
		return RawObjections{}, fmt.Errorf("objections: %w", err)
	}
	out.Objections = od.Objections
	if len(od.Topics) > 0 {
		out.Topics = od.Topics
	}
	out.ConversationEssence = util.FirstNonEmpty(od.Essence, out.ConversationEssence)
	out.Outcome = util.FirstNonEmpty(od.Outcome, out.Outcome)
	return out, nil
}

func (d itemDoc) raw() RawItem {
	it := RawItem{
		ID:         strings.TrimSpace(string(d.ID)),
		Status:     d.Status,
		Score:      d.Score,
		Level:      d.Level,
		Confidence: d.Confidence,
		Comment:    strings.TrimSpace(d.Comment),
	}
	for _, e := range d.Evidence {
		it.Evidence = append(it.Evidence, RawEvidence(e))
	}
	return it
}

// StripCodeFence removes a surrounding ```json fence and any prose around the
// outermost JSON object.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return s
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

func formatError(text string, err error) error {
	return &ResponseFormatError{Snippet: util.Truncate(text, snippetLen), Err: err}
}
