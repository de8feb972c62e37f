package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"callaudit-srv/internal/model"
)

// SectionKind tells renderers how a section is laid out.
type SectionKind string

const (
	SectionHeader     SectionKind = "header"
	SectionSummary    SectionKind = "summary"
	SectionItems      SectionKind = "items"
	SectionEvidence   SectionKind = "evidence"
	SectionObjections SectionKind = "objections"
	SectionFooter     SectionKind = "footer"
)

// Document is the renderer-neutral form of a report.
type Document struct {
	Title    string
	Date     time.Time
	Sections []Section
}

type Section struct {
	Kind       SectionKind
	Title      string
	Fields     []Field
	Paragraphs []string
	Table      *Table
	Quotes     []Quote
}

type Field struct {
	Label string
	Value string
}

type Table struct {
	Header []string
	// Widths are relative column widths.
	Widths []float64
	Rows   [][]string
}

type Quote struct {
	Item string
	Text string
	// Span is "mm:ss-mm:ss" when timestamps are known.
	Span string
}

// BuildDocument lays out an analysis. The result depends only on a.
func BuildDocument(a model.Analysis) Document {
	lb := LabelsFor(a.Language)
	doc := Document{Title: lb.Title, Date: a.CreatedAt}

	doc.Sections = append(doc.Sections, headerSection(a, lb))
	if s := strings.TrimSpace(a.ChecklistReport.Summary); s != "" {
		doc.Sections = append(doc.Sections, Section{
			Kind:       SectionSummary,
			Title:      lb.Summary,
			Paragraphs: paragraphs(s),
		})
	}
	doc.Sections = append(doc.Sections, itemsSection(a, lb))
	if ev := evidenceSection(a, lb); len(ev.Quotes) > 0 {
		doc.Sections = append(doc.Sections, ev)
	}
	doc.Sections = append(doc.Sections, objectionsSection(a, lb))
	doc.Sections = append(doc.Sections, Section{
		Kind:       SectionFooter,
		Paragraphs: []string{footer(a, lb)},
	})
	return doc
}

func headerSection(a model.Analysis, lb Labels) Section {
	r := a.ChecklistReport
	checklist := a.ChecklistName
	if a.ChecklistVersion != "" {
		checklist = fmt.Sprintf("%s (v%s)", a.ChecklistName, a.ChecklistVersion)
	}

	fields := []Field{
		{Label: lb.Checklist, Value: checklist},
	}
	if a.ManagerName != "" {
		fields = append(fields, Field{Label: lb.Manager, Value: a.ManagerName})
	}
	fields = append(fields,
		Field{Label: lb.Source, Value: lookup(lb.Sources, a.Source)},
		Field{Label: lb.Date, Value: formatDate(a.CreatedAt)},
		Field{Label: lb.Score, Value: fmt.Sprintf("%s / %s (%s%%)", formatNumber(r.TotalScore), formatNumber(r.MaxScore), formatNumber(r.Percentage))},
	)
	if a.Model != "" {
		fields = append(fields, Field{Label: lb.Model, Value: a.Model})
	}
	return Section{Kind: SectionHeader, Title: lb.Title, Fields: fields}
}

func itemsSection(a model.Analysis, lb Labels) Section {
	t := &Table{
		Header: []string{lb.Number, lb.Item, lb.Status, lb.Points, lb.Comment},
		Widths: []float64{1, 5, 2.5, 2, 7},
	}
	for i, it := range a.ChecklistReport.Items {
		points := fmt.Sprintf("%s/%s", formatNumber(it.Score), formatNumber(it.MaxScore))
		if it.Level != "" {
			points += " " + string(it.Level)
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			it.Title,
			lookup(lb.Statuses, it.Status),
			points,
			it.Comment,
		})
	}
	return Section{Kind: SectionItems, Title: lb.Items, Table: t}
}

func evidenceSection(a model.Analysis, lb Labels) Section {
	s := Section{Kind: SectionEvidence, Title: lb.Evidence}
	for _, it := range a.ChecklistReport.Items {
		for _, ev := range it.Evidence {
			s.Quotes = append(s.Quotes, Quote{Item: it.Title, Text: ev.Text, Span: formatSpan(ev.Start, ev.End)})
		}
	}
	return s
}

func objectionsSection(a model.Analysis, lb Labels) Section {
	o := a.ObjectionsReport
	s := Section{Kind: SectionObjections, Title: lb.Objections}

	topics := lb.None
	if len(o.Topics) > 0 {
		topics = strings.Join(o.Topics, ", ")
	}
	s.Fields = append(s.Fields, Field{Label: lb.Topics, Value: topics})
	if o.ConversationEssence != "" {
		s.Fields = append(s.Fields, Field{Label: lb.Essence, Value: o.ConversationEssence})
	}
	if o.Outcome != "" {
		s.Fields = append(s.Fields, Field{Label: lb.Outcome, Value: o.Outcome})
	}

	if len(o.Objections) == 0 {
		s.Paragraphs = []string{lb.None}
		return s
	}
	s.Table = &Table{
		Header: []string{lb.Category, lb.ClientPhrase, lb.ManagerReply, lb.Handling, lb.Advice},
		Widths: []float64{2.5, 4, 4, 2.5, 4.5},
	}
	for _, ob := range o.Objections {
		s.Table.Rows = append(s.Table.Rows, []string{
			ob.Category,
			ob.ClientPhrase,
			ob.ManagerReply,
			lookup(lb.Handlings, ob.Handling),
			ob.Advice,
		})
	}
	return s
}

func footer(a model.Analysis, lb Labels) string {
	if a.ID == "" {
		return lb.Footer
	}
	return fmt.Sprintf("%s · %s", lb.Footer, a.ID)
}

func paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

// formatNumber prints at most two decimals without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func formatSpan(start, end *float64) string {
	switch {
	case start != nil && end != nil:
		return clock(*start) + "-" + clock(*end)
	case start != nil:
		return clock(*start)
	}
	return ""
}

func clock(sec float64) string {
	total := int(sec)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
