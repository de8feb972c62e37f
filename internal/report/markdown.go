package report

import (
	"fmt"
	"strings"
)

// Markdown renders doc as GitHub flavoured Markdown.
func Markdown(doc Document) []byte {
	var sb strings.Builder

	for _, s := range doc.Sections {
		switch s.Kind {
		case SectionHeader:
			fmt.Fprintf(&sb, "# %s\n\n", mdInline(s.Title))
			writeFields(&sb, s.Fields)
			sb.WriteString("---\n\n")
		case SectionFooter:
			sb.WriteString("---\n\n")
			for _, p := range s.Paragraphs {
				fmt.Fprintf(&sb, "*%s*\n", mdInline(p))
			}
		default:
			fmt.Fprintf(&sb, "## %s\n\n", mdInline(s.Title))
			writeFields(&sb, s.Fields)
			for _, p := range s.Paragraphs {
				sb.WriteString(mdInline(p))
				sb.WriteString("\n\n")
			}
			if s.Table != nil {
				writeTable(&sb, s.Table)
			}
			for _, q := range s.Quotes {
				writeQuote(&sb, q)
			}
		}
	}
	return []byte(sb.String())
}

func writeFields(sb *strings.Builder, fields []Field) {
	if len(fields) == 0 {
		return
	}
	for _, f := range fields {
		fmt.Fprintf(sb, "- **%s:** %s\n", mdInline(f.Label), mdInline(f.Value))
	}
	sb.WriteString("\n")
}

func writeTable(sb *strings.Builder, t *Table) {
	sb.WriteString("|")
	for _, h := range t.Header {
		fmt.Fprintf(sb, " %s |", mdCell(h))
	}
	sb.WriteString("\n|")
	for range t.Header {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, row := range t.Rows {
		sb.WriteString("|")
		for _, c := range row {
			fmt.Fprintf(sb, " %s |", mdCell(c))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func writeQuote(sb *strings.Builder, q Quote) {
	for _, line := range strings.Split(q.Text, "\n") {
		fmt.Fprintf(sb, "> %s\n", mdInline(line))
	}
	src := "**" + mdInline(q.Item) + "**"
	if q.Span != "" {
		src += " (" + q.Span + ")"
	}
	fmt.Fprintf(sb, ">\n> - %s\n\n", src)
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
)

func mdInline(s string) string {
	return mdEscaper.Replace(strings.TrimSpace(s))
}

// mdCell keeps a value on one table row.
func mdCell(s string) string {
	s = mdInline(s)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.ReplaceAll(s, "\n", "<br>")
}
