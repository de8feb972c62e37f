package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	utf8Family  = "body"
	coreFamily  = "Helvetica"
	pageMargin  = 15.0
	lineHeight  = 5.0
	cellPadding = 1.0
	quoteIndent = 6.0
)

// PDF renders doc as an A4 document. font is an optional TrueType font used for
// all text; without it the core Helvetica font is used and characters outside
// Windows-1252 print as dots.
func PDF(doc Document, font []byte) ([]byte, error) {
	w := newPDFWriter(doc, font)
	w.pdf.AddPage()

	for _, s := range doc.Sections {
		switch s.Kind {
		case SectionHeader:
			w.title(s.Title)
			w.fields(s.Fields)
		case SectionFooter:
			w.pdf.Ln(lineHeight)
			w.pdf.SetFont(w.family, "I", 8)
			for _, p := range s.Paragraphs {
				w.pdf.MultiCell(0, lineHeight, w.tr(p), "", "C", false)
			}
		default:
			w.heading(s.Title)
			w.fields(s.Fields)
			for _, p := range s.Paragraphs {
				w.pdf.SetFont(w.family, "", 10)
				w.pdf.MultiCell(0, lineHeight, w.tr(p), "", "L", false)
				w.pdf.Ln(1)
			}
			if s.Table != nil {
				w.table(s.Table)
			}
			for _, q := range s.Quotes {
				w.quote(q)
			}
		}
	}

	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf    *fpdf.Fpdf
	family string
	utf8   bool
	tr     func(string) string
}

func newPDFWriter(doc Document, font []byte) *pdfWriter {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	// Pinned dates and sorted catalogs make the output byte-stable.
	date := doc.Date.UTC()
	if doc.Date.IsZero() {
		date = time.Unix(0, 0).UTC()
	}
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(date)
	pdf.SetModificationDate(date)
	pdf.SetProducer("callaudit-srv", false)
	pdf.SetTitle(doc.Title, true)

	w := &pdfWriter{pdf: pdf, family: coreFamily, tr: func(s string) string { return s }}
	if len(font) > 0 {
		for _, style := range []string{"", "B", "I"} {
			pdf.AddUTF8FontFromBytes(utf8Family, style, font)
		}
		w.family, w.utf8 = utf8Family, true
	} else {
		w.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont(w.family, "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, lineHeight, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	return w
}

func (w *pdfWriter) title(s string) {
	w.pdf.SetFont(w.family, "B", 16)
	w.pdf.MultiCell(0, 8, w.tr(s), "", "L", false)
	w.pdf.Ln(2)
}

func (w *pdfWriter) heading(s string) {
	w.pdf.Ln(3)
	w.pdf.SetFont(w.family, "B", 13)
	w.pdf.MultiCell(0, 7, w.tr(s), "", "L", false)
	w.pdf.Ln(1)
}

func (w *pdfWriter) fields(fields []Field) {
	for _, f := range fields {
		label := w.tr(f.Label + ": ")
		w.pdf.SetFont(w.family, "B", 10)
		w.pdf.CellFormat(w.pdf.GetStringWidth(label)+cellPadding, lineHeight, label, "", 0, "L", false, 0, "")
		w.pdf.SetFont(w.family, "", 10)
		w.pdf.MultiCell(0, lineHeight, w.tr(f.Value), "", "L", false)
	}
	if len(fields) > 0 {
		w.pdf.Ln(2)
	}
}

func (w *pdfWriter) table(t *Table) {
	widths := w.columnWidths(t)

	w.pdf.SetFont(w.family, "B", 9)
	w.pdf.SetFillColor(230, 230, 230)
	w.row(widths, t.Header, true)

	w.pdf.SetFont(w.family, "", 9)
	for _, r := range t.Rows {
		w.row(widths, r, false)
	}
	w.pdf.Ln(2)
}

func (w *pdfWriter) columnWidths(t *Table) []float64 {
	pageW, _ := w.pdf.GetPageSize()
	avail := pageW - 2*pageMargin

	weights := t.Widths
	if len(weights) != len(t.Header) {
		weights = make([]float64, len(t.Header))
		for i := range weights {
			weights[i] = 1
		}
	}
	var sum float64
	for _, v := range weights {
		sum += v
	}
	out := make([]float64, len(weights))
	for i, v := range weights {
		out[i] = avail * v / sum
	}
	return out
}

// row draws one table row, breaking the page first when the row does not fit.
func (w *pdfWriter) row(widths []float64, cells []string, header bool) {
	lines := make([][]string, len(widths))
	n := 1
	for i := range widths {
		var text string
		if i < len(cells) {
			text = cells[i]
		}
		lines[i] = w.split(text, widths[i])
		if len(lines[i]) > n {
			n = len(lines[i])
		}
	}
	h := float64(n)*lineHeight + cellPadding

	_, pageH := w.pdf.GetPageSize()
	if w.pdf.GetY()+h > pageH-pageMargin {
		w.pdf.AddPage()
	}

	x, y := w.pdf.GetXY()
	style := "D"
	if header {
		style = "FD"
	}
	for i, width := range widths {
		w.pdf.Rect(x, y, width, h, style)
		for j, line := range lines[i] {
			w.pdf.SetXY(x, y+cellPadding/2+float64(j)*lineHeight)
			w.pdf.CellFormat(width, lineHeight, line, "", 0, "L", false, 0, "")
		}
		x += width
	}
	w.pdf.SetXY(pageMargin, y+h)
}

func (w *pdfWriter) quote(q Quote) {
	pageW, _ := w.pdf.GetPageSize()
	width := pageW - 2*pageMargin - quoteIndent

	w.pdf.SetFont(w.family, "I", 10)
	w.pdf.SetX(pageMargin + quoteIndent)
	w.pdf.MultiCell(width, lineHeight, w.tr("\""+q.Text+"\""), "L", "L", false)

	src := q.Item
	if q.Span != "" {
		src += " (" + q.Span + ")"
	}
	w.pdf.SetFont(w.family, "", 8)
	w.pdf.SetX(pageMargin + quoteIndent)
	w.pdf.MultiCell(width, 4, w.tr(src), "", "L", false)
	w.pdf.Ln(1)
}

// split wraps text to width; the returned lines are ready for CellFormat.
func (w *pdfWriter) split(text string, width float64) []string {
	text = strings.ReplaceAll(text, "\r", "")
	var lines []string
	if w.utf8 {
		lines = w.pdf.SplitText(text, width)
	} else {
		for _, b := range w.pdf.SplitLines([]byte(w.tr(text)), width) {
			lines = append(lines, string(b))
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
