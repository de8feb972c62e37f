package checklist

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"callaudit-srv/internal/model"
	pkgErrors "callaudit-srv/pkg/errors"

	"github.com/xuri/excelize/v2"
)

// SupportedExtensions are the checklist upload formats.
var SupportedExtensions = []string{".txt", ".md", ".csv", ".xlsx", ".xls"}

var (
	listMarkerRe = regexp.MustCompile(`^(?:[-*+]\s+|\d+[.)]\s+)`)
	checkboxRe   = regexp.MustCompile(`^\[[ xX]?\]\s*`)
	typeTagRe    = regexp.MustCompile(`(?i)\[(mandatory|recommended|prohibited)\]`)
	utf8BOM      = []byte{0xEF, 0xBB, 0xBF}
)

// Parse reads a checklist file into an Input. The format is chosen by extension.
func Parse(fileName string, data []byte) (Input, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	data = bytes.TrimPrefix(data, utf8BOM)

	var (
		in  Input
		err error
	)
	switch ext {
	case ".txt", ".md":
		in = parseText(string(data))
	case ".csv":
		in, err = parseCSV(data)
	case ".xlsx", ".xls":
		in, err = parseSpreadsheet(ext, data)
	default:
		return Input{}, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	if err != nil {
		return Input{}, err
	}

	if len(in.Items) == 0 {
		return Input{}, pkgErrors.NewValidationError("checklist file contains no items")
	}
	for i := range in.Items {
		if in.Items[i].ID == "" {
			in.Items[i].ID = fmt.Sprintf("item-%d", i+1)
		}
	}
	if in.Name == "" {
		in.Name = strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	}
	return in, nil
}

func parseText(text string) Input {
	var in Input
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			heading := strings.TrimSpace(strings.TrimLeft(line, "#"))
			if in.Name == "" && len(in.Items) == 0 && strings.HasPrefix(line, "# ") {
				in.Name = heading
			}
			continue
		}

		item := ItemInput{}
		if strings.HasPrefix(line, "!") {
			item.Type = string(model.ItemTypeMandatory)
			line = strings.TrimSpace(line[1:])
		}
		line = listMarkerRe.ReplaceAllString(line, "")
		line = checkboxRe.ReplaceAllString(line, "")
		if m := typeTagRe.FindStringSubmatch(line); m != nil {
			item.Type = strings.ToLower(m[1])
			line = strings.TrimSpace(typeTagRe.ReplaceAllString(line, ""))
		}
		if line == "" {
			continue
		}
		item.Title = line
		in.Items = append(in.Items, item)
	}
	return in
}

func parseCSV(data []byte) (Input, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Input{}, pkgErrors.NewValidationError("invalid csv: " + err.Error())
		}
		rows = append(rows, rec)
	}
	return fromRows(rows)
}

func parseSpreadsheet(ext string, data []byte) (Input, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		if ext == ".xls" {
			return Input{}, pkgErrors.NewValidationError("legacy .xls files are not supported, save the checklist as .xlsx")
		}
		return Input{}, pkgErrors.NewValidationError("invalid spreadsheet: " + err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Input{}, pkgErrors.NewValidationError("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Input{}, pkgErrors.NewValidationError("cannot read spreadsheet: " + err.Error())
	}
	return fromRows(rows)
}

// columns maps recognised header names to row indexes.
type columns struct {
	id, title, typ, hint, threshold, description int
}

func detectHeader(row []string) (columns, bool) {
	cols := columns{id: -1, title: -1, typ: -1, hint: -1, threshold: -1, description: -1}
	for i, cell := range row {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "id":
			cols.id = i
		case "title", "item", "name":
			cols.title = i
		case "type":
			cols.typ = i
		case "llm_hint", "hint":
			cols.hint = i
		case "confidence_threshold", "threshold":
			cols.threshold = i
		case "description":
			cols.description = i
		}
	}
	return cols, cols.title >= 0
}

func fromRows(rows [][]string) (Input, error) {
	var in Input
	if len(rows) == 0 {
		return in, nil
	}

	cols, hasHeader := detectHeader(rows[0])
	if hasHeader {
		rows = rows[1:]
	} else {
		cols = columns{id: -1, title: 0, typ: -1, hint: -1, threshold: -1, description: -1}
	}

	for n, row := range rows {
		title := cell(row, cols.title)
		if title == "" {
			continue
		}
		item := ItemInput{
			ID:          cell(row, cols.id),
			Title:       title,
			Type:        cell(row, cols.typ),
			Description: cell(row, cols.description),
		}
		item.Criteria.LLMHint = cell(row, cols.hint)
		if raw := cell(row, cols.threshold); raw != "" {
			v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
			if err != nil {
				return Input{}, pkgErrors.NewValidationError(fmt.Sprintf("row %d: invalid confidence_threshold %q", n+1, raw))
			}
			item.ConfidenceThreshold = &v
		}
		in.Items = append(in.Items, item)
	}
	return in, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
