package checklist

import (
	"errors"
	"testing"

	"callaudit-srv/internal/model"
	pkgErrors "callaudit-srv/pkg/errors"

	"github.com/xuri/excelize/v2"
)

func TestParseText(t *testing.T) {
	src := "# Sales call\n\n- Greet the client\n* [ ] Ask for the name\n1. Present the offer [mandatory]\n! Confirm next steps\n+ [x] Never promise discounts [prohibited]\n## Section\n   \n"

	in, err := Parse("script.md", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.Name != "Sales call" {
		t.Errorf("name = %q", in.Name)
	}
	want := []struct {
		title string
		typ   string
	}{
		{"Greet the client", ""},
		{"Ask for the name", ""},
		{"Present the offer", "mandatory"},
		{"Confirm next steps", "mandatory"},
		{"Never promise discounts", "prohibited"},
	}
	if len(in.Items) != len(want) {
		t.Fatalf("items = %d, want %d: %+v", len(in.Items), len(want), in.Items)
	}
	for i, w := range want {
		if in.Items[i].Title != w.title || in.Items[i].Type != w.typ {
			t.Errorf("item %d = %+v, want %+v", i, in.Items[i], w)
		}
		if in.Items[i].ID == "" {
			t.Errorf("item %d has no id", i)
		}
	}

	c, err := Normalize(in)
	if err != nil {
		t.Fatalf("parsed checklist is not valid: %v", err)
	}
	if c.Items[4].Type != model.ItemTypeProhibited {
		t.Errorf("type = %s", c.Items[4].Type)
	}
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantIDs   []string
		wantTitle []string
		wantErr   bool
	}{
		{
			name:      "with header",
			src:       "id,title,type,llm_hint,confidence_threshold\ngreet,Greeting,mandatory,say hello,0.7\n,Closing,,,\n",
			wantIDs:   []string{"greet", "item-2"},
			wantTitle: []string{"Greeting", "Closing"},
		},
		{
			name:      "without header",
			src:       "Greeting\nClosing,extra\n",
			wantIDs:   []string{"item-1", "item-2"},
			wantTitle: []string{"Greeting", "Closing"},
		},
		{
			name:    "bad threshold",
			src:     "title,threshold\nA,abc\n",
			wantErr: true,
		},
		{
			name:    "header only",
			src:     "id,title\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Parse("list.csv", []byte(tt.src))
			if tt.wantErr {
				if !pkgErrors.IsValidation(err) {
					t.Fatalf("error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(in.Items) != len(tt.wantIDs) {
				t.Fatalf("items = %+v", in.Items)
			}
			for i := range tt.wantIDs {
				if in.Items[i].ID != tt.wantIDs[i] || in.Items[i].Title != tt.wantTitle[i] {
					t.Errorf("item %d = %+v", i, in.Items[i])
				}
			}
			if _, err := Normalize(in); err != nil {
				t.Errorf("parsed checklist is not valid: %v", err)
			}
		})
	}
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"ID", "Title", "Type"},
		{"a", "Greeting", "mandatory"},
		{"b", "Closing", ""},
	}
	for i, row := range rows {
		cellName, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	in, err := Parse("checklist.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.Name != "checklist" {
		t.Errorf("name = %q, want file base name", in.Name)
	}
	if len(in.Items) != 2 || in.Items[0].ID != "a" || in.Items[0].Type != "mandatory" || in.Items[1].Title != "Closing" {
		t.Errorf("items = %+v", in.Items)
	}
}

func TestParseRejects(t *testing.T) {
	if _, err := Parse("legacy.xls", []byte{0xD0, 0xCF, 0x11, 0xE0, 0, 0, 0, 0}); !pkgErrors.IsValidation(err) {
		t.Errorf("xls error = %v, want ValidationError", err)
	}
	if _, err := Parse("doc.pdf", []byte("x")); !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("pdf error = %v, want ErrUnsupportedFile", err)
	}
	if _, err := Parse("empty.txt", []byte("\n\n# Only a heading\n")); !pkgErrors.IsValidation(err) {
		t.Errorf("empty error = %v, want ValidationError", err)
	}
}
