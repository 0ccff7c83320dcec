package job

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const recipe = `
default_font: {name: Arial, size: 10}
active_sheet: Report
sheets:
  - name: Report
    values:
      - [Name, Age]
      - [Alice, 30]
    default_column_width: 12
    columns:
      - {names: [A], width: 20}
      - {names: [B]}
    rows:
      - {range: "1-2", height: 24}
      - {row: 5, height: 40}
    styles:
      - range: "A1:B1"
        style:
          font: {bold: true}
          fill: {color: ["DDEBF7"]}
          borders:
            all: {style: 1}
  - name: Notes
    values: [[hello]]
`

func TestParse(t *testing.T) {
	j, err := Parse([]byte(recipe))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if j.DefaultFont == nil || j.DefaultFont.Name != "Arial" || j.DefaultFont.Size != 10 {
		t.Errorf("Unexpected default font %+v", j.DefaultFont)
	}
	if len(j.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(j.Sheets))
	}

	report := j.Sheets[0]
	if report.Values[1][1] != 30 {
		t.Errorf("Expected int 30, got %v (%T)", report.Values[1][1], report.Values[1][1])
	}
	if report.DefaultColumnWidth == nil || *report.DefaultColumnWidth != 12 {
		t.Errorf("Unexpected default column width %v", report.DefaultColumnWidth)
	}
	if report.Columns[1].Width != nil {
		t.Errorf("Expected no width for auto-sized column, got %v", *report.Columns[1].Width)
	}
	if report.Rows[0].Range != "1-2" || report.Rows[1].Row != 5 {
		t.Errorf("Unexpected rows %+v", report.Rows)
	}
	style := report.Styles[0].Style
	if style.Font == nil || !style.Font.Bold || style.Borders == nil || style.Borders.All.Style != 1 {
		t.Errorf("Unexpected style %+v", style)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no sheets", "default_font: {name: Arial, size: 10}"},
		{"unnamed second sheet", "sheets: [{name: A}, {values: [[x]]}]"},
		{"duplicate sheet", "sheets: [{name: A}, {name: A}]"},
		{"unnamed first clashes with Sheet1", "sheets: [{values: [[x]]}, {name: Sheet1}]"},
		{"row without target", "sheets: [{name: A, rows: [{height: 10}]}]"},
		{"style without range", "sheets: [{name: A, styles: [{style: {font: {bold: true}}}]}]"},
		{"font without name", "default_font: {size: 10}\nsheets: [{name: A}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidJob) {
				t.Errorf("Expected ErrInvalidJob, got %v", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("sheets: [unclosed"))
	if err == nil {
		t.Fatal("Expected an error")
	}
	if errors.Is(err, ErrInvalidJob) {
		t.Errorf("Expected a YAML error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte(recipe), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	j, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if j.ActiveSheet != "Report" {
		t.Errorf("Expected active sheet Report, got %q", j.ActiveSheet)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
