package job

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/wolestech/excelcreator-go/pkg/excelcreator"
)

func TestRun(t *testing.T) {
	j, err := Parse([]byte(recipe))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	c := excelcreator.New()
	defer c.Close()
	if err := Run(context.Background(), j, c); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := c.Workbook.SheetNames(); !reflect.DeepEqual(got, []string{"Report", "Notes"}) {
		t.Errorf("Expected [Report Notes], got %v", got)
	}
	if got := c.ActiveSheet().Name(); got != "Report" {
		t.Errorf("Expected Report active, got %s", got)
	}

	name, size, err := c.Workbook.DefaultFont()
	if err != nil || name != "Arial" || size != 10 {
		t.Errorf("Unexpected default font %s %v (%v)", name, size, err)
	}

	f := c.Workbook.File()
	rows, _ := f.GetRows("Report")
	if !reflect.DeepEqual(rows, [][]string{{"Name", "Age"}, {"Alice", "30"}}) {
		t.Errorf("Unexpected Report rows %v", rows)
	}
	if v, _ := f.GetCellValue("Notes", "A1"); v != "hello" {
		t.Errorf("Expected hello on Notes, got %q", v)
	}

	report := c.Sheet("Report")
	if w, _ := report.ColumnWidth("A"); w.IsAuto() || w.Width() != 20 {
		t.Errorf("Expected A fixed at 20, got %v", w)
	}
	if w, _ := report.ColumnWidth("B"); !w.IsAuto() {
		t.Errorf("Expected B auto-sized, got %v", w)
	}
	for _, row := range []int{1, 2} {
		if h, _ := report.RowHeight(row); h != 24 {
			t.Errorf("row %d: expected height 24, got %v", row, h)
		}
	}
	if h, _ := report.RowHeight(5); h != 40 {
		t.Errorf("row 5: expected height 40, got %v", h)
	}

	id, _ := f.GetCellStyle("Report", "B1")
	style, err := f.GetStyle(id)
	if err != nil || style.Font == nil || !style.Font.Bold {
		t.Errorf("Expected B1 bold, got %+v (%v)", style, err)
	}
	if id2, _ := f.GetCellStyle("Report", "A2"); id2 != 0 {
		t.Errorf("Expected A2 unstyled, got %d", id2)
	}
}

func TestRunStepError(t *testing.T) {
	j, err := Parse([]byte(`sheets: [{name: Data, styles: [{range: "1A:B2", style: {font: {bold: true}}}]}]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	c := excelcreator.New()
	defer c.Close()

	err = Run(context.Background(), j, c)
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("Expected StepError, got %v", err)
	}
	if stepErr.SheetName != "Data" || stepErr.Step != "styles" {
		t.Errorf("Unexpected step error %+v", stepErr)
	}
}

func TestRunUnnamedFirstSheet(t *testing.T) {
	j, err := Parse([]byte(`sheets: [{values: [[x]]}]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	c := excelcreator.New()
	defer c.Close()
	if err := Run(context.Background(), j, c); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if v, _ := c.Workbook.File().GetCellValue("Sheet1", "A1"); v != "x" {
		t.Errorf("Expected x on Sheet1, got %q", v)
	}
}

func TestRunCanceled(t *testing.T) {
	j, err := Parse([]byte(recipe))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := excelcreator.New()
	defer c.Close()
	if err := Run(ctx, j, c); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
