package excelcreator

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestInspect(t *testing.T) {
	c := New()
	defer c.Close()

	if err := c.SetDefaultFont("Arial", 10); err != nil {
		t.Fatalf("SetDefaultFont failed: %v", err)
	}
	if err := c.FillCell([][]any{{"Name", "Age"}, {"Alice", 30}}); err != nil {
		t.Fatalf("FillCell failed: %v", err)
	}
	if err := c.SetColumnWidth("A", Fixed(20)); err != nil {
		t.Fatalf("SetColumnWidth failed: %v", err)
	}
	if err := c.SetRowHeight(2, 28); err != nil {
		t.Fatalf("SetRowHeight failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "people.xlsx")
	if err := c.Writer(c.Workbook).Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	wb, err := NewReader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer wb.Close()

	data, err := wb.Inspect(filepath.Base(path), DefaultInspectOptions())
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if data.BookName != "people.xlsx" || data.ActiveSheet != "Sheet1" {
		t.Errorf("Unexpected book %q / active sheet %q", data.BookName, data.ActiveSheet)
	}
	if data.DefaultFont.Name != "Arial" || data.DefaultFont.Size != 10 {
		t.Errorf("Unexpected default font %+v", data.DefaultFont)
	}
	if !reflect.DeepEqual(data.SheetOrder, []string{"Sheet1"}) {
		t.Errorf("Unexpected sheet order %v", data.SheetOrder)
	}

	sheet := data.Sheets["Sheet1"]
	if len(sheet.Rows) != 2 || sheet.Rows[1].C["2"] != int64(30) {
		t.Errorf("Unexpected rows %+v", sheet.Rows)
	}
	if len(sheet.Columns) != 2 || sheet.Columns[0].Width != 20 {
		t.Errorf("Unexpected columns %+v", sheet.Columns)
	}
	if len(sheet.RowHeights) != 2 || sheet.RowHeights[1].Height != 28 {
		t.Errorf("Unexpected row heights %+v", sheet.RowHeights)
	}
	if !reflect.DeepEqual(sheet.TableCandidates, []string{"A1:B2"}) {
		t.Errorf("Unexpected table candidates %v", sheet.TableCandidates)
	}
}

func TestInspectOptions(t *testing.T) {
	c := New()
	defer c.Close()

	if err := c.FillCell([][]any{{"a", "b"}, {"c", "d"}}); err != nil {
		t.Fatalf("FillCell failed: %v", err)
	}

	off := false
	data, err := c.Workbook.Inspect("mem", InspectOptions{IncludeDimensions: &off, DetectTables: &off})
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	sheet := data.Sheets["Sheet1"]
	if sheet.Columns != nil || sheet.RowHeights != nil || sheet.TableCandidates != nil {
		t.Errorf("Expected dimensions and tables to be skipped, got %+v", sheet)
	}
	if len(sheet.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(sheet.Rows))
	}
}

func TestInspectionError(t *testing.T) {
	cause := errors.New("boom")
	err := NewInspectionError("Data", "cells", cause)
	if !errors.Is(err, cause) {
		t.Error("Expected InspectionError to unwrap to its cause")
	}
	if err.Error() != `inspection error in sheet "Data" (cells): boom` {
		t.Errorf("Unexpected message %q", err.Error())
	}
}
