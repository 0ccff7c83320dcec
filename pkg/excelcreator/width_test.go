package excelcreator

import (
	"math"
	"testing"
)

func TestColumnWidthString(t *testing.T) {
	if AutoSize.String() != "auto" {
		t.Errorf("Expected auto, got %s", AutoSize)
	}
	if Fixed(12.5).String() != "12.5" {
		t.Errorf("Expected 12.5, got %s", Fixed(12.5))
	}
}

func TestAutoSizeResolvedOnWrite(t *testing.T) {
	c := New()
	defer c.Close()

	if err := c.FillCell([][]any{
		{"short", "", "日本語"},
		{"a much longer value", "", "x"},
	}); err != nil {
		t.Fatalf("FillCell failed: %v", err)
	}
	if err := c.SetMultipleColumnsWidth([]string{"A", "B", "C"}, AutoSize); err != nil {
		t.Fatalf("SetMultipleColumnsWidth failed: %v", err)
	}

	wb := roundTrip(t, c)
	f := wb.File()
	untouched, _ := f.GetColWidth("Sheet1", "Z")

	tests := []struct {
		col      string
		expected float64
	}{
		{"A", 19 + autoSizePadding},
		{"B", untouched},
		{"C", 6 + autoSizePadding},
	}
	for _, tt := range tests {
		w, err := f.GetColWidth("Sheet1", tt.col)
		if err != nil {
			t.Fatalf("GetColWidth failed: %v", err)
		}
		if math.Abs(w-tt.expected) > 1e-9 {
			t.Errorf("column %s: width %v, expected %v", tt.col, w, tt.expected)
		}
	}

	if w, _ := c.ActiveSheet().ColumnWidth("A"); !w.IsAuto() {
		t.Errorf("Expected A to stay auto-sized after writing, got %v", w)
	}
}

func TestAutoSizeScalesWithDefaultFont(t *testing.T) {
	c := New()
	defer c.Close()

	if err := c.SetDefaultFont("Arial", 22); err != nil {
		t.Fatalf("SetDefaultFont failed: %v", err)
	}
	if err := c.FillCell([][]any{{"abcd"}}); err != nil {
		t.Fatalf("FillCell failed: %v", err)
	}
	if err := c.SetColumnWidth("A", AutoSize); err != nil {
		t.Fatalf("SetColumnWidth failed: %v", err)
	}

	w, _ := roundTrip(t, c).File().GetColWidth("Sheet1", "A")
	if expected := 8 + autoSizePadding; math.Abs(w-expected) > 1e-9 {
		t.Errorf("Expected width %v, got %v", expected, w)
	}
}
