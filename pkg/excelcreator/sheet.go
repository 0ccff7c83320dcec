package excelcreator

import (
	"strconv"
	"strings"

	"github.com/wolestech/excelcreator-go/pkg/excelcreator/parser"
	"github.com/xuri/excelize/v2"
)

// Sheet addresses one worksheet of a workbook by name. It holds no state
// of its own, so it stays valid across calls as long as the sheet exists.
//
// Sheet performs no validation: bad ranges, columns, rows and sheet
// names are reported by excelize and returned unchanged.
type Sheet struct {
	wb   *Workbook
	name string
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// ApplyStyle builds a style from desc and applies it to every cell in
// rng, e.g. "A1" or "B2:D10". Applying the same style twice has no
// further effect.
func (s *Sheet) ApplyStyle(desc StyleDescriptor, rng string) error {
	area, err := parser.ParseRange(rng)
	if err != nil {
		return err
	}
	topLeft, bottomRight, err := parser.Corners(area)
	if err != nil {
		return err
	}
	styleID, err := s.wb.file.NewStyle(desc.Style())
	if err != nil {
		return err
	}
	return s.wb.file.SetCellStyle(s.name, topLeft, bottomRight, styleID)
}

// FillCell writes values row by row starting at A1, overwriting
// whatever is in that footprint.
func (s *Sheet) FillCell(values [][]any) error {
	for i, row := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := s.wb.file.SetSheetRow(s.name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// SetColumnWidth gives col a fixed width or marks it AutoSize. The two
// modes replace each other.
func (s *Sheet) SetColumnWidth(col string, w ColumnWidth) error {
	col, err := canonicalColumn(col)
	if err != nil {
		return err
	}
	if w.auto {
		if err := s.wb.resetColumnWidth(s.name, col); err != nil {
			return err
		}
		s.wb.setAutoSize(s.name, col, true)
		return nil
	}
	if err := s.wb.file.SetColWidth(s.name, col, col, w.width); err != nil {
		return err
	}
	s.wb.setAutoSize(s.name, col, false)
	return nil
}

// SetMultipleColumnsWidth calls SetColumnWidth for each column in order.
func (s *Sheet) SetMultipleColumnsWidth(cols []string, w ColumnWidth) error {
	for _, col := range cols {
		if err := s.SetColumnWidth(col, w); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaultColumnWidth sets the width of columns without their own width.
func (s *Sheet) SetDefaultColumnWidth(width float64) error {
	return s.wb.file.SetSheetProps(s.name, &excelize.SheetPropsOptions{
		DefaultColWidth: &width,
	})
}

// ColumnWidth reports the mode and width of col. Auto-sized columns
// report AutoSize even after a write has stored a computed width.
func (s *Sheet) ColumnWidth(col string) (ColumnWidth, error) {
	col, err := canonicalColumn(col)
	if err != nil {
		return ColumnWidth{}, err
	}
	if s.wb.isAutoSize(s.name, col) {
		return AutoSize, nil
	}
	w, err := s.wb.file.GetColWidth(s.name, col)
	if err != nil {
		return ColumnWidth{}, err
	}
	return Fixed(w), nil
}

// SetRowHeight sets the height of a row in points.
func (s *Sheet) SetRowHeight(row int, height float64) error {
	return s.wb.file.SetRowHeight(s.name, row, height)
}

// SetDefaultRowHeight sets the height of rows without their own height.
func (s *Sheet) SetDefaultRowHeight(height float64) error {
	custom := true
	return s.wb.file.SetSheetProps(s.name, &excelize.SheetPropsOptions{
		DefaultRowHeight: &height,
		CustomHeight:     &custom,
	})
}

// SetMultipleRowsHeight sets height on every row of the inclusive range
// expr, written as "<start>-<end>". A start after the end does nothing.
// Parts after the second hyphen are ignored. A bound that is not an
// integer is passed to excelize as row 0, so the error is the same one
// SetRowHeight gives for an invalid row. An expression without a hyphen
// names no rows.
func (s *Sheet) SetMultipleRowsHeight(expr string, height float64) error {
	bounds := strings.Split(expr, "-")
	if len(bounds) < 2 {
		return nil
	}
	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return s.SetRowHeight(0, height)
	}
	end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return s.SetRowHeight(0, height)
	}
	for row := start; row <= end; row++ {
		if err := s.SetRowHeight(row, height); err != nil {
			return err
		}
	}
	return nil
}

// RowHeight returns the height of a row in points.
func (s *Sheet) RowHeight(row int) (float64, error) {
	return s.wb.file.GetRowHeight(s.name, row)
}

// canonicalColumn upper-cases a column name, letting excelize reject
// anything that is not one.
func canonicalColumn(col string) (string, error) {
	n, err := excelize.ColumnNameToNumber(col)
	if err != nil {
		return "", err
	}
	return excelize.ColumnNumberToName(n)
}
