// Package excelcreator is a small facade over excelize for building XLSX
// workbooks: create or load a workbook, fill it, style ranges, size rows
// and columns, and write it back out.
//
// The facade adds no validation. Every error comes from excelize and is
// returned as is.
package excelcreator

// Creator owns one workbook and forwards its setters to the workbook's
// active sheet, resolved at each call. The handle fields name the values
// StyleDescriptor accepts.
type Creator struct {
	Workbook *Workbook

	Alignment AlignmentHandle
	Border    BorderHandle
	Color     ColorHandle
	Fill      FillHandle
	Font      FontHandle
}

// New returns a Creator around a new, empty workbook.
func New() *Creator {
	return Wrap(NewWorkbook())
}

// Wrap returns a Creator around an existing workbook, e.g. one returned
// by Reader.Load.
func Wrap(wb *Workbook) *Creator {
	return &Creator{
		Workbook:  wb,
		Alignment: newAlignmentHandle(),
		Border:    newBorderHandle(),
		Color:     newColorHandle(),
		Fill:      newFillHandle(),
		Font:      newFontHandle(),
	}
}

// Writer returns an XLSX writer for wb.
func (c *Creator) Writer(wb *Workbook) *Writer {
	return NewWriter(wb)
}

// Reader returns an XLSX reader. It is not tied to c's workbook.
func (c *Creator) Reader() *Reader {
	return NewReader()
}

// Close releases the owned workbook.
func (c *Creator) Close() error {
	return c.Workbook.Close()
}

// ActiveSheet returns a cursor on the currently active sheet.
func (c *Creator) ActiveSheet() *Sheet {
	return c.Workbook.ActiveSheet()
}

// Sheet returns a cursor on the named sheet.
func (c *Creator) Sheet(name string) *Sheet {
	return c.Workbook.Sheet(name)
}

// ApplyStyle styles rng on the active sheet. See Sheet.ApplyStyle.
func (c *Creator) ApplyStyle(desc StyleDescriptor, rng string) error {
	return c.ActiveSheet().ApplyStyle(desc, rng)
}

// FillCell writes values from A1 on the active sheet.
func (c *Creator) FillCell(values [][]any) error {
	return c.ActiveSheet().FillCell(values)
}

// SetColumnWidth sets a column width on the active sheet.
func (c *Creator) SetColumnWidth(col string, w ColumnWidth) error {
	return c.ActiveSheet().SetColumnWidth(col, w)
}

// SetDefaultColumnWidth sets the active sheet's default column width.
func (c *Creator) SetDefaultColumnWidth(width float64) error {
	return c.ActiveSheet().SetDefaultColumnWidth(width)
}

// SetMultipleColumnsWidth sets the same width on several columns of the active sheet.
func (c *Creator) SetMultipleColumnsWidth(cols []string, w ColumnWidth) error {
	return c.ActiveSheet().SetMultipleColumnsWidth(cols, w)
}

// SetRowHeight sets a row height on the active sheet.
func (c *Creator) SetRowHeight(row int, height float64) error {
	return c.ActiveSheet().SetRowHeight(row, height)
}

// SetDefaultRowHeight sets the active sheet's default row height.
func (c *Creator) SetDefaultRowHeight(height float64) error {
	return c.ActiveSheet().SetDefaultRowHeight(height)
}

// SetMultipleRowsHeight sets the height of a "start-end" row range on the
// active sheet. See Sheet.SetMultipleRowsHeight.
func (c *Creator) SetMultipleRowsHeight(expr string, height float64) error {
	return c.ActiveSheet().SetMultipleRowsHeight(expr, height)
}

// SetDefaultFont sets the workbook default font family and size.
func (c *Creator) SetDefaultFont(name string, size float64) error {
	return c.Workbook.SetDefaultFont(name, size)
}
