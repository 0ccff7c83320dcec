package excelcreator

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// Writer serializes a workbook to XLSX. Auto-sized column widths are
// computed at write time.
type Writer struct {
	wb *Workbook
	// Options are passed to excelize, e.g. a password.
	Options excelize.Options
}

// NewWriter returns a writer for wb. Nothing about wb is checked here;
// problems surface from Save or Write.
func NewWriter(wb *Workbook) *Writer {
	return &Writer{wb: wb}
}

// Save writes the workbook to path.
func (w *Writer) Save(path string) error {
	if err := w.wb.resolveAutoSize(); err != nil {
		return err
	}
	return w.wb.file.SaveAs(path, w.Options)
}

// Write writes the workbook to dst.
func (w *Writer) Write(dst io.Writer) error {
	if err := w.wb.resolveAutoSize(); err != nil {
		return err
	}
	return w.wb.file.Write(dst, w.Options)
}

// Reader loads XLSX files into new workbooks.
type Reader struct {
	// Options are passed to excelize, e.g. a password.
	Options excelize.Options
}

// NewReader returns a reader with default options.
func NewReader() *Reader {
	return &Reader{}
}

// Load opens the XLSX file at path.
func (r *Reader) Load(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path, r.Options)
	if err != nil {
		return nil, err
	}
	return newWorkbook(f), nil
}

// Read reads an XLSX document from src.
func (r *Reader) Read(src io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(src, r.Options)
	if err != nil {
		return nil, err
	}
	return newWorkbook(f), nil
}
