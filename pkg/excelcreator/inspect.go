package excelcreator

import (
	"github.com/wolestech/excelcreator-go/pkg/excelcreator/models"
	"github.com/wolestech/excelcreator-go/pkg/excelcreator/parser"
)

// Inspect reads a workbook back into plain data: cell values, column
// widths, row heights, the default font and table candidates. Auto-size
// settings are not part of the file, so auto-sized columns report the
// width computed when they were written.
func (wb *Workbook) Inspect(bookName string, opts InspectOptions) (*models.WorkbookData, error) {
	f := wb.file
	fontName, fontSize, err := defaultFont(f)
	if err != nil {
		return nil, err
	}

	sheetList := f.GetSheetList()
	data := &models.WorkbookData{
		BookName:    bookName,
		ActiveSheet: f.GetSheetName(f.GetActiveSheetIndex()),
		DefaultFont: models.Font{Name: fontName, Size: fontSize},
		SheetOrder:  sheetList,
		Sheets:      make(map[string]models.SheetData, len(sheetList)),
	}

	cellOpts := parser.CellOptions{IncludeLinks: opts.IncludeLinks, Raw: opts.Raw}
	for _, sheetName := range sheetList {
		rows, err := parser.ReadRows(f, sheetName, cellOpts)
		if err != nil {
			return nil, NewInspectionError(sheetName, "cells", err)
		}
		sheet := models.SheetData{
			Rows: parser.ExtractCells(f, sheetName, rows, cellOpts),
		}

		if opts.ShouldIncludeDimensions() {
			cols, nrows := parser.UsedSize(rows)
			dims, err := parser.ExtractDimensions(f, sheetName, cols, nrows)
			if err != nil {
				return nil, NewInspectionError(sheetName, "dimensions", err)
			}
			sheet.Columns = dims.Columns
			sheet.RowHeights = dims.Rows
			sheet.DefaultColWidth = dims.DefaultColWidth
			sheet.DefaultRowHeight = dims.DefaultRowHeight
		}

		if opts.ShouldDetectTables() {
			sheet.TableCandidates = parser.DetectTables(rows, parser.DefaultTableParams())
		}

		data.Sheets[sheetName] = sheet
	}

	return data, nil
}
