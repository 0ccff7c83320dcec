package parser

import (
	"strconv"

	"github.com/wolestech/excelcreator-go/pkg/excelcreator/models"
	"github.com/xuri/excelize/v2"
)

// CellOptions controls how cell values are read.
type CellOptions struct {
	// IncludeLinks adds cell hyperlinks to each row.
	IncludeLinks bool
	// Raw skips number formatting and reads the stored values.
	Raw bool
}

// ReadRows returns the sheet's rows as strings, honouring opts.Raw.
func ReadRows(f *excelize.File, sheetName string, opts CellOptions) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: opts.Raw})
}

// ExtractCells converts rows read by ReadRows into CellRows, skipping
// empty rows. Numeric strings become int64 or float64.
func ExtractCells(f *excelize.File, sheetName string, rows [][]string, opts CellOptions) []models.CellRow {
	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1
		cellMap := make(map[string]interface{})
		linkMap := make(map[string]string)

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			colStr := strconv.Itoa(colIdx + 1)
			cellMap[colStr] = parseValue(cellValue)

			if opts.IncludeLinks {
				cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
				hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
				if err == nil && hasLink && target != "" {
					linkMap[colStr] = target
				}
			}
		}

		if len(cellMap) == 0 {
			continue
		}
		cellRow := models.CellRow{R: rowNum, C: cellMap}
		if len(linkMap) > 0 {
			cellRow.Links = linkMap
		}
		result = append(result, cellRow)
	}

	return result
}

// parseValue returns int64 for integers, float64 for decimals, or s unchanged.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
