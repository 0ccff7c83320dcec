package parser

import (
	"github.com/wolestech/excelcreator-go/pkg/excelcreator/models"
	"github.com/xuri/excelize/v2"
)

// Dimensions holds the column widths and row heights of a sheet's used area.
type Dimensions struct {
	Columns          []models.ColumnDim
	Rows             []models.RowDim
	DefaultColWidth  *float64
	DefaultRowHeight *float64
}

// ExtractDimensions reads the width of columns 1..cols and the height of
// rows 1..rows, along with the sheet defaults.
func ExtractDimensions(f *excelize.File, sheetName string, cols, rows int) (Dimensions, error) {
	var d Dimensions

	for c := 1; c <= cols; c++ {
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return d, err
		}
		w, err := f.GetColWidth(sheetName, name)
		if err != nil {
			return d, err
		}
		d.Columns = append(d.Columns, models.ColumnDim{
			Col:    name,
			Width:  w,
			Pixels: ColumnWidthToPixels(w),
		})
	}

	for r := 1; r <= rows; r++ {
		h, err := f.GetRowHeight(sheetName, r)
		if err != nil {
			return d, err
		}
		d.Rows = append(d.Rows, models.RowDim{R: r, Height: h})
	}

	props, err := f.GetSheetProps(sheetName)
	if err != nil {
		return d, err
	}
	d.DefaultColWidth = positive(props.DefaultColWidth)
	d.DefaultRowHeight = positive(props.DefaultRowHeight)
	return d, nil
}

// positive drops unset (nil or zero) sheet format values.
func positive(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}
