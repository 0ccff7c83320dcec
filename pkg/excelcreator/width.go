package excelcreator

import (
	"math"
	"strconv"

	"github.com/wolestech/excelcreator-go/pkg/excelcreator/parser"
	"github.com/xuri/excelize/v2"
)

const (
	// baseFontSize is the point size column width units are measured in.
	baseFontSize = 11
	// autoSizePadding is added to the measured text width of auto-sized columns.
	autoSizePadding = 1.7
	// engineColWidth is the width excelize reports for a column without an
	// override on a sheet without a default column width.
	engineColWidth = 9.140625
)

// ColumnWidth is either a fixed width in characters or AutoSize.
type ColumnWidth struct {
	width float64
	auto  bool
}

// AutoSize sizes a column from its content when the workbook is written.
var AutoSize = ColumnWidth{auto: true}

// Fixed returns a fixed column width in characters.
func Fixed(width float64) ColumnWidth {
	return ColumnWidth{width: width}
}

// IsAuto reports whether w is AutoSize.
func (w ColumnWidth) IsAuto() bool { return w.auto }

// Width returns the fixed width, or zero for AutoSize.
func (w ColumnWidth) Width() float64 { return w.width }

func (w ColumnWidth) String() string {
	if w.auto {
		return "auto"
	}
	return strconv.FormatFloat(w.width, 'f', -1, 64)
}

// resolveAutoSize writes a computed width for every auto-sized column.
// Columns without content are put back on the sheet default. Sheets that
// no longer exist are forgotten.
func (wb *Workbook) resolveAutoSize() error {
	if len(wb.autoSize) == 0 {
		return nil
	}
	_, size, err := wb.DefaultFont()
	if err != nil {
		return err
	}
	scale := 1.0
	if size > 0 {
		scale = size / baseFontSize
	}

	for sheet, cols := range wb.autoSize {
		if len(cols) == 0 {
			continue
		}
		idx, err := wb.file.GetSheetIndex(sheet)
		if err != nil {
			return err
		}
		if idx == -1 {
			delete(wb.autoSize, sheet)
			continue
		}
		rows, err := wb.file.GetRows(sheet)
		if err != nil {
			return err
		}
		for col := range cols {
			idx, err := excelize.ColumnNameToNumber(col)
			if err != nil {
				return err
			}
			widest := 0
			for _, row := range rows {
				if idx <= len(row) {
					widest = max(widest, parser.TextWidth(row[idx-1]))
				}
			}
			if widest == 0 {
				if err := wb.resetColumnWidth(sheet, col); err != nil {
					return err
				}
				continue
			}
			w := math.Min(float64(widest)*scale+autoSizePadding, excelize.MaxColumnWidth)
			if err := wb.file.SetColWidth(sheet, col, col, w); err != nil {
				return err
			}
		}
	}
	return nil
}

// resetColumnWidth puts col back on the sheet's default width, replacing
// any fixed width stored for it.
func (wb *Workbook) resetColumnWidth(sheet, col string) error {
	props, err := wb.file.GetSheetProps(sheet)
	if err != nil {
		return err
	}
	def := engineColWidth
	if props.DefaultColWidth != nil && *props.DefaultColWidth > 0 {
		def = *props.DefaultColWidth
	}
	cur, err := wb.file.GetColWidth(sheet, col)
	if err != nil {
		return err
	}
	if cur == def {
		return nil
	}
	return wb.file.SetColWidth(sheet, col, col, def)
}
