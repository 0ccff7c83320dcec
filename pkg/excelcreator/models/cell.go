// Package models defines the plain data a workbook is inspected into.
package models

// CellRow is one non-empty row of a sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps the 1-based column index, as a string, to the cell value:
	// int64, float64 or string.
	C map[string]interface{} `json:"c"`
	// Links maps column index to hyperlink target, when requested.
	Links map[string]string `json:"links,omitempty"`
}
