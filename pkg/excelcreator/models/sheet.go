package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// Rows contains extracted rows with cell values and links.
	Rows []CellRow `json:"rows,omitempty"`
	// Columns contains the width of every used column.
	Columns []ColumnDim `json:"columns,omitempty"`
	// RowHeights contains the height of every used row.
	RowHeights []RowDim `json:"row_heights,omitempty"`
	// DefaultColWidth is the sheet-level default column width, if set.
	DefaultColWidth *float64 `json:"default_col_width,omitempty"`
	// DefaultRowHeight is the sheet-level default row height, if set.
	DefaultRowHeight *float64 `json:"default_row_height,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
}
