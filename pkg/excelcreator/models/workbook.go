package models

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// ActiveSheet is the name of the sheet selected when the file was saved.
	ActiveSheet string `json:"active_sheet"`
	// DefaultFont is the workbook default font.
	DefaultFont Font `json:"default_font"`
	// SheetOrder lists sheet names in workbook order.
	SheetOrder []string `json:"sheet_order"`
	// Sheets maps sheet name to SheetData.
	Sheets map[string]SheetData `json:"sheets"`
}

// Font is a font family and point size.
type Font struct {
	Name string  `json:"name"`
	Size float64 `json:"size,omitempty"`
}
