package models

// ColumnDim is the width of one column.
type ColumnDim struct {
	// Col is the column name (e.g. "A").
	Col string `json:"col"`
	// Width is the width in characters as stored in the file.
	Width float64 `json:"width"`
	// Pixels is Width converted to pixels for the default font.
	Pixels int `json:"pixels"`
}

// RowDim is the height of one row.
type RowDim struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Height is the height in points.
	Height float64 `json:"height"`
}

// Area represents cell coordinate bounds of a range.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}
