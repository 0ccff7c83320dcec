package parser

import (
	"strings"

	"github.com/wolestech/excelcreator-go/pkg/excelcreator/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a cell range such as "A1:C5", "$A$1:$C$5" or a single
// cell "B2" into coordinates. Errors come straight from excelize.
func ParseRange(ref string) (models.Area, error) {
	ref = strings.ReplaceAll(ref, "$", "")
	first, last, ok := strings.Cut(ref, ":")
	if !ok {
		last = first
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(first)
	if err != nil {
		return models.Area{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return models.Area{}, err
	}

	return models.Area{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}

// Corners returns the top-left and bottom-right cell names of an area.
func Corners(a models.Area) (string, string, error) {
	topLeft, err := excelize.CoordinatesToCellName(min(a.C1, a.C2), min(a.R1, a.R2))
	if err != nil {
		return "", "", err
	}
	bottomRight, err := excelize.CoordinatesToCellName(max(a.C1, a.C2), max(a.R1, a.R2))
	if err != nil {
		return "", "", err
	}
	return topLeft, bottomRight, nil
}
