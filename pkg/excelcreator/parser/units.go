// Package parser reads workbook content back into inspection models and
// provides the range and text measurement helpers the facade relies on.
package parser

import (
	"math"
	"strings"

	"golang.org/x/text/width"
)

// MaxDigitWidth is the pixel width of the widest digit in the default
// 11pt Calibri font, which is what Excel's column width unit is based on.
const MaxDigitWidth = 7

// ColumnWidthToPixels converts a stored column width to pixels. Stored
// widths already include the cell padding.
func ColumnWidthToPixels(w float64) int {
	if w <= 0 {
		return 0
	}
	return int(math.Trunc((256*w + math.Trunc(128/float64(MaxDigitWidth))) / 256 * MaxDigitWidth))
}

// TextWidth returns the display width of s in character cells. Wide and
// fullwidth East Asian runes take two cells. For multi-line text the
// widest line wins.
func TextWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		n := 0
		for _, r := range line {
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth:
				n += 2
			default:
				n++
			}
		}
		if n > widest {
			widest = n
		}
	}
	return widest
}
