package excelcreator

// AlignmentHandle names the horizontal and vertical alignment values.
type AlignmentHandle struct {
	General          string
	Left             string
	Center           string
	Right            string
	Fill             string
	Justify          string
	CenterContinuous string
	Distributed      string

	Top             string
	VerticalCenter  string
	Bottom          string
	VerticalJustify string
}

// BorderHandle names the border line styles.
type BorderHandle struct {
	None             int
	Thin             int
	Medium           int
	Dashed           int
	Dotted           int
	Thick            int
	Double           int
	Hair             int
	MediumDashed     int
	DashDot          int
	MediumDashDot    int
	DashDotDot       int
	MediumDashDotDot int
	SlantDashDot     int
}

// FillHandle names the fill types and the common pattern indexes.
type FillHandle struct {
	Pattern  string
	Gradient string

	None       int
	Solid      int
	MediumGray int
	DarkGray   int
	LightGray  int
	Gray125    int
	Gray0625   int
}

// FontHandle names the underline kinds and the engine's default font.
type FontHandle struct {
	UnderlineSingle           string
	UnderlineDouble           string
	UnderlineSingleAccounting string
	UnderlineDoubleAccounting string

	DefaultName string
	DefaultSize float64
}

// ColorHandle names common ARGB-less hex colors.
type ColorHandle struct {
	Black      string
	White      string
	Red        string
	DarkRed    string
	Blue       string
	DarkBlue   string
	Green      string
	DarkGreen  string
	Yellow     string
	DarkYellow string
}

func newAlignmentHandle() AlignmentHandle {
	return AlignmentHandle{
		General:          "general",
		Left:             "left",
		Center:           "center",
		Right:            "right",
		Fill:             "fill",
		Justify:          "justify",
		CenterContinuous: "centerContinuous",
		Distributed:      "distributed",

		Top:             "top",
		VerticalCenter:  "center",
		Bottom:          "bottom",
		VerticalJustify: "justify",
	}
}

// Border styles follow the excelize border index table.
func newBorderHandle() BorderHandle {
	return BorderHandle{
		None:             0,
		Thin:             1,
		Medium:           2,
		Dashed:           3,
		Dotted:           4,
		Thick:            5,
		Double:           6,
		Hair:             7,
		MediumDashed:     8,
		DashDot:          9,
		MediumDashDot:    10,
		DashDotDot:       11,
		MediumDashDotDot: 12,
		SlantDashDot:     13,
	}
}

func newFillHandle() FillHandle {
	return FillHandle{
		Pattern:  "pattern",
		Gradient: "gradient",

		None:       0,
		Solid:      1,
		MediumGray: 2,
		DarkGray:   3,
		LightGray:  4,
		Gray125:    17,
		Gray0625:   18,
	}
}

func newFontHandle() FontHandle {
	return FontHandle{
		UnderlineSingle:           "single",
		UnderlineDouble:           "double",
		UnderlineSingleAccounting: "singleAccounting",
		UnderlineDoubleAccounting: "doubleAccounting",

		DefaultName: "Calibri",
		DefaultSize: 11,
	}
}

func newColorHandle() ColorHandle {
	return ColorHandle{
		Black:      "000000",
		White:      "FFFFFF",
		Red:        "FF0000",
		DarkRed:    "800000",
		Blue:       "0000FF",
		DarkBlue:   "000080",
		Green:      "00FF00",
		DarkGreen:  "008000",
		Yellow:     "FFFF00",
		DarkYellow: "808000",
	}
}
