package excelcreator

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// StyleDescriptor describes a cell style by aspect. Unset aspects keep
// the engine defaults. Values use the constants on the Creator handles,
// e.g. c.Border.Thin or c.Alignment.Center.
type StyleDescriptor struct {
	Font         *FontStyle      `yaml:"font,omitempty" json:"font,omitempty"`
	Fill         *FillStyle      `yaml:"fill,omitempty" json:"fill,omitempty"`
	Borders      *BordersStyle   `yaml:"borders,omitempty" json:"borders,omitempty"`
	Alignment    *AlignmentStyle `yaml:"alignment,omitempty" json:"alignment,omitempty"`
	NumberFormat *NumberFormat   `yaml:"number_format,omitempty" json:"number_format,omitempty"`
	Protection   *Protection     `yaml:"protection,omitempty" json:"protection,omitempty"`
}

// FontStyle is the font aspect of a style.
type FontStyle struct {
	Name          string  `yaml:"name,omitempty" json:"name,omitempty"`
	Size          float64 `yaml:"size,omitempty" json:"size,omitempty"`
	Bold          bool    `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic        bool    `yaml:"italic,omitempty" json:"italic,omitempty"`
	Strikethrough bool    `yaml:"strikethrough,omitempty" json:"strikethrough,omitempty"`
	Underline     string  `yaml:"underline,omitempty" json:"underline,omitempty"`
	Color         string  `yaml:"color,omitempty" json:"color,omitempty"`
}

// FillStyle is the background aspect of a style. Type defaults to a
// solid pattern when only colors are given.
type FillStyle struct {
	Type    string   `yaml:"type,omitempty" json:"type,omitempty"`
	Pattern int      `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Color   []string `yaml:"color,omitempty" json:"color,omitempty"`
	Shading int      `yaml:"shading,omitempty" json:"shading,omitempty"`
}

// BorderSide is one border line.
type BorderSide struct {
	Style int    `yaml:"style" json:"style"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// BordersStyle is the border aspect of a style. All applies to the four
// outer sides; an explicit side overrides it.
type BordersStyle struct {
	All          *BorderSide `yaml:"all,omitempty" json:"all,omitempty"`
	Left         *BorderSide `yaml:"left,omitempty" json:"left,omitempty"`
	Right        *BorderSide `yaml:"right,omitempty" json:"right,omitempty"`
	Top          *BorderSide `yaml:"top,omitempty" json:"top,omitempty"`
	Bottom       *BorderSide `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	DiagonalUp   *BorderSide `yaml:"diagonal_up,omitempty" json:"diagonal_up,omitempty"`
	DiagonalDown *BorderSide `yaml:"diagonal_down,omitempty" json:"diagonal_down,omitempty"`
}

// AlignmentStyle is the alignment aspect of a style.
type AlignmentStyle struct {
	Horizontal   string `yaml:"horizontal,omitempty" json:"horizontal,omitempty"`
	Vertical     string `yaml:"vertical,omitempty" json:"vertical,omitempty"`
	WrapText     bool   `yaml:"wrap_text,omitempty" json:"wrap_text,omitempty"`
	ShrinkToFit  bool   `yaml:"shrink_to_fit,omitempty" json:"shrink_to_fit,omitempty"`
	Indent       int    `yaml:"indent,omitempty" json:"indent,omitempty"`
	TextRotation int    `yaml:"text_rotation,omitempty" json:"text_rotation,omitempty"`
}

// NumberFormat selects a built-in format by index or a custom format code.
// Code wins when both are set.
type NumberFormat struct {
	Builtin int    `yaml:"builtin,omitempty" json:"builtin,omitempty"`
	Code    string `yaml:"code,omitempty" json:"code,omitempty"`
}

// Protection is the cell protection aspect. Cells are locked unless
// Locked is set to false.
type Protection struct {
	Locked *bool `yaml:"locked,omitempty" json:"locked,omitempty"`
	Hidden bool  `yaml:"hidden,omitempty" json:"hidden,omitempty"`
}

// Style converts the descriptor to an excelize style.
func (d StyleDescriptor) Style() *excelize.Style {
	style := &excelize.Style{}

	if f := d.Font; f != nil {
		style.Font = &excelize.Font{
			Family:    f.Name,
			Size:      f.Size,
			Bold:      f.Bold,
			Italic:    f.Italic,
			Strike:    f.Strikethrough,
			Underline: f.Underline,
			Color:     hexColor(f.Color),
		}
	}

	if f := d.Fill; f != nil {
		fill := excelize.Fill{
			Type:    f.Type,
			Pattern: f.Pattern,
			Shading: f.Shading,
		}
		for _, c := range f.Color {
			fill.Color = append(fill.Color, hexColor(c))
		}
		if fill.Type == "" && len(fill.Color) > 0 {
			fill.Type = "pattern"
			if fill.Pattern == 0 {
				fill.Pattern = 1
			}
		}
		style.Fill = fill
	}

	if b := d.Borders; b != nil {
		style.Border = b.borders()
	}

	if a := d.Alignment; a != nil {
		style.Alignment = &excelize.Alignment{
			Horizontal:   a.Horizontal,
			Vertical:     a.Vertical,
			WrapText:     a.WrapText,
			ShrinkToFit:  a.ShrinkToFit,
			Indent:       a.Indent,
			TextRotation: a.TextRotation,
		}
	}

	if n := d.NumberFormat; n != nil {
		if n.Code != "" {
			code := n.Code
			style.CustomNumFmt = &code
		} else {
			style.NumFmt = n.Builtin
		}
	}

	if p := d.Protection; p != nil {
		locked := true
		if p.Locked != nil {
			locked = *p.Locked
		}
		style.Protection = &excelize.Protection{Locked: locked, Hidden: p.Hidden}
	}

	return style
}

func (b *BordersStyle) borders() []excelize.Border {
	sides := []struct {
		kind string
		side *BorderSide
	}{
		{"left", b.Left},
		{"right", b.Right},
		{"top", b.Top},
		{"bottom", b.Bottom},
		{"diagonalUp", b.DiagonalUp},
		{"diagonalDown", b.DiagonalDown},
	}

	var out []excelize.Border
	for i, s := range sides {
		side := s.side
		// All covers the four outer sides only.
		if side == nil && i < 4 {
			side = b.All
		}
		if side == nil {
			continue
		}
		out = append(out, excelize.Border{
			Type:  s.kind,
			Style: side.Style,
			Color: hexColor(side.Color),
		})
	}
	return out
}

func hexColor(c string) string {
	return strings.ToUpper(strings.TrimPrefix(c, "#"))
}
