// Package job builds workbooks from YAML recipes by playing them through
// an excelcreator.Creator.
package job

import (
	"errors"
	"fmt"
	"os"

	"github.com/wolestech/excelcreator-go/pkg/excelcreator"
	"gopkg.in/yaml.v3"
)

// ErrInvalidJob indicates a recipe that cannot be run.
var ErrInvalidJob = errors.New("invalid job")

// Job is a workbook recipe.
type Job struct {
	// DefaultFont sets the workbook default font.
	DefaultFont *Font `yaml:"default_font,omitempty"`
	// ActiveSheet is selected after all sheets are built.
	ActiveSheet string `yaml:"active_sheet,omitempty"`
	// Sheets are built in order. The first one takes over the workbook's
	// initial sheet.
	Sheets []Sheet `yaml:"sheets"`
}

// Font is a font family and point size.
type Font struct {
	Name string  `yaml:"name"`
	Size float64 `yaml:"size"`
}

// Sheet describes one worksheet.
type Sheet struct {
	Name               string      `yaml:"name,omitempty"`
	Values             [][]any     `yaml:"values,omitempty"`
	DefaultColumnWidth *float64    `yaml:"default_column_width,omitempty"`
	DefaultRowHeight   *float64    `yaml:"default_row_height,omitempty"`
	Columns            []Columns   `yaml:"columns,omitempty"`
	Rows               []Rows      `yaml:"rows,omitempty"`
	Styles             []StyleRule `yaml:"styles,omitempty"`
}

// Columns sets the width of a group of columns. A missing width means
// auto-size.
type Columns struct {
	Names []string `yaml:"names"`
	Width *float64 `yaml:"width,omitempty"`
}

// Rows sets the height of a single row or of an inclusive "start-end"
// range. Range wins when both are given.
type Rows struct {
	Row    int     `yaml:"row,omitempty"`
	Range  string  `yaml:"range,omitempty"`
	Height float64 `yaml:"height"`
}

// StyleRule applies a style to a cell range.
type StyleRule struct {
	Range string                       `yaml:"range"`
	Style excelcreator.StyleDescriptor `yaml:"style"`
}

// Load reads and parses a recipe file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a YAML recipe.
func Parse(data []byte) (*Job, error) {
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing job: %w", err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

const defaultSheetName = "Sheet1"

// Validate checks the recipe's structure. Cell ranges, column names and
// sizes are left to the spreadsheet engine.
func (j *Job) Validate() error {
	if len(j.Sheets) == 0 {
		return fmt.Errorf("%w: no sheets", ErrInvalidJob)
	}
	seen := make(map[string]bool)
	for i, s := range j.Sheets {
		if s.Name == "" && i > 0 {
			return fmt.Errorf("%w: sheet %d has no name", ErrInvalidJob, i+1)
		}
		// An unnamed first sheet keeps the new workbook's default name.
		key := s.Name
		if key == "" {
			key = defaultSheetName
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate sheet %q", ErrInvalidJob, key)
		}
		seen[key] = true
		for _, r := range s.Rows {
			if r.Range == "" && r.Row == 0 {
				return fmt.Errorf("%w: sheet %q has a row entry without row or range", ErrInvalidJob, s.Name)
			}
		}
		for _, st := range s.Styles {
			if st.Range == "" {
				return fmt.Errorf("%w: sheet %q has a style without range", ErrInvalidJob, s.Name)
			}
		}
	}
	if j.DefaultFont != nil && j.DefaultFont.Name == "" {
		return fmt.Errorf("%w: default font has no name", ErrInvalidJob)
	}
	return nil
}
