package job

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/wolestech/excelcreator-go/pkg/excelcreator"
)

// Run plays j through c. It stops at the first error and checks ctx
// between sheets.
func Run(ctx context.Context, j *Job, c *excelcreator.Creator) error {
	log := logrus.WithField("component", "job")

	if f := j.DefaultFont; f != nil {
		log.WithFields(logrus.Fields{"font": f.Name, "size": f.Size}).Debug("setting default font")
		if err := c.SetDefaultFont(f.Name, f.Size); err != nil {
			return fmt.Errorf("default font: %w", err)
		}
	}

	for i, sj := range j.Sheets {
		if err := ctx.Err(); err != nil {
			return err
		}
		sheet, err := openSheet(c, i, sj.Name)
		if err != nil {
			return newStepError(sj.Name, "sheet", err)
		}
		log.WithField("sheet", sheet.Name()).Info("building sheet")
		if err := buildSheet(sheet, sj, log.WithField("sheet", sheet.Name())); err != nil {
			return err
		}
	}

	if j.ActiveSheet != "" {
		if err := c.Workbook.SetActiveSheet(j.ActiveSheet); err != nil {
			return fmt.Errorf("active sheet: %w", err)
		}
	}
	return nil
}

// openSheet renames the initial sheet for the first recipe sheet and
// adds the others.
func openSheet(c *excelcreator.Creator, i int, name string) (*excelcreator.Sheet, error) {
	if i == 0 {
		active := c.ActiveSheet()
		if name == "" || name == active.Name() {
			return active, nil
		}
		if err := c.Workbook.RenameSheet(active.Name(), name); err != nil {
			return nil, err
		}
		return c.Sheet(name), nil
	}
	return c.Workbook.AddSheet(name)
}

func buildSheet(sheet *excelcreator.Sheet, sj Sheet, log *logrus.Entry) error {
	name := sheet.Name()

	if len(sj.Values) > 0 {
		log.WithField("rows", len(sj.Values)).Debug("filling values")
		if err := sheet.FillCell(sj.Values); err != nil {
			return newStepError(name, "values", err)
		}
	}

	if sj.DefaultColumnWidth != nil {
		if err := sheet.SetDefaultColumnWidth(*sj.DefaultColumnWidth); err != nil {
			return newStepError(name, "default_column_width", err)
		}
	}
	if sj.DefaultRowHeight != nil {
		if err := sheet.SetDefaultRowHeight(*sj.DefaultRowHeight); err != nil {
			return newStepError(name, "default_row_height", err)
		}
	}

	for _, cols := range sj.Columns {
		w := excelcreator.AutoSize
		if cols.Width != nil {
			w = excelcreator.Fixed(*cols.Width)
		}
		log.WithFields(logrus.Fields{"columns": cols.Names, "width": w}).Debug("setting column width")
		if err := sheet.SetMultipleColumnsWidth(cols.Names, w); err != nil {
			return newStepError(name, "columns", err)
		}
	}

	for _, r := range sj.Rows {
		var err error
		if r.Range != "" {
			err = sheet.SetMultipleRowsHeight(r.Range, r.Height)
		} else {
			err = sheet.SetRowHeight(r.Row, r.Height)
		}
		if err != nil {
			return newStepError(name, "rows", err)
		}
	}

	for _, rule := range sj.Styles {
		log.WithField("range", rule.Range).Debug("applying style")
		if err := sheet.ApplyStyle(rule.Style, rule.Range); err != nil {
			return newStepError(name, "styles", err)
		}
	}
	return nil
}
