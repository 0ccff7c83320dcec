package excelcreator

import (
	"reflect"

	"github.com/xuri/excelize/v2"
)

// Workbook is an in-memory spreadsheet document. Besides the excelize
// file it carries the settings the file format does not store on its
// own, such as which columns are auto-sized.
type Workbook struct {
	file *excelize.File
	// autoSize maps sheet name to the set of auto-sized column names.
	autoSize map[string]map[string]bool
}

// NewWorkbook returns an empty workbook with a single sheet.
func NewWorkbook() *Workbook {
	return newWorkbook(excelize.NewFile())
}

func newWorkbook(f *excelize.File) *Workbook {
	return &Workbook{
		file:     f,
		autoSize: make(map[string]map[string]bool),
	}
}

// File returns the underlying excelize file for features the facade
// does not cover.
func (wb *Workbook) File() *excelize.File {
	return wb.file
}

// Close releases the workbook's temporary resources.
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

// ActiveSheet returns a cursor on the sheet that is active right now.
// A later SetActiveSheet does not move an existing cursor.
func (wb *Workbook) ActiveSheet() *Sheet {
	return wb.Sheet(wb.file.GetSheetName(wb.file.GetActiveSheetIndex()))
}

// Sheet returns a cursor on the named sheet. The sheet is not checked
// for existence; operations on a missing sheet fail in excelize.
func (wb *Workbook) Sheet(name string) *Sheet {
	return &Sheet{wb: wb, name: name}
}

// SheetNames lists the sheets in workbook order.
func (wb *Workbook) SheetNames() []string {
	return wb.file.GetSheetList()
}

// AddSheet creates the named sheet if it does not exist yet.
func (wb *Workbook) AddSheet(name string) (*Sheet, error) {
	if _, err := wb.file.NewSheet(name); err != nil {
		return nil, err
	}
	return wb.Sheet(name), nil
}

// RenameSheet renames a sheet, carrying its auto-size settings along.
func (wb *Workbook) RenameSheet(oldName, newName string) error {
	if err := wb.file.SetSheetName(oldName, newName); err != nil {
		return err
	}
	if cols, ok := wb.autoSize[oldName]; ok && oldName != newName {
		wb.autoSize[newName] = cols
		delete(wb.autoSize, oldName)
	}
	return nil
}

// SetActiveSheet makes the named sheet the active one.
func (wb *Workbook) SetActiveSheet(name string) error {
	idx, err := wb.file.GetSheetIndex(name)
	if err != nil {
		return err
	}
	if idx == -1 {
		return excelize.ErrSheetNotExist{SheetName: name}
	}
	wb.file.SetActiveSheet(idx)
	return nil
}

// SetDefaultFont sets the font family and point size used by every cell
// without an explicit font.
func (wb *Workbook) SetDefaultFont(name string, size float64) error {
	if err := wb.file.SetDefaultFont(name); err != nil {
		return err
	}
	// excelize (checked against v2.10.0) has no setter for the size. It
	// lives in the first font record, the one SetDefaultFont edits, whose
	// <sz> element has an unexported type and is allocated by reflection
	// when missing.
	font := wb.file.Styles.Fonts.Font[0]
	if font.Sz == nil {
		sz := reflect.ValueOf(font).Elem().FieldByName("Sz")
		if !sz.IsValid() || !sz.CanSet() || sz.Kind() != reflect.Pointer {
			return nil
		}
		sz.Set(reflect.New(sz.Type().Elem()))
	}
	font.Sz.Val = &size
	return nil
}

// DefaultFont returns the default font family and point size. The size
// is zero when the file does not record one.
func (wb *Workbook) DefaultFont() (string, float64, error) {
	return defaultFont(wb.file)
}

func defaultFont(f *excelize.File) (string, float64, error) {
	// GetDefaultFont also loads f.Styles for files opened from disk.
	name, err := f.GetDefaultFont()
	if err != nil {
		return "", 0, err
	}
	if f.Styles == nil || f.Styles.Fonts == nil || len(f.Styles.Fonts.Font) == 0 {
		return name, 0, nil
	}
	if sz := f.Styles.Fonts.Font[0].Sz; sz != nil && sz.Val != nil {
		return name, *sz.Val, nil
	}
	return name, 0, nil
}

func (wb *Workbook) setAutoSize(sheet, col string, on bool) {
	cols, ok := wb.autoSize[sheet]
	if !ok {
		if !on {
			return
		}
		cols = make(map[string]bool)
		wb.autoSize[sheet] = cols
	}
	if on {
		cols[col] = true
	} else {
		delete(cols, col)
	}
}

func (wb *Workbook) isAutoSize(sheet, col string) bool {
	return wb.autoSize[sheet][col]
}
