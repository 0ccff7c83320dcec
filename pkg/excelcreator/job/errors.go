package job

import "fmt"

// StepError represents a failed step while building a sheet.
type StepError struct {
	SheetName string
	Step      string // "values", "columns", "rows", "styles", ...
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("job error in sheet %q (%s): %v", e.SheetName, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func newStepError(sheetName, step string, err error) *StepError {
	return &StepError{SheetName: sheetName, Step: step, Err: err}
}
