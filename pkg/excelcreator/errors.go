package excelcreator

import "fmt"

// InspectionError reports which sheet and which part of it could not be
// read by Inspect. The facade setters never return it.
type InspectionError struct {
	SheetName string
	Component string // "cells", "dimensions"
	Err       error
}

func (e *InspectionError) Error() string {
	return fmt.Sprintf("inspection error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *InspectionError) Unwrap() error {
	return e.Err
}

// NewInspectionError creates a new InspectionError.
func NewInspectionError(sheetName, component string, err error) *InspectionError {
	return &InspectionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
