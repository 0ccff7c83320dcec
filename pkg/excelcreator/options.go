package excelcreator

// InspectOptions configures Inspect.
type InspectOptions struct {
	// IncludeLinks adds cell hyperlinks to the extracted rows.
	IncludeLinks bool
	// Raw reports stored values instead of formatted text.
	Raw bool
	// IncludeDimensions reports column widths and row heights.
	// If nil, defaults to true.
	IncludeDimensions *bool
	// DetectTables reports table-like ranges. If nil, defaults to true.
	DetectTables *bool
}

// DefaultInspectOptions returns default inspection options.
func DefaultInspectOptions() InspectOptions {
	return InspectOptions{}
}

// ShouldIncludeDimensions returns whether to report widths and heights.
func (o InspectOptions) ShouldIncludeDimensions() bool {
	if o.IncludeDimensions != nil {
		return *o.IncludeDimensions
	}
	return true
}

// ShouldDetectTables returns whether to report table candidates.
func (o InspectOptions) ShouldDetectTables() bool {
	if o.DetectTables != nil {
		return *o.DetectTables
	}
	return true
}
