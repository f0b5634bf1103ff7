package model

// Run is the value passed through the report pipeline.
// Each step reads what earlier steps produced and fills in its own result.
type Run struct {
	// Role is the requested role.
	Role string

	// OutputDir is where the artifacts are written.
	OutputDir string

	// TopN is the number of cities kept in the summary.
	TopN int

	// Table is the synthesized observation table.
	Table Table

	// Summary is the aggregated result for Role.
	Summary *Summary

	// CSVPath is the path of the written CSV summary.
	CSVPath string

	// PNGPath is the path of the raster chart.
	PNGPath string

	// SVGPath is the path of the vector chart.
	SVGPath string

	// PerformedSteps lists the names of the steps that completed.
	PerformedSteps []string
}

// NewRun creates a Run for the given role and output directory.
func NewRun(role, outputDir string, topN int) *Run {
	return &Run{
		Role:           role,
		OutputDir:      outputDir,
		TopN:           topN,
		PerformedSteps: make([]string, 0),
	}
}
