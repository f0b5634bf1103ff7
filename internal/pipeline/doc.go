// Package pipeline runs the report workflow as a sequence of steps.
//
// A report run passes through these stages:
//
//	prepare_output -> synthesize -> summarize -> write_csv -> render_chart
//
// Each stage is a Step that reads what earlier steps left on the model.Run
// and records its own result there. Steps run one at a time on the calling
// goroutine; the first failure stops the run.
package pipeline
