package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/citypremium/internal/analysis"
	"github.com/nao1215/citypremium/internal/chart"
	"github.com/nao1215/citypremium/internal/dataset"
	"github.com/nao1215/citypremium/internal/model"
	"github.com/nao1215/citypremium/internal/report"
	"github.com/nao1215/citypremium/internal/synth"
)

// outputDirPerm is the permission used when creating the output directory.
const outputDirPerm = 0o750

// errNoTable is returned when a step needs a table that was never synthesized.
var errNoTable = errors.New("no observations: synthesize step has not run")

// errNoSummary is returned when a step needs a summary that was never computed.
var errNoSummary = errors.New("no summary: summarize step has not run")

// PrepareOutputStep creates the output directory and its parents.
// It is a no-op when the directory already exists.
type PrepareOutputStep struct{}

// NewPrepareOutputStep creates a new PrepareOutputStep.
func NewPrepareOutputStep() *PrepareOutputStep {
	return &PrepareOutputStep{}
}

// Name returns the step name.
func (s *PrepareOutputStep) Name() string {
	return "prepare_output"
}

// Do executes the step.
func (s *PrepareOutputStep) Do(_ context.Context, run *model.Run) error {
	if err := os.MkdirAll(run.OutputDir, outputDirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// SynthesizeStep generates the observation table from the definition,
// seeded with the definition's own seed.
type SynthesizeStep struct {
	definition *dataset.Definition
	logger     *slog.Logger
}

// NewSynthesizeStep creates a step that synthesizes data from def.
func NewSynthesizeStep(def *dataset.Definition, logger *slog.Logger) *SynthesizeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &SynthesizeStep{definition: def, logger: logger}
}

// Name returns the step name.
func (s *SynthesizeStep) Name() string {
	return "synthesize"
}

// Do executes the step.
func (s *SynthesizeStep) Do(_ context.Context, run *model.Run) error {
	run.Table = synth.Generate(s.definition, s.definition.Seed)
	s.logger.Debug("observations synthesized",
		"rows", run.Table.Len(),
		"seed", s.definition.Seed,
	)
	return nil
}

// SummarizeStep aggregates the table for the requested role.
type SummarizeStep struct {
	logger *slog.Logger
}

// NewSummarizeStep creates a new SummarizeStep.
func NewSummarizeStep(logger *slog.Logger) *SummarizeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummarizeStep{logger: logger}
}

// Name returns the step name.
func (s *SummarizeStep) Name() string {
	return "summarize"
}

// Do executes the step.
func (s *SummarizeStep) Do(_ context.Context, run *model.Run) error {
	if run.Table.Len() == 0 {
		return errNoTable
	}

	summary, err := analysis.Summarize(run.Table, run.Role, run.TopN)
	if err != nil {
		return err
	}
	run.Summary = summary

	s.logger.Debug("summary computed",
		"observations", summary.Observations,
		"nationalAvg", summary.NationalAverage,
		"cities", len(summary.Top),
	)
	return nil
}

// WriteCSVStep writes the CSV summary into the output directory.
type WriteCSVStep struct{}

// NewWriteCSVStep creates a new WriteCSVStep.
func NewWriteCSVStep() *WriteCSVStep {
	return &WriteCSVStep{}
}

// Name returns the step name.
func (s *WriteCSVStep) Name() string {
	return "write_csv"
}

// Do executes the step.
func (s *WriteCSVStep) Do(_ context.Context, run *model.Run) (err error) {
	if run.Summary == nil {
		return errNoSummary
	}

	path := filepath.Join(run.OutputDir, report.CSVFileName)
	f, err := os.Create(path) //nolint:gosec // output path comes from the --out flag
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if _, err := report.NewCSVWriter(f).Write(run.Summary); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	run.CSVPath = path
	return nil
}

// RenderChartStep renders the dumbbell chart as PNG and SVG.
type RenderChartStep struct{}

// NewRenderChartStep creates a new RenderChartStep.
func NewRenderChartStep() *RenderChartStep {
	return &RenderChartStep{}
}

// Name returns the step name.
func (s *RenderChartStep) Name() string {
	return "render_chart"
}

// Do executes the step.
func (s *RenderChartStep) Do(_ context.Context, run *model.Run) error {
	if run.Summary == nil {
		return errNoSummary
	}

	p, err := chart.Dumbbell(run.Summary)
	if err != nil {
		return err
	}
	pngPath, svgPath, err := chart.Save(p, run.OutputDir)
	if err != nil {
		return err
	}
	run.PNGPath = pngPath
	run.SVGPath = svgPath
	return nil
}

// NewReportPipeline assembles the full report workflow.
func NewReportPipeline(def *dataset.Definition, logger *slog.Logger) *Pipeline {
	p := New(WithLogger(logger))
	p.AddSteps(
		NewPrepareOutputStep(),
		NewSynthesizeStep(def, logger),
		NewSummarizeStep(logger),
		NewWriteCSVStep(),
		NewRenderChartStep(),
	)
	return p
}
