package pipeline

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/nao1215/citypremium/internal/analysis"
	"github.com/nao1215/citypremium/internal/chart"
	"github.com/nao1215/citypremium/internal/config"
	"github.com/nao1215/citypremium/internal/dataset"
	"github.com/nao1215/citypremium/internal/log"
	"github.com/nao1215/citypremium/internal/model"
	"github.com/nao1215/citypremium/internal/report"
	"github.com/nao1215/citypremium/internal/synth"
)

// defaultDefinition loads the embedded definition or fails the test.
func defaultDefinition(t *testing.T) *dataset.Definition {
	t.Helper()

	def, err := dataset.Default()
	if err != nil {
		t.Fatalf("failed to load default dataset: %v", err)
	}
	return def
}

// runReport executes the full report pipeline into dir.
func runReport(t *testing.T, role, dir string) (*model.Run, error) {
	t.Helper()

	run := model.NewRun(role, dir, config.DefaultTopN)
	err := NewReportPipeline(defaultDefinition(t), log.Discard()).Execute(context.Background(), run)
	return run, err
}

func TestNewReportPipeline(t *testing.T) {
	t.Parallel()

	p := NewReportPipeline(defaultDefinition(t), nil)
	want := []string{"prepare_output", "synthesize", "summarize", "write_csv", "render_chart"}
	if !slices.Equal(p.StepNames(), want) {
		t.Errorf("expected steps %v, got %v", want, p.StepNames())
	}
}

func TestReportPipeline(t *testing.T) {
	t.Parallel()

	t.Run("fresh nested output directory is created with all files", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "out")
		run, err := runReport(t, "Software Engineer", dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, name := range []string{report.CSVFileName, chart.PNGFileName, chart.SVGFileName} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Errorf("expected %s to exist: %v", name, err)
			}
		}
		if run.PNGPath != filepath.Join(dir, chart.PNGFileName) {
			t.Errorf("unexpected PNG path %s", run.PNGPath)
		}
		if run.SVGPath != filepath.Join(dir, chart.SVGFileName) {
			t.Errorf("unexpected SVG path %s", run.SVGPath)
		}
		if len(run.PerformedSteps) != 5 {
			t.Errorf("expected 5 performed steps, got %v", run.PerformedSteps)
		}
	})

	t.Run("existing output directory is reused", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if _, err := runReport(t, "Data Scientist", dir); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		if _, err := runReport(t, "Data Scientist", dir); err != nil {
			t.Fatalf("second run failed: %v", err)
		}
	})

	t.Run("same seed and role give an identical CSV", func(t *testing.T) {
		t.Parallel()

		first, err := runReport(t, "GenAI Developer", t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := runReport(t, "GenAI Developer", t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		a, err := os.ReadFile(first.CSVPath)
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(second.CSVPath)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("expected identical CSVs:\n%s\n---\n%s", a, b)
		}

		records, err := csv.NewReader(bytes.NewReader(a)).ReadAll()
		if err != nil {
			t.Fatalf("invalid CSV: %v", err)
		}
		if len(records)-1 != 5 {
			t.Errorf("expected 5 data rows, got %d", len(records)-1)
		}
	})

	t.Run("unknown role fails before writing files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := runReport(t, "Nonexistent Role", dir)
		if !errors.Is(err, analysis.ErrRoleNotFound) {
			t.Fatalf("expected ErrRoleNotFound, got %v", err)
		}
		for _, role := range []string{"Software Engineer", "GenAI Developer", "Data Scientist"} {
			if !strings.Contains(err.Error(), role) {
				t.Errorf("expected error to list %q: %v", role, err)
			}
		}
		if _, err := os.Stat(filepath.Join(dir, report.CSVFileName)); !os.IsNotExist(err) {
			t.Error("expected no CSV to be written")
		}
	})

	t.Run("output path that is a file fails", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := runReport(t, "Software Engineer", filepath.Join(file, "out")); err == nil {
			t.Error("expected error when the output parent is a file")
		}
	})
}

func TestSynthesizeStep(t *testing.T) {
	t.Parallel()

	synthesize := func(t *testing.T, seed uint64) model.Table {
		t.Helper()

		def := defaultDefinition(t)
		def.Seed = seed
		run := model.NewRun("Software Engineer", t.TempDir(), config.DefaultTopN)
		if err := NewSynthesizeStep(def, log.Discard()).Do(context.Background(), run); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return run.Table
	}

	t.Run("table is generated from the definition seed", func(t *testing.T) {
		t.Parallel()

		want := synth.Generate(defaultDefinition(t), 7).Rows()
		if got := synthesize(t, 7).Rows(); !slices.Equal(got, want) {
			t.Error("expected the table generated from seed 7")
		}
	})

	t.Run("changing the definition seed changes the table", func(t *testing.T) {
		t.Parallel()

		if slices.Equal(synthesize(t, 42).Rows(), synthesize(t, 7).Rows()) {
			t.Error("expected different tables for seeds 42 and 7")
		}
	})
}

func TestStepsRequirePreviousResults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("summarize without table", func(t *testing.T) {
		t.Parallel()

		err := NewSummarizeStep(nil).Do(ctx, model.NewRun("Engineer", t.TempDir(), 5))
		if !errors.Is(err, errNoTable) {
			t.Errorf("expected errNoTable, got %v", err)
		}
	})

	t.Run("write csv without summary", func(t *testing.T) {
		t.Parallel()

		err := NewWriteCSVStep().Do(ctx, model.NewRun("Engineer", t.TempDir(), 5))
		if !errors.Is(err, errNoSummary) {
			t.Errorf("expected errNoSummary, got %v", err)
		}
	})

	t.Run("render chart without summary", func(t *testing.T) {
		t.Parallel()

		err := NewRenderChartStep().Do(ctx, model.NewRun("Engineer", t.TempDir(), 5))
		if !errors.Is(err, errNoSummary) {
			t.Errorf("expected errNoSummary, got %v", err)
		}
	})
}
