package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/nao1215/citypremium/internal/model"
)

// CSVFileName is the name of the CSV artifact inside the output directory.
const CSVFileName = "city_premium_summary.csv"

// CSVHeader is the header row of the CSV artifact.
var CSVHeader = []string{"city", "count", "city_avg", "national_avg", "premium_abs", "premium_pct"}

// CSVWriter outputs the top cities as CSV, one row per city in ranking order.
// Floats use the shortest representation that parses back to the same value.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary in CSV format.
func (w *CSVWriter) Write(summary *model.Summary) (int, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(CSVHeader); err != nil {
		return 0, err
	}
	for _, p := range summary.Top {
		record := []string{
			p.City,
			strconv.Itoa(p.Count),
			formatFloat(p.Average),
			formatFloat(p.NationalAverage),
			formatFloat(p.Premium),
			formatFloat(p.PremiumPct),
		}
		if err := cw.Write(record); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}

// formatFloat renders v with round-trip precision.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
