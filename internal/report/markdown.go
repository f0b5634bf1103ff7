package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/citypremium/internal/currency"
	"github.com/nao1215/citypremium/internal/model"
)

// MarkdownWriter outputs the summary as a GitHub Flavored Markdown document.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("City Premium vs National Average")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Role", summary.Role},
			{"Observations", strconv.Itoa(summary.Observations)},
			{"National Average", currency.USD(summary.NationalAverage)},
		},
	})
	md.PlainText("")

	w.writeTopCities(md, summary)
	w.writeInsight(md, summary)

	return len(md.String()), md.Build()
}

// writeTopCities writes the ranking table.
func (w *MarkdownWriter) writeTopCities(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Top Cities")
	md.PlainText("")

	if len(summary.Top) == 0 {
		md.PlainText("No cities to report.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(summary.Top))
	for i, p := range summary.Top {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			p.City,
			strconv.Itoa(p.Count),
			currency.USD(p.Average),
			currency.SignedUSD(p.Premium),
			fmt.Sprintf("%+.1f%%", p.PremiumPct),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "City", "Count", "City Average", "Premium", "Premium %"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeInsight writes the one-line takeaway as a note.
func (w *MarkdownWriter) writeInsight(md *markdown.Markdown, summary *model.Summary) {
	if line := Insight(summary); line != "" {
		md.Note(line)
		md.PlainText("")
	}
}

// Insight returns the one-line takeaway naming the city with the largest
// premium, or an empty string when the summary has no cities.
func Insight(summary *model.Summary) string {
	largest, ok := summary.Largest()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Largest premium: %s at %s vs US average",
		largest.City, currency.SignedUSD(currency.RoundThousand(largest.Premium)))
}
