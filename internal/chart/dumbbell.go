package chart

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nao1215/citypremium/internal/currency"
	"github.com/nao1215/citypremium/internal/model"
	"github.com/nao1215/citypremium/internal/report"
)

// Layout constants.
const (
	// labelOffsetRatio shifts premium labels right of the outer end of a
	// segment, as a fraction of the national average.
	labelOffsetRatio = 0.0075

	// xHeadroomRatio leaves room for the labels past the largest city average.
	xHeadroomRatio = 0.08

	// xMarginRatio keeps the leftmost marker off the axis edge.
	xMarginRatio = 0.02

	segmentWidth   = 3
	nationalRadius = 3.5
	cityRadius     = 4.5
)

// nationalColor is used for every national average marker.
var nationalColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// cityColor is used for every city average marker.
var cityColor = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}

// ErrEmptySummary is returned when there is nothing to plot.
var ErrEmptySummary = errors.New("chart: summary has no cities")

// Title returns the two-line chart title: the role and the largest premium.
func Title(summary *model.Summary) string {
	title := "City Premium vs National Average: " + summary.Role
	if insight := report.Insight(summary); insight != "" {
		title += "\n" + insight
	}
	return title
}

// labelX returns where the premium label of a city starts: just past the
// outer end of its segment, so a negative premium does not cover its line.
func labelX(cityAvg, national float64) float64 {
	return max(cityAvg, national) + labelOffsetRatio*national
}

// PremiumLabel formats a premium for display next to a city marker.
func PremiumLabel(premium float64) string {
	return currency.SignedUSD(currency.RoundThousand(premium))
}

// Dumbbell builds the chart for summary. Cities are laid out in display
// order from the bottom up, so the largest premium is drawn at the top.
func Dumbbell(summary *model.Summary) (*plot.Plot, error) {
	cities := summary.Display
	if len(cities) == 0 {
		return nil, ErrEmptySummary
	}

	p := plot.New()
	p.Title.Text = Title(summary)
	p.Title.Padding = vg.Points(6)
	p.X.Label.Text = "Average Compensation (USD)"
	p.X.Tick.Marker = dollarTicks{}
	p.Y.Padding = 0

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	national := summary.NationalAverage
	nationalXYs := make(plotter.XYs, len(cities))
	cityXYs := make(plotter.XYs, len(cities))
	labelXYs := make(plotter.XYs, len(cities))
	labels := make([]string, len(cities))
	names := make([]string, len(cities))
	minX, maxX := national, national

	for i, c := range cities {
		y := float64(i)
		nationalXYs[i] = plotter.XY{X: national, Y: y}
		cityXYs[i] = plotter.XY{X: c.Average, Y: y}
		labelXYs[i] = plotter.XY{X: labelX(c.Average, national), Y: y}
		labels[i] = PremiumLabel(c.Premium)
		names[i] = c.City
		minX = min(minX, c.Average)
		maxX = max(maxX, c.Average)

		segment, err := plotter.NewLine(plotter.XYs{nationalXYs[i], cityXYs[i]})
		if err != nil {
			return nil, fmt.Errorf("failed to build segment for %s: %w", c.City, err)
		}
		segment.LineStyle.Width = vg.Points(segmentWidth)
		segment.LineStyle.Color = plotutil.Color(i)
		p.Add(segment)
	}

	nationalMarkers, err := newMarkers(nationalXYs, nationalRadius, nationalColor)
	if err != nil {
		return nil, err
	}
	cityMarkers, err := newMarkers(cityXYs, cityRadius, cityColor)
	if err != nil {
		return nil, err
	}

	premiumLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("failed to build labels: %w", err)
	}
	for i := range premiumLabels.TextStyle {
		premiumLabels.TextStyle[i].YAlign = draw.YCenter
	}

	p.Add(nationalMarkers, cityMarkers, premiumLabels)
	p.NominalY(names...)

	p.Y.Min = -0.5
	p.Y.Max = float64(len(cities)) - 0.5
	p.X.Min = minX - xMarginRatio*national
	p.X.Max = maxX + xHeadroomRatio*national

	return p, nil
}

// newMarkers builds one circle marker per point.
func newMarkers(xys plotter.XYs, radius vg.Length, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build markers: %w", err)
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(float64(radius))
	s.GlyphStyle.Color = c
	return s, nil
}

// dollarTicks formats the default tick positions as whole-dollar amounts.
type dollarTicks struct{}

// Ticks implements plot.Ticker.
func (dollarTicks) Ticks(minimum, maximum float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(minimum, maximum)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = currency.USD(ticks[i].Value)
		}
	}
	return ticks
}
