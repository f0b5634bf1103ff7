package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Output file names and geometry.
const (
	PNGFileName = "city_premium_dumbbell.png"
	SVGFileName = "city_premium_dumbbell.svg"

	// DPI is the raster resolution of the PNG output.
	DPI = 220

	Width  = 10 * vg.Inch
	Height = 5 * vg.Inch

	// Margin is left blank around the whole chart.
	Margin = 6 * vg.Millimeter
)

// render draws p into c inside Margin. The title is drawn left-aligned above
// the plot area instead of centered by the plot itself.
func render(c draw.Canvas, p *plot.Plot) {
	c = draw.Crop(c, Margin, -Margin, Margin, -Margin)
	if p.Title.Text == "" {
		p.Draw(c)
		return
	}

	style := p.Title.TextStyle
	style.XAlign = draw.XLeft
	style.YAlign = draw.YTop
	c.FillText(style, vg.Point{X: c.Min.X, Y: c.Max.Y}, p.Title.Text)

	body := *p
	body.Title.Text = ""
	body.Draw(draw.Crop(c, 0, 0, 0, -(style.Height(p.Title.Text) + p.Title.Padding)))
}

// WritePNG draws p onto a raster canvas and encodes it as PNG.
func WritePNG(w io.Writer, p *plot.Plot) error {
	c := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(DPI))
	render(draw.New(c), p)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WriteSVG draws p onto a vector canvas and encodes it as SVG.
func WriteSVG(w io.Writer, p *plot.Plot) error {
	c := vgsvg.New(Width, Height)
	render(draw.New(c), p)
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode SVG: %w", err)
	}
	return nil
}

// Save writes p as PNG and SVG into dir and returns both paths.
// The directory must already exist.
func Save(p *plot.Plot, dir string) (pngPath, svgPath string, err error) {
	pngPath = filepath.Join(dir, PNGFileName)
	if err := writeFile(pngPath, p, WritePNG); err != nil {
		return "", "", err
	}

	svgPath = filepath.Join(dir, SVGFileName)
	if err := writeFile(svgPath, p, WriteSVG); err != nil {
		return "", "", err
	}
	return pngPath, svgPath, nil
}

// writeFile creates path and encodes p into it.
func writeFile(path string, p *plot.Plot, encode func(io.Writer, *plot.Plot) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // output path comes from the --out flag
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return encode(f, p)
}
