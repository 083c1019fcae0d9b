package plotting

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/banshee-data/seawater/internal/monitoring"
	"github.com/banshee-data/seawater/internal/sensitivity"
	"github.com/banshee-data/seawater/internal/series"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options sets the rendered figure size.
type Options struct {
	WidthIn  float64
	HeightIn float64
}

// DefaultOptions matches the config getter defaults.
func DefaultOptions() Options {
	return Options{WidthIn: 8, HeightIn: 10}
}

var bandColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}

// WritePNG draws one panel per curve, stacked top to bottom, and writes the
// PNG encoding to w.
func WritePNG(w io.Writer, fig sensitivity.Figure, o Options) error {
	if len(fig.Curves) == 0 {
		return fmt.Errorf("figure %q has no curves", fig.Name)
	}
	if o.WidthIn <= 0 || o.HeightIn <= 0 {
		return fmt.Errorf("invalid figure size %gx%g in", o.WidthIn, o.HeightIn)
	}

	colors := generateColors(len(fig.Curves))
	rows := make([][]*plot.Plot, len(fig.Curves))
	for i, c := range fig.Curves {
		p, err := curvePlot(c, colors[i])
		if err != nil {
			return fmt.Errorf("%s panel: %w", c.Label, err)
		}
		if i == 0 {
			p.Title.Text = fig.Title
		}
		rows[i] = []*plot.Plot{p}
	}

	img := vgimg.New(vg.Length(o.WidthIn)*vg.Inch, vg.Length(o.HeightIn)*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(rows),
		Cols:      1,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align(rows, tiles, dc)
	for i := range rows {
		rows[i][0].Draw(canvases[i][0])
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the figure to path, creating parent directories.
func SavePNG(fig sensitivity.Figure, path string, o Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(f, fig, o); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	monitoring.Logf("plotting: wrote %s", path)
	return nil
}

// curvePlot builds a single panel with grid lines and optional band lines.
func curvePlot(c sensitivity.Curve, col color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())

	xs, ys := finitePoints(c.X, c.Ratio)
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = col
	line.Width = vg.Points(1.5)
	p.Add(line)

	if c.Band > 0 {
		lo, hi := series.Extent(c.X)
		for _, y := range []float64{1 + c.Band, 1 - c.Band} {
			band, err := plotter.NewLine(plotter.XYs{{X: lo, Y: y}, {X: hi, Y: y}})
			if err != nil {
				return nil, err
			}
			band.Color = bandColor
			band.Width = vg.Points(1.5)
			band.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
			p.Add(band)
		}
	}
	return p, nil
}

// finitePoints drops the points where either coordinate is NaN or ±Inf.
// Neither renderer can encode them.
func finitePoints(xs, ys []float64) (fx, fy []float64) {
	fx = make([]float64, 0, len(xs))
	fy = make([]float64, 0, len(ys))
	for i := range xs {
		if isFinite(xs[i]) && isFinite(ys[i]) {
			fx = append(fx, xs[i])
			fy = append(fy, ys[i])
		}
	}
	return fx, fy
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// generateColors creates a palette of n distinct colors around the hue wheel.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := 0.6 + float64(i)/float64(n)
		if hue >= 1 {
			hue--
		}
		r, g, b := hslToRGB(hue, 0.7, 0.45)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL in [0,1] to 8-bit RGB.
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	if s == 0 {
		v := uint8(l * 255)
		return v, v, v
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return uint8(hueToRGB(p, q, h+1.0/3.0) * 255),
		uint8(hueToRGB(p, q, h) * 255),
		uint8(hueToRGB(p, q, h-1.0/3.0) * 255)
}

func hueToRGB(p, q, t float64) float64 {
	switch {
	case t < 0:
		t++
	case t > 1:
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// hexColor formats c as #rrggbb for the HTML renderer.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
