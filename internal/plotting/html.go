package plotting

import (
	"fmt"
	"io"

	"github.com/banshee-data/seawater/internal/sensitivity"
	"github.com/banshee-data/seawater/internal/series"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// AssetsHost is where the rendered page loads the echarts scripts from.
const AssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// WriteHTML renders the figure as a page of line charts, one per curve.
func WriteHTML(w io.Writer, fig sensitivity.Figure) error {
	if len(fig.Curves) == 0 {
		return fmt.Errorf("figure %q has no curves", fig.Name)
	}

	colors := generateColors(len(fig.Curves))
	page := components.NewPage()
	page.SetAssetsHost(AssetsHost)

	for i, c := range fig.Curves {
		page.AddCharts(curveChart(fig, c, hexColor(colors[i])))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	return nil
}

func curveChart(fig sensitivity.Figure, c sensitivity.Curve, col string) *charts.Line {
	xs, ys := finitePoints(c.X, c.Ratio)
	xLo, xHi := series.Extent(xs)
	yLo, yHi := series.Extent(ys)
	if c.Band > 0 {
		yLo = min(yLo, 1-c.Band)
		yHi = max(yHi, 1+c.Band)
	}
	pad := (yHi - yLo) * 0.05
	if pad == 0 {
		pad = 1e-6
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: fig.Title, Width: "900px", Height: "320px", AssetsHost: AssetsHost}),
		charts.WithTitleOpts(opts.Title{Title: c.Label, Subtitle: fmt.Sprintf("%s, base %.6g", fig.Title, fig.Base)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: c.XLabel, NameLocation: "middle", NameGap: 25, Min: xLo, Max: xHi}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: c.YLabel, Min: yLo - pad, Max: yHi + pad}),
	)

	line.AddSeries(c.Label, xyData(xs, ys), charts.WithLineStyleOpts(opts.LineStyle{Color: col}))
	if c.Band > 0 {
		for _, y := range []float64{1 + c.Band, 1 - c.Band} {
			name := fmt.Sprintf("%.4g", y)
			line.AddSeries(name, xyData([]float64{xLo, xHi}, []float64{y, y}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: hexColor(bandColor), Type: "dashed"}))
		}
	}
	return line
}

func xyData(xs, ys []float64) []opts.LineData {
	data := make([]opts.LineData, len(xs))
	for i := range xs {
		data[i] = opts.LineData{Value: []interface{}{xs[i], ys[i]}}
	}
	return data
}
