package render

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"go-trade-dashboard/internal/model"
)

// pixels to points at the 96 DPI the dashboard sizes are expressed in.
const pxToPt = 0.75

// BarChartPNG draws the aggregated bar series as a PNG.
func BarChartPNG(w io.Writer, payload model.BarPayload) error {
	layout := payload.Layout

	p := plot.New()
	p.Title.Text = layout.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = layout.XAxisTitle
	p.Y.Label.Text = layout.YAxisTitle
	p.Y.Min = 0

	if len(payload.Bars) == 0 {
		p.Y.Max = 1
		p.X.Min = 0
		p.X.Max = 1
	} else {
		values := make(plotter.Values, len(payload.Bars))
		labels := make([]string, len(payload.Bars))
		var maxValue float64
		for i, b := range payload.Bars {
			values[i] = b.Value
			labels[i] = b.Label
			maxValue = math.Max(maxValue, b.Value)
		}

		bars, err := plotter.NewBarChart(values, vg.Points(barWidth(layout.Width, len(values))))
		if err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		bars.Color = toRGBA(ParseColor(layout.Color, drawing.Color{R: 255, G: 165, B: 0, A: 255}))
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)

		p.NominalX(labels...)
		p.X.Tick.Label.Rotation = float64(layout.TickAngle) * math.Pi / 180
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter

		if maxValue > 0 {
			p.Y.Max = maxValue * 1.15
			xys := make([]plotter.XY, len(payload.Bars))
			texts := make([]string, len(payload.Bars))
			for i, b := range payload.Bars {
				xys[i] = plotter.XY{X: float64(i), Y: b.Value + maxValue*0.02}
				texts[i] = b.Text
			}
			labelsPlot, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
			if err != nil {
				return fmt.Errorf("bar labels: %w", err)
			}
			p.Add(labelsPlot)
		} else {
			p.Y.Max = 1
		}
	}
	p.Add(plotter.NewGrid())

	width, height := pageSize(layout.Width, layout.Height, 1200, 400)
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("bar chart writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write bar chart: %w", err)
	}
	return nil
}

func barWidth(widthPx, n int) float64 {
	if widthPx <= 0 {
		widthPx = 1200
	}
	bw := float64(widthPx) * pxToPt * 0.6 / float64(n)
	return math.Max(2, math.Min(bw, 40))
}

func pageSize(widthPx, heightPx, defWidth, defHeight int) (vg.Length, vg.Length) {
	if widthPx <= 0 {
		widthPx = defWidth
	}
	if heightPx <= 0 {
		heightPx = defHeight
	}
	return vg.Points(float64(widthPx) * pxToPt), vg.Points(float64(heightPx) * pxToPt)
}
