package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"go-trade-dashboard/internal/model"
)

// Bounds is a lon/lat window.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

var scopeBounds = map[string]Bounds{
	"africa":        {MinLon: -26, MaxLon: 64, MinLat: -36, MaxLat: 38},
	"europe":        {MinLon: -25, MaxLon: 45, MinLat: 34, MaxLat: 72},
	"asia":          {MinLon: 25, MaxLon: 150, MinLat: -12, MaxLat: 60},
	"north america": {MinLon: -170, MaxLon: -50, MinLat: 5, MaxLat: 75},
	"south america": {MinLon: -85, MaxLon: -32, MinLat: -56, MaxLat: 14},
	"world":         {MinLon: -180, MaxLon: 180, MinLat: -60, MaxLat: 85},
}

// ScopeBounds returns the window for a named map scope. Unknown scopes
// are fitted to the payload geometry.
func ScopeBounds(scope string, payload model.MapPayload) Bounds {
	if b, ok := scopeBounds[strings.ToLower(strings.TrimSpace(scope))]; ok {
		return b
	}
	return fitBounds(payload)
}

func fitBounds(payload model.MapPayload) Bounds {
	b := Bounds{MinLon: math.Inf(1), MaxLon: math.Inf(-1), MinLat: math.Inf(1), MaxLat: math.Inf(-1)}
	extend := func(lon, lat float64) {
		b.MinLon = math.Min(b.MinLon, lon)
		b.MaxLon = math.Max(b.MaxLon, lon)
		b.MinLat = math.Min(b.MinLat, lat)
		b.MaxLat = math.Max(b.MaxLat, lat)
	}
	for _, s := range payload.Segments {
		extend(s.Lon[0], s.Lat[0])
		extend(s.Lon[1], s.Lat[1])
	}
	if payload.Origin != nil {
		extend(payload.Origin.Lon, payload.Origin.Lat)
	}
	if math.IsInf(b.MinLon, 1) {
		return scopeBounds["world"]
	}
	const pad = 5
	b.MinLon, b.MaxLon = b.MinLon-pad, b.MaxLon+pad
	b.MinLat, b.MaxLat = b.MinLat-pad, b.MaxLat+pad
	return b
}

// FlowMapPNG draws a flat lon/lat preview of the flow map: one line per
// segment colored by intensity, plus the origin marker.
func FlowMapPNG(w io.Writer, payload model.MapPayload) error {
	layout := payload.Layout
	bounds := ScopeBounds(layout.Scope, payload)

	series := []chart.Series{frameSeries(bounds)}

	lineWidth := layout.LineWidth
	if lineWidth <= 0 {
		lineWidth = 2
	}
	opacity := layout.LineOpacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	for _, s := range payload.Segments {
		stroke := intensityColor(s.Intensity).WithAlpha(uint8(opacity * 255))
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: []float64{s.Lon[0], s.Lon[1]},
			YValues: []float64{s.Lat[0], s.Lat[1]},
			Style: chart.Style{
				StrokeColor: stroke,
				StrokeWidth: lineWidth,
			},
		})
	}

	if payload.Origin != nil {
		series = append(series, chart.ContinuousSeries{
			Name:    payload.Origin.Name,
			XValues: []float64{payload.Origin.Lon},
			YValues: []float64{payload.Origin.Lat},
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    6,
				DotColor:    ParseColor(payload.Origin.Color, drawing.ColorRed),
			},
		})
	}

	width, height := layout.Width, layout.Height
	if width <= 0 {
		width = 1200
	}
	if height <= 0 {
		height = 1000
	}

	graph := chart.Chart{
		Title:  layout.Title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "Longitude",
			Range: &chart.ContinuousRange{Min: bounds.MinLon, Max: bounds.MaxLon},
		},
		YAxis: chart.YAxis{
			Name:  "Latitude",
			Range: &chart.ContinuousRange{Min: bounds.MinLat, Max: bounds.MaxLat},
		},
		Series: series,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render flow map: %w", err)
	}
	return nil
}

// frameSeries outlines the visible window so an empty selection still renders.
func frameSeries(b Bounds) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    "frame",
		XValues: []float64{b.MinLon, b.MaxLon, b.MaxLon, b.MinLon, b.MinLon},
		YValues: []float64{b.MinLat, b.MinLat, b.MaxLat, b.MaxLat, b.MinLat},
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("d3d3d3"),
			StrokeWidth: 1,
		},
	}
}
