package render

import (
	"image/color"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// extra CSS names the presentation config commonly uses that drawing does not know.
var namedColors = map[string]drawing.Color{
	"orange":    {R: 255, G: 165, B: 0, A: 255},
	"gray":      {R: 128, G: 128, B: 128, A: 255},
	"grey":      {R: 128, G: 128, B: 128, A: 255},
	"lightgray": {R: 211, G: 211, B: 211, A: 255},
	"darkgreen": {R: 0, G: 100, B: 0, A: 255},
	"steelblue": {R: 70, G: 130, B: 180, A: 255},
}

// ParseColor resolves a CSS-style color (name, #hex, rgb(), rgba()).
// Unknown values fall back to def.
func ParseColor(value string, def drawing.Color) drawing.Color {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	if c, ok := namedColors[strings.ToLower(value)]; ok {
		return c
	}
	if strings.HasPrefix(value, "#") && len(value) != 4 && len(value) != 7 {
		return def
	}
	c := drawing.ParseColor(value)
	if c.IsZero() {
		return def
	}
	return c
}

func toRGBA(c drawing.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// intensityColor maps an intensity in [0,100] onto a red-yellow-green ramp.
func intensityColor(intensity float64) drawing.Color {
	t := intensity / 100
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	red := drawing.Color{R: 215, G: 48, B: 39, A: 255}
	yellow := drawing.Color{R: 255, G: 255, B: 191, A: 255}
	green := drawing.Color{R: 26, G: 152, B: 80, A: 255}
	if t < 0.5 {
		return lerp(red, yellow, t*2)
	}
	return lerp(yellow, green, (t-0.5)*2)
}

func lerp(a, b drawing.Color, t float64) drawing.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
