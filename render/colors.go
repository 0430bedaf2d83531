package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Default colors (Tokyo Night)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbForeground = RGB{192, 202, 245}
	RgbGridDot    = RGB{59, 66, 97}
	RgbCursor     = RGB{255, 165, 0}
	RgbCursorErr  = RGB{255, 0, 0}
)

// LayerColors is the foreground cycle assigned to successive scene layers
var LayerColors = []RGB{
	{122, 162, 247}, // Blue
	{158, 206, 106}, // Green
	{247, 118, 142}, // Red
	{224, 175, 104}, // Amber
	{187, 154, 247}, // Purple
	{125, 207, 255}, // Cyan
}

// LayerColor returns the foreground for layer i, cycling through LayerColors
func LayerColor(i int) RGB {
	if i < 0 {
		i = -i
	}
	return LayerColors[i%len(LayerColors)]
}

// Palette is a multi-stop color gradient interpolated in CIE L*a*b*
type Palette struct {
	stops []colorful.Color
}

// NewPalette builds a gradient through the given stops, first at 0 and last at 1
// With no stops the palette is solid foreground
func NewPalette(stops ...RGB) *Palette {
	p := &Palette{stops: make([]colorful.Color, 0, max(len(stops), 1))}
	for _, s := range stops {
		p.stops = append(p.stops, s.Colorful())
	}
	if len(p.stops) == 0 {
		p.stops = append(p.stops, RgbForeground.Colorful())
	}
	return p
}

// DistancePalette shades flood cells from hot near the center to cold at the edge
var DistancePalette = NewPalette(
	RGB{255, 158, 100},
	RGB{224, 175, 104},
	RGB{115, 218, 202},
	RGB{61, 89, 161},
)

// At returns the gradient color at t in [0, 1]; values outside are clamped
func (p *Palette) At(t float64) RGB {
	n := len(p.stops)
	if n == 1 || t <= 0 {
		return FromColorful(p.stops[0])
	}
	if t >= 1 {
		return FromColorful(p.stops[n-1])
	}
	seg := t * float64(n-1)
	i := int(seg)
	return FromColorful(p.stops[i].BlendLab(p.stops[i+1], seg-float64(i)))
}

// Steps samples n evenly spaced colors including both ends
func (p *Palette) Steps(n int) []RGB {
	if n <= 0 {
		return nil
	}
	out := make([]RGB, n)
	if n == 1 {
		out[0] = p.At(0)
		return out
	}
	for i := range out {
		out[i] = p.At(float64(i) / float64(n-1))
	}
	return out
}
