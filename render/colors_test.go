package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestPaletteEndpoints(t *testing.T) {
	start, end := RGB{255, 0, 0}, RGB{0, 0, 255}
	p := NewPalette(start, end)

	tests := []struct {
		name string
		t    float64
		want RGB
	}{
		{"Start", 0, start},
		{"End", 1, end},
		{"Below range", -0.5, start},
		{"Above range", 2, end},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.At(tt.t); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	mid := p.At(0.5)
	if mid == start || mid == end {
		t.Errorf("Expected interpolated midpoint, got %v", mid)
	}
}

func TestPaletteSteps(t *testing.T) {
	p := DistancePalette
	steps := p.Steps(5)
	if len(steps) != 5 {
		t.Fatalf("Expected 5 steps, got %d", len(steps))
	}
	if steps[0] != (RGB{255, 158, 100}) || steps[4] != (RGB{61, 89, 161}) {
		t.Errorf("Expected steps to include both ends, got %v and %v", steps[0], steps[4])
	}
	if got := p.Steps(0); got != nil {
		t.Errorf("Expected nil for zero steps, got %v", got)
	}
	if got := p.Steps(1); len(got) != 1 || got[0] != steps[0] {
		t.Errorf("Expected single step at start, got %v", got)
	}
}

func TestPaletteSingleStop(t *testing.T) {
	p := NewPalette()
	if got := p.At(0.7); got != RgbForeground {
		t.Errorf("Expected default foreground, got %v", got)
	}
}

func TestColorConversions(t *testing.T) {
	c := RGB{12, 200, 99}
	if got := FromColorful(c.Colorful()); got != c {
		t.Errorf("Expected round trip %v, got %v", c, got)
	}
	if got := FromColorful(colorful.Color{R: 1.4, G: -0.2, B: 0.5}); got != (RGB{255, 0, 128}) {
		t.Errorf("Expected clamped color, got %v", got)
	}

	got, err := ParseHex("#ff8000")
	if err != nil || got != (RGB{255, 128, 0}) {
		t.Errorf("Expected (255,128,0), got %v (%v)", got, err)
	}
	if _, err := ParseHex("orange"); err == nil {
		t.Error("Expected error for non-hex color")
	}
}

func TestBlendFunctions(t *testing.T) {
	a, b := RGB{200, 100, 50}, RGB{100, 200, 250}
	tests := []struct {
		name string
		got  RGB
		want RGB
	}{
		{"Max", Max(a, b), RGB{200, 200, 250}},
		{"Add clamps", Add(a, b), RGB{255, 255, 255}},
		{"Alpha zero", Blend(a, b, 0), a},
		{"Alpha one", Blend(a, b, 1), b},
		{"Scale half", Scale(a, 0.5), RGB{100, 50, 25}},
		{"Screen black", Screen(a, RGBBlack), a},
		{"Screen white", Screen(a, RGBWhite), RGBWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestLayerColor(t *testing.T) {
	if LayerColor(0) != LayerColors[0] {
		t.Errorf("Expected first layer color, got %v", LayerColor(0))
	}
	if LayerColor(len(LayerColors)) != LayerColors[0] {
		t.Error("Expected layer colors to cycle")
	}
}
