package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/gridgeom/core"
	"github.com/lixenwraith/gridgeom/raster"
	"github.com/lixenwraith/gridgeom/render"
)

const sampleScene = `
width = 12
height = 8

[[shape]]
kind = "box"
from = [0, 0]
to = [11, 7]

[[shape]]
kind = "line"
from = [1, 1]
to = [6, 3]
algorithm = "dda"
glyph = "*"
color = "#ff0000"

[[shape]]
kind = "circle"
from = [8, 4]
radius = 2

[[shape]]
kind = "ellipse"
from = [1, 4]
to = [5, 6]

[[shape]]
kind = "radius"
from = [2, 2]
radius = 3
metric = "diamond"
bounds = [0, 0, 12, 8]
`

func TestDecodeAndBuild(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if s.Width != 12 || s.Height != 8 || len(s.Shapes) != 5 {
		t.Fatalf("Expected 12x8 with 5 shapes, got %dx%d with %d", s.Width, s.Height, len(s.Shapes))
	}

	layers, err := s.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	tests := []struct {
		kind  string
		count int
		glyph rune
	}{
		{KindBox, 2*(12+8) - 4, '#'},
		{KindLine, 6, '*'},
		{KindCircle, 12, 'o'},
		{KindEllipse, 0, 'o'}, // count checked separately
		{KindRadius, 0, '.'},
	}
	for i, tt := range tests {
		l := layers[i]
		if l.Kind != tt.kind {
			t.Errorf("Layer %d: expected kind %s, got %s", i, tt.kind, l.Kind)
		}
		if l.Glyph != tt.glyph {
			t.Errorf("Layer %d: expected glyph %q, got %q", i, tt.glyph, l.Glyph)
		}
		if tt.count > 0 && l.Area.Count() != tt.count {
			t.Errorf("Layer %d: expected %d cells, got %d", i, tt.count, l.Area.Count())
		}
	}

	if layers[1].Color != (render.RGB{255, 0, 0}) {
		t.Errorf("Expected explicit line color, got %v", layers[1].Color)
	}
	if layers[2].Color != render.LayerColor(2) {
		t.Errorf("Expected default layer color, got %v", layers[2].Color)
	}

	ellipse := core.AreaFromSeq(raster.Ellipse(core.Pt(1, 4), core.Pt(5, 6)))
	if !layers[3].Area.Equal(ellipse) {
		t.Errorf("Expected ellipse layer to match rasterizer output")
	}

	want, _ := raster.RadiusArea(core.Diamond, core.Pt(2, 2), 3, core.NewRectangle(0, 0, 12, 8))
	if !layers[4].Area.Equal(want) {
		t.Errorf("Expected radius layer with %d cells, got %d", want.Count(), layers[4].Area.Count())
	}
}

func TestRender(t *testing.T) {
	s := &Scene{
		Width: 5, Height: 3,
		Shapes: []Shape{
			{Kind: KindLine, From: [2]int{0, 1}, To: [2]int{4, 1}, Glyph: "-"},
			{Kind: KindLine, From: [2]int{2, 0}, To: [2]int{2, 2}, Glyph: "|"},
		},
	}
	c, layers, err := s.Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(layers) != 2 {
		t.Fatalf("Expected 2 layers, got %d", len(layers))
	}
	want := "  |\n--|--\n  |"
	if got := c.String(); got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestSceneOrigin(t *testing.T) {
	s := &Scene{Width: 3, Height: 3, Origin: [2]int{-1, -1}}
	if f := s.Frame(); f != core.NewRectangle(-1, -1, 3, 3) {
		t.Errorf("Expected frame at origin, got %v", f)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "Missing size",
			input:   `[[shape]]` + "\n" + `kind = "box"`,
			wantErr: ErrInvalidScene,
		},
		{
			name:    "Unknown kind",
			input:   "width = 4\nheight = 4\n[[shape]]\nkind = \"spiral\"",
			wantErr: ErrUnknownKind,
			wantMsg: "shape 0",
		},
		{
			name:    "Bad algorithm",
			input:   "width = 4\nheight = 4\n[[shape]]\nkind = \"box\"\n[[shape]]\nkind = \"line\"\nalgorithm = \"wu\"",
			wantErr: raster.ErrInvalidAlgorithm,
			wantMsg: "shape 1",
		},
		{
			name:    "Negative radius",
			input:   "width = 4\nheight = 4\n[[shape]]\nkind = \"circle\"\nradius = -2",
			wantErr: raster.ErrNegativeRadius,
		},
		{
			name:    "Short bounds",
			input:   "width = 4\nheight = 4\n[[shape]]\nkind = \"radius\"\nbounds = [0, 0, 3]",
			wantErr: ErrInvalidScene,
		},
		{
			name:    "Unknown key",
			input:   "width = 4\nheight = 4\ndepth = 2",
			wantErr: ErrInvalidScene,
			wantMsg: "depth",
		},
		{
			name:    "Long glyph",
			input:   "width = 4\nheight = 4\n[[shape]]\nkind = \"box\"\nglyph = \"ab\"",
			wantErr: ErrInvalidScene,
		},
		{
			name:    "Bad color",
			input:   "width = 4\nheight = 4\n[[shape]]\nkind = \"box\"\ncolor = \"red\"",
			wantErr: ErrInvalidScene,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected error to mention %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}

	if _, err := Decode(strings.NewReader("width = ")); err == nil {
		t.Error("Expected syntax error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(sampleScene), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(s.Shapes) != 5 {
		t.Errorf("Expected 5 shapes, got %d", len(s.Shapes))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
