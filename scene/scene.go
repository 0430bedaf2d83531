// Package scene decodes TOML shape lists and builds them into layered areas
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gridgeom/core"
	"github.com/lixenwraith/gridgeom/raster"
	"github.com/lixenwraith/gridgeom/render"
)

var (
	ErrUnknownKind  = errors.New("unknown shape kind")
	ErrInvalidScene = errors.New("invalid scene")
)

// Shape kinds
const (
	KindLine    = "line"
	KindCircle  = "circle"
	KindEllipse = "ellipse"
	KindBox     = "box"
	KindRadius  = "radius"
)

// Scene is the decoded form of a scene file
type Scene struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Origin [2]int  `toml:"origin"`
	Shapes []Shape `toml:"shape"`
}

// Shape is one [[shape]] table
// From is the start point, circle center or flood center; To is the end point or opposite corner
type Shape struct {
	Kind      string `toml:"kind"`
	From      [2]int `toml:"from"`
	To        [2]int `toml:"to"`
	Radius    int    `toml:"radius"`
	Algorithm string `toml:"algorithm"` // line only
	Metric    string `toml:"metric"`    // radius only: square, diamond, circle
	Bounds    []int  `toml:"bounds"`    // radius only: x, y, w, h
	Glyph     string `toml:"glyph"`
	Color     string `toml:"color"` // #rrggbb
}

// Layer is a built shape ready to draw
type Layer struct {
	Kind  string
	Glyph rune
	Color render.RGB
	Area  *core.Area
}

// Load decodes a scene file from disk
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a scene from r; unknown keys are rejected
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScene, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks canvas size and every shape without building
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	for i := range s.Shapes {
		if err := s.Shapes[i].validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

// Frame returns the grid rectangle the scene covers
func (s *Scene) Frame() core.Rectangle {
	return core.NewRectangle(s.Origin[0], s.Origin[1], s.Width, s.Height)
}

// Build rasterizes every shape into its own layer, in file order
func (s *Scene) Build() ([]Layer, error) {
	layers := make([]Layer, 0, len(s.Shapes))
	for i := range s.Shapes {
		l, err := s.Shapes[i].Build(i)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		layers = append(layers, l)
	}
	return layers, nil
}

// Render builds the scene onto a new canvas; later layers draw over earlier ones
func (s *Scene) Render() (*render.Canvas, []Layer, error) {
	layers, err := s.Build()
	if err != nil {
		return nil, nil, err
	}
	c := render.NewCanvasFor(s.Frame())
	for _, l := range layers {
		c.PlotArea(l.Area, l.Glyph, l.Color)
	}
	return c, layers, nil
}

func (sh *Shape) from() core.Point { return core.Pt(sh.From[0], sh.From[1]) }
func (sh *Shape) to() core.Point   { return core.Pt(sh.To[0], sh.To[1]) }

func (sh *Shape) validate() error {
	switch sh.Kind {
	case KindLine:
		if _, err := sh.algorithm(); err != nil {
			return err
		}
	case KindCircle:
		if sh.Radius < 0 {
			return fmt.Errorf("%w: %d", raster.ErrNegativeRadius, sh.Radius)
		}
	case KindEllipse, KindBox:
	case KindRadius:
		if sh.Radius < 0 {
			return fmt.Errorf("%w: %d", raster.ErrNegativeRadius, sh.Radius)
		}
		if _, err := sh.metric(); err != nil {
			return err
		}
		if _, err := sh.bounds(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, sh.Kind)
	}
	if utf8.RuneCountInString(sh.Glyph) > 1 {
		return fmt.Errorf("%w: glyph %q is more than one character", ErrInvalidScene, sh.Glyph)
	}
	if sh.Color != "" {
		if _, err := render.ParseHex(sh.Color); err != nil {
			return fmt.Errorf("%w: color %q", ErrInvalidScene, sh.Color)
		}
	}
	return nil
}

func (sh *Shape) algorithm() (raster.LineAlgorithm, error) {
	if sh.Algorithm == "" {
		return raster.Bresenham, nil
	}
	return raster.ParseLineAlgorithm(sh.Algorithm)
}

func (sh *Shape) metric() (core.Radius, error) {
	if sh.Metric == "" {
		return core.Circle, nil
	}
	return core.ParseRadius(sh.Metric)
}

func (sh *Shape) bounds() (core.Rectangle, error) {
	switch len(sh.Bounds) {
	case 0:
		return core.EmptyRectangle, nil
	case 4:
		b := sh.Bounds
		if b[2] <= 0 || b[3] <= 0 {
			return core.EmptyRectangle, fmt.Errorf("%w: bounds size %dx%d", ErrInvalidScene, b[2], b[3])
		}
		return core.NewRectangle(b[0], b[1], b[2], b[3]), nil
	default:
		return core.EmptyRectangle, fmt.Errorf("%w: bounds needs 4 values, got %d", ErrInvalidScene, len(sh.Bounds))
	}
}

// Build rasterizes the shape; index picks the default layer color
func (sh *Shape) Build(index int) (Layer, error) {
	if err := sh.validate(); err != nil {
		return Layer{}, err
	}

	l := Layer{Kind: sh.Kind, Glyph: defaultGlyph(sh.Kind), Color: render.LayerColor(index)}
	if sh.Glyph != "" {
		l.Glyph, _ = utf8.DecodeRuneInString(sh.Glyph)
	}
	if sh.Color != "" {
		l.Color, _ = render.ParseHex(sh.Color)
	}

	switch sh.Kind {
	case KindLine:
		alg, _ := sh.algorithm()
		seq, err := raster.Line(sh.from(), sh.to(), alg)
		if err != nil {
			return Layer{}, err
		}
		l.Area = core.AreaFromSeq(seq)
	case KindCircle:
		seq, err := raster.Circle(sh.from(), sh.Radius)
		if err != nil {
			return Layer{}, err
		}
		l.Area = core.AreaFromSeq(seq)
	case KindEllipse:
		l.Area = core.AreaFromSeq(raster.Ellipse(sh.from(), sh.to()))
	case KindBox:
		l.Area = core.AreaFromSeq(raster.Box(corners(sh.from(), sh.to())))
	case KindRadius:
		metric, _ := sh.metric()
		bounds, _ := sh.bounds()
		area, err := raster.RadiusArea(metric, sh.from(), sh.Radius, bounds)
		if err != nil {
			return Layer{}, err
		}
		l.Area = area
	}
	return l, nil
}

// corners returns the rectangle spanned by two opposite corners in any order
func corners(a, b core.Point) core.Rectangle {
	return core.RectangleWithExtents(
		core.Pt(min(a.X, b.X), min(a.Y, b.Y)),
		core.Pt(max(a.X, b.X), max(a.Y, b.Y)),
	)
}

func defaultGlyph(kind string) rune {
	switch kind {
	case KindLine:
		return '*'
	case KindCircle, KindEllipse:
		return 'o'
	case KindBox:
		return '#'
	default:
		return '.'
	}
}
