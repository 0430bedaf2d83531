package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridgeom/core"
	"github.com/lixenwraith/gridgeom/raster"
	"github.com/lixenwraith/gridgeom/render"
)

const (
	cursorBlinkMs = 500
	errorBlinkMs  = 500
	statusHeight  = 1
)

// Shape kinds in cycle order
const (
	kindLine = iota
	kindCircle
	kindEllipse
	kindBox
	kindRadius
	kindCount
)

var kindNames = [kindCount]string{"line", "circle", "ellipse", "box", "radius"}

var algorithms = []raster.LineAlgorithm{raster.Bresenham, raster.DDA, raster.Orthogonal}

var metrics = []core.Radius{core.Circle, core.Square, core.Diamond}

// placed is a committed shape
type placed struct {
	kind  int
	area  *core.Area
	color render.RGB
}

// Sandbox holds the editor state independent of the terminal
type Sandbox struct {
	width, height int // drawable area, status row excluded

	cursor    core.Point
	anchor    core.Point
	anchored  bool
	kind      int
	algorithm int
	metric    int

	shapes []placed

	cursorVisible   bool
	cursorError     bool
	cursorErrorTime time.Time
	cursorBlinkTime time.Time

	canvas    *render.Canvas
	onPlace   func()
	onBlocked func()
}

// NewSandbox creates an editor for a screen of the given size
func NewSandbox(width, height int) *Sandbox {
	s := &Sandbox{
		cursorVisible:   true,
		cursorBlinkTime: time.Now(),
		canvas:          render.NewCanvas(0, 0),
	}
	s.Resize(width, height)
	s.cursor = core.Pt(s.width/2, s.height/2)
	return s
}

// Resize adapts to a new screen size, clamping the cursor
func (s *Sandbox) Resize(width, height int) {
	s.width = max(width, 1)
	s.height = max(height-statusHeight, 1)
	s.canvas.Reframe(core.NewRectangle(0, 0, s.width, s.height))
	s.cursor = core.Pt(min(s.cursor.X, s.width-1), min(s.cursor.Y, s.height-1))
}

// bounds returns the drawable rectangle
func (s *Sandbox) bounds() core.Rectangle {
	return core.NewRectangle(0, 0, s.width, s.height)
}

// radius is the rounded Euclidean distance from anchor to cursor
func (s *Sandbox) radius() int {
	return int(math.Round(core.Euclidean.Calculate(s.anchor, s.cursor)))
}

// Preview rasterizes the pending shape from anchor to cursor
// Without an anchor nothing is pending
func (s *Sandbox) Preview() (*core.Area, error) {
	if !s.anchored {
		return core.NewArea(), nil
	}
	switch s.kind {
	case kindLine:
		seq, err := raster.Line(s.anchor, s.cursor, algorithms[s.algorithm])
		if err != nil {
			return nil, err
		}
		return core.AreaFromSeq(seq), nil
	case kindCircle:
		seq, err := raster.Circle(s.anchor, s.radius())
		if err != nil {
			return nil, err
		}
		return core.AreaFromSeq(seq), nil
	case kindEllipse:
		return core.AreaFromSeq(raster.Ellipse(s.anchor, s.cursor)), nil
	case kindBox:
		r := core.RectangleWithExtents(
			core.Pt(min(s.anchor.X, s.cursor.X), min(s.anchor.Y, s.cursor.Y)),
			core.Pt(max(s.anchor.X, s.cursor.X), max(s.anchor.Y, s.cursor.Y)),
		)
		return core.AreaFromSeq(raster.Box(r)), nil
	default:
		return raster.RadiusArea(metrics[s.metric], s.anchor, s.radius(), s.bounds())
	}
}

// Place commits the pending shape; the first call only sets the anchor
func (s *Sandbox) Place() error {
	if !s.anchored {
		s.anchor = s.cursor
		s.anchored = true
		return nil
	}
	a, err := s.Preview()
	if err != nil {
		return err
	}
	s.shapes = append(s.shapes, placed{kind: s.kind, area: a, color: render.LayerColor(len(s.shapes))})
	s.anchored = false
	if s.onPlace != nil {
		s.onPlace()
	}
	return nil
}

// Move shifts the cursor, flagging an error blink at the edges
func (s *Sandbox) Move(d core.Direction) {
	next := s.cursor.Add(d.Delta())
	if !s.bounds().Contains(next) {
		s.flagError()
		return
	}
	s.cursor = next
	s.cursorVisible = true
	s.cursorBlinkTime = time.Now()
}

// Undo removes the last placed shape or drops a pending anchor
func (s *Sandbox) Undo() {
	if s.anchored {
		s.anchored = false
		return
	}
	if len(s.shapes) > 0 {
		s.shapes = s.shapes[:len(s.shapes)-1]
	}
}

// Covered returns every cell covered by placed shapes
func (s *Sandbox) Covered() *core.Area {
	all := core.NewArea()
	for _, p := range s.shapes {
		all.AddArea(p.area)
	}
	return all
}

// Status describes the current tool
func (s *Sandbox) Status() string {
	status := fmt.Sprintf(" %s", kindNames[s.kind])
	switch s.kind {
	case kindLine:
		status += " [" + algorithms[s.algorithm].String() + "]"
	case kindRadius:
		status += " [" + metrics[s.metric].String() + "]"
	}
	if s.anchored {
		status += fmt.Sprintf(" from %v to %v", s.anchor, s.cursor)
	} else {
		status += fmt.Sprintf(" at %v", s.cursor)
	}
	return status + fmt.Sprintf(" | shapes %d cells %d | tab kind, a alg, m metric, space place, u undo, q quit",
		len(s.shapes), s.Covered().Count())
}

// handleKey applies a key press; returns false to quit
func (s *Sandbox) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.Move(core.DirUp)
	case tcell.KeyDown:
		s.Move(core.DirDown)
	case tcell.KeyLeft:
		s.Move(core.DirLeft)
	case tcell.KeyRight:
		s.Move(core.DirRight)
	case tcell.KeyTab:
		s.kind = (s.kind + 1) % kindCount
	case tcell.KeyEnter:
		s.place()
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'k':
			s.Move(core.DirUp)
		case 'j':
			s.Move(core.DirDown)
		case 'h':
			s.Move(core.DirLeft)
		case 'l':
			s.Move(core.DirRight)
		case 'y':
			s.Move(core.DirUpLeft)
		case 'u':
			s.Undo()
		case 'b':
			s.Move(core.DirDownLeft)
		case 'n':
			s.Move(core.DirDownRight)
		case 'o':
			s.Move(core.DirUpRight)
		case 'a':
			s.algorithm = (s.algorithm + 1) % len(algorithms)
		case 'm':
			s.metric = (s.metric + 1) % len(metrics)
		case 'c':
			s.shapes = s.shapes[:0]
			s.anchored = false
		case ' ':
			s.place()
		}
	}
	return true
}

func (s *Sandbox) place() {
	if err := s.Place(); err != nil {
		s.flagError()
	}
}

// flagError starts the cursor error blink
func (s *Sandbox) flagError() {
	s.cursorError = true
	s.cursorErrorTime = time.Now()
	if s.onBlocked != nil {
		s.onBlocked()
	}
}

// compose redraws the canvas from placed shapes, the preview and the cursor
func (s *Sandbox) compose(now time.Time) *render.Canvas {
	c := s.canvas
	c.Clear()

	for p := range s.bounds().Positions() {
		if p.X%4 == 0 && p.Y%2 == 0 {
			c.SetGlyph(p, '·', render.RgbGridDot)
		}
	}

	for _, p := range s.shapes {
		c.PlotArea(p.area, glyphFor(p.kind), p.color)
	}

	if preview, err := s.Preview(); err == nil && preview.Count() > 0 {
		if s.kind == kindRadius {
			dist := core.DistanceFor(metrics[s.metric])
			span := float64(max(s.radius(), 1))
			c.Shade(preview.All(), func(p core.Point) render.RGB {
				return render.DistancePalette.At(dist.Calculate(s.anchor, p) / span)
			}, render.BlendAlpha, 0.6)
		} else {
			c.PlotArea(preview, glyphFor(s.kind), render.RgbForeground)
		}
	}

	if s.cursorError && now.Sub(s.cursorErrorTime).Milliseconds() > errorBlinkMs {
		s.cursorError = false
	}
	if now.Sub(s.cursorBlinkTime).Milliseconds() > cursorBlinkMs {
		s.cursorVisible = !s.cursorVisible
		s.cursorBlinkTime = now
	}
	if s.cursorVisible {
		col := render.RgbCursor
		if s.cursorError {
			col = render.RgbCursorErr
		}
		c.Set(s.cursor, 0, render.RgbBackground, col, render.BlendReplace, 1)
	}
	return c
}

func glyphFor(kind int) rune {
	switch kind {
	case kindLine:
		return '*'
	case kindBox:
		return '#'
	case kindRadius:
		return '.'
	default:
		return 'o'
	}
}
