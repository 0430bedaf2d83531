package raster

import (
	"iter"

	"github.com/lixenwraith/gridgeom/core"
	"github.com/lixenwraith/gridgeom/vmath"
)

const (
	ellipseMain = iota
	ellipseTip
)

// EllipseTraverser walks the outline of the axis-aligned ellipse inscribed in
// the rectangle spanned by two opposite corners
// A main phase plots four mirrored points per error step; a tip phase finishes
// very flat ellipses whose x-walk ends before the y-extent is covered
type EllipseTraverser struct {
	x0, y0, x1, y1 int
	b              int // vertical diameter
	aa, bb         int // 8a², 8b² error increments
	dx, dy         int // running error increments
	err            int

	phase   int
	quad    int
	single  bool
	started bool
	done    bool
	curr    core.Point
}

// NewEllipseTraverser creates an iterator over the ellipse bounded by the two corners
// Corner order does not matter; identical corners yield one point
func NewEllipseTraverser(f1, f2 core.Point) EllipseTraverser {
	if f1 == f2 {
		return EllipseTraverser{single: true, curr: f1}
	}

	x0, y0, x1, y1 := f1.X, f1.Y, f2.X, f2.Y
	a := vmath.Abs(x1 - x0)
	b := vmath.Abs(y1 - y0)
	b1 := b & 1

	t := EllipseTraverser{b: b}
	t.dx = 4 * (1 - a) * b * b
	t.dy = 4 * (b1 + 1) * a * a
	t.err = t.dx + t.dy + b1*a*a

	// Normalize so (x0, y0) is the lesser corner
	if x0 > x1 {
		x0 = x1
		x1 += a
	}
	if y0 > y1 {
		y0 = y1
	}
	// Start on the middle row(s)
	y0 += (b + 1) / 2
	y1 = y0 - b1

	t.x0, t.y0, t.x1, t.y1 = x0, y0, x1, y1
	t.aa = 8 * a * a
	t.bb = 8 * b * b
	return t
}

// Next advances to the next outline point
// Returns true if a valid point is available via Pos()
func (t *EllipseTraverser) Next() bool {
	if t.done {
		return false
	}
	if t.single {
		if t.started {
			t.done = true
			return false
		}
		t.started = true
		return true
	}

	if t.phase == ellipseMain {
		if t.quad == 4 {
			t.advance()
			t.quad = 0
			if t.x0 > t.x1 {
				t.phase = ellipseTip
			}
		}
		if t.phase == ellipseMain {
			t.emitMain()
			return true
		}
	}

	if t.quad == 4 {
		t.quad = 0
	}
	if t.quad == 0 && t.y0-t.y1 >= t.b {
		t.done = true
		return false
	}
	t.emitTip()
	return true
}

func (t *EllipseTraverser) emitMain() {
	switch t.quad {
	case 0:
		t.curr = core.Point{X: t.x1, Y: t.y0} // I
	case 1:
		t.curr = core.Point{X: t.x0, Y: t.y0} // II
	case 2:
		t.curr = core.Point{X: t.x0, Y: t.y1} // III
	case 3:
		t.curr = core.Point{X: t.x1, Y: t.y1} // IV
	}
	t.quad++
}

// advance performs one error step; x and y may both move
func (t *EllipseTraverser) advance() {
	e2 := 2 * t.err
	if e2 <= t.dy {
		t.y0++
		t.y1--
		t.dy += t.aa
		t.err += t.dy
	}
	if e2 >= t.dx || 2*t.err > t.dy {
		t.x0++
		t.x1--
		t.dx += t.bb
		t.err += t.dx
	}
}

// emitTip extends the two center columns up and down to the vertical extent
func (t *EllipseTraverser) emitTip() {
	switch t.quad {
	case 0:
		t.curr = core.Point{X: t.x0 - 1, Y: t.y0}
	case 1:
		t.curr = core.Point{X: t.x1 + 1, Y: t.y0}
		t.y0++
	case 2:
		t.curr = core.Point{X: t.x0 - 1, Y: t.y1}
	case 3:
		t.curr = core.Point{X: t.x1 + 1, Y: t.y1}
		t.y1--
	}
	t.quad++
}

// Pos returns the current point
func (t *EllipseTraverser) Pos() core.Point {
	return t.curr
}

// Ellipse returns the outline of the ellipse inscribed in the rectangle with corners f1 and f2
func Ellipse(f1, f2 core.Point) iter.Seq[core.Point] {
	t := NewEllipseTraverser(f1, f2)
	return func(yield func(core.Point) bool) {
		it := t
		for it.Next() {
			if !yield(it.Pos()) {
				return
			}
		}
	}
}

// Box returns the outline of a rectangle, each cell once, clockwise from the top-left
func Box(r core.Rectangle) iter.Seq[core.Point] {
	return r.PerimeterPositions()
}
