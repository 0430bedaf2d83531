package raster

import (
	"fmt"
	"iter"

	"github.com/lixenwraith/gridgeom/core"
)

// CircleTraverser walks the outline of a circle with the midpoint error method
// Each tick of the error loop produces four points, one per quadrant
// Points repeat where quadrants meet; collect into core.Area to deduplicate
type CircleTraverser struct {
	center  core.Point
	xi, yi  int
	err     int
	quad    int // next quadrant to emit, 0..3
	single  bool
	done    bool
	curr    core.Point
	started bool
}

// NewCircleTraverser creates an iterator over the outline of the circle
// Radius 0 yields the center alone; a negative radius is rejected
func NewCircleTraverser(center core.Point, radius int) (CircleTraverser, error) {
	if radius < 0 {
		return CircleTraverser{}, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	return CircleTraverser{
		center: center,
		xi:     -radius,
		yi:     0,
		err:    2 - 2*radius, // II. quadrant start
		single: radius == 0,
	}, nil
}

// Next advances to the next outline point
// Returns true if a valid point is available via Pos()
func (t *CircleTraverser) Next() bool {
	if t.done {
		return false
	}
	if t.single {
		if t.started {
			t.done = true
			return false
		}
		t.started = true
		t.curr = t.center
		return true
	}

	if t.quad == 4 {
		t.advance()
		if t.xi >= 0 {
			t.done = true
			return false
		}
		t.quad = 0
	}

	c := t.center
	switch t.quad {
	case 0:
		t.curr = core.Point{X: c.X - t.xi, Y: c.Y + t.yi}
	case 1:
		t.curr = core.Point{X: c.X - t.yi, Y: c.Y - t.xi}
	case 2:
		t.curr = core.Point{X: c.X + t.xi, Y: c.Y - t.yi}
	case 3:
		t.curr = core.Point{X: c.X + t.yi, Y: c.Y + t.xi}
	}
	t.quad++
	return true
}

// advance performs one error step of the midpoint loop
func (t *CircleTraverser) advance() {
	r := t.err
	if r <= t.yi {
		t.yi++
		t.err += t.yi*2 + 1
	}
	// Step x when the diagonal error is positive or no second y-step happened
	if r > t.xi || t.err > t.yi {
		t.xi++
		t.err += t.xi*2 + 1
	}
}

// Pos returns the current point
func (t *CircleTraverser) Pos() core.Point {
	return t.curr
}

// Circle returns the outline of the circle around center
func Circle(center core.Point, radius int) (iter.Seq[core.Point], error) {
	t, err := NewCircleTraverser(center, radius)
	if err != nil {
		return nil, err
	}
	return func(yield func(core.Point) bool) {
		it := t
		for it.Next() {
			if !yield(it.Pos()) {
				return
			}
		}
	}, nil
}
