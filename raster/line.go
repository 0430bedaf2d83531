package raster

import (
	"fmt"
	"iter"
	"strings"

	"github.com/lixenwraith/gridgeom/core"
	"github.com/lixenwraith/gridgeom/vmath"
)

// LineAlgorithm selects how a segment is rasterized
type LineAlgorithm uint8

const (
	// Bresenham steps the major axis every point and the minor axis when the error crosses over
	Bresenham LineAlgorithm = iota
	// DDA accumulates the minor-axis offset in Q16.16 and rounds; straighter than Bresenham on shallow slopes
	DDA
	// Orthogonal moves one cardinal step per point, never diagonally
	Orthogonal
)

func (a LineAlgorithm) String() string {
	switch a {
	case Bresenham:
		return "bresenham"
	case DDA:
		return "dda"
	case Orthogonal:
		return "orthogonal"
	}
	return fmt.Sprintf("LineAlgorithm(%d)", uint8(a))
}

// ParseLineAlgorithm resolves an algorithm name, case-insensitive
func ParseLineAlgorithm(s string) (LineAlgorithm, error) {
	switch strings.ToLower(s) {
	case "bresenham":
		return Bresenham, nil
	case "dda":
		return DDA, nil
	case "orthogonal", "ortho":
		return Orthogonal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
}

// LineTraverser is a zero-allocation iterator over the cells of a segment
// Both endpoints are included; start == end yields a single cell
type LineTraverser struct {
	alg       LineAlgorithm
	start     core.Point
	curr      core.Point
	remaining int // steps left after the current cell
	started   bool

	// Bresenham: diagonal step (dx1, dy1), straight step (dx2, dy2)
	dx1, dy1, dx2, dy2 int
	longest, shortest  int
	numerator          int

	// DDA: octant bit 0 = y major, bit 1 = x negative, bit 2 = y negative
	octant int
	step   int // cells walked along the major axis
	frac   int // Q16.16 minor-axis offset
	move   int // Q16.16 minor-axis increment per major step

	// Orthogonal
	nx, ny       int
	ix, iy       int
	signX, signY int
}

// NewLineTraverser creates an iterator from start to end with the given algorithm
func NewLineTraverser(start, end core.Point, alg LineAlgorithm) (LineTraverser, error) {
	t := LineTraverser{alg: alg, start: start, curr: start}
	dx, dy := end.X-start.X, end.Y-start.Y

	switch alg {
	case Bresenham:
		t.initBresenham(dx, dy)
	case DDA:
		t.initDDA(dx, dy)
	case Orthogonal:
		t.initOrthogonal(dx, dy)
	default:
		return LineTraverser{}, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, uint8(alg))
	}
	return t, nil
}

// Next advances the traverser to the next cell
// Returns true if a valid cell is available via Pos()
func (t *LineTraverser) Next() bool {
	if !t.started {
		t.started = true
		return true
	}
	if t.remaining == 0 {
		return false
	}
	t.remaining--

	switch t.alg {
	case Bresenham:
		t.stepBresenham()
	case DDA:
		t.stepDDA()
	case Orthogonal:
		t.stepOrthogonal()
	}
	return true
}

// Pos returns the current cell
func (t *LineTraverser) Pos() core.Point {
	return t.curr
}

// Len returns the total number of cells the traverser emits
func (t *LineTraverser) Len() int {
	switch t.alg {
	case Bresenham:
		return t.longest + 1
	case DDA:
		return max(t.nx, t.ny) + 1
	}
	return t.nx + t.ny + 1
}

// --- Bresenham ---

func (t *LineTraverser) initBresenham(w, h int) {
	t.dx1, t.dy1 = vmath.Sign(w), vmath.Sign(h)
	t.dx2, t.dy2 = vmath.Sign(w), 0
	t.longest, t.shortest = vmath.Abs(w), vmath.Abs(h)
	if t.longest <= t.shortest {
		// Y major (ties included): straight step runs along Y
		t.longest, t.shortest = vmath.Abs(h), vmath.Abs(w)
		t.dx2, t.dy2 = 0, vmath.Sign(h)
	}
	t.numerator = t.longest >> 1
	t.remaining = t.longest
}

func (t *LineTraverser) stepBresenham() {
	t.numerator += t.shortest
	if t.numerator >= t.longest {
		t.numerator -= t.longest
		t.curr.X += t.dx1
		t.curr.Y += t.dy1
	} else {
		t.curr.X += t.dx2
		t.curr.Y += t.dy2
	}
}

// --- DDA ---

func (t *LineTraverser) initDDA(dx, dy int) {
	t.nx, t.ny = vmath.Abs(dx), vmath.Abs(dy)
	if dy < 0 {
		t.octant |= 4
	}
	if dx < 0 {
		t.octant |= 2
	}
	if t.ny > t.nx {
		t.octant |= 1
	}

	// Axis-aligned and single-cell lines walk one axis with no minor offset
	switch {
	case t.nx == 0 || t.ny == 0:
		t.move = 0
	case t.octant&1 == 0:
		t.move = vmath.Ratio(t.ny, t.nx)
	default:
		t.move = vmath.Ratio(t.nx, t.ny)
	}
	t.remaining = max(t.nx, t.ny)
}

func (t *LineTraverser) stepDDA() {
	t.step++
	t.frac += t.move

	signX, signY := 1, 1
	if t.octant&2 != 0 {
		signX = -1
	}
	if t.octant&4 != 0 {
		signY = -1
	}

	minor := vmath.ToIntRound(t.frac)
	if t.octant&1 == 0 {
		t.curr = core.Point{X: t.start.X + signX*t.step, Y: t.start.Y + signY*minor}
	} else {
		t.curr = core.Point{X: t.start.X + signX*minor, Y: t.start.Y + signY*t.step}
	}
}

// --- Orthogonal ---

func (t *LineTraverser) initOrthogonal(dx, dy int) {
	t.nx, t.ny = vmath.Abs(dx), vmath.Abs(dy)
	t.signX, t.signY = -1, -1
	if dx > 0 {
		t.signX = 1
	}
	if dy > 0 {
		t.signY = 1
	}
	t.remaining = t.nx + t.ny
}

// stepOrthogonal advances whichever axis lags proportionally behind
// Compares (1+2ix)/nx against (1+2iy)/ny cross-multiplied to stay in integers
func (t *LineTraverser) stepOrthogonal() {
	if (1+2*t.ix)*t.ny < (1+2*t.iy)*t.nx {
		t.curr.X += t.signX
		t.ix++
	} else {
		t.curr.Y += t.signY
		t.iy++
	}
}

// Line returns the cells from start to end, both inclusive
// The sequence is restartable: each range walks the segment from scratch
func Line(start, end core.Point, alg LineAlgorithm) (iter.Seq[core.Point], error) {
	t, err := NewLineTraverser(start, end, alg)
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
