package raster

import (
	"fmt"
	"iter"

	"github.com/lixenwraith/gridgeom/core"
)

// RadiusContext holds the scratch state of a radius flood so repeated queries
// at the same radius reuse one visited buffer and one queue
//
// A context serves a single enumeration at a time: do not start a second
// Positions range on the same context before the first has finished or been
// abandoned. Not safe for concurrent use.
type RadiusContext struct {
	shape  core.Radius
	center core.Point
	radius int
	bounds core.Rectangle

	// Visited flags over the (2r+1)² window centered on center
	visited []bool
	side    int
	fresh   bool // buffer just allocated, already zero

	// Reusable BFS queue, consumed by head index
	queue []core.Point
}

// NewRadiusContext creates a context for floods of the given shape and size
// An empty bounds rectangle means unrestricted
func NewRadiusContext(shape core.Radius, center core.Point, radius int, bounds core.Rectangle) (*RadiusContext, error) {
	c := &RadiusContext{
		shape:  shape,
		center: center,
		bounds: bounds,
		radius: -1,
	}
	if err := c.SetRadius(radius); err != nil {
		return nil, err
	}
	return c, nil
}

// SetRadius changes the radius; the visited buffer is reallocated only when the value differs
func (c *RadiusContext) SetRadius(radius int) error {
	if radius < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	if radius == c.radius && c.visited != nil {
		return nil
	}
	c.radius = radius
	c.side = 2*radius + 1
	c.visited = make([]bool, c.side*c.side)
	c.fresh = true
	return nil
}

// SetCenter moves the flood origin
func (c *RadiusContext) SetCenter(center core.Point) {
	c.center = center
}

// SetBounds restricts the flood to bounds; EmptyRectangle removes the restriction
func (c *RadiusContext) SetBounds(bounds core.Rectangle) {
	c.bounds = bounds
}

// SetShape changes the radius shape
func (c *RadiusContext) SetShape(shape core.Radius) {
	c.shape = shape
}

func (c *RadiusContext) Shape() core.Radius     { return c.shape }
func (c *RadiusContext) Center() core.Point     { return c.center }
func (c *RadiusContext) Radius() int            { return c.radius }
func (c *RadiusContext) Bounds() core.Rectangle { return c.bounds }

// reset prepares the visited buffer for a new enumeration
func (c *RadiusContext) reset() {
	if c.fresh {
		c.fresh = false
		return
	}
	clear(c.visited)
}

// index maps a point within the window to its visited slot
func (c *RadiusContext) index(p core.Point) int {
	return (p.Y-c.center.Y+c.radius)*c.side + (p.X - c.center.X + c.radius)
}

// Positions yields every cell within radius of center, breadth-first
// For Square and Diamond shapes cells arrive in nondecreasing distance order
// If bounds are set and exclude the center, nothing is yielded
func (c *RadiusContext) Positions() iter.Seq[core.Point] {
	return func(yield func(core.Point) bool) {
		c.reset()

		hasBounds := !c.bounds.IsEmpty()
		if hasBounds && !c.bounds.Contains(c.center) {
			return
		}

		dirs := core.AdjacencyRuleFor(c.shape).Directions()
		dist := core.DistanceFor(c.shape)
		limit := float64(c.radius)

		c.queue = append(c.queue[:0], c.center)
		c.visited[c.index(c.center)] = true

		for head := 0; head < len(c.queue); head++ {
			cur := c.queue[head]
			if !yield(cur) {
				return
			}

			for _, d := range dirs {
				n := cur.Add(d.Delta())
				// Any metric within radius implies Chebyshev within radius, so n is inside the window
				if dist.Calculate(c.center, n) > limit {
					continue
				}
				if hasBounds && !c.bounds.Contains(n) {
					continue
				}
				i := c.index(n)
				if c.visited[i] {
					continue
				}
				c.visited[i] = true
				c.queue = append(c.queue, n)
			}
		}
	}
}

// PositionsInRadius returns every cell within radius of center under the metric of shape
// Each range allocates its own context; use RadiusContext to reuse buffers across queries
func PositionsInRadius(shape core.Radius, center core.Point, radius int, bounds core.Rectangle) (iter.Seq[core.Point], error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	return func(yield func(core.Point) bool) {
		c, _ := NewRadiusContext(shape, center, radius, bounds)
		for p := range c.Positions() {
			if !yield(p) {
				return
			}
		}
	}, nil
}

// RadiusArea collects the flood into an Area
func RadiusArea(shape core.Radius, center core.Point, radius int, bounds core.Rectangle) (*core.Area, error) {
	seq, err := PositionsInRadius(shape, center, radius, bounds)
	if err != nil {
		return nil, err
	}
	return core.AreaFromSeq(seq), nil
}
