package core

import (
	"fmt"
	"iter"
)

// Rectangle is an axis-aligned block of grid cells
// X, Y is the top-left (minimum) corner; Width and Height count cells
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// EmptyRectangle is the zero-size sentinel
var EmptyRectangle = Rectangle{}

// NewRectangle creates a rectangle, clamping negative sizes to zero
func NewRectangle(x, y, width, height int) Rectangle {
	return Rectangle{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// RectangleWithExtents creates the rectangle spanning min..max inclusive
// Returns EmptyRectangle if max lies before min on either axis
func RectangleWithExtents(minExtent, maxExtent Point) Rectangle {
	if maxExtent.X < minExtent.X || maxExtent.Y < minExtent.Y {
		return EmptyRectangle
	}
	return Rectangle{
		X:      minExtent.X,
		Y:      minExtent.Y,
		Width:  maxExtent.X - minExtent.X + 1,
		Height: maxExtent.Y - minExtent.Y + 1,
	}
}

// IsEmpty reports whether the rectangle covers no cells
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// MinExtent returns the top-left cell
func (r Rectangle) MinExtent() Point {
	return Point{X: r.X, Y: r.Y}
}

// MaxExtent returns the bottom-right cell (inclusive)
func (r Rectangle) MaxExtent() Point {
	return Point{X: r.X + r.Width - 1, Y: r.Y + r.Height - 1}
}

// Area returns the number of cells covered
func (r Rectangle) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Center returns the center cell, rounding toward the top-left
func (r Rectangle) Center() Point {
	return Point{X: r.X + (r.Width-1)/2, Y: r.Y + (r.Height-1)/2}
}

// Contains checks if point is within rectangle
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ContainsRect checks if other lies entirely within r
// An empty rectangle contains nothing and is contained by nothing
func (r Rectangle) ContainsRect(other Rectangle) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// Intersects checks if the two rectangles share at least one cell
func (r Rectangle) Intersects(other Rectangle) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	if r.X >= other.X+other.Width || other.X >= r.X+r.Width {
		return false
	}
	if r.Y >= other.Y+other.Height || other.Y >= r.Y+r.Height {
		return false
	}
	return true
}

// Intersection returns the shared cells of both rectangles, EmptyRectangle if none
func (r Rectangle) Intersection(other Rectangle) Rectangle {
	if !r.Intersects(other) {
		return EmptyRectangle
	}
	minX, minY := max(r.X, other.X), max(r.Y, other.Y)
	maxX := min(r.X+r.Width, other.X+other.Width)
	maxY := min(r.Y+r.Height, other.Y+other.Height)
	return Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Union returns the smallest rectangle enclosing both; empty operands are ignored
func (r Rectangle) Union(other Rectangle) Rectangle {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	minX, minY := min(r.X, other.X), min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)
	return Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Expand grows the rectangle by dx cells left and right and dy cells top and bottom
// Negative values shrink it; a rectangle shrunk past zero becomes empty
func (r Rectangle) Expand(dx, dy int) Rectangle {
	w, h := r.Width+2*dx, r.Height+2*dy
	if w <= 0 || h <= 0 {
		return EmptyRectangle
	}
	return Rectangle{X: r.X - dx, Y: r.Y - dy, Width: w, Height: h}
}

// Translate moves the rectangle by delta
func (r Rectangle) Translate(delta Point) Rectangle {
	r.X += delta.X
	r.Y += delta.Y
	return r
}

// Positions yields every cell in row-major order
func (r Rectangle) Positions() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if r.IsEmpty() {
			return
		}
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// PerimeterPositions yields each edge cell once, clockwise from the top-left corner
func (r Rectangle) PerimeterPositions() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if r.IsEmpty() {
			return
		}
		maxP := r.MaxExtent()
		// Top row, left to right
		for x := r.X; x <= maxP.X; x++ {
			if !yield(Point{X: x, Y: r.Y}) {
				return
			}
		}
		// Right column, excluding the top corner
		for y := r.Y + 1; y <= maxP.Y; y++ {
			if !yield(Point{X: maxP.X, Y: y}) {
				return
			}
		}
		// Single row or column: already complete
		if r.Height == 1 || r.Width == 1 {
			return
		}
		// Bottom row, right to left, excluding the right corner
		for x := maxP.X - 1; x >= r.X; x-- {
			if !yield(Point{X: x, Y: maxP.Y}) {
				return
			}
		}
		// Left column, bottom to top, excluding both corners
		for y := maxP.Y - 1; y > r.Y; y-- {
			if !yield(Point{X: r.X, Y: y}) {
				return
			}
		}
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle{%d,%d %dx%d}", r.X, r.Y, r.Width, r.Height)
}
