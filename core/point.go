package core

import "fmt"

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both coordinates by k
func (p Point) Mul(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Neg returns -p
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Translate offsets the point by (dx, dy)
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbor of p in direction d
func (p Point) Step(d Direction) Point {
	return p.Add(d.Delta())
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// abs is the integer absolute value used by the distance metrics
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
