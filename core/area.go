package core

import (
	"iter"
	"math"
	"slices"
)

// ReadOnlyArea is a finite set of grid points with known bounds
type ReadOnlyArea interface {
	// Bounds returns the exact bounding box, EmptyRectangle when Count is 0
	Bounds() Rectangle
	Count() int
	// At returns the i-th point in the area's iteration order
	At(i int) Point
	Contains(p Point) bool
	All() iter.Seq[Point]
}

// Area is a mutable set of unique points kept in insertion order
// Bounds grow in O(1) on Add; Remove rescans only when a perimeter point leaves
//
// An Area is not safe for concurrent mutation
type Area struct {
	set       map[Point]struct{}
	positions []Point

	left, top, right, bottom int
}

// NewArea creates an area holding the given points
func NewArea(points ...Point) *Area {
	a := &Area{
		set:       make(map[Point]struct{}, len(points)),
		positions: make([]Point, 0, len(points)),
	}
	a.resetBounds()
	for _, p := range points {
		a.Add(p)
	}
	return a
}

// AreaFromRectangle creates an area covering every cell of r
func AreaFromRectangle(r Rectangle) *Area {
	a := &Area{
		set:       make(map[Point]struct{}, r.Area()),
		positions: make([]Point, 0, r.Area()),
	}
	a.resetBounds()
	a.AddRectangle(r)
	return a
}

// AreaFromSeq creates an area from a point sequence, dropping duplicates
func AreaFromSeq(seq iter.Seq[Point]) *Area {
	a := NewArea()
	a.AddSeq(seq)
	return a
}

// Clone returns an independent copy
func (a *Area) Clone() *Area {
	return &Area{
		set:       cloneSet(a.set),
		positions: slices.Clone(a.positions),
		left:      a.left,
		top:       a.top,
		right:     a.right,
		bottom:    a.bottom,
	}
}

func cloneSet(m map[Point]struct{}) map[Point]struct{} {
	out := make(map[Point]struct{}, len(m))
	for p := range m {
		out[p] = struct{}{}
	}
	return out
}

// Count returns the number of points
func (a *Area) Count() int {
	return len(a.positions)
}

// At returns the i-th point in insertion order; panics if i is out of range like a slice index
func (a *Area) At(i int) Point {
	return a.positions[i]
}

// Positions returns a copy of the points in insertion order
func (a *Area) Positions() []Point {
	return slices.Clone(a.positions)
}

// All yields the points in insertion order
func (a *Area) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range a.positions {
			if !yield(p) {
				return
			}
		}
	}
}

// Bounds returns the exact bounding box of the points, EmptyRectangle if none
func (a *Area) Bounds() Rectangle {
	if len(a.positions) == 0 {
		return EmptyRectangle
	}
	return RectangleWithExtents(Point{a.left, a.top}, Point{a.right, a.bottom})
}

// Contains reports membership in O(1)
func (a *Area) Contains(p Point) bool {
	_, ok := a.set[p]
	return ok
}

// --- Mutation ---

// Add inserts p; adding a point already present is a no-op
func (a *Area) Add(p Point) {
	if a.set == nil {
		a.set = make(map[Point]struct{})
		a.resetBounds()
	}
	if _, ok := a.set[p]; ok {
		return
	}
	a.set[p] = struct{}{}
	a.positions = append(a.positions, p)
	a.extendBounds(p)
}

// AddSeq inserts every point of seq
func (a *Area) AddSeq(seq iter.Seq[Point]) {
	for p := range seq {
		a.Add(p)
	}
}

// AddRectangle inserts every cell of r
func (a *Area) AddRectangle(r Rectangle) {
	a.AddSeq(r.Positions())
}

// AddArea inserts every point of other
func (a *Area) AddArea(other ReadOnlyArea) {
	a.AddSeq(other.All())
}

// Remove deletes p; removing an absent point is a no-op
func (a *Area) Remove(p Point) {
	if !a.Contains(p) {
		return
	}
	delete(a.set, p)
	if i := slices.Index(a.positions, p); i >= 0 {
		a.positions = slices.Delete(a.positions, i, i+1)
	}
	if a.onEdge(p) {
		a.recalculateBounds()
	}
}

// RemoveSeq deletes every point of seq in a single compaction pass
func (a *Area) RemoveSeq(seq iter.Seq[Point]) {
	edge := false
	removed := 0
	for p := range seq {
		if _, ok := a.set[p]; !ok {
			continue
		}
		delete(a.set, p)
		removed++
		if a.onEdge(p) {
			edge = true
		}
	}
	a.compact(removed, edge)
}

// RemoveArea deletes every point of other
func (a *Area) RemoveArea(other ReadOnlyArea) {
	a.RemoveSeq(other.All())
}

// RemoveFunc deletes every point for which pred returns true
func (a *Area) RemoveFunc(pred func(Point) bool) {
	edge := false
	removed := 0
	for _, p := range a.positions {
		if !pred(p) {
			continue
		}
		delete(a.set, p)
		removed++
		if a.onEdge(p) {
			edge = true
		}
	}
	a.compact(removed, edge)
}

// compact drops list entries no longer present in the set
func (a *Area) compact(removed int, edge bool) {
	if removed == 0 {
		return
	}
	a.positions = slices.DeleteFunc(a.positions, func(p Point) bool {
		_, ok := a.set[p]
		return !ok
	})
	if edge {
		a.recalculateBounds()
	}
}

// --- Bounds bookkeeping ---

func (a *Area) resetBounds() {
	a.left, a.top = math.MaxInt, math.MaxInt
	a.right, a.bottom = math.MinInt, math.MinInt
}

func (a *Area) extendBounds(p Point) {
	a.left = min(a.left, p.X)
	a.right = max(a.right, p.X)
	a.top = min(a.top, p.Y)
	a.bottom = max(a.bottom, p.Y)
}

func (a *Area) onEdge(p Point) bool {
	return p.X == a.left || p.X == a.right || p.Y == a.top || p.Y == a.bottom
}

func (a *Area) recalculateBounds() {
	a.resetBounds()
	for _, p := range a.positions {
		a.extendBounds(p)
	}
}

// --- Queries ---

// ContainsArea reports whether every point of other is in a
// An empty other is contained by any area
func (a *Area) ContainsArea(other ReadOnlyArea) bool {
	if other.Count() == 0 {
		return true
	}
	if other.Count() > a.Count() || !a.Bounds().ContainsRect(other.Bounds()) {
		return false
	}
	for p := range other.All() {
		if !a.Contains(p) {
			return false
		}
	}
	return true
}

// Intersects reports whether the areas share at least one point
// Scans the smaller of the two, stopping at the first shared point
func (a *Area) Intersects(other ReadOnlyArea) bool {
	if !a.Bounds().Intersects(other.Bounds()) {
		return false
	}
	var small, large ReadOnlyArea = a, other
	if other.Count() < a.Count() {
		small, large = other, a
	}
	for p := range small.All() {
		if large.Contains(p) {
			return true
		}
	}
	return false
}

// Equal reports whether both areas hold the same points, regardless of order
func (a *Area) Equal(other ReadOnlyArea) bool {
	if other == nil {
		return false
	}
	if a.Count() != other.Count() || a.Bounds() != other.Bounds() {
		return false
	}
	for p := range other.All() {
		if !a.Contains(p) {
			return false
		}
	}
	return true
}

// Perimeter yields the points of a that have at least one rule-neighbor outside a
func (a *Area) Perimeter(rule AdjacencyRule) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range a.positions {
			for n := range rule.Neighbors(p) {
				if !a.Contains(n) {
					if !yield(p) {
						return
					}
					break
				}
			}
		}
	}
}

// Translate returns a copy of a shifted by delta
func (a *Area) Translate(delta Point) *Area {
	out := NewArea()
	for _, p := range a.positions {
		out.Add(p.Add(delta))
	}
	return out
}

// --- Set algebra ---

// Union returns a new area with the points of both, a's points first
func Union(a, b ReadOnlyArea) *Area {
	out := NewArea()
	out.AddArea(a)
	out.AddArea(b)
	return out
}

// Intersection returns a new area with the points present in both
// Disjoint bounds return an empty area without scanning points
func Intersection(a, b ReadOnlyArea) *Area {
	out := NewArea()
	if !a.Bounds().Intersects(b.Bounds()) {
		return out
	}
	small, large := a, b
	if b.Count() < a.Count() {
		small, large = b, a
	}
	for p := range small.All() {
		if large.Contains(p) {
			out.Add(p)
		}
	}
	return out
}

// Difference returns a new area with the points of a not present in b
func Difference(a, b ReadOnlyArea) *Area {
	out := NewArea()
	overlap := a.Bounds().Intersects(b.Bounds())
	for p := range a.All() {
		if overlap && b.Contains(p) {
			continue
		}
		out.Add(p)
	}
	return out
}

// --- Rectangle view ---

// RectangleArea adapts a Rectangle to ReadOnlyArea without materializing its cells
type RectangleArea struct {
	Rect Rectangle
}

func (r RectangleArea) Bounds() Rectangle {
	if r.Rect.IsEmpty() {
		return EmptyRectangle
	}
	return r.Rect
}

func (r RectangleArea) Count() int { return r.Rect.Area() }

// At returns the i-th cell in row-major order
func (r RectangleArea) At(i int) Point {
	return Point{X: r.Rect.X + i%r.Rect.Width, Y: r.Rect.Y + i/r.Rect.Width}
}

func (r RectangleArea) Contains(p Point) bool { return r.Rect.Contains(p) }

func (r RectangleArea) All() iter.Seq[Point] { return r.Rect.Positions() }
