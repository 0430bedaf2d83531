package core

import "iter"

// AdjacencyRule defines which cells count as neighbors of a cell
type AdjacencyRule uint8

const (
	Cardinals AdjacencyRule = iota
	Diagonals
	EightWay
)

// Direction sets per rule, clockwise from up
var (
	cardinalDirs = []Direction{DirUp, DirRight, DirDown, DirLeft}
	diagonalDirs = []Direction{DirUpRight, DirDownRight, DirDownLeft, DirUpLeft}
	eightWayDirs = []Direction{DirUp, DirUpRight, DirRight, DirDownRight, DirDown, DirDownLeft, DirLeft, DirUpLeft}
)

// Directions returns the neighbor directions of the rule
// The slice is shared; callers must not modify it
func (r AdjacencyRule) Directions() []Direction {
	switch r {
	case Cardinals:
		return cardinalDirs
	case Diagonals:
		return diagonalDirs
	case EightWay:
		return eightWayDirs
	}
	return nil
}

// Neighbors yields the neighbors of p under the rule
func (r AdjacencyRule) Neighbors(p Point) iter.Seq[Point] {
	dirs := r.Directions()
	return func(yield func(Point) bool) {
		for _, d := range dirs {
			if !yield(p.Add(d.Delta())) {
				return
			}
		}
	}
}

func (r AdjacencyRule) String() string {
	switch r {
	case Cardinals:
		return "Cardinals"
	case Diagonals:
		return "Diagonals"
	case EightWay:
		return "EightWay"
	}
	return "AdjacencyRule(?)"
}
