package core

import (
	"fmt"
	"strings"
)

// Radius is the shape traced by all cells within a fixed distance of a center
type Radius uint8

const (
	Square  Radius = iota // Chebyshev
	Diamond               // Manhattan
	Circle                // Euclidean
)

// DistanceFor maps a radius shape to the metric that measures it
func DistanceFor(r Radius) Distance {
	switch r {
	case Diamond:
		return Manhattan
	case Circle:
		return Euclidean
	}
	return Chebyshev
}

// AdjacencyRuleFor maps a radius shape to the neighbor rule used to flood it
func AdjacencyRuleFor(r Radius) AdjacencyRule {
	if r == Diamond {
		return Cardinals
	}
	return EightWay
}

func (r Radius) String() string {
	switch r {
	case Square:
		return "Square"
	case Diamond:
		return "Diamond"
	case Circle:
		return "Circle"
	}
	return "Radius(?)"
}

// ParseRadius resolves a shape name, case-insensitive
func ParseRadius(s string) (Radius, error) {
	switch strings.ToLower(s) {
	case "square":
		return Square, nil
	case "diamond":
		return Diamond, nil
	case "circle":
		return Circle, nil
	}
	return 0, fmt.Errorf("unknown radius shape %q", s)
}
