package core

import (
	"fmt"
	"math"
	"strings"
)

// Distance selects a grid distance metric
type Distance uint8

const (
	Manhattan Distance = iota
	Euclidean
	Chebyshev
)

// Calculate returns the distance between two points under the metric
func (d Distance) Calculate(a, b Point) float64 {
	return d.CalculateDelta(b.X-a.X, b.Y-a.Y)
}

// CalculateDelta returns the length of the offset (dx, dy) under the metric
func (d Distance) CalculateDelta(dx, dy int) float64 {
	dx, dy = abs(dx), abs(dy)
	switch d {
	case Manhattan:
		return float64(dx + dy)
	case Euclidean:
		return math.Sqrt(float64(dx*dx + dy*dy))
	case Chebyshev:
		return float64(max(dx, dy))
	}
	return math.NaN()
}

func (d Distance) String() string {
	switch d {
	case Manhattan:
		return "Manhattan"
	case Euclidean:
		return "Euclidean"
	case Chebyshev:
		return "Chebyshev"
	}
	return "Distance(?)"
}

// ParseDistance resolves a metric name, case-insensitive
func ParseDistance(s string) (Distance, error) {
	switch strings.ToLower(s) {
	case "manhattan":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	case "chebyshev":
		return Chebyshev, nil
	}
	return 0, fmt.Errorf("unknown distance %q", s)
}

// RadiusFor maps a metric to the radius shape it traces
func RadiusFor(d Distance) Radius {
	switch d {
	case Manhattan:
		return Diamond
	case Euclidean:
		return Circle
	}
	return Square
}

// AdjacencyRuleForDistance maps a metric to the neighbor rule whose single step has length 1
func AdjacencyRuleForDistance(d Distance) AdjacencyRule {
	if d == Manhattan {
		return Cardinals
	}
	return EightWay
}
