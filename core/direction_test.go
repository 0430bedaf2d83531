package core

import (
	"math"
	"testing"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{DirUp, Pt(0, -1)},
		{DirUpRight, Pt(1, -1)},
		{DirRight, Pt(1, 0)},
		{DirDownRight, Pt(1, 1)},
		{DirDown, Pt(0, 1)},
		{DirDownLeft, Pt(-1, 1)},
		{DirLeft, Pt(-1, 0)},
		{DirUpLeft, Pt(-1, -1)},
		{DirNone, Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Delta(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if tt.dir != DirNone {
				if got := tt.dir.Opposite().Delta(); got != tt.want.Neg() {
					t.Errorf("Expected opposite %v, got %v", tt.want.Neg(), got)
				}
			}
		})
	}
}

func TestDirectionYIncreasesUpward(t *testing.T) {
	YIncreasesUpward = true
	defer func() { YIncreasesUpward = false }()

	if got := DirUp.Delta(); got != Pt(0, 1) {
		t.Errorf("Expected up to be (0,1), got %v", got)
	}
	if got := DirectionOf(Pt(0, 0), Pt(0, 5)); got != DirUp {
		t.Errorf("Expected DirUp, got %v", got)
	}
}

func TestDirectionRotate(t *testing.T) {
	if got := DirUp.Rotate(2); got != DirRight {
		t.Errorf("Expected Right, got %v", got)
	}
	if got := DirUp.Rotate(-1); got != DirUpLeft {
		t.Errorf("Expected UpLeft, got %v", got)
	}
	if got := DirLeft.Rotate(9); got != DirUpLeft {
		t.Errorf("Expected UpLeft, got %v", got)
	}
	if got := DirNone.Rotate(1); got != DirNone {
		t.Errorf("Expected None, got %v", got)
	}
	if !DirDown.IsCardinal() || DirDownLeft.IsCardinal() || DirNone.IsCardinal() {
		t.Error("Unexpected IsCardinal result")
	}
}

func TestDirectionOf(t *testing.T) {
	if got := DirectionOf(Pt(2, 2), Pt(7, 3)); got != DirDownRight {
		t.Errorf("Expected DownRight, got %v", got)
	}
	if got := DirectionOf(Pt(2, 2), Pt(2, 2)); got != DirNone {
		t.Errorf("Expected None, got %v", got)
	}
	if got := Pt(4, 4).Step(DirLeft); got != Pt(3, 4) {
		t.Errorf("Expected (3,4), got %v", got)
	}
}

func TestAdjacencyNeighbors(t *testing.T) {
	tests := []struct {
		rule AdjacencyRule
		want int
	}{
		{Cardinals, 4},
		{Diagonals, 4},
		{EightWay, 8},
	}
	center := Pt(10, -4)
	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			seen := make(map[Point]bool)
			for n := range tt.rule.Neighbors(center) {
				d := Chebyshev.Calculate(center, n)
				if d != 1 {
					t.Errorf("Expected neighbor %v at Chebyshev distance 1, got %v", n, d)
				}
				seen[n] = true
			}
			if len(seen) != tt.want {
				t.Errorf("Expected %d distinct neighbors, got %d", tt.want, len(seen))
			}
		})
	}
	for n := range Cardinals.Neighbors(center) {
		if Manhattan.Calculate(center, n) != 1 {
			t.Errorf("Expected cardinal neighbor %v at Manhattan distance 1", n)
		}
	}
}

func TestDistanceCalculate(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, -2)
	tests := []struct {
		dist Distance
		want float64
	}{
		{Manhattan, 7},
		{Euclidean, 5},
		{Chebyshev, 4},
	}
	for _, tt := range tests {
		t.Run(tt.dist.String(), func(t *testing.T) {
			if got := tt.dist.Calculate(a, b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if got := tt.dist.Calculate(b, a); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected symmetric %v, got %v", tt.want, got)
			}
		})
	}
}

func TestShapeMappings(t *testing.T) {
	tests := []struct {
		radius Radius
		dist   Distance
		rule   AdjacencyRule
	}{
		{Square, Chebyshev, EightWay},
		{Diamond, Manhattan, Cardinals},
		{Circle, Euclidean, EightWay},
	}
	for _, tt := range tests {
		t.Run(tt.radius.String(), func(t *testing.T) {
			if got := DistanceFor(tt.radius); got != tt.dist {
				t.Errorf("Expected distance %v, got %v", tt.dist, got)
			}
			if got := AdjacencyRuleFor(tt.radius); got != tt.rule {
				t.Errorf("Expected rule %v, got %v", tt.rule, got)
			}
			if got := RadiusFor(tt.dist); got != tt.radius {
				t.Errorf("Expected radius %v, got %v", tt.radius, got)
			}
			if got := AdjacencyRuleForDistance(tt.dist); got != tt.rule {
				t.Errorf("Expected rule %v from distance, got %v", tt.rule, got)
			}
		})
	}
}

func TestParseNames(t *testing.T) {
	if r, err := ParseRadius("Diamond"); err != nil || r != Diamond {
		t.Errorf("Expected Diamond, got %v (%v)", r, err)
	}
	if _, err := ParseRadius("hexagon"); err == nil {
		t.Error("Expected error for unknown radius shape")
	}
	if d, err := ParseDistance("EUCLIDEAN"); err != nil || d != Euclidean {
		t.Errorf("Expected Euclidean, got %v (%v)", d, err)
	}
	if _, err := ParseDistance("taxicab"); err == nil {
		t.Error("Expected error for unknown distance")
	}
}
