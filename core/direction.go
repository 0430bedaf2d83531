package core

// YIncreasesUpward selects the axis orientation used by Direction.Delta
// Default false: screen coordinates, DirUp is Y-1
// Set once at startup; nothing in this module mutates it
var YIncreasesUpward = false

// Direction is one of the eight compass steps on the grid, or DirNone
type Direction int8

// Direction values; DirUp..DirUpLeft run clockwise so that d+1 is a 45° turn
const (
	DirNone Direction = iota - 1
	DirUp
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
	dirCount
)

// Direction vectors matching DirUp..DirUpLeft in screen orientation
var dirVectors = [dirCount]Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var dirNames = [dirCount]string{
	"Up", "UpRight", "Right", "DownRight",
	"Down", "DownLeft", "Left", "UpLeft",
}

// Delta returns the unit step for the direction, honoring YIncreasesUpward
func (d Direction) Delta() Point {
	if d < DirUp || d >= dirCount {
		return Point{}
	}
	v := dirVectors[d]
	if YIncreasesUpward {
		v.Y = -v.Y
	}
	return v
}

// Opposite returns the direction rotated 180°
func (d Direction) Opposite() Direction {
	if d < DirUp || d >= dirCount {
		return DirNone
	}
	return (d + dirCount/2) % dirCount
}

// Rotate turns the direction by steps of 45° clockwise; negative steps turn counter-clockwise
func (d Direction) Rotate(steps int) Direction {
	if d < DirUp || d >= dirCount {
		return DirNone
	}
	n := (int(d) + steps) % int(dirCount)
	if n < 0 {
		n += int(dirCount)
	}
	return Direction(n)
}

// IsCardinal reports whether the direction is one of Up, Right, Down, Left
func (d Direction) IsCardinal() bool {
	return d >= DirUp && d < dirCount && d%2 == 0
}

func (d Direction) String() string {
	if d < DirUp || d >= dirCount {
		return "None"
	}
	return dirNames[d]
}

// DirectionOf returns the direction of the dominant step from one point toward another
// Uses the sign of each delta component, so (5,1) maps to DownRight in screen orientation
func DirectionOf(from, to Point) Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	if YIncreasesUpward {
		dy = -dy
	}
	sx, sy := sign(dx), sign(dy)
	for d := DirUp; d < dirCount; d++ {
		if dirVectors[d].X == sx && dirVectors[d].Y == sy {
			return d
		}
	}
	return DirNone
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
