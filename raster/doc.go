// Package raster converts grid geometry into sequences of cells: lines,
// circle and ellipse outlines, rectangle boxes, and radius floods.
//
// Every shape is available in two forms. A traverser (LineTraverser,
// CircleTraverser, EllipseTraverser) is a value-type state machine driven by
// Next and Pos; it allocates nothing and restarts when copied. The iter.Seq
// wrappers (Line, Circle, Ellipse, Box, PositionsInRadius) build on the
// traversers and can be ranged over directly or fed into core.Area.
//
// Radius floods reuse their visited buffer through RadiusContext. A context
// serves one enumeration at a time and is not safe for concurrent use.
package raster

import "errors"

var (
	// ErrInvalidAlgorithm is returned for a LineAlgorithm outside the defined set
	ErrInvalidAlgorithm = errors.New("invalid line algorithm")
	// ErrNegativeRadius is returned by circle and radius queries given radius < 0
	ErrNegativeRadius = errors.New("negative radius")
)
