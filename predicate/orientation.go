// Package predicate implements the geometric decisions the sweepline
// orchestrator relies on: which way three points turn, which of two
// SiteEvents sorts first, which of two beach-line arcs lies above the
// other at the sweepline's current position, and whether three sites admit
// a converging circle event. Circle formation is first computed in plain
// float64 with a tracked ULP error bound (via the robustfpt package) and
// redone in the bigext exact-arithmetic kernel when that bound is exceeded.
// The distance comparisons behind NodeLess stay in float64: they widen
// their fixed ULP budget by the tracked error and do not escalate to
// bigext. Orientation and event ordering work on the integer input.
package predicate

import (
	"fmt"

	"github.com/mikenye/voronoi2d/point"
	"github.com/mikenye/voronoi2d/types"
)

// Orientation is the turn three points make: Collinear, Left (counter-
// clockwise), or Right (clockwise).
type Orientation uint8

const (
	Collinear Orientation = iota
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		panic(fmt.Errorf("unsupported Orientation: %d", o))
	}
}

// OrientationOf returns the orientation of the turn from p to q to r: the
// sign of the cross product of (q-p) and (r-p). For integer coordinates
// this is exact; for float coordinates it is exact up to T's own precision
// (the sweepline never calls this on anything but integer sites).
func OrientationOf[T types.SignedNumber](p, q, r point.Point[T]) Orientation {
	val := q.Sub(p).CrossProduct(r.Sub(p))
	switch {
	case val > 0:
		return Left
	case val < 0:
		return Right
	default:
		return Collinear
	}
}
