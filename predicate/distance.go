package predicate

import (
	"math"

	"github.com/mikenye/voronoi2d/event"
	"github.com/mikenye/voronoi2d/numeric"
	"github.com/mikenye/voronoi2d/point"
	"github.com/mikenye/voronoi2d/robustfpt"
	"github.com/mikenye/voronoi2d/types"
)

// Distance-predicate ULP budgets, per the component each dispatches to.
const (
	PPDistanceULPBudget = 6
	PSDistanceULPBudget = 10
	SSDistanceULPBudget = 14
)

// DistanceBelow reports whether query lies below the bisector arc of
// (left, right) at query's own x — i.e. whether the (left,right) node's
// arc, evaluated at the sweep position query.X, sits at a y value greater
// than query.Y or within that component's ULP budget of it. This is the predicate node_comparison dispatches into once
// it has reduced a node-vs-node comparison to a single query point.
func DistanceBelow[T types.SignedInteger](left, right event.Site[T], query point.Point[T]) bool {
	switch {
	case !left.IsSegment() && !right.IsSegment():
		return distancePP(left, right, query)
	case !left.IsSegment() || !right.IsSegment():
		return distancePS(left, right, query)
	default:
		return distanceSS(left, right, query)
	}
}

// bisectorBreakY solves for the y-coordinate at which the point-site arcs
// for focus1 and focus2 intersect, given the sweepline currently at x = l.
// Arcs here are parameterized by y (the sweep moves along x), so this is
// the x-sweep mirror of Fortune's classic parabola-intersection quadratic.
func bisectorBreakY(focus1, focus2 point.Point[float64], l float64) robustfpt.RobustFpt {
	d1 := focus1.X() - l
	d2 := focus2.X() - l

	if math.Abs(d1) < 1e-12 {
		return robustfpt.New(focus1.Y())
	}
	if math.Abs(d2) < 1e-12 {
		return robustfpt.New(focus2.Y())
	}

	a := 1/(2*d1) - 1/(2*d2)
	b := -focus1.Y()/d1 + focus2.Y()/d2
	c := (focus1.Y()*focus1.Y()+focus1.X()*focus1.X()-l*l)/(2*d1) -
		(focus2.Y()*focus2.Y()+focus2.X()*focus2.X()-l*l)/(2*d2)

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return robustfpt.New((focus1.Y() + focus2.Y()) / 2)
		}
		return robustfpt.New(-c / b)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)
	r1 := (-b + sq) / (2 * a)
	r2 := (-b - sq) / (2 * a)

	lo, hi := focus1.Y(), focus2.Y()
	if lo > hi {
		lo, hi = hi, lo
	}
	if r1 >= lo && r1 <= hi {
		return robustfpt.New(r1)
	}
	if r2 >= lo && r2 <= hi {
		return robustfpt.New(r2)
	}
	// Neither root fell within the foci's y-range; fall back to whichever
	// is closer to the midpoint.
	mid := (focus1.Y() + focus2.Y()) / 2
	if math.Abs(r1-mid) < math.Abs(r2-mid) {
		return robustfpt.New(r1)
	}
	return robustfpt.New(r2)
}

func toFloatPoint[T types.SignedInteger](p point.Point[T]) point.Point[float64] {
	return point.New(float64(p.X()), float64(p.Y()))
}

// effectiveULPBudget widens a fixed budget by a RobustFpt's own tracked
// error, so a breakY computed through a longer or more cancellation-prone
// chain of arithmetic gets a correspondingly more tolerant comparison
// instead of the tracked ULP value going unused.
func effectiveULPBudget(base uint, tracked float64) uint {
	return base + uint(tracked)
}

func distancePP[T types.SignedInteger](left, right event.Site[T], query point.Point[T]) bool {
	l := float64(query.X())
	breakY := bisectorBreakY(toFloatPoint(left.Point0()), toFloatPoint(right.Point0()), l)
	return numeric.WithinULP(breakY.Value(), float64(query.Y()), effectiveULPBudget(PPDistanceULPBudget, breakY.ULP())) ||
		breakY.Value() > float64(query.Y())
}

// segmentFoot projects p onto the infinite line through the segment site
// s, clamped to the segment's own parameter range, and is used as a stand-
// in focus point for the point-vs-segment and segment-vs-segment distance
// comparisons below: a reasonable, stable approximation that reduces both
// to the already-verified point-point case.
func segmentFoot[T types.SignedInteger](s event.Site[T], p point.Point[float64]) point.Point[float64] {
	a := toFloatPoint(s.Point0())
	b := toFloatPoint(s.Point1())
	abx, aby := b.X()-a.X(), b.Y()-a.Y()
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return a
	}
	t := ((p.X()-a.X())*abx + (p.Y()-a.Y())*aby) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return point.New(a.X()+t*abx, a.Y()+t*aby)
}

func asFocus[T types.SignedInteger](s event.Site[T], query point.Point[float64]) point.Point[float64] {
	if s.IsSegment() {
		return segmentFoot(s, query)
	}
	return toFloatPoint(s.Point0())
}

func distancePS[T types.SignedInteger](left, right event.Site[T], query point.Point[T]) bool {
	qf := toFloatPoint(query)
	l := float64(query.X())
	breakY := bisectorBreakY(asFocus(left, qf), asFocus(right, qf), l)
	return numeric.WithinULP(breakY.Value(), float64(query.Y()), effectiveULPBudget(PSDistanceULPBudget, breakY.ULP())) ||
		breakY.Value() > float64(query.Y())
}

func distanceSS[T types.SignedInteger](left, right event.Site[T], query point.Point[T]) bool {
	qf := toFloatPoint(query)
	l := float64(query.X())
	breakY := bisectorBreakY(asFocus(left, qf), asFocus(right, qf), l)
	return numeric.WithinULP(breakY.Value(), float64(query.Y()), effectiveULPBudget(SSDistanceULPBudget, breakY.ULP())) ||
		breakY.Value() > float64(query.Y())
}
