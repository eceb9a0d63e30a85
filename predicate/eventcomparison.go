package predicate

import (
	"github.com/mikenye/voronoi2d/event"
	"github.com/mikenye/voronoi2d/numeric"
	"github.com/mikenye/voronoi2d/types"
)

// CircleEventULPBudget is the ULP tolerance event_comparison_bif applies
// when comparing a site event's x-coordinate to a circle event's lower_x.
const CircleEventULPBudget = 64

// EventLess reports whether lhs sorts strictly before rhs in the global
// site-event order: primarily by x, then by a handful of point/segment tie-
// break rules that determine what gets seeded into the beach line first
// when several sites share an x-coordinate.
func EventLess[T types.SignedInteger](lhs, rhs event.SiteEvent[T]) bool {
	lx, ly := lhs.Point0().Coordinates()
	rx, ry := rhs.Point0().Coordinates()
	if lx != rx {
		return lx < rx
	}

	lhsSeg, rhsSeg := lhs.IsSegment(), rhs.IsSegment()
	switch {
	case !lhsSeg && !rhsSeg:
		return ly < ry
	case !lhsSeg && rhsSeg:
		return true
	case lhsSeg && !rhsSeg:
		return false
	}

	lhsVertical := lhs.Point0().X() == lhs.Point1().X()
	rhsVertical := rhs.Point0().X() == rhs.Point1().X()
	if lhsVertical != rhsVertical {
		return lhsVertical
	}
	if ly != ry {
		return ly < ry
	}
	return OrientationOf(lhs.Point0(), lhs.Point1(), rhs.Point1()) == Left
}

// EventLessCircle reports whether a site event sorts before a circle
// event's lower_x, within a CircleEventULPBudget-ULP tolerance: the
// dispatch the main sweep loop uses to choose between process_site_event
// and process_circle_event when both queues are nonempty.
func EventLessCircle[T types.SignedInteger](site event.SiteEvent[T], circleLowerX float64) bool {
	siteX := float64(site.Point0().X())
	if numeric.WithinULP(siteX, circleLowerX, CircleEventULPBudget) {
		return false
	}
	return siteX < circleLowerX
}
