package predicate

import (
	"github.com/mikenye/voronoi2d/event"
	"github.com/mikenye/voronoi2d/point"
	"github.com/mikenye/voronoi2d/types"
)

// Arc is the (left, right) site pair a beach-line node is keyed by: the arc
// immediately below this breakpoint belongs to Left, the arc immediately
// above belongs to Right.
type Arc[T types.SignedInteger] struct {
	Left  event.SiteEvent[T]
	Right event.SiteEvent[T]
}

// comparisonSite picks whichever of an arc's two sites was inserted later
// (the larger SortedIndex): the newer site is always the one whose arrival
// created this particular breakpoint, so it is the site the breakpoint's
// current position is defined relative to.
func comparisonSite[T types.SignedInteger](a Arc[T]) event.SiteEvent[T] {
	if a.Left.SortedIndex > a.Right.SortedIndex {
		return a.Left
	}
	return a.Right
}

// comparisonPoint reduces a site to the single point its breakpoint
// comparisons are keyed on: for a point site, its only point; for a segment
// site, whichever endpoint sorts first.
func comparisonPoint[T types.SignedInteger](s event.SiteEvent[T]) point.Point[T] {
	if !s.IsSegment() {
		return s.Point0()
	}
	if PointLess(s.Point0(), s.Point1()) {
		return s.Point0()
	}
	return s.Point1()
}

// NodeLess reports whether arc a sorts before arc b in the beach line's
// bottom-to-top (increasing y) order, at whatever sweep position the two
// arcs' comparison sites imply. This is the ordering the beach-line's
// secondary index is built on: it lets the sweepline locate the arc
// directly above a new site in O(log n) without re-deriving breakpoint
// positions from scratch on every lookup.
func NodeLess[T types.SignedInteger](a, b Arc[T]) bool {
	siteA := comparisonSite(a)
	siteB := comparisonSite(b)
	pointA := comparisonPoint(siteA)
	pointB := comparisonPoint(siteB)

	switch {
	case pointA.X() < pointB.X():
		return !DistanceBelow(a.Left.Site, a.Right.Site, pointB)
	case pointA.X() > pointB.X():
		return DistanceBelow(b.Left.Site, b.Right.Site, pointA)
	}

	if siteA.SortedIndex != siteB.SortedIndex {
		if pointA.Y() != pointB.Y() {
			return pointA.Y() < pointB.Y()
		}
		return siteA.SortedIndex < siteB.SortedIndex
	}

	// Both arcs share their comparison site: they are adjacent breakpoints
	// straddling the same newly inserted site, so fall back to a direct
	// comparison of which site pair traces the lower arc.
	if a.Left.SortedIndex != b.Left.SortedIndex {
		return a.Left.SortedIndex < b.Left.SortedIndex
	}
	return a.Right.SortedIndex < b.Right.SortedIndex
}
