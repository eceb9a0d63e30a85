package event

import (
	"github.com/mikenye/voronoi2d/point"
	"github.com/mikenye/voronoi2d/types"
)

// Site is an input primitive: either a single point or a directed segment.
// For a point site, Point0 and Point1 are equal. For a segment site, the
// direction Point0->Point1 is the segment's canonical orientation and
// carries meaning — left-of/right-of arc tests depend on it.
type Site[T types.SignedInteger] struct {
	point0    point.Point[T]
	point1    point.Point[T]
	isSegment bool
}

// NewPointSite creates a point site.
func NewPointSite[T types.SignedInteger](p point.Point[T]) Site[T] {
	return Site[T]{point0: p, point1: p, isSegment: false}
}

// NewSegmentSite creates a segment site with the given directed endpoints.
func NewSegmentSite[T types.SignedInteger](p0, p1 point.Point[T]) Site[T] {
	return Site[T]{point0: p0, point1: p1, isSegment: true}
}

// IsSegment reports whether the site is a segment (as opposed to a point).
func (s Site[T]) IsSegment() bool {
	return s.isSegment
}

// Point0 returns the site's first point (its only point, for a point site;
// the canonical start, for a segment site).
func (s Site[T]) Point0() point.Point[T] {
	return s.point0
}

// Point1 returns the site's second point. Equal to Point0 for a point site.
func (s Site[T]) Point1() point.Point[T] {
	return s.point1
}

// Inverse returns the site with its endpoints swapped. It must only be
// called on a segment site; calling it on a point site is a programming
// error, matching the invariant that a point site's two endpoints are
// never distinct.
func (s Site[T]) Inverse() Site[T] {
	if !s.isSegment {
		panic("event: Inverse called on a point site")
	}
	return Site[T]{point0: s.point1, point1: s.point0, isSegment: true}
}
