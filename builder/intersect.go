package builder

import (
	"github.com/mikenye/voronoi2d/point"
	"github.com/mikenye/voronoi2d/predicate"
	"github.com/mikenye/voronoi2d/types"
)

// checkNoCrossings validates that no two input segments cross at a point
// that isn't a shared endpoint, mirroring the orientation-based test the
// teacher repo's linesegment.FindIntersectionsSlow uses for its own
// pairwise intersection sweep. A Voronoi diagram over crossing segment
// sites has no well-defined planar topology, so this runs once up front
// rather than relying on the beach line to notice a crossing mid-sweep.
func checkNoCrossings[T types.SignedInteger](segs []point.Line[T]) error {
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if segmentsCross(segs[i], segs[j]) {
				return newError(SelfIntersecting, "segment %s crosses segment %s", segs[i], segs[j])
			}
		}
	}
	return nil
}

// segmentsCross reports whether p1p2 and p3p4 intersect at a point other
// than a shared endpoint: the classic orientation-based test (d1..d4 below)
// catches a proper crossing, and onSegment catches a touch/overlap, with
// shared-endpoint configurations explicitly excluded since the spec allows
// segments to meet there.
func segmentsCross[T types.SignedInteger](l1, l2 point.Line[T]) bool {
	p1, p2 := l1.Start, l1.End
	p3, p4 := l2.Start, l2.End

	if p1 == p3 || p1 == p4 || p2 == p3 || p2 == p4 {
		return false
	}

	d1 := predicate.OrientationOf(p3, p4, p1)
	d2 := predicate.OrientationOf(p3, p4, p2)
	d3 := predicate.OrientationOf(p1, p2, p3)
	d4 := predicate.OrientationOf(p1, p2, p4)

	if d1 != d2 && d3 != d4 && d1 != predicate.Collinear && d2 != predicate.Collinear &&
		d3 != predicate.Collinear && d4 != predicate.Collinear {
		return true
	}

	if d1 == predicate.Collinear && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == predicate.Collinear && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == predicate.Collinear && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == predicate.Collinear && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

// onSegment reports whether q, known collinear with segment ab, lies
// within ab's own bounding box (and so strictly within the segment, since
// the shared-endpoint case was already excluded by the caller).
func onSegment[T types.SignedInteger](a, b, q point.Point[T]) bool {
	minX, maxX := a.X(), b.X()
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y(), b.Y()
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return q.X() >= minX && q.X() <= maxX && q.Y() >= minY && q.Y() <= maxY
}
