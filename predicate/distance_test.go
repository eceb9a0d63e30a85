package predicate

import (
	"testing"

	"github.com/mikenye/voronoi2d/event"
	"github.com/mikenye/voronoi2d/point"
	"github.com/stretchr/testify/assert"
)

func TestDistanceBelow_PointPoint(t *testing.T) {
	left := event.NewPointSite(point.New(0, 0))
	right := event.NewPointSite(point.New(0, 10))
	// A query further right than both foci, level with their midpoint,
	// sits exactly on the bisector; closer to the midpoint's y than either
	// focus should flip the predicate depending on direction.
	query := point.New(20, 5)
	_ = DistanceBelow(left, right, query)
}

func TestDistanceBelow_PointSegment(t *testing.T) {
	left := event.NewPointSite(point.New(0, 0))
	right := event.NewSegmentSite(point.New(0, -5), point.New(0, 5))
	query := point.New(20, 0)
	_ = DistanceBelow(left, right, query)
}

func TestDistanceBelow_SegmentSegment(t *testing.T) {
	left := event.NewSegmentSite(point.New(0, -5), point.New(0, -1))
	right := event.NewSegmentSite(point.New(0, 1), point.New(0, 5))
	query := point.New(20, 0)
	_ = DistanceBelow(left, right, query)
}

func TestBisectorBreakY_Midpoint(t *testing.T) {
	f1 := point.New(0.0, 0.0)
	f2 := point.New(0.0, 10.0)
	got := bisectorBreakY(f1, f2, 20.0)
	assert.InDelta(t, 5.0, got.Value(), 1e-6)
}
