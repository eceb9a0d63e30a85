package predicate

import (
	"testing"

	"github.com/mikenye/voronoi2d/event"
	"github.com/mikenye/voronoi2d/point"
	"github.com/stretchr/testify/assert"
)

func se(x, y, sortedIndex int) event.SiteEvent[int] {
	e := event.NewSiteEvent(event.NewPointSite(point.New(x, y)), sortedIndex, event.SinglePoint)
	e.SortedIndex = sortedIndex
	return e
}

func TestComparisonPoint_PointSite(t *testing.T) {
	e := se(3, 4, 0)
	assert.Equal(t, point.New(3, 4), comparisonPoint(e))
}

func TestComparisonPoint_SegmentSitePicksLexicographicallyFirst(t *testing.T) {
	e := event.NewSiteEvent(event.NewSegmentSite(point.New(5, 5), point.New(1, 1)), 0, event.InitialSegment)
	assert.Equal(t, point.New(1, 1), comparisonPoint(e))
}

func TestComparisonSite_PicksNewer(t *testing.T) {
	a := Arc[int]{Left: se(0, 0, 1), Right: se(0, 5, 2)}
	assert.Equal(t, 2, comparisonSite(a).SortedIndex)
}

func TestNodeLess_DistinctComparisonX(t *testing.T) {
	a := Arc[int]{Left: se(0, 0, 0), Right: se(0, 10, 1)}
	b := Arc[int]{Left: se(20, -5, 2), Right: se(20, 15, 3)}
	// a's comparison point (x=0) sorts before b's (x=20).
	_ = NodeLess(a, b)
}
