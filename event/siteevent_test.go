package event

import (
	"testing"

	"github.com/mikenye/voronoi2d/point"
	"github.com/stretchr/testify/assert"
)

func TestSiteEvent_Inverse(t *testing.T) {
	e := NewSiteEvent(NewSegmentSite(point.New(0, 0), point.New(10, 0)), 0, InitialSegment)
	assert.False(t, e.Flags.IsInverse())

	inv := e.Inverse()
	assert.True(t, inv.Flags.IsInverse())
	assert.Equal(t, point.New(10, 0), inv.Site.Point0())
	assert.Equal(t, point.New(0, 0), inv.Site.Point1())
}

func TestFlags_Category(t *testing.T) {
	assert.Equal(t, SourceSinglePoint, SinglePoint.Category())
	assert.Equal(t, SourceSegmentStart, SegmentStart.Category())
	assert.Equal(t, SourceSegmentEnd, SegmentEnd.Category())
	assert.Equal(t, SourceSegment, InitialSegment.Category())
	assert.Equal(t, SourceSegment, ReverseSegment.Category())
}
