package event

import (
	"testing"

	"github.com/mikenye/voronoi2d/point"
	"github.com/stretchr/testify/assert"
)

func TestSite_PointSite(t *testing.T) {
	p := point.New(3, 4)
	s := NewPointSite(p)
	assert.False(t, s.IsSegment())
	assert.Equal(t, p, s.Point0())
	assert.Equal(t, p, s.Point1())
}

func TestSite_SegmentSite(t *testing.T) {
	p0 := point.New(0, 0)
	p1 := point.New(10, 10)
	s := NewSegmentSite(p0, p1)
	assert.True(t, s.IsSegment())
	assert.Equal(t, p0, s.Point0())
	assert.Equal(t, p1, s.Point1())
}

func TestSite_Inverse(t *testing.T) {
	p0 := point.New(0, 0)
	p1 := point.New(10, 10)
	s := NewSegmentSite(p0, p1).Inverse()
	assert.Equal(t, p1, s.Point0())
	assert.Equal(t, p0, s.Point1())
}

func TestSite_InverseOnPointSitePanics(t *testing.T) {
	p := point.New(1, 1)
	s := NewPointSite(p)
	assert.Panics(t, func() { s.Inverse() })
}
