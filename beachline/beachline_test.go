package beachline

import (
	"testing"

	"github.com/mikenye/voronoi2d/event"
	"github.com/mikenye/voronoi2d/point"
	"github.com/mikenye/voronoi2d/predicate"
	"github.com/stretchr/testify/assert"
)

func site(x, y, idx int) event.SiteEvent[int] {
	e := event.NewSiteEvent(event.NewPointSite(point.New(x, y)), idx, event.SinglePoint)
	e.SortedIndex = idx
	return e
}

func arcOf(s event.SiteEvent[int]) predicate.Arc[int] {
	return predicate.Arc[int]{Left: s, Right: s}
}

func TestBeachLine_InsertAndTraverse(t *testing.T) {
	bl := New[int]()
	a := arcOf(site(0, 0, 0))
	h := bl.InsertFirst(a)
	assert.Equal(t, 1, bl.Len())
	assert.Equal(t, h, bl.First())
	assert.Equal(t, h, bl.Last())
	assert.Equal(t, NilHandle, bl.Prev(h))
	assert.Equal(t, NilHandle, bl.Next(h))
}

func TestBeachLine_InsertAfterLinksNeighbors(t *testing.T) {
	bl := New[int]()
	h1 := bl.InsertFirst(arcOf(site(0, 0, 0)))
	h2 := bl.InsertAfter(h1, arcOf(site(0, 10, 1)))
	assert.Equal(t, h2, bl.Next(h1))
	assert.Equal(t, h1, bl.Prev(h2))
	assert.Equal(t, h2, bl.Last())
	assert.Equal(t, 2, bl.Len())
}

func TestBeachLine_Remove(t *testing.T) {
	bl := New[int]()
	h1 := bl.InsertFirst(arcOf(site(0, 0, 0)))
	h2 := bl.InsertAfter(h1, arcOf(site(0, 10, 1)))
	h3 := bl.InsertAfter(h2, arcOf(site(0, 20, 2)))

	bl.Remove(h2)
	assert.Equal(t, 2, bl.Len())
	assert.Equal(t, h3, bl.Next(h1))
	assert.Equal(t, h1, bl.Prev(h3))
}

func TestBeachLine_CircleEventRoundTrip(t *testing.T) {
	bl := New[int]()
	h := bl.InsertFirst(arcOf(site(0, 0, 0)))
	_, ok := bl.CircleEvent(h)
	assert.False(t, ok)

	bl.SetCircleEvent(h, 7)
	idx, ok := bl.CircleEvent(h)
	assert.True(t, ok)
	assert.Equal(t, event.CircleEventIndex(7), idx)

	bl.ClearCircleEvent(h)
	_, ok = bl.CircleEvent(h)
	assert.False(t, ok)
}
