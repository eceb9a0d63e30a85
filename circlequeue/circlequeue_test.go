package circlequeue

import (
	"testing"

	"github.com/mikenye/voronoi2d/event"
	"github.com/stretchr/testify/assert"
)

func ce(lowerX, centerY float64) event.CircleEvent {
	return event.NewCircleEvent(0, centerY, lowerX, 0)
}

func TestQueue_PopsInLowerXOrder(t *testing.T) {
	q := New()
	q.Push(ce(3, 0))
	q.Push(ce(1, 0))
	q.Push(ce(2, 0))

	first, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1.0, first.LowerX)

	second, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2.0, second.LowerX)

	third, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3.0, third.LowerX)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueue_Deactivate(t *testing.T) {
	q := New()
	id1 := q.Push(ce(1, 0))
	q.Push(ce(2, 0))

	q.Deactivate(id1)

	top, ok := q.Top()
	assert.True(t, ok)
	assert.Equal(t, 2.0, top.LowerX)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_EmptyTop(t *testing.T) {
	q := New()
	_, ok := q.Top()
	assert.False(t, ok)
}
