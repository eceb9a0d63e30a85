package point

import (
	"testing"

	"github.com/mikenye/voronoi2d/options"
	"github.com/stretchr/testify/assert"
)

func TestPoint_Add(t *testing.T) {
	p := New(1, 2)
	q := New(3, 4)
	assert.Equal(t, New(4, 6), p.Add(q))
}

func TestPoint_Sub(t *testing.T) {
	p := New(5, 7)
	q := New(2, 3)
	assert.Equal(t, New(3, 4), p.Sub(q))
}

func TestPoint_Negate(t *testing.T) {
	assert.Equal(t, New(-3, 4), New(3, -4).Negate())
}

func TestPoint_CrossProduct(t *testing.T) {
	tests := map[string]struct {
		p, q     Point[int]
		expected int
	}{
		"counterclockwise (positive)": {p: New(1, 0), q: New(0, 1), expected: 1},
		"clockwise (negative)":        {p: New(0, 1), q: New(1, 0), expected: -1},
		"collinear (zero)":            {p: New(2, 2), q: New(4, 4), expected: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.CrossProduct(tc.q))
		})
	}
}

func TestPoint_DotProduct(t *testing.T) {
	assert.Equal(t, 11, New(1, 2).DotProduct(New(3, 4)))
}

func TestPoint_DistanceToPoint(t *testing.T) {
	assert.InDelta(t, 5.0, New(0, 0).DistanceToPoint(New(3, 4)), 1e-9)
}

func TestPoint_DistanceSquaredToPoint(t *testing.T) {
	assert.Equal(t, 25.0, New(0, 0).DistanceSquaredToPoint(New(3, 4)))
}

func TestPoint_Compare(t *testing.T) {
	tests := map[string]struct {
		p, q     Point[int]
		expected int
	}{
		"p.x < q.x":          {p: New(1, 5), q: New(2, 0), expected: -1},
		"p.x > q.x":          {p: New(2, 0), q: New(1, 5), expected: 1},
		"equal x, p.y < q.y": {p: New(1, 1), q: New(1, 2), expected: -1},
		"equal x, p.y > q.y": {p: New(1, 2), q: New(1, 1), expected: 1},
		"equal points":       {p: New(1, 1), q: New(1, 1), expected: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.Compare(tc.q))
		})
	}
}

func TestPoint_Eq(t *testing.T) {
	assert.True(t, New(1, 1).Eq(New(1, 1)))
	assert.False(t, New(1, 1).Eq(New(1, 2)))

	a := New(1.0, 1.0)
	b := New(1.0000001, 1.0000001)
	assert.False(t, a.Eq(b))
	assert.True(t, a.Eq(b, options.WithEpsilon(1e-6)))
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1,2)", New(1, 2).String())
}
