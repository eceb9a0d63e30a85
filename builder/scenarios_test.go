package builder

import (
	"testing"

	"github.com/mikenye/voronoi2d/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioA_ThreeCollinearVerticalPoints mirrors the "three collinear
// vertical points" scenario: one cell per input point, and a beach line
// degenerate enough that no circle event should ever fire (three collinear
// foci never admit a converging circle).
func TestScenarioA_ThreeCollinearVerticalPoints(t *testing.T) {
	b := New[int32]().WithVertices(
		point.New[int32](0, 0),
		point.New[int32](0, 10),
		point.New[int32](0, 20),
	)
	d, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, d.Cells, 3)
	assert.Empty(t, d.Vertices, "collinear sites never admit a converging circle")
}

// TestScenarioB_ThreePointTriangle mirrors "three points forming a
// triangle": one cell per input point, and an even number of half-edges
// (every edge is created together with its twin).
func TestScenarioB_ThreePointTriangle(t *testing.T) {
	b := New[int32]().WithVertices(
		point.New[int32](0, 0),
		point.New[int32](10, 0),
		point.New[int32](5, 9),
	)
	d, err := b.Build()
	require.NoError(t, err)
	require.Len(t, d.Cells, 3)
	assert.Equal(t, 0, len(d.Edges)%2, "half-edges are always created in twin pairs")
	assert.LessOrEqual(t, len(d.Vertices), 1, "three sites admit at most one Voronoi vertex")
}

// TestScenarioC_OneSegmentProducesThreeCells mirrors "one segment": its two
// endpoints and its body each get their own cell, and no two of the three
// coincide so none get deduped away.
func TestScenarioC_OneSegmentProducesThreeCells(t *testing.T) {
	b := New[int32]().WithVertices().WithSegments(
		point.NewLine(point.New[int32](0, 0), point.New[int32](10, 0)),
	)
	d, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, d.Cells, 3)
}

// TestScenarioE_SharedSegmentEndpointDedupsToFiveCells mirrors two segments
// sharing one endpoint: each segment independently contributes two
// endpoints plus a body (6 raw sites), but the shared endpoint collapses
// to a single cell.
func TestScenarioE_SharedSegmentEndpointDedupsToFiveCells(t *testing.T) {
	b := New[int32]().WithVertices().WithSegments(
		point.NewLine(point.New[int32](0, 0), point.New[int32](10, 10)),
		point.NewLine(point.New[int32](10, 10), point.New[int32](10, 0)),
	)
	d, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, d.Cells, 5)
}

// TestScenarioF_CrossingDiagonalsRejected mirrors "crossing diagonals": two
// segments that cross at an interior point (not a shared endpoint) have no
// well-defined planar Voronoi topology, so Build must reject them rather
// than silently sweep over the crossing.
func TestScenarioF_CrossingDiagonalsRejected(t *testing.T) {
	b := New[int32]().WithVertices().WithSegments(
		point.NewLine(point.New[int32](0, 0), point.New[int32](10, 10)),
		point.NewLine(point.New[int32](0, 10), point.New[int32](10, 0)),
	)
	_, err := b.Build()
	require.Error(t, err)
	var berr *Error
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, SelfIntersecting, berr.Kind)
}
