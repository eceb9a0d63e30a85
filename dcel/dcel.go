// Package dcel holds the doubly connected edge list that a finished
// diagram is expressed as: cells, vertices, and half-edges referencing
// each other by stable slice index rather than pointer, the same
// index-array convention the rest of voronoi2d's arena-backed types use.
package dcel

import (
	"github.com/mikenye/voronoi2d/event"
)

// CellIndex, VertexIndex and EdgeIndex are stable references into a
// DCEL's Cells, Vertices and Edges slices. NilIndex marks "no such
// reference" for each.
type (
	CellIndex   int
	VertexIndex int
	EdgeIndex   int
)

// NilIndex is shared by all three index types: -1 never addresses a real
// element.
const NilIndex = -1

// Cell is one input site's region: its category (point, segment start/end,
// or whole segment), which input record it came from, and one half-edge
// incident to it (from which the whole boundary can be walked via Next).
type Cell struct {
	SourceIndex    int
	SourceCategory event.SourceCategory
	IncidentEdge   EdgeIndex
}

// Vertex is a Voronoi vertex: a point equidistant from three or more
// sites. ColorBits is a flag field carried with the vertex; the finalize
// passes do not set it (degenerate-vertex compaction drops the vertex and
// reindexes the remaining ones instead).
type Vertex[F any] struct {
	X, Y         F
	IncidentEdge EdgeIndex
	ColorBits    event.Flags
	IsSitePoint  bool
}

// HalfEdge is one directed side of a Voronoi edge. Cell is the region it
// bounds; OriginVertex is NilIndex for a half-edge whose tail recedes to
// infinity; Twin is the oppositely directed half-edge sharing the same
// underlying edge; Next/Prev walk the CCW boundary of Cell.
type HalfEdge struct {
	Cell         CellIndex
	OriginVertex VertexIndex
	Twin         EdgeIndex
	Next         EdgeIndex
	Prev         EdgeIndex
	IsLinear     bool
	IsPrimary    bool
}

// DCEL is the finished diagram's topology, indexed by the three ID types
// above. F is the coordinate type vertices are stored in (the spec's
// Diagram<F>); cells and edges carry no coordinates of their own.
type DCEL[F any] struct {
	Cells    []Cell
	Vertices []Vertex[F]
	Edges    []HalfEdge
}

// New constructs an empty DCEL, pre-sizing Cells to numSites (the builder
// always creates exactly one cell per input site up front).
func New[F any](numSites int) *DCEL[F] {
	return &DCEL[F]{
		Cells: make([]Cell, 0, numSites),
	}
}

// AddCell appends a new cell and returns its index.
func (d *DCEL[F]) AddCell(sourceIndex int, category event.SourceCategory) CellIndex {
	d.Cells = append(d.Cells, Cell{SourceIndex: sourceIndex, SourceCategory: category, IncidentEdge: NilIndex})
	return CellIndex(len(d.Cells) - 1)
}

// AddVertex appends a new vertex and returns its index.
func (d *DCEL[F]) AddVertex(x, y F, isSitePoint bool) VertexIndex {
	d.Vertices = append(d.Vertices, Vertex[F]{X: x, Y: y, IncidentEdge: NilIndex, IsSitePoint: isSitePoint})
	return VertexIndex(len(d.Vertices) - 1)
}

// AddEdgePair appends two twinned half-edges (edge and edge+1 are always
// twins, matching the reference implementation's indexing convention) and
// returns the first half-edge's index.
func (d *DCEL[F]) AddEdgePair(cell1, cell2 CellIndex) EdgeIndex {
	i := EdgeIndex(len(d.Edges))
	d.Edges = append(d.Edges,
		HalfEdge{Cell: cell1, OriginVertex: NilIndex, Twin: i + 1, Next: NilIndex, Prev: NilIndex, IsLinear: true, IsPrimary: true},
		HalfEdge{Cell: cell2, OriginVertex: NilIndex, Twin: i, Next: NilIndex, Prev: NilIndex, IsLinear: true, IsPrimary: true},
	)
	return i
}

// Twin returns e's oppositely directed half-edge.
func (d *DCEL[F]) Twin(e EdgeIndex) EdgeIndex {
	return d.Edges[e].Twin
}

// RotNext returns the next half-edge counterclockwise around e's origin
// vertex: twin of prev. Used to enumerate all edges incident to a vertex.
func (d *DCEL[F]) RotNext(e EdgeIndex) EdgeIndex {
	return d.Twin(d.Edges[e].Prev)
}

// RotPrev returns the next half-edge clockwise around e's origin vertex:
// next of twin.
func (d *DCEL[F]) RotPrev(e EdgeIndex) EdgeIndex {
	return d.Edges[d.Twin(e)].Next
}
