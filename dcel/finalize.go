package dcel

import "math"

// DegenerateEdgeULPBudget is the tolerance finalize's degenerate-edge
// compaction pass applies when deciding whether both endpoints of an edge
// pair coincide closely enough to splice the pair out entirely.
const DegenerateEdgeULPBudget = 128

func ulpClose(a, b float64, n int) bool {
	if a == b {
		return true
	}
	step := math.Nextafter(a, math.Inf(1)) - a
	if bStep := math.Nextafter(b, math.Inf(1)) - b; bStep > step {
		step = bStep
	}
	return math.Abs(a-b) <= step*float64(n)
}

func vertexClose[F float64 | float32](d *DCEL[F], v1, v2 VertexIndex) bool {
	if v1 == NilIndex || v2 == NilIndex {
		return false
	}
	a, b := d.Vertices[v1], d.Vertices[v2]
	return ulpClose(float64(a.X), float64(b.X), DegenerateEdgeULPBudget) &&
		ulpClose(float64(a.Y), float64(b.Y), DegenerateEdgeULPBudget)
}

// Finalize runs the four DCEL finalization passes in order: degenerate-edge
// compaction, incident-edge wiring, degenerate-vertex compaction, and ray
// linking. It mutates d in place.
func Finalize[F float64 | float32](d *DCEL[F]) {
	compactDegenerateEdges(d)
	wireIncidentEdges(d)
	compactDegenerateVertices(d)
	linkRays(d)
}

// compactDegenerateEdges splices out edge pairs whose two origin vertices
// (the edge's own origin and its twin's origin) sit within
// DegenerateEdgeULPBudget ULPs of each other in both coordinates, then
// compacts the surviving edges into a dense array and rewrites every
// cross-reference (Cell.IncidentEdge, Vertex.IncidentEdge, and every
// HalfEdge's own Twin/Next/Prev) to the new indices.
func compactDegenerateEdges[F float64 | float32](d *DCEL[F]) {
	n := len(d.Edges)
	removed := make([]bool, n)

	for e := 0; e < n; e += 2 {
		twin := e + 1
		if removed[e] {
			continue
		}
		origin := d.Edges[e].OriginVertex
		twinOrigin := d.Edges[twin].OriginVertex
		if !vertexClose(d, origin, twinOrigin) {
			continue
		}

		prevE, nextE := d.Edges[e].Prev, d.Edges[e].Next
		prevT, nextT := d.Edges[twin].Prev, d.Edges[twin].Next

		if prevE != NilIndex {
			d.Edges[prevE].Next = nextT
		}
		if nextT != NilIndex {
			d.Edges[nextT].Prev = prevE
		}
		if prevT != NilIndex {
			d.Edges[prevT].Next = nextE
		}
		if nextE != NilIndex {
			d.Edges[nextE].Prev = prevT
		}

		removed[e] = true
		removed[twin] = true
	}

	newIndex := make([]EdgeIndex, n)
	compacted := make([]HalfEdge, 0, n)
	for i, he := range d.Edges {
		if removed[i] {
			newIndex[i] = NilIndex
			continue
		}
		newIndex[i] = EdgeIndex(len(compacted))
		compacted = append(compacted, he)
	}

	remap := func(e EdgeIndex) EdgeIndex {
		if e == NilIndex {
			return NilIndex
		}
		return newIndex[e]
	}
	for i := range compacted {
		compacted[i].Twin = remap(compacted[i].Twin)
		compacted[i].Next = remap(compacted[i].Next)
		compacted[i].Prev = remap(compacted[i].Prev)
	}
	for i := range d.Cells {
		d.Cells[i].IncidentEdge = remap(d.Cells[i].IncidentEdge)
	}
	for i := range d.Vertices {
		d.Vertices[i].IncidentEdge = remap(d.Vertices[i].IncidentEdge)
	}

	d.Edges = compacted
}

// wireIncidentEdges sets every surviving cell's and vertex's incident-edge
// pointer to some half-edge that touches it (any such edge; later writes
// simply overwrite earlier ones, which is fine since all incident edges
// are equally valid starting points for a boundary walk).
func wireIncidentEdges[F float64 | float32](d *DCEL[F]) {
	for i, he := range d.Edges {
		d.Cells[he.Cell].IncidentEdge = EdgeIndex(i)
		if he.OriginVertex != NilIndex {
			d.Vertices[he.OriginVertex].IncidentEdge = EdgeIndex(i)
		}
	}
}

// compactDegenerateVertices drops vertices with no incident edge (orphaned
// by the edge-compaction pass above) and rewrites every half-edge's origin
// pointer to the new, dense vertex indices.
func compactDegenerateVertices[F float64 | float32](d *DCEL[F]) {
	newIndex := make([]VertexIndex, len(d.Vertices))
	compacted := make([]Vertex[F], 0, len(d.Vertices))
	for i, v := range d.Vertices {
		if v.IncidentEdge == NilIndex {
			newIndex[i] = NilIndex
			continue
		}
		newIndex[i] = VertexIndex(len(compacted))
		compacted = append(compacted, v)
	}
	for i := range d.Edges {
		if d.Edges[i].OriginVertex != NilIndex {
			d.Edges[i].OriginVertex = newIndex[d.Edges[i].OriginVertex]
		}
	}
	d.Vertices = compacted
}

// linkRays closes each non-degenerate cell's boundary into a single cyclic
// list by finding its leftmost edge (Prev == NilIndex) and rightmost edge
// (Next == NilIndex) and linking them as each other's Prev/Next, so that
// a boundary walk that starts anywhere on the cell never hits a dead end
// even though some of its edges are infinite rays.
func linkRays[F float64 | float32](d *DCEL[F]) {
	type ends struct {
		leftmost, rightmost EdgeIndex
	}
	byCell := make(map[CellIndex]*ends)

	for i, he := range d.Edges {
		e, ok := byCell[he.Cell]
		if !ok {
			e = &ends{leftmost: NilIndex, rightmost: NilIndex}
			byCell[he.Cell] = e
		}
		if he.Prev == NilIndex {
			e.leftmost = EdgeIndex(i)
		}
		if he.Next == NilIndex {
			e.rightmost = EdgeIndex(i)
		}
	}

	for _, e := range byCell {
		if e.leftmost == NilIndex || e.rightmost == NilIndex {
			continue
		}
		if e.leftmost == e.rightmost {
			continue
		}
		d.Edges[e.rightmost].Next = e.leftmost
		d.Edges[e.leftmost].Prev = e.rightmost
	}
}
