// Package builder runs the Fortune-style sweepline that turns a set of
// point and segment sites into a Voronoi diagram's DCEL. It owns the site
// queue, the beach line, and the circle-event queue exclusively: none of
// those three observes another's internal state except through the
// BeachLineIndex and CircleEventIndex handles event.CircleEvent and
// beachline.BeachLine already expose.
package builder

import (
	"container/heap"

	"github.com/google/btree"

	"github.com/mikenye/voronoi2d/beachline"
	"github.com/mikenye/voronoi2d/circlequeue"
	"github.com/mikenye/voronoi2d/dcel"
	"github.com/mikenye/voronoi2d/event"
	"github.com/mikenye/voronoi2d/internal/xlog"
	"github.com/mikenye/voronoi2d/point"
	"github.com/mikenye/voronoi2d/predicate"
	"github.com/mikenye/voronoi2d/types"
)

// Builder accumulates point and segment sites and, on Build, runs the
// sweep that turns them into a finished DCEL.
type Builder[T types.SignedInteger] struct {
	vertices     []point.Point[T]
	segments     []point.Line[T]
	verticesDone bool
	verticesLate bool
}

// New constructs an empty Builder.
func New[T types.SignedInteger]() *Builder[T] {
	return &Builder[T]{}
}

// WithVertices queues point sites for the next Build. All vertices must be
// added before the first segment.
func (b *Builder[T]) WithVertices(pts ...point.Point[T]) *Builder[T] {
	if b.verticesDone {
		b.verticesLate = true
	}
	b.vertices = append(b.vertices, pts...)
	return b
}

// WithSegments queues segment sites for the next Build. Calling this
// locks in the vertex set: a later WithVertices call will be rejected by
// Build with a VerticesGoesFirst error.
func (b *Builder[T]) WithSegments(segs ...point.Line[T]) *Builder[T] {
	b.segments = append(b.segments, segs...)
	b.verticesDone = true
	return b
}

// Build runs the sweep and returns the finished, finalized DCEL.
func (b *Builder[T]) Build() (*dcel.DCEL[float64], error) {
	if b.verticesLate {
		return nil, newError(VerticesGoesFirst, "vertices were queued after segments")
	}
	if !b.verticesDone && len(b.segments) > 0 {
		return nil, newError(VerticesGoesFirst, "segments were queued without vertices being finalized first")
	}

	if err := checkNoCrossings(b.segments); err != nil {
		return nil, err
	}

	sites, totalInitial, err := b.initSitesQueue()
	if err != nil {
		return nil, err
	}
	xlog.Debugf("build: %d vertices, %d segments, %d site events after sort+dedup", len(b.vertices), len(b.segments), len(sites))
	if len(sites) == 0 {
		return dcel.New[float64](0), nil
	}

	s := newSweep[T](len(sites))
	s.cellOf = make([]dcel.CellIndex, totalInitial)
	for _, se := range sites {
		cellIdx := s.dcel.AddCell(se.InitialIndex, se.Flags.Category())
		s.cellOf[se.InitialIndex] = cellIdx
	}

	s.initBeachLine(sites)

	remaining := sites[s.seeded:]
	for i := range remaining {
		for {
			top, hasCircle := s.circles.Top()
			if !hasCircle || predicate.EventLessCircle(remaining[i], top.LowerX) {
				break
			}
			if err := s.processCircleEvent(top); err != nil {
				return nil, err
			}
			s.circles.Pop()
		}
		if err := s.processSiteEvent(remaining[i]); err != nil {
			return nil, err
		}
	}
	for {
		top, hasCircle := s.circles.Top()
		if !hasCircle {
			break
		}
		if err := s.processCircleEvent(top); err != nil {
			return nil, err
		}
		s.circles.Pop()
	}

	xlog.Debugf("build: sweep complete, finalizing %d cells %d vertices %d edges", len(s.dcel.Cells), len(s.dcel.Vertices), len(s.dcel.Edges))
	dcel.Finalize(s.dcel)
	return s.dcel, nil
}

// stagedEvent wraps a not-yet-sorted site event with its original
// insertion position, so the B-tree staging queue below can break ties
// the same way a stable sort would: by arrival order.
type stagedEvent[T types.SignedInteger] struct {
	ev  event.SiteEvent[T]
	seq int
}

// initSitesQueue converts the queued vertices and segments into sorted,
// deduped, indexed site events: one event per vertex, three per segment
// (its two endpoints plus the segment body itself). Per §4.1 step 1-2,
// the raw events are stable-sorted by the event-comparison predicate and
// then adjacent equal point events — typically two segments' endpoints
// landing on the same coordinate, or a standalone point coinciding with
// one — are merged into a single site so they share one output cell.
//
// A segment's body site is always stored with its comparator-lesser
// endpoint as point0: InitialSegment when that's already Start, or
// ReverseSegment when the endpoints had to be swapped to get there. Every
// downstream site-keyed computation (node comparison, circle formation,
// distance) depends on this canonical direction being stable.
//
// The stable sort itself is staged through a google/btree.BTreeG keyed
// by EventLess-with-a-sequence-tiebreak, the same ordered-container
// idiom the teacher's own sweepline event queue
// (linesegment/sweepline_eventqueue.go) uses for its pending events,
// rather than sort.SliceStable.
func (b *Builder[T]) initSitesQueue() ([]event.SiteEvent[T], int, error) {
	var raw []event.SiteEvent[T]
	initial := 0

	for _, v := range b.vertices {
		site := event.NewSiteEvent(event.NewPointSite(v), initial, event.SinglePoint)
		raw = append(raw, site)
		initial++
	}

	for _, seg := range b.segments {
		if seg.Start == seg.End {
			return nil, 0, newError(SelfIntersecting, "segment %s has zero length", seg)
		}
		startSite := event.NewSiteEvent(event.NewPointSite(seg.Start), initial, event.SegmentStart)
		endSite := event.NewSiteEvent(event.NewPointSite(seg.End), initial+1, event.SegmentEnd)

		point0, point1, flag := seg.Start, seg.End, event.InitialSegment
		if !predicate.PointLess(seg.Start, seg.End) {
			point0, point1, flag = seg.End, seg.Start, event.ReverseSegment
		}
		bodySite := event.NewSiteEvent(event.NewSegmentSite(point0, point1), initial+2, flag)

		raw = append(raw, startSite, endSite, bodySite)
		initial += 3
	}

	less := func(a, b stagedEvent[T]) bool {
		switch {
		case predicate.EventLess(a.ev, b.ev):
			return true
		case predicate.EventLess(b.ev, a.ev):
			return false
		default:
			return a.seq < b.seq
		}
	}
	queue := btree.NewG[stagedEvent[T]](32, less)
	for i, ev := range raw {
		queue.ReplaceOrInsert(stagedEvent[T]{ev: ev, seq: i})
	}

	sorted := make([]event.SiteEvent[T], 0, len(raw))
	queue.Ascend(func(item stagedEvent[T]) bool {
		sorted = append(sorted, item.ev)
		return true
	})

	out := sorted[:0]
	for _, se := range sorted {
		if n := len(out); n > 0 {
			prev := out[n-1]
			if !se.IsSegment() && !prev.IsSegment() && se.Point0() == prev.Point0() {
				xlog.Debugf("init_sites_queue: merging duplicate coincident site at %s into initial index %d", se.Point0(), prev.InitialIndex)
				continue
			}
		}
		out = append(out, se)
	}
	for i := range out {
		out[i].SortedIndex = i
	}
	return out, initial, nil
}

// endpointEntry is one segment's temporary (se, se-inverse) bisector
// waiting in the endpoints min-heap for the sweep to reach its far
// endpoint, at which point the bisector is removed from the beach line.
type endpointEntry[T types.SignedInteger] struct {
	point point.Point[T]
	node  beachline.NodeHandle
}

// endpointHeap is a container/heap.Interface ordering pending temporary
// bisectors by their far endpoint's (x, then y) position, the same
// ordered-container idiom circlequeue.Queue uses for circle events.
type endpointHeap[T types.SignedInteger] []endpointEntry[T]

func (h endpointHeap[T]) Len() int { return len(h) }
func (h endpointHeap[T]) Less(i, j int) bool {
	return predicate.PointLess(h[i].point, h[j].point)
}
func (h endpointHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *endpointHeap[T]) Push(x any)   { *h = append(*h, x.(endpointEntry[T])) }
func (h *endpointHeap[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// sweep holds the structures the main loop coordinates: the beach line,
// the circle-event queue, the pending-temporary-bisector heap, and the
// output DCEL being built.
type sweep[T types.SignedInteger] struct {
	beach     *beachline.BeachLine[T]
	circles   *circlequeue.Queue
	dcel      *dcel.DCEL[float64]
	endpoints endpointHeap[T]
	seeded    int
	// cellOf maps a site event's InitialIndex to the CellIndex it was
	// actually assigned: cells are added in sorted-site order, which in
	// general differs from input order, so the two indices are not
	// interchangeable.
	cellOf []dcel.CellIndex
}

func newSweep[T types.SignedInteger](numSites int) *sweep[T] {
	return &sweep[T]{
		beach:   beachline.New[T](),
		circles: circlequeue.New(),
		dcel:    dcel.New[float64](numSites),
	}
}

// initBeachLine seeds the beach line per §4.1's initial-seeding rule. A
// lone site becomes a single degenerate arc and the sweep ends
// immediately. A leading run of k>=2 point sites sharing the same x
// (collinear and vertical with respect to the sweep direction) seeds k-1
// horizontal bisectors directly, one per adjacent pair, since no circle
// event could ever resolve the order among them. Otherwise the first two
// sites seed a single breakpoint, the general case.
func (s *sweep[T]) initBeachLine(sites []event.SiteEvent[T]) {
	if len(sites) == 1 {
		s.beach.InsertFirst(predicate.Arc[T]{Left: sites[0], Right: sites[0]})
		s.seeded = 1
		return
	}

	k := 1
	if !sites[0].IsSegment() {
		for k < len(sites) && !sites[k].IsSegment() && sites[k].Point0().X() == sites[0].Point0().X() {
			k++
		}
	}
	if k >= 2 {
		h := s.beach.InsertFirst(predicate.Arc[T]{Left: sites[0], Right: sites[1]})
		s.dcel.AddEdgePair(s.cellOf[sites[0].InitialIndex], s.cellOf[sites[1].InitialIndex])
		for i := 2; i < k; i++ {
			h = s.beach.InsertAfter(h, predicate.Arc[T]{Left: sites[i-1], Right: sites[i]})
			s.dcel.AddEdgePair(s.cellOf[sites[i-1].InitialIndex], s.cellOf[sites[i].InitialIndex])
		}
		s.seeded = k
		return
	}

	s.beach.InsertFirst(predicate.Arc[T]{Left: sites[0], Right: sites[1]})
	s.dcel.AddEdgePair(s.cellOf[sites[0].InitialIndex], s.cellOf[sites[1].InitialIndex])
	s.seeded = 2
}

// processSiteEvent locates the arc the new site falls under, splits it
// into two breakpoints straddling the new site, wires a new DCEL edge
// pair between the two cells that meet there, and re-checks the new and
// surviving breakpoint triples for circle events.
//
// A point site first drains any temporary bisector whose far endpoint it
// coincides with, per §4.1 step 1. A segment site additionally: (2) is
// inverted before becoming an arc key when it lands at the beach line's
// own head, since it is then seen from the opposite side of its directed
// line (§4.1 step 4's at-head branch); (3) gets a third, temporary
// (se, se-inverse) bisector inserted alongside its two real breakpoints,
// tracked in the endpoints heap until the sweep reaches its far endpoint;
// (4) has its local site value inverted between the interior branch's
// second and third circle-event checks. checkCircleEvent reads its site
// triple from the stored beach-line arcs, so the third check does not see
// the inverted value.
func (s *sweep[T]) processSiteEvent(site event.SiteEvent[T]) error {
	xlog.Debugf("process_site_event: site=%s", site)

	if !site.IsSegment() {
		for len(s.endpoints) > 0 && s.endpoints[0].point == site.Point0() {
			entry := heap.Pop(&s.endpoints).(endpointEntry[T])
			xlog.Debugf("process_site_event: draining temporary bisector %d at far endpoint %s", entry.node, entry.point)
			s.beach.Remove(entry.node)
		}
	}

	lookup := predicate.Arc[T]{Left: site, Right: site}
	above, ok := s.beach.LocateAbove(lookup)
	if !ok {
		return newError(BeachLineError, "beach line empty while processing site %d", site.SortedIndex)
	}
	atHead := above == s.beach.First()

	if idx, has := s.beach.CircleEvent(above); has {
		s.circles.Deactivate(idx)
		s.beach.ClearCircleEvent(above)
	}

	arcAbove := s.beach.Arc(above)

	splitSite := site
	if site.IsSegment() && atHead {
		splitSite = site.Inverse()
	}

	s.beach.ReplaceArc(above, predicate.Arc[T]{Left: arcAbove.Left, Right: splitSite})
	if !s.beach.CheckOrder(above) {
		return newError(SelfIntersecting, "beach-line order violated splitting arc for site %d", site.SortedIndex)
	}
	newNode := s.beach.InsertAfter(above, predicate.Arc[T]{Left: splitSite, Right: arcAbove.Right})
	if !s.beach.CheckOrder(newNode) {
		return newError(SelfIntersecting, "beach-line order violated inserting arc for site %d", site.SortedIndex)
	}

	s.dcel.AddEdgePair(s.cellOf[arcAbove.Left.InitialIndex], s.cellOf[site.InitialIndex])

	if site.IsSegment() {
		tempHandle := s.beach.InsertAfter(newNode, predicate.Arc[T]{Left: splitSite, Right: splitSite.Inverse()})
		heap.Push(&s.endpoints, endpointEntry[T]{point: site.Point1(), node: tempHandle})
	}

	s.checkCircleEvent(s.beach.Prev(above), above)
	s.checkCircleEvent(above, newNode)
	if site.IsSegment() && !atHead {
		// §4.1 step 4, interior branch: the local site value is inverted
		// before the right-side check; that check reads its sites from the
		// stored arcs, not from this value.
		site = site.Inverse()
	}
	s.checkCircleEvent(newNode, s.beach.Next(newNode))
	return nil
}

// checkCircleEvent tests whether the arc straddled by two adjacent
// breakpoints (h1's right site must equal h2's left site) is converging,
// and if so pushes the resulting circle event and attaches its id to h2.
func (s *sweep[T]) checkCircleEvent(h1, h2 beachline.NodeHandle) {
	if h1 == beachline.NilHandle || h2 == beachline.NilHandle {
		return
	}
	arc1 := s.beach.Arc(h1)
	arc2 := s.beach.Arc(h2)
	if arc1.Right.SortedIndex != arc2.Left.SortedIndex {
		return
	}

	ev, ok := predicate.CircleFormation(arc1.Left.Site, arc1.Right.Site, arc2.Right.Site)
	if !ok {
		return
	}
	ev.BeachLineIndex = event.BeachLineIndex(h2)
	id := s.circles.Push(ev)
	s.beach.SetCircleEvent(h2, id)
	xlog.Debugf("check_circle_event: activated %s at beach node %d", ev, h2)
}

// processCircleEvent fires a converging circle event: it emits a new
// Voronoi vertex, removes the collapsing arc (and the breakpoint pair
// bounding it) from the beach line, wires the surviving neighbors'
// shared edge to originate at the new vertex, and re-checks for further
// convergence among the neighbors that are now adjacent.
func (s *sweep[T]) processCircleEvent(ev event.CircleEvent) error {
	xlog.Debugf("process_circle_event: %s", ev)
	if ev.CenterX != ev.CenterX { // NaN guard; unreachable for well-formed input
		return newError(InternalError, "circle event center is NaN")
	}

	h := beachline.NodeHandle(ev.BeachLineIndex)
	prev := s.beach.Prev(h)
	next := s.beach.Next(h)

	vIdx := s.dcel.AddVertex(ev.CenterX, ev.CenterY, ev.IsSitePoint)

	if idx, has := s.beach.CircleEvent(h); has {
		s.circles.Deactivate(idx)
	}
	if idx, has := s.beach.CircleEvent(prev); has {
		s.circles.Deactivate(idx)
		s.beach.ClearCircleEvent(prev)
	}

	arc := s.beach.Arc(h)
	s.beach.Remove(h)

	if prev == beachline.NilHandle {
		// h had no left neighbor left by the time its event fired (every
		// arc to its left was already consumed by earlier events) — a
		// vertex still got placed, but there is no surviving left arc to
		// wire a new edge against, so stop here rather than deref prev.
		s.checkCircleEvent(s.beach.Prev(next), next)
		return nil
	}

	prevArc := s.beach.Arc(prev)
	s.beach.ReplaceArc(prev, predicate.Arc[T]{Left: prevArc.Left, Right: arc.Right})
	edge := s.dcel.AddEdgePair(s.cellOf[prevArc.Left.InitialIndex], s.cellOf[arc.Right.InitialIndex])
	s.dcel.Edges[edge].OriginVertex = vIdx
	s.dcel.Edges[s.dcel.Twin(edge)].OriginVertex = vIdx

	s.checkCircleEvent(s.beach.Prev(prev), prev)
	s.checkCircleEvent(prev, next)
	return nil
}
