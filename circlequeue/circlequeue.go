// Package circlequeue implements the sweepline's circle-event priority
// queue: a container/heap-ordered min-queue of pending circle events plus
// an id-indexed deactivation bitset, so an event can be invalidated in
// O(1) when the arc that would have produced it disappears before the
// sweep reaches it, without a heap removal.
//
// The heap.Interface + id map + bitset layout mirrors the teacher repo's
// own sweepline event queue, adapted from its slice-of-pointers-with-index
// bookkeeping to a value-typed circle-event id scheme.
package circlequeue

import (
	"container/heap"

	"github.com/mikenye/voronoi2d/event"
	"github.com/mikenye/voronoi2d/internal/xlog"
)

type item struct {
	ev    event.CircleEvent
	index int // position in the heap slice; maintained by heap.Interface
}

// innerHeap is the bare container/heap.Interface adapter. Keeping it
// separate from Queue lets Queue expose its own Push/Pop with friendlier
// signatures without colliding with heap.Interface's.
type innerHeap struct {
	items []*item
}

func (h *innerHeap) Len() int { return len(h.items) }

func (h *innerHeap) Less(i, j int) bool {
	return h.items[i].ev.Less(h.items[j].ev)
}

func (h *innerHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

func (h *innerHeap) Push(x any) {
	it := x.(*item)
	it.index = len(h.items)
	h.items = append(h.items, it)
}

func (h *innerHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}

// Queue is a min-priority queue of circle events ordered by
// event.CircleEvent.Less, with O(1) deactivation of events that are still
// physically in the heap but no longer valid.
type Queue struct {
	heap     innerHeap
	byID     map[event.CircleEventIndex]*item
	deactive []bool
	nextID   event.CircleEventIndex
}

// New constructs an empty circle-event queue.
func New() *Queue {
	return &Queue{
		byID: make(map[event.CircleEventIndex]*item),
	}
}

// Len reports how many circle events are currently active (deactivated
// events still physically in the heap are not counted).
func (q *Queue) Len() int {
	n := 0
	for _, it := range q.heap.items {
		if !q.isDeactivated(it.ev.Index) {
			n++
		}
	}
	return n
}

func (q *Queue) isDeactivated(idx event.CircleEventIndex) bool {
	i := int(idx)
	return i < len(q.deactive) && q.deactive[i]
}

func (q *Queue) growDeactive(id event.CircleEventIndex) {
	for len(q.deactive) <= int(id) {
		q.deactive = append(q.deactive, false)
	}
}

// Push assigns a fresh id to ev, inserts it into the heap, and returns the
// id so the caller (the beach-line node that owns this event) can later
// deactivate it.
func (q *Queue) Push(ev event.CircleEvent) event.CircleEventIndex {
	id := q.nextID
	q.nextID++
	ev.Index = id
	q.growDeactive(id)

	it := &item{ev: ev}
	q.byID[id] = it
	heap.Push(&q.heap, it)
	xlog.Debugf("circlequeue: push id=%d %s", id, ev)
	return id
}

// Deactivate marks id's event as no longer valid. The event stays in the
// heap (to avoid an O(n) removal) but Top/Pop skip over it.
func (q *Queue) Deactivate(id event.CircleEventIndex) {
	q.growDeactive(id)
	q.deactive[id] = true
	xlog.Debugf("circlequeue: deactivate id=%d", id)
}

// Top returns the lowest active circle event without removing it.
func (q *Queue) Top() (event.CircleEvent, bool) {
	q.dropDeactivatedTop()
	if q.heap.Len() == 0 {
		return event.CircleEvent{}, false
	}
	return q.heap.items[0].ev, true
}

// Pop removes and returns the lowest active circle event.
func (q *Queue) Pop() (event.CircleEvent, bool) {
	q.dropDeactivatedTop()
	if q.heap.Len() == 0 {
		return event.CircleEvent{}, false
	}
	it := heap.Pop(&q.heap).(*item)
	delete(q.byID, it.ev.Index)
	return it.ev, true
}

func (q *Queue) dropDeactivatedTop() {
	for q.heap.Len() > 0 && q.isDeactivated(q.heap.items[0].ev.Index) {
		it := heap.Pop(&q.heap).(*item)
		delete(q.byID, it.ev.Index)
	}
}
