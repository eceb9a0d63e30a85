// Package beachline implements the sweepline's status structure: the
// ordered sequence of parabolic arcs currently forming the upper envelope
// of the unprocessed sites, kept as an arena of nodes linked in sweep order
// and indexed by a red-black tree so the arc above any query point can be
// located in O(log n).
//
// The arena-plus-tree split mirrors the approach the teacher repo's own
// sweepline status structure takes: stable handles into a backing slice,
// with a tree node holding just enough to route comparisons back to the
// arc's current (Left, Right) site pair.
package beachline

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/mikenye/voronoi2d/event"
	"github.com/mikenye/voronoi2d/internal/xlog"
	"github.com/mikenye/voronoi2d/predicate"
	"github.com/mikenye/voronoi2d/types"
)

// NodeHandle is a stable reference to an arc within a BeachLine's arena. It
// remains valid across insertions and removals of other nodes.
type NodeHandle int

// NilHandle marks the absence of a node (no prev, no next, no attached
// circle event).
const NilHandle NodeHandle = -1

type node[T types.SignedInteger] struct {
	arc         predicate.Arc[T]
	prev, next  NodeHandle
	circleEvent event.CircleEventIndex
	hasCircle   bool
	live        bool
}

// BeachLine is the sweepline's status structure: a doubly linked sequence
// of arcs in increasing-y order, each also present in a red-black tree
// keyed by predicate.NodeLess so the arc above any point can be found
// without a linear scan.
type BeachLine[T types.SignedInteger] struct {
	arena []node[T]
	free  []NodeHandle
	tree  *rbt.Tree
	first NodeHandle
	last  NodeHandle
	count int
}

type nodeKey[T types.SignedInteger] struct {
	arc    predicate.Arc[T]
	handle NodeHandle
}

func comparator[T types.SignedInteger](a, b interface{}) int {
	ka := a.(nodeKey[T])
	kb := b.(nodeKey[T])
	switch {
	case predicate.NodeLess(ka.arc, kb.arc):
		return -1
	case predicate.NodeLess(kb.arc, ka.arc):
		return 1
	default:
		return 0
	}
}

// New constructs an empty beach line.
func New[T types.SignedInteger]() *BeachLine[T] {
	return &BeachLine[T]{
		tree:  rbt.NewWith(comparator[T]),
		first: NilHandle,
		last:  NilHandle,
	}
}

// Len reports how many arcs are currently live.
func (bl *BeachLine[T]) Len() int {
	return bl.count
}

// First returns the leftmost (lowest-y) arc, or NilHandle if the beach
// line is empty.
func (bl *BeachLine[T]) First() NodeHandle {
	return bl.first
}

// Last returns the rightmost (highest-y) arc, or NilHandle if empty.
func (bl *BeachLine[T]) Last() NodeHandle {
	return bl.last
}

// Prev returns the arc immediately below h, or NilHandle if h is first.
func (bl *BeachLine[T]) Prev(h NodeHandle) NodeHandle {
	return bl.arena[h].prev
}

// Next returns the arc immediately above h, or NilHandle if h is last.
func (bl *BeachLine[T]) Next(h NodeHandle) NodeHandle {
	return bl.arena[h].next
}

// Arc returns the (left, right) site pair currently keying h.
func (bl *BeachLine[T]) Arc(h NodeHandle) predicate.Arc[T] {
	return bl.arena[h].arc
}

// CircleEvent returns the circle-event index attached to h, if any.
func (bl *BeachLine[T]) CircleEvent(h NodeHandle) (event.CircleEventIndex, bool) {
	n := bl.arena[h]
	return n.circleEvent, n.hasCircle
}

// SetCircleEvent attaches a circle-event index to h, replacing whatever
// was attached before.
func (bl *BeachLine[T]) SetCircleEvent(h NodeHandle, idx event.CircleEventIndex) {
	bl.arena[h].circleEvent = idx
	bl.arena[h].hasCircle = true
}

// ClearCircleEvent detaches any circle event from h.
func (bl *BeachLine[T]) ClearCircleEvent(h NodeHandle) {
	bl.arena[h].hasCircle = false
}

func (bl *BeachLine[T]) alloc(arc predicate.Arc[T]) NodeHandle {
	if n := len(bl.free); n > 0 {
		h := bl.free[n-1]
		bl.free = bl.free[:n-1]
		bl.arena[h] = node[T]{arc: arc, prev: NilHandle, next: NilHandle, live: true}
		return h
	}
	bl.arena = append(bl.arena, node[T]{arc: arc, prev: NilHandle, next: NilHandle, live: true})
	return NodeHandle(len(bl.arena) - 1)
}

// InsertFirst inserts arc as the sole node of an empty beach line.
func (bl *BeachLine[T]) InsertFirst(arc predicate.Arc[T]) NodeHandle {
	h := bl.alloc(arc)
	bl.first, bl.last = h, h
	bl.tree.Put(nodeKey[T]{arc: arc, handle: h}, h)
	bl.count++
	return h
}

// InsertAfter inserts a new arc into the linked list immediately after h
// and into the tree. h must not be NilHandle.
func (bl *BeachLine[T]) InsertAfter(h NodeHandle, arc predicate.Arc[T]) NodeHandle {
	newH := bl.alloc(arc)
	next := bl.arena[h].next
	bl.arena[h].next = newH
	bl.arena[newH].prev = h
	bl.arena[newH].next = next
	if next != NilHandle {
		bl.arena[next].prev = newH
	} else {
		bl.last = newH
	}
	bl.tree.Put(nodeKey[T]{arc: arc, handle: newH}, newH)
	bl.count++
	return newH
}

// InsertBefore inserts a new arc into the linked list immediately before h
// and into the tree. h must not be NilHandle.
func (bl *BeachLine[T]) InsertBefore(h NodeHandle, arc predicate.Arc[T]) NodeHandle {
	newH := bl.alloc(arc)
	prev := bl.arena[h].prev
	bl.arena[h].prev = newH
	bl.arena[newH].next = h
	bl.arena[newH].prev = prev
	if prev != NilHandle {
		bl.arena[prev].next = newH
	} else {
		bl.first = newH
	}
	bl.tree.Put(nodeKey[T]{arc: arc, handle: newH}, newH)
	bl.count++
	return newH
}

// Remove detaches h from both the linked list and the tree, and returns
// its slot to the free list.
func (bl *BeachLine[T]) Remove(h NodeHandle) {
	n := bl.arena[h]
	xlog.Debugf("beachline: remove node %d arc=%+v", h, n.arc)
	bl.tree.Remove(nodeKey[T]{arc: n.arc, handle: h})

	if n.prev != NilHandle {
		bl.arena[n.prev].next = n.next
	} else {
		bl.first = n.next
	}
	if n.next != NilHandle {
		bl.arena[n.next].prev = n.prev
	} else {
		bl.last = n.prev
	}

	bl.arena[h] = node[T]{live: false}
	bl.free = append(bl.free, h)
	bl.count--
}

// ReplaceArc mutates the arc keying h, re-indexing it in the tree (the
// linked-list position is unaffected since splitting and merging arcs
// never changes which arcs are adjacent, only what each one keys as).
func (bl *BeachLine[T]) ReplaceArc(h NodeHandle, newArc predicate.Arc[T]) {
	old := bl.arena[h].arc
	xlog.Debugf("beachline: replace_key node %d %+v -> %+v", h, old, newArc)
	bl.tree.Remove(nodeKey[T]{arc: old, handle: h})
	bl.arena[h].arc = newArc
	bl.tree.Put(nodeKey[T]{arc: newArc, handle: h}, h)
}

// CheckOrder reports whether h's key still sorts correctly relative to its
// immediate linked-list neighbors. Splitting or replacing an arc must never
// change its position in the comparator order relative to Prev/Next; when it
// does, the beach line's invariant has broken, which happens in practice
// when two input segments cross and the sweep's usual left-to-right
// assumptions about site order no longer hold.
func (bl *BeachLine[T]) CheckOrder(h NodeHandle) bool {
	n := bl.arena[h]
	if n.prev != NilHandle && !predicate.NodeLess(bl.arena[n.prev].arc, n.arc) {
		return false
	}
	if n.next != NilHandle && !predicate.NodeLess(n.arc, bl.arena[n.next].arc) {
		return false
	}
	return true
}

// LocateAbove finds the arc whose current span covers p: the arc the new
// site p will split when it is inserted into the beach line. ok is false
// only when the beach line is empty.
func (bl *BeachLine[T]) LocateAbove(p predicate.Arc[T]) (NodeHandle, bool) {
	if bl.tree.Size() == 0 {
		return NilHandle, false
	}
	floor, found := bl.tree.Floor(nodeKey[T]{arc: p})
	if !found {
		// p sorts below everything present; the lowest arc is the one
		// whose lower edge it will land against.
		return bl.first, true
	}
	return floor.Value.(NodeHandle), true
}
