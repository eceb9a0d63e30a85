package event

import "fmt"

// CircleEventIndex identifies a circle event within the circle-event queue's
// id map and deactivation bitset.
type CircleEventIndex int

// BeachLineIndex identifies a beach-line node. Defined here, rather than in
// the beachline package, so that event and beachline can reference each
// other's index types without an import cycle.
type BeachLineIndex int

// CircleEvent is the future moment when three consecutive beach-line arcs
// collapse to a point: a new Voronoi vertex at (CenterX, CenterY), firing
// when the sweepline reaches LowerX (the rightmost point on that circle).
type CircleEvent struct {
	CenterX        float64
	CenterY        float64
	LowerX         float64
	Index          CircleEventIndex
	BeachLineIndex BeachLineIndex
	IsSitePoint    bool
}

// NewCircleEvent constructs a CircleEvent centered at (cx, cy) with the
// given lower_x, not yet assigned to a queue index.
func NewCircleEvent(cx, cy, lowerX float64, beachLineIndex BeachLineIndex) CircleEvent {
	return CircleEvent{CenterX: cx, CenterY: cy, LowerX: lowerX, BeachLineIndex: beachLineIndex}
}

// Less orders circle events: primary by LowerX ascending, secondary by
// CenterY ascending, tertiary by Index descending (the youngest of two
// simultaneous events wins, i.e. sorts first).
func (e CircleEvent) Less(o CircleEvent) bool {
	if e.LowerX != o.LowerX {
		return e.LowerX < o.LowerX
	}
	if e.CenterY != o.CenterY {
		return e.CenterY < o.CenterY
	}
	return e.Index > o.Index
}

func (e CircleEvent) String() string {
	return fmt.Sprintf("CircleEvent{x=%.12f y=%.12f lowerX=%.12f idx=%d}", e.CenterX, e.CenterY, e.LowerX, e.Index)
}
