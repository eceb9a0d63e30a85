package point

import (
	"fmt"

	"github.com/mikenye/voronoi2d/types"
)

// Line is an ordered pair of points: a directed segment from Start to End.
// The direction matters to callers building segment sites — it is the
// segment's canonical orientation, and left-of/right-of arc tests during
// the sweep depend on it.
type Line[T types.SignedNumber] struct {
	Start Point[T]
	End   Point[T]
}

// NewLine creates a Line from its two endpoints.
func NewLine[T types.SignedNumber](start, end Point[T]) Line[T] {
	return Line[T]{Start: start, End: end}
}

// Reversed returns the line with its endpoints swapped.
func (l Line[T]) Reversed() Line[T] {
	return Line[T]{Start: l.End, End: l.Start}
}

// String returns a string representation in the format "(x0,y0)->(x1,y1)".
func (l Line[T]) String() string {
	return fmt.Sprintf("%s->%s", l.Start, l.End)
}
