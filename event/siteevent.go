package event

import (
	"fmt"

	"github.com/mikenye/voronoi2d/point"
	"github.com/mikenye/voronoi2d/types"
)

// SiteEvent pairs a Site with the bookkeeping the sweepline needs: where it
// landed in the global sort, which input record it came from, and the
// ColorBits flags identifying its source category and inversion state.
type SiteEvent[T types.SignedInteger] struct {
	Site         Site[T]
	SortedIndex  int
	InitialIndex int
	Flags        Flags
}

// NewSiteEvent constructs a SiteEvent. SortedIndex is left at zero; the
// builder assigns it during init_sites_queue once the full set is sorted.
func NewSiteEvent[T types.SignedInteger](site Site[T], initialIndex int, flags Flags) SiteEvent[T] {
	return SiteEvent[T]{Site: site, InitialIndex: initialIndex, Flags: flags}
}

// IsSegment reports whether the underlying site is a segment.
func (e SiteEvent[T]) IsSegment() bool {
	return e.Site.IsSegment()
}

// Point0 passes through to the underlying site's first point.
func (e SiteEvent[T]) Point0() point.Point[T] {
	return e.Site.Point0()
}

// Point1 passes through to the underlying site's second point.
func (e SiteEvent[T]) Point1() point.Point[T] {
	return e.Site.Point1()
}

func (e SiteEvent[T]) String() string {
	return fmt.Sprintf("SiteEvent{site0=%s site1=%s sorted=%d initial=%d flags=%#x}",
		e.Site.Point0(), e.Site.Point1(), e.SortedIndex, e.InitialIndex, e.Flags)
}

// Inverse returns the event with its site's endpoints swapped and the
// IS_INVERSE flag toggled. Valid only for a segment site.
func (e SiteEvent[T]) Inverse() SiteEvent[T] {
	e.Site = e.Site.Inverse()
	e.Flags = e.Flags.WithInverseToggled()
	return e
}
