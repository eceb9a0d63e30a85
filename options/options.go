// Package options provides the functional-options pattern used to configure
// the public entry points of voronoi2d, most notably the approximate-equality
// checks on [point.Point] used by tests and by callers comparing diagram
// output against expected fixtures.
//
// It deliberately has nothing to do with the ULP-budget tolerances the
// sweepline predicates use internally (those are fixed by the algorithm, not
// user-configurable); Epsilon here is strictly a caller-facing convenience
// for comparing coordinates that are expected to be "close enough".
package options
