// Package types defines the core type constraints shared across voronoi2d.
//
// It exports SignedNumber, the numeric type set that point.Point and
// point.Line are parameterized over, and SignedInteger, the narrower integer
// set that sites and the builder use. Keeping them in their own package avoids an import cycle between the point, predicate,
// and builder packages, all of which need to name the constraint without
// depending on each other.
package types
