// Package bigext provides the arbitrary-precision arithmetic kernel the
// predicate package escalates to once a lazily-computed float64 result's
// tracked ULP error exceeds budget: ExtendedInt, an exact signed integer of
// effectively unbounded range, and ExtendedExponentFpt, a floating-point
// value with an f64 mantissa and a separately-tracked int32 exponent wide
// enough to never overflow during the circle-formation algebra.
//
// ExtendedInt is built on math/big rather than a third-party big-number
// library; ExtendedExponentFpt needs only a float64 mantissa, an int32
// exponent, and package math. No example in this codebase's reference corpus pulls in one (no
// decimal, rational, or extended-precision package appears anywhere), so
// there is no established idiom to follow here, and math/big is the
// standard, well-tested way to get exact integer and float arithmetic in Go.
package bigext
