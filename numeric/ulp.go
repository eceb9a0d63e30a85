package numeric

import "math"

// Ulp returns the magnitude of one unit in the last place of a, i.e. the
// distance from a to the next float64 above it. It is the building block
// for the ULP-budget comparisons the sweepline predicates use to decide
// whether a float64 computation's rounding error could flip its sign: a
// result is only trusted once it clears a bound expressed as a small
// multiple of Ulp, and only escalated to exact arithmetic when it doesn't.
func Ulp(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return math.NaN()
	}
	return math.Nextafter(a, math.Inf(1)) - a
}

// WithinULP reports whether a and b differ by no more than n representable
// float64 steps, using the larger of the two operands' ULP magnitudes as the
// step size. This is the predicate-layer analogue of FloatEquals: instead of
// a caller-supplied absolute epsilon, the tolerance scales with the
// magnitude of the values being compared, which is what the predicate
// package's distance and event comparisons rely on.
func WithinULP(a, b float64, n uint) bool {
	if a == b {
		return true
	}
	step := Ulp(a)
	if bStep := Ulp(b); bStep > step {
		step = bStep
	}
	if math.IsNaN(step) {
		return false
	}
	return math.Abs(a-b) <= step*float64(n)
}
