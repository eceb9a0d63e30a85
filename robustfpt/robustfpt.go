// Package robustfpt tracks per-value ULP error through a chain of
// floating-point arithmetic, so the predicate package can decide whether a
// lazily-computed comparison is trustworthy or needs to escalate to the
// bigext exact-arithmetic kernel.
//
// RobustFpt carries a value and a conservative bound on its accumulated
// rounding error, in units of the machine epsilon; each arithmetic op
// combines the operands' values the obvious way and grows the error bound
// by the rule for that operation (sums of same-signed errors take the max
// and add one rounding unit; products and quotients add the operand
// errors). RobustDif defers a subtraction as a running (positive sum,
// negative sum) pair, since naive subtraction of two comparably-sized
// values is exactly the case with the worst relative error — the final
// Dif() computes the one subtraction the whole chain needed.
package robustfpt

import "math"

// RoundingError is the per-operation rounding error added to a result's
// tracked ULP bound: at most 1 machine epsilon.
const RoundingError = 1.0

// RobustFpt is a float64 value paired with a conservative bound, in ULPs,
// on the error accumulated computing it.
type RobustFpt struct {
	value float64
	ulp   float64
}

// New wraps a freshly-computed value with the baseline rounding error.
func New(value float64) RobustFpt {
	return RobustFpt{value: value, ulp: RoundingError}
}

// NewWithError wraps a value with an explicit error bound, for values
// assembled from already-tracked components.
func NewWithError(value, ulp float64) RobustFpt {
	return RobustFpt{value: value, ulp: ulp}
}

// Value returns the tracked float64 value.
func (r RobustFpt) Value() float64 { return r.value }

// ULP returns the tracked error bound.
func (r RobustFpt) ULP() float64 { return r.ulp }

// IsPos reports whether the value is strictly positive. Per the reference
// algorithm, zero is neither positive nor negative.
func (r RobustFpt) IsPos() bool { return r.value > 0 }

// IsNeg reports whether the value is strictly negative.
func (r RobustFpt) IsNeg() bool { return r.value < 0 }

// IsZero reports whether the value is exactly zero.
func (r RobustFpt) IsZero() bool { return r.value == 0 }

// Neg returns -r, with the same error bound.
func (r RobustFpt) Neg() RobustFpt {
	return RobustFpt{value: -r.value, ulp: r.ulp}
}

// Add returns r + o. When the operands share a sign, the result's error is
// the larger of the two plus one rounding unit; when they don't, the error
// is computed from the relative contribution of each operand's error to
// the result (the chief source of error amplification near cancellation).
func (r RobustFpt) Add(o RobustFpt) RobustFpt {
	sum := r.value + o.value
	sameSign := (r.value >= 0 && o.value >= 0) || (r.value <= 0 && o.value <= 0)
	if sameSign {
		return RobustFpt{value: sum, ulp: math.Max(r.ulp, o.ulp) + RoundingError}
	}
	e := math.Abs((r.value*r.ulp - o.value*o.ulp) / sum)
	return RobustFpt{value: sum, ulp: e + RoundingError}
}

// Sub returns r - o.
func (r RobustFpt) Sub(o RobustFpt) RobustFpt {
	return r.Add(o.Neg())
}

// Mul returns r * o. Products' relative errors simply add.
func (r RobustFpt) Mul(o RobustFpt) RobustFpt {
	return RobustFpt{value: r.value * o.value, ulp: r.ulp + o.ulp + RoundingError}
}

// Div returns r / o. Quotients' relative errors add, same as products.
func (r RobustFpt) Div(o RobustFpt) RobustFpt {
	return RobustFpt{value: r.value / o.value, ulp: r.ulp + o.ulp + RoundingError}
}

// Sqrt returns the square root of r. Taking a square root halves the
// relative error (to first order) and adds one rounding unit.
func (r RobustFpt) Sqrt() RobustFpt {
	return RobustFpt{value: math.Sqrt(r.value), ulp: r.ulp*0.5 + RoundingError}
}
