package bigext

import "math"

// ExtendedExponentFpt is a floating-point value represented as a mantissa in
// [0.5, 1) together with an exponent tracked as its own int32, independent
// of float64's built-in 11-bit exponent. This is what lets the circle-event
// sqrt-expression evaluator chain several multiplications and square roots
// of very large or very small ExtendedInt-derived values without overflowing
// or underflowing a plain float64's exponent range along the way.
type ExtendedExponentFpt struct {
	mantissa float64
	exponent int32
}

// significandWidth is the number of bits in a float64 mantissa; per the
// spec, addition and subtraction discard the smaller operand once the
// exponents differ by more than this, since its contribution cannot affect
// the result's mantissa bits.
const significandWidth = 54

// NewExtendedExponentFpt normalizes v into mantissa*2^exponent form with the
// mantissa in [0.5, 1) (or zero).
func NewExtendedExponentFpt(v float64) ExtendedExponentFpt {
	if v == 0 {
		return ExtendedExponentFpt{}
	}
	m, e := math.Frexp(v)
	return ExtendedExponentFpt{mantissa: m, exponent: int32(e)}
}

// NewExtendedExponentFptFromMantissaExponent builds an ExtendedExponentFpt
// from a (mantissa, exponent) pair such that the value is
// mantissa * 2^exponent, normalizing the mantissa into [0.5, 1). This is
// the bridge from ExtendedInt.ToMantissaExponent into this type.
func NewExtendedExponentFptFromMantissaExponent(mantissa float64, exponent int32) ExtendedExponentFpt {
	return newNormalized(mantissa, exponent)
}

func newNormalized(mantissa float64, exponent int32) ExtendedExponentFpt {
	if mantissa == 0 {
		return ExtendedExponentFpt{}
	}
	m, e := math.Frexp(mantissa)
	return ExtendedExponentFpt{mantissa: m, exponent: exponent + int32(e)}
}

// Sign returns -1, 0, or 1.
func (a ExtendedExponentFpt) Sign() int {
	switch {
	case a.mantissa > 0:
		return 1
	case a.mantissa < 0:
		return -1
	default:
		return 0
	}
}

// ToFloat64 converts a back to a float64 via ldexp, which may overflow to
// +/-Inf or underflow to 0 if the exponent is out of float64's range.
func (a ExtendedExponentFpt) ToFloat64() float64 {
	return math.Ldexp(a.mantissa, int(a.exponent))
}

// Add returns a + b.
func (a ExtendedExponentFpt) Add(b ExtendedExponentFpt) ExtendedExponentFpt {
	if a.mantissa == 0 {
		return b
	}
	if b.mantissa == 0 {
		return a
	}
	diff := a.exponent - b.exponent
	if diff > significandWidth {
		return a
	}
	if diff < -significandWidth {
		return b
	}
	if diff >= 0 {
		shifted := math.Ldexp(b.mantissa, -int(diff))
		return newNormalized(a.mantissa+shifted, a.exponent)
	}
	shifted := math.Ldexp(a.mantissa, int(diff))
	return newNormalized(shifted+b.mantissa, b.exponent)
}

// Sub returns a - b.
func (a ExtendedExponentFpt) Sub(b ExtendedExponentFpt) ExtendedExponentFpt {
	return a.Add(ExtendedExponentFpt{mantissa: -b.mantissa, exponent: b.exponent})
}

// Mul returns a * b.
func (a ExtendedExponentFpt) Mul(b ExtendedExponentFpt) ExtendedExponentFpt {
	if a.mantissa == 0 || b.mantissa == 0 {
		return ExtendedExponentFpt{}
	}
	return newNormalized(a.mantissa*b.mantissa, a.exponent+b.exponent)
}

// Div returns a / b.
func (a ExtendedExponentFpt) Div(b ExtendedExponentFpt) ExtendedExponentFpt {
	return newNormalized(a.mantissa/b.mantissa, a.exponent-b.exponent)
}

// Sqrt returns the square root of a. a must be non-negative.
func (a ExtendedExponentFpt) Sqrt() ExtendedExponentFpt {
	if a.mantissa == 0 {
		return ExtendedExponentFpt{}
	}
	exponent := a.exponent
	mantissa := a.mantissa
	if exponent%2 != 0 {
		mantissa *= 2
		exponent--
	}
	return newNormalized(math.Sqrt(mantissa), exponent/2)
}
