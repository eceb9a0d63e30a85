package bigext

import "math/big"

// ExtendedInt is an arbitrary-precision signed integer. It exists because
// the circle-formation predicates multiply together several input
// coordinates and squared distances; even with i64 input, three or four
// such multiplications overflow a float64's 53-bit mantissa long before
// they overflow its exponent range, so exactness — not just range — is
// what's needed.
type ExtendedInt struct {
	v big.Int
}

// NewExtendedInt constructs an ExtendedInt from an int64.
func NewExtendedInt(n int64) ExtendedInt {
	var e ExtendedInt
	e.v.SetInt64(n)
	return e
}

// newFromBig wraps a big.Int without copying (the caller must not retain
// its own reference to n).
func newFromBig(n *big.Int) ExtendedInt {
	var e ExtendedInt
	e.v = *n
	return e
}

// Add returns a + b.
func (a ExtendedInt) Add(b ExtendedInt) ExtendedInt {
	var r big.Int
	r.Add(&a.v, &b.v)
	return newFromBig(&r)
}

// Sub returns a - b.
func (a ExtendedInt) Sub(b ExtendedInt) ExtendedInt {
	var r big.Int
	r.Sub(&a.v, &b.v)
	return newFromBig(&r)
}

// Mul returns a * b.
func (a ExtendedInt) Mul(b ExtendedInt) ExtendedInt {
	var r big.Int
	r.Mul(&a.v, &b.v)
	return newFromBig(&r)
}

// Neg returns -a.
func (a ExtendedInt) Neg() ExtendedInt {
	var r big.Int
	r.Neg(&a.v)
	return newFromBig(&r)
}

// Sign returns -1, 0, or 1 depending on the sign of a.
func (a ExtendedInt) Sign() int {
	return a.v.Sign()
}

// Cmp compares a and b, returning -1, 0, or 1.
func (a ExtendedInt) Cmp(b ExtendedInt) int {
	return a.v.Cmp(&b.v)
}

// ToFloat64 converts a to the nearest representable float64. Precision may
// be lost; callers needing the lost bits should use ToMantissaExponent.
func (a ExtendedInt) ToFloat64() float64 {
	f, _ := new(big.Float).SetInt(&a.v).Float64()
	return f
}

// ToMantissaExponent converts a to a (mantissa, exponent) pair such that
// a ≈ mantissa * 2^exponent: mantissa holds a's top 53 bits, and any lower
// bits that exponent accounts for are truncated, so the equality is exact
// only when a fits in 53 bits. This is the
// conversion ExtendedExponentFpt is built from, since it needs the exponent
// tracked independently of the f64's own limited exponent range.
func (a ExtendedInt) ToMantissaExponent() (mantissa float64, exponent int32) {
	if a.v.Sign() == 0 {
		return 0, 0
	}
	bits := a.v.BitLen()
	shift := bits - 53
	var mant big.Int
	if shift > 0 {
		mant.Rsh(&a.v, uint(shift))
	} else {
		mant.Set(&a.v)
		shift = 0
	}
	m, _ := new(big.Float).SetInt(&mant).Float64()
	return m, int32(shift)
}

// ToExtendedExponentFpt converts a to an ExtendedExponentFpt via
// ToMantissaExponent, the bridge the exact circle-formation escalation path
// uses to hand a big.Int-backed intermediate result to the sqrt-expression
// evaluator without first collapsing it through a plain float64.
func (a ExtendedInt) ToExtendedExponentFpt() ExtendedExponentFpt {
	mantissa, exponent := a.ToMantissaExponent()
	return NewExtendedExponentFptFromMantissaExponent(mantissa, exponent)
}

func (a ExtendedInt) String() string {
	return a.v.String()
}
