package robustfpt

import "github.com/mikenye/voronoi2d/bigext"

// Eval1 evaluates A[0]*sqrt(B[0]) exactly, converting the ExtendedInt
// operands through bigext.ExtendedExponentFpt. Accurate to within 4 ULP of
// machine epsilon.
func Eval1(a, b []bigext.ExtendedInt) bigext.ExtendedExponentFpt {
	af := extendedIntToFpt(a[0])
	bf := extendedIntToFpt(b[0])
	return af.Mul(bf.Sqrt())
}

// Eval2 evaluates A[0]*sqrt(B[0]) + A[1]*sqrt(B[1]), accurate to within 7
// ULP. When the two sqrt terms don't have opposing signs, summing them
// directly is already exact enough; when they do, the near-cancellation is
// rationalized via (a0*sqrt(b0) + a1*sqrt(b1))(a0*sqrt(b0) - a1*sqrt(b1)) =
// a0²b0 - a1²b1, computed exactly in ExtendedInt before converting back.
func Eval2(a, b []bigext.ExtendedInt) bigext.ExtendedExponentFpt {
	ra := Eval1(a[0:1], b[0:1])
	rb := Eval1(a[1:2], b[1:2])
	if opposingSignsNeedRationalizing(ra, rb) {
		p := a[0].Mul(a[0]).Mul(b[0]).Sub(a[1].Mul(a[1]).Mul(b[1]))
		numer := extendedIntToFpt(p)
		divisor := ra.Sub(rb)
		return numer.Div(divisor)
	}
	return ra.Add(rb)
}

// Eval3 evaluates a three-term sum of A[i]*sqrt(B[i]), accurate to within
// 16 ULP, by treating it as Eval2(a[:2]) + Eval1(a[2:]) and rationalizing
// the same way if the two halves have opposing signs.
func Eval3(a, b []bigext.ExtendedInt) bigext.ExtendedExponentFpt {
	ra := Eval2(a[0:2], b[0:2])
	rb := Eval1(a[2:3], b[2:3])
	if opposingSignsNeedRationalizing(ra, rb) {
		ta0 := a[0].Mul(a[0]).Mul(b[0]).Add(a[1].Mul(a[1]).Mul(b[1])).Sub(a[2].Mul(a[2]).Mul(b[2]))
		tb0 := bigext.NewExtendedInt(1)
		ta1 := a[0].Mul(a[1]).Mul(bigext.NewExtendedInt(2))
		tb1 := b[0].Mul(b[1])
		numer := Eval2([]bigext.ExtendedInt{ta0, ta1}, []bigext.ExtendedInt{tb0, tb1})
		divisor := ra.Sub(rb)
		return numer.Div(divisor)
	}
	return ra.Add(rb)
}

// Eval4 evaluates a four-term sum of A[i]*sqrt(B[i]), accurate to within 25
// ULP, splitting it into two Eval2 halves and rationalizing across them.
func Eval4(a, b []bigext.ExtendedInt) bigext.ExtendedExponentFpt {
	ra := Eval2(a[0:2], b[0:2])
	rb := Eval2(a[2:4], b[2:4])
	if opposingSignsNeedRationalizing(ra, rb) {
		ta0 := a[0].Mul(a[0]).Mul(b[0]).Add(a[1].Mul(a[1]).Mul(b[1])).
			Sub(a[2].Mul(a[2]).Mul(b[2])).Sub(a[3].Mul(a[3]).Mul(b[3]))
		tb0 := bigext.NewExtendedInt(1)
		ta1 := a[0].Mul(a[1]).Mul(bigext.NewExtendedInt(2))
		tb1 := b[0].Mul(b[1])
		ta2 := a[2].Mul(a[3]).Mul(bigext.NewExtendedInt(-2))
		tb2 := b[2].Mul(b[3])
		numer := Eval3([]bigext.ExtendedInt{ta0, ta1, ta2}, []bigext.ExtendedInt{tb0, tb1, tb2})
		divisor := ra.Sub(rb)
		return numer.Div(divisor)
	}
	return ra.Add(rb)
}

func opposingSignsNeedRationalizing(ra, rb bigext.ExtendedExponentFpt) bool {
	if ra.Sign() == 0 || rb.Sign() == 0 {
		return false
	}
	return ra.Sign() != rb.Sign()
}

func extendedIntToFpt(v bigext.ExtendedInt) bigext.ExtendedExponentFpt {
	return v.ToExtendedExponentFpt()
}
