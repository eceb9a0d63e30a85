package bigext

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendedExponentFpt_RoundTrip(t *testing.T) {
	for _, v := range []float64{1, -1, 0.5, 123.456, -987654321.0, 1e100, 1e-100} {
		e := NewExtendedExponentFpt(v)
		assert.InEpsilon(t, v, e.ToFloat64(), 1e-12)
	}
}

func TestExtendedExponentFpt_Zero(t *testing.T) {
	e := NewExtendedExponentFpt(0)
	assert.Equal(t, 0, e.Sign())
	assert.Equal(t, 0.0, e.ToFloat64())
}

func TestExtendedExponentFpt_Add(t *testing.T) {
	a := NewExtendedExponentFpt(3)
	b := NewExtendedExponentFpt(4)
	assert.InEpsilon(t, 7.0, a.Add(b).ToFloat64(), 1e-12)
}

func TestExtendedExponentFpt_Sub(t *testing.T) {
	a := NewExtendedExponentFpt(10)
	b := NewExtendedExponentFpt(3)
	assert.InEpsilon(t, 7.0, a.Sub(b).ToFloat64(), 1e-12)
}

func TestExtendedExponentFpt_Mul(t *testing.T) {
	a := NewExtendedExponentFpt(1e200)
	b := NewExtendedExponentFpt(1e200)
	// 1e400 overflows float64, but the mantissa/exponent pair stays exact.
	got := a.Mul(b)
	assert.Equal(t, 1, got.Sign())
	assert.True(t, math.IsInf(got.ToFloat64(), 1))
}

func TestExtendedExponentFpt_Div(t *testing.T) {
	a := NewExtendedExponentFpt(10)
	b := NewExtendedExponentFpt(4)
	assert.InEpsilon(t, 2.5, a.Div(b).ToFloat64(), 1e-12)
}

func TestExtendedExponentFpt_Sqrt(t *testing.T) {
	a := NewExtendedExponentFpt(1e200)
	got := a.Mul(a).Sqrt()
	assert.InEpsilon(t, 1e200, got.ToFloat64(), 1e-9)
}

func TestExtendedExponentFpt_AddDiscardsNegligibleOperand(t *testing.T) {
	a := NewExtendedExponentFpt(1e100)
	b := NewExtendedExponentFpt(1)
	assert.Equal(t, a.ToFloat64(), a.Add(b).ToFloat64())
}
