package bigext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendedInt_Arithmetic(t *testing.T) {
	a := NewExtendedInt(1 << 40)
	b := NewExtendedInt(1 << 40)
	product := a.Mul(b)
	assert.Equal(t, 1, product.Sign())
	assert.Equal(t, "1208925819614629174706176", product.String()) // 2^80

	assert.Equal(t, 0, a.Sub(b).Sign())
	assert.Equal(t, -1, a.Sub(b.Mul(NewExtendedInt(2))).Sign())
}

func TestExtendedInt_Neg(t *testing.T) {
	a := NewExtendedInt(5)
	assert.Equal(t, -1, a.Neg().Sign())
	assert.Equal(t, 0, a.Neg().Cmp(NewExtendedInt(-5)))
}

func TestExtendedInt_ToFloat64(t *testing.T) {
	a := NewExtendedInt(1234)
	assert.Equal(t, 1234.0, a.ToFloat64())
}

func TestExtendedInt_ToMantissaExponent(t *testing.T) {
	a := NewExtendedInt(1).Mul(NewExtendedInt(1 << 62)).Mul(NewExtendedInt(1 << 62))
	m, e := a.ToMantissaExponent()
	assert.InDelta(t, a.ToFloat64(), m*pow2(e), a.ToFloat64()*1e-9)
}

func pow2(e int32) float64 {
	r := 1.0
	for i := int32(0); i < e; i++ {
		r *= 2
	}
	for i := int32(0); i > e; i-- {
		r /= 2
	}
	return r
}
