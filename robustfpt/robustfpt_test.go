package robustfpt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRobustFpt_Add_SameSign(t *testing.T) {
	a := New(3)
	b := New(4)
	r := a.Add(b)
	assert.Equal(t, 7.0, r.Value())
	assert.Equal(t, RoundingError*2, r.ULP())
}

func TestRobustFpt_Mul(t *testing.T) {
	r := New(3).Mul(New(4))
	assert.Equal(t, 12.0, r.Value())
	assert.Equal(t, RoundingError*3, r.ULP())
}

func TestRobustFpt_Sqrt(t *testing.T) {
	r := New(16).Sqrt()
	assert.Equal(t, 4.0, r.Value())
}

func TestRobustFpt_SignPredicates(t *testing.T) {
	assert.True(t, New(1).IsPos())
	assert.True(t, New(-1).IsNeg())
	assert.True(t, New(0).IsZero())
	assert.False(t, New(0).IsPos())
	assert.False(t, New(0).IsNeg())
}

func TestRobustDif_Dif(t *testing.T) {
	d := NewRobustDif().AddFpt(New(10)).SubFpt(New(3))
	assert.Equal(t, 7.0, d.Dif().Value())
}
