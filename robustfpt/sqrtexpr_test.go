package robustfpt

import (
	"math"
	"testing"

	"github.com/mikenye/voronoi2d/bigext"
	"github.com/stretchr/testify/assert"
)

func ei(n int64) bigext.ExtendedInt { return bigext.NewExtendedInt(n) }

func TestEval1(t *testing.T) {
	r := Eval1([]bigext.ExtendedInt{ei(3)}, []bigext.ExtendedInt{ei(4)})
	assert.InEpsilon(t, 6.0, r.ToFloat64(), 1e-9) // 3*sqrt(4) = 6
}

func TestEval2_SameSign(t *testing.T) {
	r := Eval2([]bigext.ExtendedInt{ei(1), ei(1)}, []bigext.ExtendedInt{ei(4), ei(9)})
	assert.InEpsilon(t, 5.0, r.ToFloat64(), 1e-9) // sqrt(4)+sqrt(9) = 2+3
}

func TestEval2_NearCancellation(t *testing.T) {
	// sqrt(10^18 + 1) - sqrt(10^18) is a classic near-cancellation case.
	r := Eval2([]bigext.ExtendedInt{ei(1), ei(-1)}, []bigext.ExtendedInt{ei(1000000000000000001), ei(1000000000000000000)})
	want := 1 / (math.Sqrt(1000000000000000001) + math.Sqrt(1000000000000000000))
	assert.InEpsilon(t, want, r.ToFloat64(), 1e-6)
}

func TestEval3(t *testing.T) {
	r := Eval3(
		[]bigext.ExtendedInt{ei(1), ei(1), ei(1)},
		[]bigext.ExtendedInt{ei(4), ei(9), ei(16)},
	)
	assert.InEpsilon(t, 9.0, r.ToFloat64(), 1e-9) // 2+3+4
}

func TestEval4(t *testing.T) {
	r := Eval4(
		[]bigext.ExtendedInt{ei(1), ei(1), ei(1), ei(1)},
		[]bigext.ExtendedInt{ei(4), ei(9), ei(16), ei(25)},
	)
	assert.InEpsilon(t, 14.0, r.ToFloat64(), 1e-9) // 2+3+4+5
}
