package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithinULP(t *testing.T) {
	a := 1.0
	b := math.Nextafter(math.Nextafter(a, math.Inf(1)), math.Inf(1))
	assert.True(t, WithinULP(a, b, 2))
	assert.False(t, WithinULP(a, b, 1))
}

func TestWithinULPEqual(t *testing.T) {
	assert.True(t, WithinULP(5.0, 5.0, 0))
}

func TestUlpMonotonic(t *testing.T) {
	assert.Greater(t, Ulp(1e10), Ulp(1.0))
}
