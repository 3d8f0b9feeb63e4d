package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatEqualWidensAcrossKinds(t *testing.T) {
	a := NewF32(3.5)
	b := NewF64(3.5)

	assert.True(t, a.Equal(b))
}

func TestFloatCompareOrdersByValue(t *testing.T) {
	a := NewF64(1.0)
	b := NewF64(2.0)

	ord, ok := a.Compare(b)
	assert.True(t, ok)
	assert.Equal(t, -1, ord)
}

func TestFloatCompareNaNNotOrdered(t *testing.T) {
	a := NewF64(math.NaN())
	b := NewF64(1.0)

	_, ok := a.Compare(b)
	assert.False(t, ok)

	assert.False(t, a.Equal(a), "NaN must not equal itself")
}

func TestFloatSize(t *testing.T) {
	assert.Equal(t, 4, NewF32(1).Size())
	assert.Equal(t, 8, NewF64(1).Size())
}
