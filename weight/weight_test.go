package weight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/alignath/weight"
)

func TestInt_ArithmeticAndOrder(t *testing.T) {
	a, b := weight.Int(3), weight.Int(5)
	assert.Equal(t, weight.Int(8), a.Add(b))
	assert.Equal(t, weight.Int(-2), a.Sub(b))
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Equal(weight.Int(3)))
}

func TestInt_WithinToleranceIgnoresTol(t *testing.T) {
	assert.True(t, weight.Int(7).WithinTolerance(weight.Int(7), 0))
	assert.False(t, weight.Int(7).WithinTolerance(weight.Int(8), 10), "integer weights never blur: tolerance must not make 7 equal 8")
}

func TestFloat64_WithinToleranceAbsorbsRounding(t *testing.T) {
	a := weight.Float64(0.1).Add(weight.Float64(0.2))
	b := weight.Float64(0.3)
	assert.False(t, a.Equal(b), "0.1+0.2 != 0.3 exactly in IEEE arithmetic")
	assert.True(t, a.WithinTolerance(b, 1e-9))
}

func TestFloat32_WithinToleranceWidensToFloat64(t *testing.T) {
	a, b := weight.Float32(1.0000001), weight.Float32(1.0)
	assert.True(t, a.WithinTolerance(b, 1e-3))
	assert.False(t, a.WithinTolerance(weight.Float32(2), 1e-3))
}

func TestMaxMin(t *testing.T) {
	a, b := weight.Int(-1), weight.Int(4)
	assert.Equal(t, b, weight.Max(a, b))
	assert.Equal(t, a, weight.Min(a, b))
	assert.Equal(t, b, weight.Max(b, a))
	assert.Equal(t, a, weight.Min(b, a))
}

func TestNarrowIntWidths(t *testing.T) {
	assert.Equal(t, weight.Int8(3), weight.Int8(1).Add(weight.Int8(2)))
	assert.True(t, weight.Int16(-1).Less(weight.Int16(0)))
	assert.Equal(t, weight.Int32(-3), weight.Int32(1).Sub(weight.Int32(4)))
}
