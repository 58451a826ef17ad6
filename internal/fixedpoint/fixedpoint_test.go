package fixedpoint_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stableflow/reserve-engine/internal/fixedpoint"
)

func TestDivFloors(t *testing.T) {
	out := fixedpoint.Div(big.NewInt(7), big.NewInt(2))
	assert.Equal(t, int64(3), out.Int64())

	out = fixedpoint.MulDiv(big.NewInt(10), big.NewInt(3), big.NewInt(4))
	assert.Equal(t, int64(7), out.Int64())
}

func TestPct(t *testing.T) {
	assert.Equal(t, int64(95), fixedpoint.Pct(big.NewInt(100), 95).Int64())
	assert.Equal(t, int64(0), fixedpoint.Pct(big.NewInt(99), 1).Int64())
	// floors, never rounds
	assert.Equal(t, int64(1), fixedpoint.Pct(big.NewInt(199), 1).Int64())
}

func TestMin(t *testing.T) {
	a := big.NewInt(5)
	b := big.NewInt(9)
	out := fixedpoint.Min(a, b)
	assert.Equal(t, int64(5), out.Int64())

	// result is a copy, not an alias
	out.SetInt64(42)
	assert.Equal(t, int64(5), a.Int64())
}

func TestCloneNil(t *testing.T) {
	out := fixedpoint.Clone(nil)
	assert.Equal(t, int64(0), out.Int64())
}

func TestIsZeroAndIsPositive(t *testing.T) {
	assert.True(t, fixedpoint.IsZero(nil))
	assert.True(t, fixedpoint.IsZero(big.NewInt(0)))
	assert.False(t, fixedpoint.IsZero(big.NewInt(1)))

	assert.False(t, fixedpoint.IsPositive(nil))
	assert.False(t, fixedpoint.IsPositive(big.NewInt(0)))
	assert.False(t, fixedpoint.IsPositive(big.NewInt(-1)))
	assert.True(t, fixedpoint.IsPositive(big.NewInt(1)))
}

func TestParse(t *testing.T) {
	v, ok := fixedpoint.Parse("2000000000000")
	assert.True(t, ok)
	assert.Equal(t, "2000000000000", v.String())

	_, ok = fixedpoint.Parse("-5")
	assert.False(t, ok)

	_, ok = fixedpoint.Parse("1.5")
	assert.False(t, ok)

	_, ok = fixedpoint.Parse("")
	assert.False(t, ok)
}

func TestMulDivLargeValues(t *testing.T) {
	// u128-sized intermediates must not overflow
	a, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	out := fixedpoint.MulDiv(a, fixedpoint.Scale, fixedpoint.Scale)
	assert.Equal(t, a.String(), out.String())
}
