// Package fixedpoint provides scaled big-integer arithmetic for the engine.
// All token amounts and prices are unsigned integers scaled by Scale (8
// decimals); the reward accumulator-per-share carries an extra AccPrecision
// factor so per-share values survive integer division. Division always
// floors.
package fixedpoint

import "math/big"

var (
	// Scale is the fixed decimal factor of amounts and prices (1e8)
	Scale = big.NewInt(100_000_000)

	// AccPrecision scales the reward accumulator-per-share (1e12)
	AccPrecision = big.NewInt(1_000_000_000_000)
)

// Zero returns a fresh zero value
func Zero() *big.Int {
	return new(big.Int)
}

// Clone returns a copy of v, treating nil as zero
func Clone(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// Add returns a + b
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// Sub returns a - b. Callers must have established a >= b; a negative
// result indicates a broken invariant upstream.
func Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

// Mul returns a * b
func Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// Div returns floor(a / b); b must be positive
func Div(a, b *big.Int) *big.Int {
	return new(big.Int).Quo(a, b)
}

// MulDiv returns floor(a * b / den); den must be positive
func MulDiv(a, b, den *big.Int) *big.Int {
	return new(big.Int).Quo(new(big.Int).Mul(a, b), den)
}

// MulInt64 returns a * b for a small constant factor
func MulInt64(a *big.Int, b int64) *big.Int {
	return new(big.Int).Mul(a, big.NewInt(b))
}

// DivInt64 returns floor(a / b) for a small positive constant divisor
func DivInt64(a *big.Int, b int64) *big.Int {
	return new(big.Int).Quo(a, big.NewInt(b))
}

// Pct returns floor(a * num / 100)
func Pct(a *big.Int, num int64) *big.Int {
	return new(big.Int).Quo(new(big.Int).Mul(a, big.NewInt(num)), big.NewInt(100))
}

// Min returns the smaller of a and b
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return Clone(a)
	}
	return Clone(b)
}

// IsZero reports whether v is nil or zero
func IsZero(v *big.Int) bool {
	return v == nil || v.Sign() == 0
}

// IsPositive reports whether v is strictly positive
func IsPositive(v *big.Int) bool {
	return v != nil && v.Sign() > 0
}

// FromInt64 wraps a small constant as a big.Int
func FromInt64(v int64) *big.Int {
	return big.NewInt(v)
}

// Parse converts a decimal string into an amount; the bool reports whether
// the string was a valid non-negative integer.
func Parse(s string) (*big.Int, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, false
	}
	return v, true
}
