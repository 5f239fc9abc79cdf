// Package scalar provides the per-component primitives the tuple kernel is
// built from: powers and roots, fused multiply-add, the small unary
// transforms, and tolerance-based comparisons.
//
// All functions are generic over [Float] and follow IEEE-754 semantics:
// NaN propagates, division by zero yields ±Inf, and nothing here panics.
//
// # Tolerance tiers
//
// The EM4, EM6 and EM8 variants are the general tolerance functions called
// with [Tolerance4], [Tolerance6] and [Tolerance8]:
//
//	scalar.EqualsEM4(a, b) == scalar.EqualsEM(scalar.Tolerance4, a, b)
package scalar

import "math"

// Float is a constraint for floating-point component types.
type Float interface {
	~float32 | ~float64
}

// Fixed tolerance tiers.
const (
	Tolerance4 = 1e-4
	Tolerance6 = 1e-6
	Tolerance8 = 1e-8
)

// Pow returns base**exp with the special cases of [math.Pow].
func Pow[F Float](base, exp F) F {
	return F(math.Pow(float64(base), float64(exp)))
}

// Sqrt returns the square root of x. Negative input yields NaN.
func Sqrt[F Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

// Cbrt returns the real cube root of x, including for negative x.
func Cbrt[F Float](x F) F {
	return F(math.Cbrt(float64(x)))
}

// FMA returns a*b + c computed with a single rounding.
//
// float32 operands are widened to float64, where their product is exact,
// so the float32 result is within one ULP of the correctly fused value.
func FMA[F Float](a, b, c F) F {
	return F(math.FMA(float64(a), float64(b), float64(c)))
}

// FAM is the addend-first ordering of [FMA]: it returns b*c + a.
func FAM[F Float](a, b, c F) F {
	return FMA(b, c, a)
}

// Abs returns |x|.
func Abs[F Float](x F) F {
	return F(math.Abs(float64(x)))
}

// Negate returns -x.
func Negate[F Float](x F) F {
	return -x
}

// Reciprocal returns 1/x.
func Reciprocal[F Float](x F) F {
	return 1 / x
}

// Square returns x*x.
func Square[F Float](x F) F {
	return x * x
}
