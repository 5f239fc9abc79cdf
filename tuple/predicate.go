package tuple

import "github.com/cwbudde/algo-tuple/scalar"

// Equals reports whether a and b have exactly equal components.
//
// Two absent operands (nil, or a view without a buffer) are equal, and an
// absent operand never equals a present one. Views of the same storage are
// equal without comparing components.
func Equals[F Float](n Arity, a, b Source[F]) bool {
	return EqualsEM(0, n, a, b)
}

// EqualsEM reports whether every component pair of a and b differs by at
// most tolerance. It follows the absent-operand rules of Equals.
func EqualsEM[F Float](tolerance F, n Arity, a, b Source[F]) bool {
	m := n.Len()
	if pa, pb := absent(a), absent(b); pa || pb {
		return pa && pb
	}
	if sameStorage(a, b) {
		return true
	}
	for i := 0; i < m; i++ {
		if !scalar.EqualsEM(tolerance, a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// EqualsEM4 is EqualsEM with tolerance 1e-4.
func EqualsEM4[F Float](n Arity, a, b Source[F]) bool {
	return EqualsEM(scalar.Tolerance4, n, a, b)
}

// EqualsEM6 is EqualsEM with tolerance 1e-6.
func EqualsEM6[F Float](n Arity, a, b Source[F]) bool {
	return EqualsEM(scalar.Tolerance6, n, a, b)
}

// EqualsEM8 is EqualsEM with tolerance 1e-8.
func EqualsEM8[F Float](n Arity, a, b Source[F]) bool {
	return EqualsEM(scalar.Tolerance8, n, a, b)
}

// EqualsAt reports whether component i of a and b is exactly equal.
// It panics with an *IndexError if i is outside [0, n).
func EqualsAt[F Float](i int, n Arity, a, b Source[F]) bool {
	return EqualsAtEM(0, i, n, a, b)
}

// EqualsAtEM is EqualsAt with a tolerance.
func EqualsAtEM[F Float](tolerance F, i int, n Arity, a, b Source[F]) bool {
	mustIndex(n, i)
	if pa, pb := absent(a), absent(b); pa || pb {
		return pa && pb
	}
	return scalar.EqualsEM(tolerance, a.At(i), b.At(i))
}

// EqualsAtEM4 is EqualsAtEM with tolerance 1e-4.
func EqualsAtEM4[F Float](i int, n Arity, a, b Source[F]) bool {
	return EqualsAtEM(scalar.Tolerance4, i, n, a, b)
}

// EqualsAtEM6 is EqualsAtEM with tolerance 1e-6.
func EqualsAtEM6[F Float](i int, n Arity, a, b Source[F]) bool {
	return EqualsAtEM(scalar.Tolerance6, i, n, a, b)
}

// EqualsAtEM8 is EqualsAtEM with tolerance 1e-8.
func EqualsAtEM8[F Float](i int, n Arity, a, b Source[F]) bool {
	return EqualsAtEM(scalar.Tolerance8, i, n, a, b)
}

func all[F Float](n Arity, a Source[F], pred func(F) bool) bool {
	m := n.Len()
	for i := 0; i < m; i++ {
		if !pred(a.At(i)) {
			return false
		}
	}
	return true
}

func at[F Float](i int, n Arity, a Source[F], pred func(F) bool) bool {
	mustIndex(n, i)
	return pred(a.At(i))
}

// IsFinite reports whether every component is finite.
func IsFinite[F Float](n Arity, a Source[F]) bool {
	return all(n, a, scalar.IsFinite[F])
}

// IsInfinite reports whether every component is ±Inf.
func IsInfinite[F Float](n Arity, a Source[F]) bool {
	return all(n, a, scalar.IsInf[F])
}

// IsNaN reports whether every component is NaN.
func IsNaN[F Float](n Arity, a Source[F]) bool {
	return all(n, a, scalar.IsNaN[F])
}

// IsZero reports whether every component is exactly zero.
func IsZero[F Float](n Arity, a Source[F]) bool {
	return IsZeroEM(0, n, a)
}

// IsZeroEM reports whether every component is within tolerance of zero.
func IsZeroEM[F Float](tolerance F, n Arity, a Source[F]) bool {
	return all(n, a, func(x F) bool { return scalar.IsZeroEM(tolerance, x) })
}

// IsZeroEM4 is IsZeroEM with tolerance 1e-4.
func IsZeroEM4[F Float](n Arity, a Source[F]) bool {
	return IsZeroEM(scalar.Tolerance4, n, a)
}

// IsZeroEM6 is IsZeroEM with tolerance 1e-6.
func IsZeroEM6[F Float](n Arity, a Source[F]) bool {
	return IsZeroEM(scalar.Tolerance6, n, a)
}

// IsZeroEM8 is IsZeroEM with tolerance 1e-8.
func IsZeroEM8[F Float](n Arity, a Source[F]) bool {
	return IsZeroEM(scalar.Tolerance8, n, a)
}

// IsFiniteAt reports whether component i is finite.
// Like every ...At predicate it panics with an *IndexError if i is
// outside [0, n).
func IsFiniteAt[F Float](i int, n Arity, a Source[F]) bool {
	return at(i, n, a, scalar.IsFinite[F])
}

// IsInfiniteAt reports whether component i is ±Inf.
func IsInfiniteAt[F Float](i int, n Arity, a Source[F]) bool {
	return at(i, n, a, scalar.IsInf[F])
}

// IsNaNAt reports whether component i is NaN.
func IsNaNAt[F Float](i int, n Arity, a Source[F]) bool {
	return at(i, n, a, scalar.IsNaN[F])
}

// IsZeroAt reports whether component i is exactly zero.
func IsZeroAt[F Float](i int, n Arity, a Source[F]) bool {
	return IsZeroAtEM(0, i, n, a)
}

// IsZeroAtEM reports whether component i is within tolerance of zero.
func IsZeroAtEM[F Float](tolerance F, i int, n Arity, a Source[F]) bool {
	return at(i, n, a, func(x F) bool { return scalar.IsZeroEM(tolerance, x) })
}

// IsZeroAtEM4 is IsZeroAtEM with tolerance 1e-4.
func IsZeroAtEM4[F Float](i int, n Arity, a Source[F]) bool {
	return IsZeroAtEM(scalar.Tolerance4, i, n, a)
}

// IsZeroAtEM6 is IsZeroAtEM with tolerance 1e-6.
func IsZeroAtEM6[F Float](i int, n Arity, a Source[F]) bool {
	return IsZeroAtEM(scalar.Tolerance6, i, n, a)
}

// IsZeroAtEM8 is IsZeroAtEM with tolerance 1e-8.
func IsZeroAtEM8[F Float](i int, n Arity, a Source[F]) bool {
	return IsZeroAtEM(scalar.Tolerance8, i, n, a)
}

// GetAt returns component i of a, panicking with an *IndexError if i is
// outside [0, n).
func GetAt[F Float](n Arity, a Source[F], i int) F {
	mustIndex(n, i)
	return a.At(i)
}

// SetAt stores x as component i of v, panicking with an *IndexError if i
// is outside [0, n).
func SetAt[F Float](n Arity, v View[F], i int, x F) {
	mustIndex(n, i)
	v.Set(i, x)
}
