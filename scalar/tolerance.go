package scalar

import "math"

// EqualsEM reports whether |a-b| <= tolerance.
// A zero tolerance degenerates to exact equality.
func EqualsEM[F Float](tolerance, a, b F) bool {
	if a == b {
		return true
	}
	if tolerance == 0 {
		return false
	}
	return Abs(a-b) <= tolerance
}

// EqualsEM4 is EqualsEM with tolerance 1e-4.
func EqualsEM4[F Float](a, b F) bool { return EqualsEM(Tolerance4, a, b) }

// EqualsEM6 is EqualsEM with tolerance 1e-6.
func EqualsEM6[F Float](a, b F) bool { return EqualsEM(Tolerance6, a, b) }

// EqualsEM8 is EqualsEM with tolerance 1e-8.
func EqualsEM8[F Float](a, b F) bool { return EqualsEM(Tolerance8, a, b) }

// IsZeroEM reports whether |x| <= tolerance.
func IsZeroEM[F Float](tolerance, x F) bool {
	if x == 0 {
		return true
	}
	return Abs(x) <= tolerance
}

// IsZeroEM4 is IsZeroEM with tolerance 1e-4.
func IsZeroEM4[F Float](x F) bool { return IsZeroEM(Tolerance4, x) }

// IsZeroEM6 is IsZeroEM with tolerance 1e-6.
func IsZeroEM6[F Float](x F) bool { return IsZeroEM(Tolerance6, x) }

// IsZeroEM8 is IsZeroEM with tolerance 1e-8.
func IsZeroEM8[F Float](x F) bool { return IsZeroEM(Tolerance8, x) }

// IsNaN reports whether x is NaN.
func IsNaN[F Float](x F) bool {
	return math.IsNaN(float64(x))
}

// IsInf reports whether x is +Inf or -Inf.
func IsInf[F Float](x F) bool {
	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[F Float](x F) bool {
	return !IsNaN(x) && !IsInf(x)
}
