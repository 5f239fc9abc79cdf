package batch

import "github.com/cwbudde/algo-tuple/tuple"

// AllFinite reports whether every component of every tuple is finite.
func AllFinite[F tuple.Float](s Stream[F]) bool {
	for k := 0; k < s.Len(); k++ {
		if !tuple.IsFinite[F](s.Arity(), s.Tuple(k)) {
			return false
		}
	}
	return true
}

// AnyNaN reports whether any component of any tuple is NaN.
func AnyNaN[F tuple.Float](s Stream[F]) bool {
	n := s.Arity()
	for k := 0; k < s.Len(); k++ {
		t := s.Tuple(k)
		for i := 0; i < n.Len(); i++ {
			if tuple.IsNaNAt[F](i, n, t) {
				return true
			}
		}
	}
	return false
}

// AllZeroEM reports whether every tuple is within tolerance of zero.
func AllZeroEM[F tuple.Float](tolerance F, s Stream[F]) bool {
	for k := 0; k < s.Len(); k++ {
		if !tuple.IsZeroEM[F](tolerance, s.Arity(), s.Tuple(k)) {
			return false
		}
	}
	return true
}

// EqualsEM reports whether a[k] and b[k] are equal within tolerance for
// every k. Streams with mismatched layouts panic.
func EqualsEM[F tuple.Float](tolerance F, a, b Stream[F]) bool {
	mustMatch(a, b)
	for k := 0; k < a.Len(); k++ {
		if !tuple.EqualsEM[F](tolerance, a.Arity(), a.Tuple(k), b.Tuple(k)) {
			return false
		}
	}
	return true
}

// FirstMismatch returns the index of the first tuple pair that differs by
// more than tolerance, or -1 if none does.
func FirstMismatch[F tuple.Float](tolerance F, a, b Stream[F]) int {
	mustMatch(a, b)
	for k := 0; k < a.Len(); k++ {
		if !tuple.EqualsEM[F](tolerance, a.Arity(), a.Tuple(k), b.Tuple(k)) {
			return k
		}
	}
	return -1
}
