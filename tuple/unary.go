package tuple

// Sqrt writes the square root of each component of a into dst and returns dst.
func Sqrt[F Float](n Arity, dst View[F], a Source[F]) View[F] {
	return ApplyUnary(OpSqrt, n, dst, a)
}

// SqrtInPlace applies Sqrt to t and returns t.
func SqrtInPlace[F Float](n Arity, t View[F]) View[F] {
	return ApplyUnary(OpSqrt, n, t, t)
}

// SqrtNew returns the square root of each component of a as a new slice.
func SqrtNew[F Float](n Arity, a Source[F]) []F {
	return ApplyUnaryNew(OpSqrt, n, a)
}

// Cbrt writes the cube root of each component of a into dst and returns dst.
func Cbrt[F Float](n Arity, dst View[F], a Source[F]) View[F] {
	return ApplyUnary(OpCbrt, n, dst, a)
}

// CbrtInPlace applies Cbrt to t and returns t.
func CbrtInPlace[F Float](n Arity, t View[F]) View[F] {
	return ApplyUnary(OpCbrt, n, t, t)
}

// CbrtNew returns the cube root of each component of a as a new slice.
func CbrtNew[F Float](n Arity, a Source[F]) []F {
	return ApplyUnaryNew(OpCbrt, n, a)
}

// Abs writes the absolute value of each component of a into dst and returns dst.
func Abs[F Float](n Arity, dst View[F], a Source[F]) View[F] {
	return ApplyUnary(OpAbs, n, dst, a)
}

// AbsInPlace applies Abs to t and returns t.
func AbsInPlace[F Float](n Arity, t View[F]) View[F] {
	return ApplyUnary(OpAbs, n, t, t)
}

// AbsNew returns the absolute value of each component of a as a new slice.
func AbsNew[F Float](n Arity, a Source[F]) []F {
	return ApplyUnaryNew(OpAbs, n, a)
}

// Reciprocal writes 1/x for each component of a into dst and returns dst.
func Reciprocal[F Float](n Arity, dst View[F], a Source[F]) View[F] {
	return ApplyUnary(OpReciprocal, n, dst, a)
}

// ReciprocalInPlace applies Reciprocal to t and returns t.
func ReciprocalInPlace[F Float](n Arity, t View[F]) View[F] {
	return ApplyUnary(OpReciprocal, n, t, t)
}

// ReciprocalNew returns 1/x for each component of a as a new slice.
func ReciprocalNew[F Float](n Arity, a Source[F]) []F {
	return ApplyUnaryNew(OpReciprocal, n, a)
}

// Negate writes -x for each component of a into dst and returns dst.
func Negate[F Float](n Arity, dst View[F], a Source[F]) View[F] {
	return ApplyUnary(OpNegate, n, dst, a)
}

// NegateInPlace applies Negate to t and returns t.
func NegateInPlace[F Float](n Arity, t View[F]) View[F] {
	return ApplyUnary(OpNegate, n, t, t)
}

// NegateNew returns -x for each component of a as a new slice.
func NegateNew[F Float](n Arity, a Source[F]) []F {
	return ApplyUnaryNew(OpNegate, n, a)
}

// Square writes x*x for each component of a into dst and returns dst.
func Square[F Float](n Arity, dst View[F], a Source[F]) View[F] {
	return ApplyUnary(OpSquare, n, dst, a)
}

// SquareInPlace applies Square to t and returns t.
func SquareInPlace[F Float](n Arity, t View[F]) View[F] {
	return ApplyUnary(OpSquare, n, t, t)
}

// SquareNew returns x*x for each component of a as a new slice.
func SquareNew[F Float](n Arity, a Source[F]) []F {
	return ApplyUnaryNew(OpSquare, n, a)
}
