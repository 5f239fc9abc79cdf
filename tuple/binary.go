package tuple

// Add writes a + b into dst and returns dst.
func Add[F Float](n Arity, dst View[F], a, b Source[F]) View[F] {
	return Apply(OpAdd, n, dst, a, b)
}

// AddInPlace replaces t with t + b and returns t.
func AddInPlace[F Float](n Arity, t View[F], b Source[F]) View[F] {
	return Apply(OpAdd, n, t, t, b)
}

// AddNew returns a + b as a new slice.
func AddNew[F Float](n Arity, a, b Source[F]) []F {
	return ApplyNew(OpAdd, n, a, b)
}

// Sub writes a - b into dst and returns dst.
func Sub[F Float](n Arity, dst View[F], a, b Source[F]) View[F] {
	return Apply(OpSub, n, dst, a, b)
}

// SubInPlace replaces t with t - b and returns t.
func SubInPlace[F Float](n Arity, t View[F], b Source[F]) View[F] {
	return Apply(OpSub, n, t, t, b)
}

// SubNew returns a - b as a new slice.
func SubNew[F Float](n Arity, a, b Source[F]) []F {
	return ApplyNew(OpSub, n, a, b)
}

// RevSub writes b - a into dst and returns dst.
func RevSub[F Float](n Arity, dst View[F], a, b Source[F]) View[F] {
	return Apply(OpRevSub, n, dst, a, b)
}

// RevSubInPlace replaces t with b - t and returns t.
func RevSubInPlace[F Float](n Arity, t View[F], b Source[F]) View[F] {
	return Apply(OpRevSub, n, t, t, b)
}

// RevSubNew returns b - a as a new slice.
func RevSubNew[F Float](n Arity, a, b Source[F]) []F {
	return ApplyNew(OpRevSub, n, a, b)
}

// Mul writes a * b into dst and returns dst.
func Mul[F Float](n Arity, dst View[F], a, b Source[F]) View[F] {
	return Apply(OpMul, n, dst, a, b)
}

// MulInPlace replaces t with t * b and returns t.
func MulInPlace[F Float](n Arity, t View[F], b Source[F]) View[F] {
	return Apply(OpMul, n, t, t, b)
}

// MulNew returns a * b as a new slice.
func MulNew[F Float](n Arity, a, b Source[F]) []F {
	return ApplyNew(OpMul, n, a, b)
}

// Div writes a / b into dst and returns dst.
func Div[F Float](n Arity, dst View[F], a, b Source[F]) View[F] {
	return Apply(OpDiv, n, dst, a, b)
}

// DivInPlace replaces t with t / b and returns t.
func DivInPlace[F Float](n Arity, t View[F], b Source[F]) View[F] {
	return Apply(OpDiv, n, t, t, b)
}

// DivNew returns a / b as a new slice.
func DivNew[F Float](n Arity, a, b Source[F]) []F {
	return ApplyNew(OpDiv, n, a, b)
}

// RevDiv writes b / a into dst and returns dst.
func RevDiv[F Float](n Arity, dst View[F], a, b Source[F]) View[F] {
	return Apply(OpRevDiv, n, dst, a, b)
}

// RevDivInPlace replaces t with b / t and returns t.
func RevDivInPlace[F Float](n Arity, t View[F], b Source[F]) View[F] {
	return Apply(OpRevDiv, n, t, t, b)
}

// RevDivNew returns b / a as a new slice.
func RevDivNew[F Float](n Arity, a, b Source[F]) []F {
	return ApplyNew(OpRevDiv, n, a, b)
}

// Pow writes a ** b into dst and returns dst.
func Pow[F Float](n Arity, dst View[F], a, b Source[F]) View[F] {
	return Apply(OpPow, n, dst, a, b)
}

// PowInPlace replaces t with t ** b and returns t.
func PowInPlace[F Float](n Arity, t View[F], b Source[F]) View[F] {
	return Apply(OpPow, n, t, t, b)
}

// PowNew returns a ** b as a new slice.
func PowNew[F Float](n Arity, a, b Source[F]) []F {
	return ApplyNew(OpPow, n, a, b)
}

// RevPow writes b ** a into dst and returns dst.
func RevPow[F Float](n Arity, dst View[F], a, b Source[F]) View[F] {
	return Apply(OpRevPow, n, dst, a, b)
}

// RevPowInPlace replaces t with b ** t and returns t.
func RevPowInPlace[F Float](n Arity, t View[F], b Source[F]) View[F] {
	return Apply(OpRevPow, n, t, t, b)
}

// RevPowNew returns b ** a as a new slice.
func RevPowNew[F Float](n Arity, a, b Source[F]) []F {
	return ApplyNew(OpRevPow, n, a, b)
}
