package tuple

// FMA writes a*b + c, fused per component, into dst and returns dst.
func FMA[F Float](n Arity, dst View[F], a, b, c Source[F]) View[F] {
	return Apply3(OpFMA, n, dst, a, b, c)
}

// FMAInPlace replaces t with t*b + c and returns t.
func FMAInPlace[F Float](n Arity, t View[F], b, c Source[F]) View[F] {
	return Apply3(OpFMA, n, t, t, b, c)
}

// FMANew returns a*b + c as a new slice.
func FMANew[F Float](n Arity, a, b, c Source[F]) []F {
	return Apply3New(OpFMA, n, a, b, c)
}

// FAM writes b*c + a, fused per component, into dst and returns dst.
func FAM[F Float](n Arity, dst View[F], a, b, c Source[F]) View[F] {
	return Apply3(OpFAM, n, dst, a, b, c)
}

// FAMInPlace replaces t with b*c + t and returns t.
func FAMInPlace[F Float](n Arity, t View[F], b, c Source[F]) View[F] {
	return Apply3(OpFAM, n, t, t, b, c)
}

// FAMNew returns b*c + a as a new slice.
func FAMNew[F Float](n Arity, a, b, c Source[F]) []F {
	return Apply3New(OpFAM, n, a, b, c)
}
