package batch

import "github.com/cwbudde/algo-tuple/tuple"

// Apply writes op(a[k], b[k]) into dst[k] for every tuple.
func Apply[F tuple.Float](op tuple.BinaryOp, dst, a, b Stream[F]) {
	mustMatch(dst, a, b)
	n := dst.Arity()
	for k := 0; k < dst.Len(); k++ {
		tuple.Apply(op, n, dst.Tuple(k), a.Tuple(k), b.Tuple(k))
	}
}

// ApplyScalar writes op(a[k], s) into dst[k] for every tuple, with s
// broadcast to every component.
func ApplyScalar[F tuple.Float](op tuple.BinaryOp, dst, a Stream[F], s F) {
	mustMatch(dst, a)
	n := dst.Arity()
	splat := tuple.Broadcast(s)
	for k := 0; k < dst.Len(); k++ {
		tuple.Apply[F](op, n, dst.Tuple(k), a.Tuple(k), splat)
	}
}

// Apply3 writes op(a[k], b[k], c[k]) into dst[k] for every tuple.
func Apply3[F tuple.Float](op tuple.TernaryOp, dst, a, b, c Stream[F]) {
	mustMatch(dst, a, b, c)
	n := dst.Arity()
	for k := 0; k < dst.Len(); k++ {
		tuple.Apply3(op, n, dst.Tuple(k), a.Tuple(k), b.Tuple(k), c.Tuple(k))
	}
}

// ApplyUnary writes op(a[k]) into dst[k] for every tuple.
func ApplyUnary[F tuple.Float](op tuple.UnaryOp, dst, a Stream[F]) {
	mustMatch(dst, a)
	n := dst.Arity()
	for k := 0; k < dst.Len(); k++ {
		tuple.ApplyUnary(op, n, dst.Tuple(k), a.Tuple(k))
	}
}

// Add computes dst = a + b.
func Add[F tuple.Float](dst, a, b Stream[F]) {
	if blockBinary(dst, a, b, func(e blockEntry) func(d, x, y []float64) { return e.AddBlock }) {
		return
	}
	Apply(tuple.OpAdd, dst, a, b)
}

// Sub computes dst = a - b.
func Sub[F tuple.Float](dst, a, b Stream[F]) {
	Apply(tuple.OpSub, dst, a, b)
}

// Mul computes dst = a * b component-wise.
func Mul[F tuple.Float](dst, a, b Stream[F]) {
	if blockBinary(dst, a, b, func(e blockEntry) func(d, x, y []float64) { return e.MulBlock }) {
		return
	}
	Apply(tuple.OpMul, dst, a, b)
}

// Div computes dst = a / b component-wise.
func Div[F tuple.Float](dst, a, b Stream[F]) {
	Apply(tuple.OpDiv, dst, a, b)
}

// Scale computes dst = a * s.
func Scale[F tuple.Float](dst, a Stream[F], s F) {
	if blockScale(dst, a, s) {
		return
	}
	ApplyScalar(tuple.OpMul, dst, a, s)
}

// FMA computes dst = a*b + c with a single rounding per component.
func FMA[F tuple.Float](dst, a, b, c Stream[F]) {
	Apply3(tuple.OpFMA, dst, a, b, c)
}

// Negate computes dst = -a.
func Negate[F tuple.Float](dst, a Stream[F]) {
	ApplyUnary(tuple.OpNegate, dst, a)
}
