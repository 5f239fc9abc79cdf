package tuple

import "github.com/cwbudde/algo-tuple/scalar"

// BinaryOp identifies a component-wise two-operand operator.
type BinaryOp int

const (
	OpAdd    BinaryOp = iota // a + b
	OpSub                    // a - b
	OpRevSub                 // b - a
	OpMul                    // a * b
	OpDiv                    // a / b
	OpRevDiv                 // b / a
	OpPow                    // a ** b
	OpRevPow                 // b ** a
)

// TernaryOp identifies a component-wise three-operand operator.
type TernaryOp int

const (
	OpFMA TernaryOp = iota // a*b + c
	OpFAM                  // b*c + a
)

// UnaryOp identifies a component-wise one-operand transform.
type UnaryOp int

const (
	OpSqrt UnaryOp = iota
	OpCbrt
	OpAbs
	OpReciprocal
	OpNegate
	OpSquare
)

var binaryNames = [...]string{"add", "sub", "rev-sub", "mul", "div", "rev-div", "pow", "rev-pow"}

var ternaryNames = [...]string{"fma", "fam"}

var unaryNames = [...]string{"sqrt", "cbrt", "abs", "reciprocal", "negate", "square"}

func (op BinaryOp) String() string {
	if op >= 0 && int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return "unknown"
}

func (op TernaryOp) String() string {
	if op >= 0 && int(op) < len(ternaryNames) {
		return ternaryNames[op]
	}
	return "unknown"
}

func (op UnaryOp) String() string {
	if op >= 0 && int(op) < len(unaryNames) {
		return unaryNames[op]
	}
	return "unknown"
}

// BinaryOps returns every binary operator in declaration order.
func BinaryOps() []BinaryOp {
	ops := make([]BinaryOp, len(binaryNames))
	for i := range ops {
		ops[i] = BinaryOp(i)
	}
	return ops
}

// TernaryOps returns every ternary operator in declaration order.
func TernaryOps() []TernaryOp {
	return []TernaryOp{OpFMA, OpFAM}
}

// UnaryOps returns every unary operator in declaration order.
func UnaryOps() []UnaryOp {
	ops := make([]UnaryOp, len(unaryNames))
	for i := range ops {
		ops[i] = UnaryOp(i)
	}
	return ops
}

// ParseBinaryOp returns the binary operator with the given String name.
func ParseBinaryOp(name string) (BinaryOp, bool) {
	for i, n := range binaryNames {
		if n == name {
			return BinaryOp(i), true
		}
	}
	return 0, false
}

// ParseTernaryOp returns the ternary operator with the given String name.
func ParseTernaryOp(name string) (TernaryOp, bool) {
	for i, n := range ternaryNames {
		if n == name {
			return TernaryOp(i), true
		}
	}
	return 0, false
}

// ParseUnaryOp returns the unary operator with the given String name.
func ParseUnaryOp(name string) (UnaryOp, bool) {
	for i, n := range unaryNames {
		if n == name {
			return UnaryOp(i), true
		}
	}
	return 0, false
}

// EvalBinary applies op to one pair of components.
func EvalBinary[F Float](op BinaryOp, x, y F) F {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpRevSub:
		return y - x
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	case OpRevDiv:
		return y / x
	case OpPow:
		return scalar.Pow(x, y)
	case OpRevPow:
		return scalar.Pow(y, x)
	}
	panic("tuple: unknown binary op")
}

// EvalTernary applies op to one triple of components.
func EvalTernary[F Float](op TernaryOp, x, y, z F) F {
	switch op {
	case OpFMA:
		return scalar.FMA(x, y, z)
	case OpFAM:
		return scalar.FAM(x, y, z)
	}
	panic("tuple: unknown ternary op")
}

// EvalUnary applies op to one component.
func EvalUnary[F Float](op UnaryOp, x F) F {
	switch op {
	case OpSqrt:
		return scalar.Sqrt(x)
	case OpCbrt:
		return scalar.Cbrt(x)
	case OpAbs:
		return scalar.Abs(x)
	case OpReciprocal:
		return scalar.Reciprocal(x)
	case OpNegate:
		return scalar.Negate(x)
	case OpSquare:
		return scalar.Square(x)
	}
	panic("tuple: unknown unary op")
}

// Apply writes op(a, b) for the n components into dst and returns dst.
func Apply[F Float](op BinaryOp, n Arity, dst View[F], a, b Source[F]) View[F] {
	var r [MaxArity]F
	m := n.Len()
	for i := 0; i < m; i++ {
		r[i] = EvalBinary(op, a.At(i), b.At(i))
	}
	dst.store(r[:m])
	return dst
}

// ApplyNew returns op(a, b) in a new slice of length n.
func ApplyNew[F Float](op BinaryOp, n Arity, a, b Source[F]) []F {
	out := make([]F, n.Len())
	Apply(op, n, Compact(out), a, b)
	return out
}

// Apply3 writes op(a, b, c) for the n components into dst and returns dst.
func Apply3[F Float](op TernaryOp, n Arity, dst View[F], a, b, c Source[F]) View[F] {
	var r [MaxArity]F
	m := n.Len()
	for i := 0; i < m; i++ {
		r[i] = EvalTernary(op, a.At(i), b.At(i), c.At(i))
	}
	dst.store(r[:m])
	return dst
}

// Apply3New returns op(a, b, c) in a new slice of length n.
func Apply3New[F Float](op TernaryOp, n Arity, a, b, c Source[F]) []F {
	out := make([]F, n.Len())
	Apply3(op, n, Compact(out), a, b, c)
	return out
}

// ApplyUnary writes op(a) for the n components into dst and returns dst.
func ApplyUnary[F Float](op UnaryOp, n Arity, dst View[F], a Source[F]) View[F] {
	var r [MaxArity]F
	m := n.Len()
	for i := 0; i < m; i++ {
		r[i] = EvalUnary(op, a.At(i))
	}
	dst.store(r[:m])
	return dst
}

// ApplyUnaryNew returns op(a) in a new slice of length n.
func ApplyUnaryNew[F Float](op UnaryOp, n Arity, a Source[F]) []F {
	out := make([]F, n.Len())
	ApplyUnary(op, n, Compact(out), a)
	return out
}
