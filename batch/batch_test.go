package batch

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-tuple/internal/testutil"
	"github.com/cwbudde/algo-tuple/layout"
	"github.com/cwbudde/algo-tuple/tuple"
)

const sentinel = 99

var arities = []tuple.Arity{tuple.Arity2, tuple.Arity3, tuple.Arity4}

func layouts(n tuple.Arity, count int) map[string]layout.Layout {
	return map[string]layout.Layout{
		"packed":      layout.Packed(n, count),
		"padded":      layout.Padded(n, count),
		"interleaved": layout.Interleaved(n, 1, n.Len()+3, count),
	}
}

// streamOf places packed tuples from src into a new buffer laid out by l,
// with every unused slot set to sentinel.
func streamOf[F tuple.Float](src []float32, l layout.Layout) Stream[F] {
	buf := make([]F, l.Span()+2)
	for i := range buf {
		buf[i] = sentinel
	}
	m := l.Arity.Len()
	for k := 0; k < l.Count; k++ {
		for i := 0; i < m; i++ {
			buf[l.Index(k)+i] = F(src[k*m+i])
		}
	}
	return Stream[F]{Buf: buf, Layout: l}
}

// requireSentinels fails t if any slot outside the tuples was written.
func requireSentinels[F tuple.Float](t *testing.T, s Stream[F]) {
	t.Helper()
	used := make([]bool, len(s.Buf))
	m := s.Layout.Arity.Len()
	for k := 0; k < s.Layout.Count; k++ {
		for i := 0; i < m; i++ {
			used[s.Layout.Index(k)+i] = true
		}
	}
	for i, u := range used {
		if !u && s.Buf[i] != sentinel {
			t.Fatalf("slot %d outside the stream was overwritten: %v", i, s.Buf[i])
		}
	}
}

func requireTuplesEqual[F tuple.Float](t *testing.T, got Stream[F], want func(k int) []F) {
	t.Helper()
	for k := 0; k < got.Len(); k++ {
		testutil.RequireSliceNearlyEqual(t, got.Components(k), want(k), 0)
	}
	requireSentinels(t, got)
}

func TestStreamOpsMatchKernel(t *testing.T) {
	t.Run("float32", testStreamOps[float32])
	t.Run("float64", testStreamOps[float64])
}

func testStreamOps[F tuple.Float](t *testing.T) {
	const count = 37
	for _, n := range arities {
		m := n.Len()
		a32 := testutil.DeterministicTuples(10, m, count, 8)
		b32 := testutil.NonZeroTuples(11, m, count, 8, 0.5)
		c32 := testutil.DeterministicTuples(12, m, count, 8)

		for name, l := range layouts(n, count) {
			t.Run(n.String()+"/"+name, func(t *testing.T) {
				a := streamOf[F](a32, l)
				b := streamOf[F](b32, l)
				c := streamOf[F](c32, l)

				binary := []struct {
					name string
					run  func(dst, a, b Stream[F])
					op   tuple.BinaryOp
				}{
					{"add", Add[F], tuple.OpAdd},
					{"sub", Sub[F], tuple.OpSub},
					{"mul", Mul[F], tuple.OpMul},
					{"div", Div[F], tuple.OpDiv},
				}
				for _, tt := range binary {
					dst := streamOf[F](make([]float32, m*count), l)
					tt.run(dst, a, b)
					requireTuplesEqual(t, dst, func(k int) []F {
						return tuple.ApplyNew[F](tt.op, n, a.Tuple(k), b.Tuple(k))
					})
				}

				dst := streamOf[F](make([]float32, m*count), l)
				Scale(dst, a, -2.5)
				requireTuplesEqual(t, dst, func(k int) []F {
					return tuple.MulNew[F](n, a.Tuple(k), tuple.Broadcast[F](-2.5))
				})

				FMA(dst, a, b, c)
				requireTuplesEqual(t, dst, func(k int) []F {
					return tuple.FMANew[F](n, a.Tuple(k), b.Tuple(k), c.Tuple(k))
				})

				Negate(dst, a)
				requireTuplesEqual(t, dst, func(k int) []F {
					return tuple.NegateNew[F](n, a.Tuple(k))
				})
			})
		}
	}
}

func TestApplyEveryOp(t *testing.T) {
	const count = 5
	l := layout.Padded(tuple.Arity3, count)
	a := streamOf[float32](testutil.NonZeroTuples(20, 3, count, 4, 0.25), l)
	b := streamOf[float32](testutil.NonZeroTuples(21, 3, count, 4, 0.25), l)
	c := streamOf[float32](testutil.DeterministicTuples(22, 3, count, 4), l)

	for _, op := range tuple.BinaryOps() {
		dst := Alloc[float32](l)
		Apply(op, dst, a, b)
		for k := 0; k < count; k++ {
			testutil.RequireSliceNearlyEqual(t, dst.Components(k), tuple.ApplyNew[float32](op, 3, a.Tuple(k), b.Tuple(k)), 0)
		}

		ApplyScalar(op, dst, a, 2)
		for k := 0; k < count; k++ {
			testutil.RequireSliceNearlyEqual(t, dst.Components(k), tuple.ApplyNew[float32](op, 3, a.Tuple(k), tuple.Broadcast[float32](2)), 0)
		}
	}
	for _, op := range tuple.TernaryOps() {
		dst := Alloc[float32](l)
		Apply3(op, dst, a, b, c)
		for k := 0; k < count; k++ {
			testutil.RequireSliceNearlyEqual(t, dst.Components(k), tuple.Apply3New[float32](op, 3, a.Tuple(k), b.Tuple(k), c.Tuple(k)), 0)
		}
	}
	for _, op := range tuple.UnaryOps() {
		dst := Alloc[float32](l)
		ApplyUnary(op, dst, b)
		for k := 0; k < count; k++ {
			testutil.RequireSliceNearlyEqual(t, dst.Components(k), tuple.ApplyUnaryNew[float32](op, 3, b.Tuple(k)), 0)
		}
	}
}

func TestInPlace(t *testing.T) {
	l := layout.Packed(tuple.Arity2, 3)
	a := Stream[float64]{Buf: []float64{1, 2, 3, 4, 5, 6}, Layout: l}
	b := Stream[float64]{Buf: []float64{10, 20, 30, 40, 50, 60}, Layout: l}

	Add(a, a, b)
	Mul(b, a, b)
	Scale(a, a, 2)

	testutil.RequireSliceNearlyEqual(t, a.Buf, []float64{22, 44, 66, 88, 110, 132}, 0)
	testutil.RequireSliceNearlyEqual(t, b.Buf, []float64{110, 440, 990, 1760, 2750, 3960}, 0)
}

func TestLayoutMismatchPanics(t *testing.T) {
	s3 := Alloc[float32](layout.Packed(tuple.Arity3, 4))
	s3short := Alloc[float32](layout.Packed(tuple.Arity3, 3))
	s4 := Alloc[float32](layout.Packed(tuple.Arity4, 4))

	tests := map[string]func(){
		"count":    func() { Add(s3, s3, s3short) },
		"arity":    func() { Sub(s3, s4, s3) },
		"unary":    func() { Negate(s3, s4) },
		"ternary":  func() { FMA(s3, s3, s3, s4) },
		"scale":    func() { Scale(s3short, s3, 1) },
		"equalsEM": func() { EqualsEM(0, s3, s4) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != "batch: layout mismatch" {
					t.Errorf("recovered %v, want layout mismatch panic", r)
				}
			}()
			fn()
		})
	}
}

func TestEmptyStream(t *testing.T) {
	s := Alloc[float64](layout.Packed(tuple.Arity4, 0))
	Add(s, s, s)
	Scale(s, s, 3)
	Negate(s, s)
	if !AllFinite(s) || AnyNaN(s) || !AllZeroEM(0, s) || !EqualsEM(0, s, s) {
		t.Fatal("empty stream predicates should be vacuous")
	}
}

func TestPredicates(t *testing.T) {
	l := layout.Packed(tuple.Arity3, 2)
	zero := Stream[float32]{Buf: []float32{0, 1e-7, 0, -1e-7, 0, 0}, Layout: l}
	if !AllZeroEM(1e-6, zero) || AllZeroEM(1e-8, zero) {
		t.Error("AllZeroEM tolerance handling")
	}
	if !AllFinite(zero) || AnyNaN(zero) {
		t.Error("finite stream misclassified")
	}

	nan := Stream[float32]{Buf: []float32{0, 1, 2, 3, float32(math.NaN()), 5}, Layout: l}
	if AllFinite(nan) || !AnyNaN(nan) {
		t.Error("a single NaN component must be detected")
	}

	inf := Stream[float32]{Buf: []float32{0, 1, 2, 3, float32(math.Inf(-1)), 5}, Layout: l}
	if AllFinite(inf) || AnyNaN(inf) {
		t.Error("infinity misclassified")
	}

	a := Stream[float32]{Buf: []float32{1, 2, 3, 4, 5, 6}, Layout: l}
	b := Stream[float32]{
		Buf:    []float32{1, 2, 3, sentinel, 4, 5.00001, 6, sentinel},
		Layout: layout.Padded(tuple.Arity3, 2),
	}
	if !EqualsEM(1e-4, a, b) {
		t.Error("streams should match at 1e-4 across layouts")
	}
	if EqualsEM(1e-6, a, b) {
		t.Error("streams should differ at 1e-6")
	}
	if got := FirstMismatch(1e-6, a, b); got != 1 {
		t.Errorf("FirstMismatch = %d, want 1", got)
	}
	if got := FirstMismatch(1e-4, a, b); got != -1 {
		t.Errorf("FirstMismatch = %d, want -1", got)
	}
}

func TestNewStream(t *testing.T) {
	l := layout.Padded(tuple.Arity3, 3)
	if _, err := NewStream(make([]float32, l.Span()-1), l); err == nil {
		t.Fatal("expected error for short buffer")
	}
	s, err := NewStream(make([]float32, l.Span()), l)
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	if s.Len() != 3 || s.Arity() != tuple.Arity3 {
		t.Fatalf("unexpected stream shape: len %d, %v", s.Len(), s.Arity())
	}
}

func TestAllocAligned(t *testing.T) {
	s := Alloc[float32](layout.Padded(tuple.Arity3, 10), layout.WithAlignment(32))
	if !layout.IsAligned(s.Buf, 32) {
		t.Fatal("stream buffer not aligned")
	}
}

func TestBackend(t *testing.T) {
	switch b := Backend(); b {
	case "generic", "vecmath":
	default:
		t.Fatalf("Backend() = %q", b)
	}
}
