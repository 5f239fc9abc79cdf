package batch

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-tuple/internal/testutil"
	"github.com/cwbudde/algo-tuple/layout"
	"github.com/cwbudde/algo-tuple/tuple"
)

func BenchmarkAdd(b *testing.B) {
	for _, count := range []int{64, 1024} {
		for name, l := range map[string]layout.Layout{
			"packed": layout.Packed(tuple.Arity4, count),
			"padded": layout.Padded(tuple.Arity3, count),
		} {
			b.Run(fmt.Sprintf("%s/%d", name, count), func(b *testing.B) {
				src := testutil.DeterministicTuples(1, l.Arity.Len(), count, 1)
				x := streamOf[float64](src, l)
				y := streamOf[float64](src, l)
				dst := Alloc[float64](l)

				b.SetBytes(int64(count*l.Arity.Len()) * 8 * 3)
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					Add(dst, x, y)
				}
			})
		}
	}
}

func BenchmarkFMA(b *testing.B) {
	const count = 1024
	l := layout.Padded(tuple.Arity3, count)
	src := testutil.DeterministicTuples(2, 3, count, 1)
	x := streamOf[float32](src, l)
	dst := Alloc[float32](l)

	b.SetBytes(count * 3 * 4 * 4)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		FMA(dst, x, x, x)
	}
}
