// Package batch applies the tuple kernel to whole streams of tuples laid
// out in one flat buffer.
//
// Every function takes streams whose layouts have the same arity and count
// and processes tuples in ascending order; mismatched layouts panic with
// "batch: layout mismatch". The destination may be the same stream as any
// operand. Other partial overlaps are not supported.
//
// For float64 streams that are all contiguous, Add, Mul and Scale hand the
// whole run of elements to a block kernel selected once for the running
// CPU (see [Backend]). The result is identical to the per-tuple loop.
package batch

import (
	"github.com/cwbudde/algo-tuple/layout"
	"github.com/cwbudde/algo-tuple/tuple"
)

// Stream is a run of tuples inside Buf, addressed by Layout.
type Stream[F tuple.Float] struct {
	Buf    []F
	Layout layout.Layout
}

// NewStream wraps buf, returning an error if buf cannot hold l.
func NewStream[F tuple.Float](buf []F, l layout.Layout) (Stream[F], error) {
	if err := l.Validate(len(buf)); err != nil {
		return Stream[F]{}, err
	}
	return Stream[F]{Buf: buf, Layout: l}, nil
}

// Alloc returns a stream over a zeroed, aligned buffer for l.
func Alloc[F tuple.Float](l layout.Layout, opts ...layout.Option) Stream[F] {
	return Stream[F]{Buf: layout.Alloc[F](l, opts...), Layout: l}
}

// Len returns the number of tuples.
func (s Stream[F]) Len() int { return s.Layout.Count }

// Arity returns the tuple arity.
func (s Stream[F]) Arity() tuple.Arity { return s.Layout.Arity }

// Tuple returns a view of tuple k.
func (s Stream[F]) Tuple(k int) tuple.View[F] {
	return layout.View(s.Buf, s.Layout, k)
}

// Components returns the components of tuple k as a new slice.
func (s Stream[F]) Components(k int) []F {
	out := make([]F, s.Layout.Arity.Len())
	copy(out, s.Tuple(k).Slice(s.Layout.Arity))
	return out
}

// elements returns the contiguous element run covering every tuple.
// Callers check Layout.Contiguous first.
func (s Stream[F]) elements() []F {
	start := s.Layout.Index(0)
	return s.Buf[start : start+s.Layout.Count*s.Layout.Arity.Len()]
}

func mustMatch[F tuple.Float](dst Stream[F], srcs ...Stream[F]) {
	for _, s := range srcs {
		if !dst.Layout.Compatible(s.Layout) {
			panic("batch: layout mismatch")
		}
	}
}
