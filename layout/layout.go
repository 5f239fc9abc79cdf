// Package layout describes where tuples live inside flat float buffers and
// allocates buffers whose first element sits on an alignment boundary.
//
// A [Layout] addresses Count tuples of one arity: tuple k starts at element
// Offset + k*Stride. Packed layouts have Stride == Arity; padded layouts
// round the stride up to a full 16-byte lane group (a 3-component float32
// tuple occupies 4 slots); interleaved layouts describe one attribute of a
// larger record, such as the normal inside a vertex.
package layout

import (
	"fmt"

	"github.com/cwbudde/algo-tuple/tuple"
)

const (
	// CacheLineSize is the default allocation alignment in bytes.
	CacheLineSize = 64

	// LaneBytes is the width of one 128-bit SIMD lane group.
	LaneBytes = 16
)

// AlignSize rounds size up to a multiple of align, which must be a power of two.
func AlignSize(size, align int) int {
	return (size + align - 1) &^ (align - 1)
}

// PaddedArity returns the number of float32 slots a tuple of arity n
// occupies when padded to whole 8- or 16-byte groups: 2, 4 and 4.
func PaddedArity(n tuple.Arity) int {
	const slot = 4 // bytes per float32
	bytes := n.Len() * slot
	if bytes <= LaneBytes/2 {
		return AlignSize(bytes, LaneBytes/2) / slot
	}
	return AlignSize(bytes, LaneBytes) / slot
}

// Layout addresses Count tuples of one arity inside a flat buffer.
type Layout struct {
	Arity  tuple.Arity
	Offset int
	Stride int
	Count  int
}

// Packed returns a layout of count tightly packed tuples.
func Packed(n tuple.Arity, count int) Layout {
	return Layout{Arity: n, Stride: n.Len(), Count: count}
}

// Padded returns a layout of count tuples, each padded to PaddedArity(n).
func Padded(n tuple.Arity, count int) Layout {
	return Layout{Arity: n, Stride: PaddedArity(n), Count: count}
}

// Interleaved returns a layout for a tuple attribute at offset within
// records of stride elements. It panics if the attribute does not fit.
func Interleaved(n tuple.Arity, offset, stride, count int) Layout {
	if offset < 0 || stride < n.Len() {
		panic("layout: attribute does not fit its record")
	}
	return Layout{Arity: n, Offset: offset, Stride: stride, Count: count}
}

// Index returns the element offset of tuple k.
func (l Layout) Index(k int) int {
	return l.Offset + k*l.Stride
}

// Span returns the minimum buffer length that holds every tuple.
func (l Layout) Span() int {
	if l.Count <= 0 {
		return 0
	}
	return l.Index(l.Count-1) + l.Arity.Len()
}

// Contiguous reports whether the tuples form one gap-free run of elements.
func (l Layout) Contiguous() bool {
	return l.Stride == l.Arity.Len() || l.Count <= 1
}

// Compatible reports whether l and o address the same number of tuples of
// the same arity, whatever their offsets and strides.
func (l Layout) Compatible(o Layout) bool {
	return l.Arity == o.Arity && l.Count == o.Count
}

// Validate returns an error if a buffer of length n cannot hold l.
func (l Layout) Validate(n int) error {
	if !l.Arity.Valid() {
		return fmt.Errorf("layout: invalid arity %d", int(l.Arity))
	}
	if l.Offset < 0 || l.Count < 0 || l.Stride < 1 {
		return fmt.Errorf("layout: invalid offset %d, stride %d or count %d", l.Offset, l.Stride, l.Count)
	}
	if l.Count > 1 && l.Stride < l.Arity.Len() {
		return fmt.Errorf("layout: stride %d overlaps arity %d", l.Stride, int(l.Arity))
	}
	if span := l.Span(); span > n {
		return fmt.Errorf("layout: needs %d elements, buffer has %d", span, n)
	}
	return nil
}

// View returns tuple k of buf as an aligned tuple view.
func View[F tuple.Float](buf []F, l Layout, k int) tuple.View[F] {
	return tuple.Aligned(buf, l.Index(k))
}
