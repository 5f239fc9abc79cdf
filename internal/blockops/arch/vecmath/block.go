// Package vecmath adapts the github.com/cwbudde/algo-vecmath block kernels
// to the blockops registry. The entry registers on amd64 (SSE2) and arm64
// (NEON), where algo-vecmath dispatches to its assembly kernels.
package vecmath

import (
	"unsafe"

	"github.com/cwbudde/algo-vecmath"
)

// AddBlock computes dst[i] = a[i] + b[i]. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("blockops: slice length mismatch")
	}
	if sameStart(dst, b) {
		vecmath.AddBlockInPlace(dst, a)
		return
	}
	if !sameStart(dst, a) {
		copy(dst, a)
	}
	vecmath.AddBlockInPlace(dst, b)
}

// MulBlock computes dst[i] = a[i] * b[i]. Panics if lengths differ.
func MulBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("blockops: slice length mismatch")
	}
	switch {
	case sameStart(dst, a):
		vecmath.MulBlockInPlace(dst, b)
	case sameStart(dst, b):
		vecmath.MulBlockInPlace(dst, a)
	default:
		vecmath.MulBlock(dst, a, b)
	}
}

// ScaleBlock computes dst[i] = src[i] * scalar. Panics if lengths differ.
func ScaleBlock(dst, src []float64, scalar float64) {
	if len(dst) != len(src) {
		panic("blockops: slice length mismatch")
	}
	vecmath.ScaleBlock(dst, src, scalar)
}

func sameStart(x, y []float64) bool {
	return len(x) > 0 && len(y) > 0 && unsafe.SliceData(x) == unsafe.SliceData(y)
}
