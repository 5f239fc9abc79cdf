// Package generic provides the pure Go block kernels. They are the fallback
// on every architecture and the only choice when TUPLE_FORCE_GENERIC is set.
package generic

// AddBlock computes dst[i] = a[i] + b[i]. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("blockops: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// MulBlock computes dst[i] = a[i] * b[i]. Panics if lengths differ.
func MulBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("blockops: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// ScaleBlock computes dst[i] = src[i] * scalar. Panics if lengths differ.
func ScaleBlock(dst, src []float64, scalar float64) {
	if len(dst) != len(src) {
		panic("blockops: slice length mismatch")
	}
	for i := range dst {
		dst[i] = src[i] * scalar
	}
}
