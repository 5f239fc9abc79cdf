package testutil

import "math/rand"

// DeterministicTuples returns count*n values in [-amplitude, amplitude]
// drawn from a fixed seed, laid out as count packed n-wide tuples.
func DeterministicTuples(seed int64, n, count int, amplitude float32) []float32 {
	out := make([]float32, n*count)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// NonZeroTuples is DeterministicTuples with every component pushed away
// from zero by at least minMagnitude, for division and reciprocal tests.
func NonZeroTuples(seed int64, n, count int, amplitude, minMagnitude float32) []float32 {
	out := DeterministicTuples(seed, n, count, amplitude)
	for i, v := range out {
		if v >= 0 {
			out[i] = v + minMagnitude
		} else {
			out[i] = v - minMagnitude
		}
	}
	return out
}

// Fill returns a slice of length n with every element set to value.
func Fill(value float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = value
	}
	return out
}
