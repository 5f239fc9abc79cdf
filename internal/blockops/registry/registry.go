// Package registry holds the block kernels used by contiguous float64 tuple
// streams.
//
// Kernel packages register an OpEntry from init(). The batch package asks
// Lookup for the highest-priority entry the running CPU supports, once.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-tuple/internal/cpu"
)

// OpEntry is one registered kernel variant for float64 block operations.
//
// Each entry carries typed function pointers for the operations batch can
// hand off whole element runs to. All functions take equal-length slices,
// panic with "blockops: slice length mismatch" otherwise, and accept dst
// aliasing any input exactly (same first element).
type OpEntry struct {
	// Name is a human-readable identifier, e.g. "generic" or "vecmath".
	// It is what batch.Backend and tupleinfo -features report.
	Name string

	// SIMDLevel is the instruction set this variant needs; cpu.Supports
	// decides whether it may run on the detected features.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when several variants are
	// compatible. Higher priority wins. Current priorities:
	//   - generic (SIMDNone): 0
	//   - vecmath (SSE2 on amd64, NEON on arm64): 10
	Priority int

	// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
	// Backs batch.Add on contiguous float64 streams.
	AddBlock func(dst, a, b []float64)

	// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
	// Backs batch.Mul on contiguous float64 streams.
	MulBlock func(dst, a, b []float64)

	// ScaleBlock performs element-wise scaling: dst[i] = src[i] * scalar.
	// Backs batch.Scale on contiguous float64 streams.
	ScaleBlock func(dst, src []float64, scalar float64)
}

// OpRegistry stores registered variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry the kernel packages register into.
var Global = &OpRegistry{}

// Register adds a variant. All registrations should happen before the
// first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant compatible with features, or
// nil when none is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority orders entries by descending priority, keeping
// registration order among equals. Must be called with r.mu held.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered variants.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset removes every variant. Tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
