// Package cpu detects the SIMD extensions used to pick a batch kernel.
//
// Detection runs once on the first call to DetectFeatures and is cached.
// Setting TUPLE_FORCE_GENERIC to a true value (1, t, true) pins every
// lookup to the pure Go kernels.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// ForceGenericEnv names the environment variable that disables SIMD kernels.
const ForceGenericEnv = "TUPLE_FORCE_GENERIC"

// SIMDLevel is the instruction set a block kernel requires.
//
// Only the levels a registered kernel can ask for are listed. Levels are
// not ordered across architectures: SSE2 and NEON are simply different
// requirements.
type SIMDLevel int

const (
	// SIMDNone needs nothing beyond Go itself (the generic kernels).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 needs x86-64 SSE2, the amd64 baseline used by algo-vecmath.
	SIMDSSE2

	// SIMDNEON needs ARM Advanced SIMD, mandatory on arm64.
	SIMDNEON
)

// String returns a human-readable name for the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU as far as batch kernel selection and the
// tupleinfo -features report are concerned.
type Features struct {
	// x86/amd64 extensions. Only SSE2 gates a kernel today; the AVX flags
	// are reported so users can see what the hardware offers.
	HasSSE2   bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX    bool // Advanced Vector Extensions
	HasAVX2   bool // Advanced Vector Extensions 2
	HasAVX512 bool // AVX-512 Foundation

	// ARM extensions
	HasNEON bool // ARM Advanced SIMD (NEON)

	// ForceGeneric restricts Supports to SIMDNone. It is set from
	// TUPLE_FORCE_GENERIC during detection or by tests.
	ForceGeneric bool

	// Architecture is runtime.GOARCH, e.g. "amd64" or "arm64".
	Architecture string
}

var (
	detectMu       sync.Mutex
	detectOnce     sync.Once
	detected       Features
	forcedMu       sync.RWMutex
	forcedFeatures *Features
)

// DetectFeatures returns the features of the running CPU, or the ones set
// by SetForcedFeatures. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	forced := forcedFeatures
	forcedMu.RUnlock()
	if forced != nil {
		return *forced
	}

	detectMu.Lock()
	defer detectMu.Unlock()
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
		detected.ForceGeneric = forceGenericFromEnv()
	})
	return detected
}

// forceGenericFromEnv reports whether TUPLE_FORCE_GENERIC parses as true.
// Unset or unparsable values leave SIMD enabled.
func forceGenericFromEnv() bool {
	v, ok := os.LookupEnv(ForceGenericEnv)
	if !ok {
		return false
	}
	force, err := strconv.ParseBool(v)
	return err == nil && force
}

// SetForcedFeatures replaces detection with f until ResetDetection. Tests only.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forcedFeatures = &f
}

// ResetDetection drops forced features and the cached detection result.
func ResetDetection() {
	forcedMu.Lock()
	forcedFeatures = nil
	forcedMu.Unlock()

	detectMu.Lock()
	detectOnce = sync.Once{}
	detected = Features{}
	detectMu.Unlock()
}

// Supports reports whether a kernel requiring level may run on features.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
