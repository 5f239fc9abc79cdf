package layout

import (
	"unsafe"

	"github.com/cwbudde/algo-tuple/tuple"
)

// AllocConfig controls buffer allocation.
type AllocConfig struct {
	Alignment int // byte boundary of the first element, power of two
	Padding   int // extra elements appended after the last tuple
}

// Option mutates an AllocConfig.
type Option func(*AllocConfig)

// DefaultAllocConfig aligns to a cache line with no extra padding.
func DefaultAllocConfig() AllocConfig {
	return AllocConfig{
		Alignment: CacheLineSize,
	}
}

// WithAlignment sets the byte alignment of the first element. Values that
// are not positive powers of two are ignored.
func WithAlignment(align int) Option {
	return func(cfg *AllocConfig) {
		if align > 0 && align&(align-1) == 0 {
			cfg.Alignment = align
		}
	}
}

// WithPadding appends n zeroed elements after the last tuple, so kernels
// that read whole lane groups never run off the end.
func WithPadding(n int) Option {
	return func(cfg *AllocConfig) {
		if n > 0 {
			cfg.Padding = n
		}
	}
}

// ApplyAllocOptions applies zero or more options to the default config.
func ApplyAllocOptions(opts ...Option) AllocConfig {
	cfg := DefaultAllocConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Alloc returns a zeroed buffer of l.Span() elements (plus any padding)
// whose first element is aligned to the configured byte boundary.
func Alloc[F tuple.Float](l Layout, opts ...Option) []F {
	cfg := ApplyAllocOptions(opts...)
	size := l.Span() + cfg.Padding
	if size == 0 {
		return nil
	}

	var zero F
	elem := int(unsafe.Sizeof(zero))
	extra := (cfg.Alignment + elem - 1) / elem
	buf := make([]F, size+extra)

	addr := uintptr(unsafe.Pointer(&buf[0]))
	skip := 0
	if mod := int(addr % uintptr(cfg.Alignment)); mod != 0 {
		skip = (cfg.Alignment - mod) / elem
	}
	return buf[skip : skip+size : skip+size]
}

// IsAligned reports whether the first element of buf sits on an align-byte
// boundary. An empty buffer is trivially aligned.
func IsAligned[F tuple.Float](buf []F, align int) bool {
	if len(buf) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&buf[0]))%uintptr(align) == 0
}
