package batch

import (
	"sync"

	"github.com/cwbudde/algo-tuple/internal/blockops/registry"
	"github.com/cwbudde/algo-tuple/internal/cpu"
	"github.com/cwbudde/algo-tuple/tuple"
)

type blockEntry = *registry.OpEntry

var (
	selectedOnce  sync.Once
	selectedEntry blockEntry
)

// selected returns the block kernels for the running CPU, looked up once.
func selected() blockEntry {
	selectedOnce.Do(func() {
		selectedEntry = registry.Global.Lookup(cpu.DetectFeatures())
	})
	return selectedEntry
}

// Backend names the block kernel variant used for contiguous float64
// streams, or "none" if no variant is registered.
func Backend() string {
	if e := selected(); e != nil {
		return e.Name
	}
	return "none"
}

// float64Runs returns the contiguous element runs of streams whose
// component type is exactly float64, or ok == false if any stream does
// not qualify.
func float64Runs[F tuple.Float](streams ...Stream[F]) (runs [][]float64, ok bool) {
	runs = make([][]float64, 0, len(streams))
	for _, s := range streams {
		if !s.Layout.Contiguous() {
			return nil, false
		}
		buf, isF64 := any(s.Buf).([]float64)
		if !isF64 {
			return nil, false
		}
		runs = append(runs, Stream[float64]{Buf: buf, Layout: s.Layout}.elements())
	}
	return runs, true
}

func blockBinary[F tuple.Float](dst, a, b Stream[F], pick func(blockEntry) func(d, x, y []float64)) bool {
	mustMatch(dst, a, b)
	if dst.Len() == 0 {
		return true
	}
	e := selected()
	if e == nil || pick(e) == nil {
		return false
	}
	runs, ok := float64Runs(dst, a, b)
	if !ok {
		return false
	}
	pick(e)(runs[0], runs[1], runs[2])
	return true
}

func blockScale[F tuple.Float](dst, a Stream[F], s F) bool {
	mustMatch(dst, a)
	if dst.Len() == 0 {
		return true
	}
	e := selected()
	if e == nil || e.ScaleBlock == nil {
		return false
	}
	runs, ok := float64Runs(dst, a)
	if !ok {
		return false
	}
	e.ScaleBlock(runs[0], runs[1], float64(s))
	return true
}
