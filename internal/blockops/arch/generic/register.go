package generic

import (
	"github.com/cwbudde/algo-tuple/internal/blockops/registry"
	"github.com/cwbudde/algo-tuple/internal/cpu"
)

// Priority 0: chosen only when nothing else is compatible.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		AddBlock:   AddBlock,
		MulBlock:   MulBlock,
		ScaleBlock: ScaleBlock,
	})
}
