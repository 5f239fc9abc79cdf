//go:build amd64

package vecmath

import (
	"github.com/cwbudde/algo-tuple/internal/blockops/registry"
	"github.com/cwbudde/algo-tuple/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "vecmath",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		AddBlock:   AddBlock,
		MulBlock:   MulBlock,
		ScaleBlock: ScaleBlock,
	})
}
