package batch

// Kernel variants register with the block-op registry from init().
import (
	_ "github.com/cwbudde/algo-tuple/internal/blockops/arch/generic"
	_ "github.com/cwbudde/algo-tuple/internal/blockops/arch/vecmath"
)
