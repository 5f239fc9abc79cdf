package tuple

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tuple/scalar"
)

// Float is the component type constraint.
type Float = scalar.Float

// Arity is the number of components in a tuple.
type Arity int

// Supported arities.
const (
	Arity2 Arity = 2
	Arity3 Arity = 3
	Arity4 Arity = 4
)

// MaxArity is the largest supported arity.
const MaxArity = 4

// Named component indices.
const (
	V0 = iota
	V1
	V2
	V3
)

// Valid reports whether n is 2, 3 or 4.
func (n Arity) Valid() bool {
	return n >= Arity2 && n <= Arity4
}

// Len returns n as an int. It panics if n is not a supported arity.
func (n Arity) Len() int {
	if !n.Valid() {
		panic("tuple: invalid arity")
	}
	return int(n)
}

func (n Arity) String() string {
	return fmt.Sprintf("arity%d", int(n))
}

// ErrIndexOutOfRange is matched by every *IndexError.
var ErrIndexOutOfRange = errors.New("tuple: index out of range")

// IndexError reports a component index outside [0, Arity).
type IndexError struct {
	Index int
	Arity Arity
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("tuple: index %d out of range [0,%d)", e.Index, int(e.Arity))
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckIndex returns an *IndexError if i is not a valid component index
// for arity n, and nil otherwise.
func CheckIndex(n Arity, i int) error {
	if i < 0 || i >= n.Len() {
		return &IndexError{Index: i, Arity: n}
	}
	return nil
}

func mustIndex(n Arity, i int) {
	if err := CheckIndex(n, i); err != nil {
		panic(err)
	}
}
