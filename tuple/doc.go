// Package tuple implements the arithmetic and predicate kernel for fixed
// arity (2, 3 and 4 component) float tuples.
//
// A tuple is stored either compactly, as its own N-element buffer, or
// inside a larger buffer at a base offset (the aligned layout, e.g. one
// attribute of an interleaved vertex buffer). Both are addressed through
// [View]; the arity is chosen by the caller on every call.
//
// # Operands
//
// Every input is a [Source]: a [View], a fixed-size [Vec2]/[Vec3]/[Vec4],
// a [Splat] broadcasting one scalar to every component, or [Values]
// holding explicit per-component scalars. So tuple+tuple, tuple+scalar and
// tuple+components are one call:
//
//	a := tuple.Compact(buf)
//	tuple.AddInPlace(tuple.Arity3, a, tuple.Broadcast[float32](2))
//	tuple.AddInPlace(tuple.Arity3, a, tuple.Comps[float32](1, 2, 3))
//
// # Result modes
//
// Each operation comes in three forms:
//
//   - XxxInPlace(n, t, ...): writes the result into t and returns it.
//   - Xxx(n, dst, ...): writes the result into dst at its offset.
//   - XxxNew(n, ...): returns a freshly allocated []F of length n.
//
// All three produce identical components. All inputs are read before dst
// is written, so dst may alias any operand.
//
// # Errors
//
// Arithmetic follows IEEE-754 and never fails: division by zero yields
// ±Inf or NaN. Buffer offsets are not validated beyond Go's own bounds
// checks. The only checked failure is a component index outside [0, n) in
// the index-addressed functions, which panics with an [*IndexError].
package tuple
