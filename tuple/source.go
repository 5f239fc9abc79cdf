package tuple

// Source supplies the components of one operand.
type Source[F Float] interface {
	At(i int) F
}

// View is writable tuple storage: component i lives at Buf[Off+i].
type View[F Float] struct {
	Buf []F
	Off int
}

// Compact returns a view of a tuple stored at the start of buf.
func Compact[F Float](buf []F) View[F] {
	return View[F]{Buf: buf}
}

// Aligned returns a view of a tuple stored in buf starting at element off.
func Aligned[F Float](buf []F, off int) View[F] {
	return View[F]{Buf: buf, Off: off}
}

// At returns component i.
func (v View[F]) At(i int) F {
	return v.Buf[v.Off+i]
}

// Set stores x as component i.
func (v View[F]) Set(i int, x F) {
	v.Buf[v.Off+i] = x
}

// Slice returns the n components of v as a subslice of Buf.
func (v View[F]) Slice(n Arity) []F {
	return v.Buf[v.Off : v.Off+n.Len()]
}

func (v View[F]) store(r []F) {
	copy(v.Buf[v.Off:v.Off+len(r)], r)
}

// Splat broadcasts one scalar to every component.
type Splat[F Float] struct {
	V F
}

// Broadcast returns a Splat of x.
func Broadcast[F Float](x F) Splat[F] {
	return Splat[F]{V: x}
}

// At returns the broadcast value for any i.
func (s Splat[F]) At(int) F {
	return s.V
}

// Values holds explicit per-component scalars.
type Values[F Float] []F

// Comps returns xs as Values.
func Comps[F Float](xs ...F) Values[F] {
	return Values[F](xs)
}

// At returns component i.
func (v Values[F]) At(i int) F {
	return v[i]
}

// Vec2 is a compact 2-component tuple.
type Vec2 [2]float32

// Vec3 is a compact 3-component tuple.
type Vec3 [3]float32

// Vec4 is a compact 4-component tuple.
type Vec4 [4]float32

func (v Vec2) At(i int) float32 { return v[i] }
func (v Vec3) At(i int) float32 { return v[i] }
func (v Vec4) At(i int) float32 { return v[i] }

func (Vec2) Arity() Arity { return Arity2 }
func (Vec3) Arity() Arity { return Arity3 }
func (Vec4) Arity() Arity { return Arity4 }

// View returns a writable view of v's storage.
func (v *Vec2) View() View[float32] { return View[float32]{Buf: v[:]} }

// View returns a writable view of v's storage.
func (v *Vec3) View() View[float32] { return View[float32]{Buf: v[:]} }

// View returns a writable view of v's storage.
func (v *Vec4) View() View[float32] { return View[float32]{Buf: v[:]} }

// absent reports whether s carries no tuple at all: a nil interface, a
// view without a buffer, nil Values, or a nil *Vec2/*Vec3/*Vec4.
func absent[F Float](s Source[F]) bool {
	switch v := any(s).(type) {
	case nil:
		return true
	case View[F]:
		return v.Buf == nil
	case Values[F]:
		return v == nil
	case *Vec2:
		return v == nil
	case *Vec3:
		return v == nil
	case *Vec4:
		return v == nil
	}
	return false
}

// sameStorage reports whether a and b are views of the same components.
func sameStorage[F Float](a, b Source[F]) bool {
	va, ok := a.(View[F])
	if !ok || len(va.Buf) == 0 {
		return false
	}
	vb, ok := b.(View[F])
	if !ok || len(vb.Buf) == 0 {
		return false
	}
	return va.Off == vb.Off && &va.Buf[0] == &vb.Buf[0]
}
