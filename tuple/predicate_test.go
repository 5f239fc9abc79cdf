package tuple

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tuple/internal/testutil"
)

var (
	nan32 = float32(math.NaN())
	inf32 = float32(math.Inf(1))
)

func requireIndexPanic(t *testing.T, wantIndex int, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected index panic for %d", wantIndex)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %#v is not an error", r)
		}
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("panic %v does not match ErrIndexOutOfRange", err)
		}
		var ie *IndexError
		if !errors.As(err, &ie) || ie.Index != wantIndex {
			t.Fatalf("panic %v, want IndexError for index %d", err, wantIndex)
		}
	}()
	fn()
}

func TestEqualsReflexiveSymmetric(t *testing.T) {
	a := testutil.DeterministicTuples(41, 4, 32, 10)
	b := testutil.DeterministicTuples(42, 4, 32, 10)
	copy(b[8:16], a[8:16]) // make tuples 2 and 3 identical

	for _, n := range arities {
		for k := 0; k < 32; k++ {
			ta, tb := Aligned(a, 4*k), Aligned(b, 4*k)
			if !Equals(n, ta, ta) {
				t.Fatalf("%v tuple %d: equals(a, a) = false", n, k)
			}
			if !Equals(n, ta, Comps(ta.Slice(n)...)) {
				t.Fatalf("%v tuple %d: equals(a, copy(a)) = false", n, k)
			}
			if Equals(n, ta, tb) != Equals(n, tb, ta) {
				t.Fatalf("%v tuple %d: equals not symmetric", n, k)
			}
		}
		if !Equals(n, Aligned(a, 8), Aligned(b, 8)) {
			t.Fatalf("%v: identical tuples compared unequal", n)
		}
	}
}

func TestEqualsDetectsEachComponent(t *testing.T) {
	for _, n := range arities {
		for i := 0; i < int(n); i++ {
			a := Vec4{1, 2, 3, 4}
			b := a
			b[i] += 0.5
			if Equals(n, a, b) {
				t.Fatalf("%v: difference in component %d not detected", n, i)
			}
			if EqualsAt(i, n, a, b) {
				t.Fatalf("%v: EqualsAt(%d) missed the difference", n, i)
			}
			for j := 0; j < int(n); j++ {
				if j != i && !EqualsAt(j, n, a, b) {
					t.Fatalf("%v: EqualsAt(%d) reported a difference in %d", n, j, i)
				}
			}
		}
	}
}

func TestEqualsOnlyComparesArity(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{1, 2, 3, 99}
	if !Equals(Arity3, a, b) {
		t.Fatal("Arity3 compare looked at component 3")
	}
	if Equals(Arity4, a, b) {
		t.Fatal("Arity4 compare missed component 3")
	}
}

func TestEqualsAbsentOperands(t *testing.T) {
	tests := []struct {
		name string
		a, b Source[float32]
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil left", nil, Vec3{}, false},
		{"nil right", Vec3{}, nil, false},
		{"empty view and nil", View[float32]{}, nil, true},
		{"nil values and empty view", Values[float32](nil), View[float32]{}, true},
		{"empty view and tuple", View[float32]{}, Comps[float32](0, 0, 0), false},
		{"nil vec pointers", (*Vec3)(nil), (*Vec3)(nil), true},
		{"nil vec pointer and tuple", (*Vec3)(nil), &Vec3{}, false},
		{"tuple and nil vec pointer", Vec3{}, (*Vec4)(nil), false},
		{"nil vec pointer and nil", (*Vec2)(nil), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equals(Arity3, tt.a, tt.b); got != tt.want {
				t.Fatalf("Equals = %v, want %v", got, tt.want)
			}
			if got := EqualsEM4(Arity3, tt.a, tt.b); got != tt.want {
				t.Fatalf("EqualsEM4 = %v, want %v", got, tt.want)
			}
			if got := EqualsAt(V1, Arity3, tt.a, tt.b); got != tt.want {
				t.Fatalf("EqualsAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualsSameStorage(t *testing.T) {
	buf := []float32{0, nan32, 1, 2}
	v := Aligned(buf, 1)

	if !Equals(Arity3, v, Aligned(buf, 1)) {
		t.Fatal("views of the same storage must be equal")
	}
	if Equals(Arity3, v, Comps(nan32, 1, 2)) {
		t.Fatal("NaN components compared equal across distinct storage")
	}
	if Equals(Arity2, Aligned(buf, 0), Aligned(buf, 2)) {
		t.Fatal("different offsets into one buffer are different tuples")
	}
}

func TestToleranceMonotonic(t *testing.T) {
	a := testutil.DeterministicTuples(51, 4, 64, 1)
	b := make([]float32, len(a))
	noise := testutil.DeterministicTuples(52, 4, 64, 1e-3)
	for i := range a {
		b[i] = a[i] + noise[i]
	}
	tols := []float32{0, 1e-8, 1e-6, 1e-4, 5e-4, 1e-3, 1e-2}

	for _, n := range arities {
		for k := 0; k < 64; k++ {
			ta, tb := Aligned(a, 4*k), Aligned(b, 4*k)
			for i, t1 := range tols {
				if !EqualsEM(t1, n, ta, tb) {
					continue
				}
				for _, t2 := range tols[i:] {
					if !EqualsEM(t2, n, ta, tb) {
						t.Fatalf("%v tuple %d: equal at tol %v but not at %v", n, k, t1, t2)
					}
				}
			}
		}
	}
}

func TestEqualsTiers(t *testing.T) {
	if !EqualsEM4(Arity2, Comps[float32](1.00005, 2), Comps[float32](1, 2)) {
		t.Error("EqualsEM4(1.00005, 1.0) = false, want true")
	}
	if EqualsEM4(Arity2, Comps[float32](1.001, 2), Comps[float32](1, 2)) {
		t.Error("EqualsEM4(1.001, 1.0) = true, want false")
	}
	if !EqualsEM6(Arity3, Comps(1, 2, 3.0000005), Comps(1.0, 2, 3)) {
		t.Error("EqualsEM6 within 5e-7 = false")
	}
	if EqualsEM6(Arity3, Comps(1, 2, 3.00001), Comps(1.0, 2, 3)) {
		t.Error("EqualsEM6 at 1e-5 = true")
	}
	if !EqualsEM8(Arity4, Comps(1, 2, 3, 4.000000005), Comps(1.0, 2, 3, 4)) {
		t.Error("EqualsEM8 within 5e-9 = false")
	}
	if EqualsEM8(Arity4, Comps(1, 2, 3, 4.0000001), Comps(1.0, 2, 3, 4)) {
		t.Error("EqualsEM8 at 1e-7 = true")
	}

	if !EqualsAtEM4(V0, Arity2, Comps[float32](1.00005, 9), Comps[float32](1, 2)) {
		t.Error("EqualsAtEM4 on V0 = false")
	}
	if !EqualsAtEM6(V2, Arity3, Comps(0, 0, 1.0000005), Comps(9.0, 9, 1)) {
		t.Error("EqualsAtEM6 on V2 = false")
	}
	if EqualsAtEM8(V3, Arity4, Comps(0, 0, 0, 1.0000001), Comps(0.0, 0, 0, 1)) {
		t.Error("EqualsAtEM8 on V3 = true")
	}
}

func TestZeroClassificationMatchesEquals(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	samples := []Vec4{
		{0, 0, 0, 0},
		{negZero, 0, negZero, 0},
		{0, 0, 0, 1e-30},
		{0, nan32, 0, 0},
		{1, 0, 0, 0},
	}

	for _, n := range arities {
		for _, s := range samples {
			if IsZero(n, s) != Equals(n, s, Broadcast[float32](0)) {
				t.Fatalf("%v %v: IsZero disagrees with Equals(zero)", n, s)
			}
			if IsZeroEM4(n, s) != EqualsEM4(n, s, Vec4{}) {
				t.Fatalf("%v %v: IsZeroEM4 disagrees with EqualsEM4(zero)", n, s)
			}
		}
	}
}

func TestZeroTiers(t *testing.T) {
	small := Vec3{5e-5, -5e-7, 5e-9}
	if !IsZeroEM4(Arity3, small) {
		t.Error("IsZeroEM4 = false")
	}
	if IsZeroEM6(Arity3, small) {
		t.Error("IsZeroEM6 = true with a 5e-5 component")
	}
	if !IsZeroEM(float32(1e-4), Arity3, small) {
		t.Error("IsZeroEM(1e-4) = false")
	}
	if !IsZeroEM8(Arity2, Vec2{5e-9, 0}) || IsZeroEM8(Arity2, Vec2{5e-9, 5e-8}) {
		t.Error("IsZeroEM8 tier mismatch")
	}

	if !IsZeroAt(V1, Arity3, Vec3{1, 0, 1}) || IsZeroAt(V0, Arity3, Vec3{1, 0, 1}) {
		t.Error("IsZeroAt mismatch")
	}
	if !IsZeroAtEM4(V0, Arity2, small) || !IsZeroAtEM6(V1, Arity3, small) || !IsZeroAtEM8(V2, Arity3, small) {
		t.Error("IsZeroAtEM tiers rejected in-tier components")
	}
	if IsZeroAtEM6(V0, Arity3, small) {
		t.Error("IsZeroAtEM6 accepted 5e-5")
	}
}

func TestClassificationAllComponents(t *testing.T) {
	tests := []struct {
		name                      string
		v                         Vec4
		finite, infinite, allNaNs bool
	}{
		{"finite", Vec4{1, -2, 0, 3}, true, false, false},
		{"one nan", Vec4{1, nan32, 0, 3}, false, false, false},
		{"all nan", Vec4{nan32, nan32, nan32, nan32}, false, false, true},
		{"one inf", Vec4{1, 2, -inf32, 3}, false, false, false},
		{"all inf", Vec4{inf32, -inf32, inf32, inf32}, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(Arity4, tt.v); got != tt.finite {
				t.Errorf("IsFinite = %v, want %v", got, tt.finite)
			}
			if got := IsInfinite(Arity4, tt.v); got != tt.infinite {
				t.Errorf("IsInfinite = %v, want %v", got, tt.infinite)
			}
			if got := IsNaN(Arity4, tt.v); got != tt.allNaNs {
				t.Errorf("IsNaN = %v, want %v", got, tt.allNaNs)
			}
		})
	}
}

func TestClassificationAt(t *testing.T) {
	v := Vec4{1, nan32, -inf32, 0}

	if !IsFiniteAt(V0, Arity4, v) || IsFiniteAt(V1, Arity4, v) || IsFiniteAt(V2, Arity4, v) {
		t.Error("IsFiniteAt mismatch")
	}
	if !IsNaNAt(V1, Arity4, v) || IsNaNAt(V0, Arity4, v) {
		t.Error("IsNaNAt mismatch")
	}
	if !IsInfiniteAt(V2, Arity4, v) || IsInfiniteAt(V3, Arity4, v) {
		t.Error("IsInfiniteAt mismatch")
	}
	if !IsZeroAt(V3, Arity4, v) {
		t.Error("IsZeroAt(V3) = false")
	}
}

func TestIndexBounds(t *testing.T) {
	for _, n := range arities {
		t.Run(n.String(), func(t *testing.T) {
			a, b := Vec4{}, Vec4{}
			last := int(n)

			requireIndexPanic(t, last, func() { EqualsAt(last, n, a, b) })
			requireIndexPanic(t, -1, func() { EqualsAt(-1, n, a, b) })
			requireIndexPanic(t, last, func() { EqualsAtEM4(last, n, a, b) })
			requireIndexPanic(t, last, func() { IsZeroAt(last, n, a) })
			requireIndexPanic(t, last, func() { IsNaNAt(last, n, a) })
			requireIndexPanic(t, last, func() { IsFiniteAt(last, n, a) })
			requireIndexPanic(t, last, func() { IsInfiniteAt(last, n, a) })
			requireIndexPanic(t, last, func() { GetAt(n, a, last) })
			requireIndexPanic(t, last, func() { SetAt(n, Compact(make([]float32, 4)), last, 1) })

			// in range never panics
			for i := 0; i < last; i++ {
				_ = EqualsAt(i, n, a, b)
			}
		})
	}
}

func TestIndexPanicBeforeAbsentCheck(t *testing.T) {
	requireIndexPanic(t, 3, func() { EqualsAt[float32](3, Arity3, nil, nil) })
}

func TestCheckIndex(t *testing.T) {
	if err := CheckIndex(Arity2, 1); err != nil {
		t.Fatalf("CheckIndex(2, 1) = %v", err)
	}
	err := CheckIndex(Arity2, 2)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("CheckIndex(2, 2) = %v, want ErrIndexOutOfRange", err)
	}
	if got, want := err.Error(), "tuple: index 2 out of range [0,2)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestGetSetAt(t *testing.T) {
	buf := []float32{9, 1, 2, 3, 9}
	v := Aligned(buf, 1)

	if got := GetAt(Arity3, v, V2); got != 3 {
		t.Fatalf("GetAt(V2) = %v, want 3", got)
	}
	SetAt(Arity3, v, V0, 7)
	testutil.RequireSliceEqual(t, buf, []float32{9, 7, 2, 3, 9})
}
