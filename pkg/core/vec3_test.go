package core

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v, want (5,7,9)", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v, want (3,3,3)", got)
	}
	if got := a.Mul(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Mul = %v, want (2,4,6)", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %f, want 32", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Errorf("Cross(x,y) = %v, want (0,0,1)", z)
	}
}

func TestVec3Unit(t *testing.T) {
	v := NewVec3(3, 4, 0)
	u := v.Unit()
	if math.Abs(u.Length()-1.0) > 1e-12 {
		t.Errorf("Unit length = %f, want 1", u.Length())
	}
}

func TestVec3NearZero(t *testing.T) {
	if !(Vec3{1e-9, -1e-9, 0}).NearZero() {
		t.Error("expected near-zero vector to report true")
	}
	if (Vec3{0.1, 0, 0}).NearZero() {
		t.Error("expected non-zero vector to report false")
	}
}

func TestVec3Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	r := v.Reflect(n)
	if r != (Vec3{1, 1, 0}) {
		t.Errorf("Reflect = %v, want (1,1,0)", r)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3))
	got := r.At(2)
	if got != (Vec3{2, 4, 6}) {
		t.Errorf("At(2) = %v, want (2,4,6)", got)
	}
}
