package core

import (
	"math"
	"testing"
)

func TestAABBNormalForm(t *testing.T) {
	box := NewAABB(NewInterval(0, 0), NewInterval(1, 2), NewInterval(-1, 1))

	for axis := 0; axis < 3; axis++ {
		iv := box.AxisInterval(axis)
		if iv.Size() < minAxisSize {
			t.Errorf("axis %d size %g below minimum %g", axis, iv.Size(), minAxisSize)
		}
	}
}

func TestAABBHitTowardCenter(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(5, 0, 0), NewVec3(-1, 0, 0))

	if !box.Hit(ray, NewInterval(0, math.Inf(1))) {
		t.Error("expected ray pointed at box center to hit")
	}
}

func TestAABBMissPointingAway(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(5, 0, 0), NewVec3(1, 0, 0))

	if box.Hit(ray, NewInterval(0, math.Inf(1))) {
		t.Error("expected ray pointed away from box to miss")
	}
}

func TestAABBFromBoxesUnion(t *testing.T) {
	a := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABBFromPoints(NewVec3(2, 2, 2), NewVec3(3, 3, 3))
	u := NewAABBFromBoxes(a, b)

	if u.X.Min != 0 || u.X.Max != 3 {
		t.Errorf("union X = [%g,%g], want [0,3]", u.X.Min, u.X.Max)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(NewInterval(0, 1), NewInterval(0, 5), NewInterval(0, 2))
	if got := box.LongestAxis(); got != 1 {
		t.Errorf("LongestAxis = %d, want 1", got)
	}
}

func TestAABBTranslate(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	moved := box.Translate(NewVec3(2, 0, 0))

	if moved.X.Min != 2 || moved.X.Max != 3 {
		t.Errorf("translated X = [%g,%g], want [2,3]", moved.X.Min, moved.X.Max)
	}
}
