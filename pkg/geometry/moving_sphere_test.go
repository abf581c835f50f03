package geometry

import (
	"math"
	"testing"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

func TestMovingSphereCenterTracksTime(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	s := NewMovingSphere(core.NewVec3(-2, 0, 0), core.NewVec3(2, 0, 0), 1, mat)

	rayAtStart := core.NewRayAt(core.NewVec3(-2, 0, -10), core.NewVec3(0, 0, 1), 0)
	rayAtEnd := core.NewRayAt(core.NewVec3(2, 0, -10), core.NewVec3(0, 0, 1), 1)

	recStart, hitStart := s.Hit(rayAtStart, core.NewInterval(0.001, math.Inf(1)))
	recEnd, hitEnd := s.Hit(rayAtEnd, core.NewInterval(0.001, math.Inf(1)))

	if !hitStart || !hitEnd {
		t.Fatal("expected a hit at both time=0 and time=1 along the swept center")
	}
	if math.Abs(recStart.Point.X-(-2)) > 1e-9 {
		t.Errorf("time=0 hit X = %g, want -2", recStart.Point.X)
	}
	if math.Abs(recEnd.Point.X-2) > 1e-9 {
		t.Errorf("time=1 hit X = %g, want 2", recEnd.Point.X)
	}
}

func TestStationarySphereIgnoresTime(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	s := NewSphere(core.NewVec3(0, 0, 0), 1, mat)

	ray0 := core.NewRayAt(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), 0)
	ray1 := core.NewRayAt(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), 1)

	rec0, _ := s.Hit(ray0, core.NewInterval(0.001, math.Inf(1)))
	rec1, _ := s.Hit(ray1, core.NewInterval(0.001, math.Inf(1)))

	if rec0.Point != rec1.Point {
		t.Errorf("stationary sphere hit point changed with time: %v vs %v", rec0.Point, rec1.Point)
	}
}
