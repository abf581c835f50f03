package geometry

import (
	"math"
	"testing"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

func TestConeHitLateralSurface(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	c := NewCone(core.NewVec3(0, 0, 0), 1, 2, mat)

	ray := core.NewRay(core.NewVec3(5, 2, 0), core.NewVec3(-1, 0, 0))
	rec, hit := c.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !hit {
		t.Fatal("expected hit on cone lateral surface at the widest ring")
	}
	if math.Abs(rec.Point.X-1) > 1e-9 {
		t.Errorf("Point.X = %g, want 1", rec.Point.X)
	}
}

func TestConeApexHasZeroRadius(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	c := NewCone(core.NewVec3(0, 0, 0), 1, 2, mat)

	ray := core.NewRay(core.NewVec3(5, 0, 0.5), core.NewVec3(-1, 0, 0))
	if _, hit := c.Hit(ray, core.NewInterval(0.001, math.Inf(1))); hit {
		t.Error("expected miss near the apex, where the cone radius is ~0")
	}
}

func TestConeHitTopCap(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	c := NewCone(core.NewVec3(0, 0, 0), 1, 2, mat)

	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	rec, hit := c.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !hit {
		t.Fatal("expected hit on top cap")
	}
	if math.Abs(rec.Point.Y-2) > 1e-9 {
		t.Errorf("Point.Y = %g, want 2", rec.Point.Y)
	}
}
