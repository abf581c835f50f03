package geometry

import (
	"math"
	"testing"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

func TestQuadHitCenter(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 0, 0))
	q := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	rec, hit := q.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !hit {
		t.Fatal("expected hit through quad center")
	}
	if math.Abs(rec.U-0.5) > 1e-9 || math.Abs(rec.V-0.5) > 1e-9 {
		t.Errorf("U,V = %g,%g, want 0.5,0.5", rec.U, rec.V)
	}
}

func TestQuadMissOutsideEdges(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 0, 0))
	q := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)

	ray := core.NewRay(core.NewVec3(5, 5, -5), core.NewVec3(0, 0, 1))
	if _, hit := q.Hit(ray, core.NewInterval(0.001, math.Inf(1))); hit {
		t.Error("expected miss outside quad bounds")
	}
}

func TestQuadParallelRayMisses(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 0, 0))
	q := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(1, 0, 0))
	if _, hit := q.Hit(ray, core.NewInterval(0.001, math.Inf(1))); hit {
		t.Error("expected miss for ray parallel to quad plane")
	}
}
