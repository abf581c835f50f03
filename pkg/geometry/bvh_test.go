package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

func TestBVHMatchesLinearScene(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	rng := rand.New(rand.NewSource(99))

	var objects []Hittable
	linear := NewScene()
	for i := 0; i < 200; i++ {
		center := core.NewVec3(rng.Float64()*40-20, rng.Float64()*40-20, rng.Float64()*40-20)
		radius := 0.5 + rng.Float64()*1.5
		sphere := NewSphere(center, radius, mat)
		objects = append(objects, sphere)
		linear.Add(sphere)
	}
	bvh := NewBVHFromScene(objects)

	hits := 0
	for i := 0; i < 500; i++ {
		origin := core.NewVec3(rng.Float64()*60-30, rng.Float64()*60-30, -50)
		target := core.NewVec3(rng.Float64()*40-20, rng.Float64()*40-20, rng.Float64()*40-20)
		ray := core.NewRay(origin, target.Sub(origin))
		rayT := core.NewInterval(0.001, math.Inf(1))

		bvhRec, bvhHit := bvh.Hit(ray, rayT)
		linRec, linHit := linear.Hit(ray, rayT)

		if bvhHit != linHit {
			t.Fatalf("ray %d: BVH hit=%v, linear hit=%v", i, bvhHit, linHit)
		}
		if !bvhHit {
			continue
		}
		hits++

		if math.Abs(bvhRec.T-linRec.T) > 1e-9 {
			t.Errorf("ray %d: T = %g, want %g", i, bvhRec.T, linRec.T)
		}
		if bvhRec.Point.Sub(linRec.Point).Length() > 1e-9 {
			t.Errorf("ray %d: Point = %v, want %v", i, bvhRec.Point, linRec.Point)
		}
		if bvhRec.Normal.Sub(linRec.Normal).Length() > 1e-9 {
			t.Errorf("ray %d: Normal = %v, want %v", i, bvhRec.Normal, linRec.Normal)
		}
	}

	if hits == 0 {
		t.Fatal("expected at least some rays to hit the sphere field")
	}
}
