package geometry

import (
	"math"
	"testing"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

func TestSphereHitFaceNormal(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, mat)

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	rec, hit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !hit {
		t.Fatal("expected ray through sphere center to hit")
	}

	if rec.Normal.Dot(ray.Direction) > 0 {
		t.Errorf("normal should oppose ray direction, dot = %f", rec.Normal.Dot(ray.Direction))
	}
	if !rec.FrontFace {
		t.Error("expected front-face hit from outside the sphere")
	}
}

func TestSphereUVRoundTrip(t *testing.T) {
	points := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0.6, 0.8, 0),
	}

	for _, p := range points {
		u, v := sphereUV(p)

		theta := v * math.Pi
		phi := u * 2 * math.Pi

		y := -math.Cos(theta)
		x := math.Sin(theta) * math.Cos(phi-math.Pi)
		z := -math.Sin(theta) * math.Sin(phi-math.Pi)

		got := core.NewVec3(x, y, z)
		if got.Sub(p).Length() > 1e-9 {
			t.Errorf("UV round-trip for %v produced %v", p, got)
		}
	}
}

func TestSphereBoundingBox(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	sphere := NewSphere(core.NewVec3(2, 0, 0), 1, mat)
	box := sphere.BoundingBox()

	if box.X.Min > 1 || box.X.Max < 3 {
		t.Errorf("bounding box X = [%g,%g], want to contain [1,3]", box.X.Min, box.X.Max)
	}
}
